package sim

import (
	"encoding/hex"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"

	"github.com/iniwex5/usim-go/pkg/aka"
	"github.com/iniwex5/usim-go/pkg/crypto"
)

// DefaultEnvPrefix 环境变量前缀，例如 USIM_K, USIM_OPC
const DefaultEnvPrefix = "USIM"

// Profile 软 USIM 的用户数据，密钥均为十六进制字符串
type Profile struct {
	Algorithm aka.Algorithm `envconfig:"ALGO" default:"milenage"`
	IMSI      string        `envconfig:"IMSI" required:"true"`
	IMEI      string        `envconfig:"IMEI"`
	K         string        `envconfig:"K" required:"true"`
	OP        string        `envconfig:"OP"`
	OPc       string        `envconfig:"OPC"` // 同时配置 OP 和 OPc 时使用 OPc
	AMF       string        `envconfig:"AMF" default:"8000"`
	MCC       string        `envconfig:"MCC"`
	MNC       string        `envconfig:"MNC"`

	// 新鲜度检查默认关闭
	TrackSQN bool   `envconfig:"TRACK_SQN" default:"false"`
	SQN      uint64 `envconfig:"SQN" default:"0"`
	SQNDelta uint64 `envconfig:"SQN_DELTA" default:"268435456"`
}

// LoadProfile 从环境变量读取 Profile 并校验
func LoadProfile(prefix string) (*Profile, error) {
	var p Profile
	if err := envconfig.Process(prefix, &p); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate 检查所有字段，一次返回全部错误
func (p *Profile) Validate() error {
	var err error

	if _, e := ParseIMSI(p.IMSI); e != nil {
		err = multierr.Append(err, e)
	}
	if p.IMEI != "" {
		if _, e := ParseIMEI(p.IMEI); e != nil {
			err = multierr.Append(err, e)
		}
	}
	err = multierr.Append(err, checkHex("K", p.K, crypto.KeyLen))
	err = multierr.Append(err, checkHex("AMF", p.AMF, crypto.AMFLen))

	switch p.Algorithm {
	case aka.Milenage:
		switch {
		case p.OPc != "":
			err = multierr.Append(err, checkHex("OPc", p.OPc, crypto.KeyLen))
		case p.OP != "":
			err = multierr.Append(err, checkHex("OP", p.OP, crypto.KeyLen))
		default:
			err = multierr.Append(err, fmt.Errorf("milenage requires OP or OPc: %w", ErrInvalidProfile))
		}
	case aka.XOR:
	default:
		err = multierr.Append(err, fmt.Errorf("%s: %w", p.Algorithm, aka.ErrUnknownAlgorithm))
	}

	if p.MCC != "" || p.MNC != "" {
		mcc, mnc := p.MCC, p.MNC
		if mcc == "" || mnc == "" {
			m, n, e := SplitPLMN(p.IMSI)
			if e == nil {
				if mcc == "" {
					mcc = m
				}
				if mnc == "" {
					mnc = n
				}
			}
		}
		if _, _, e := EncodePLMN(mcc, mnc); e != nil {
			err = multierr.Append(err, e)
		}
	}
	if p.SQN > 0xffffffffffff {
		err = multierr.Append(err, fmt.Errorf("SQN %#x exceeds 48 bits: %w", p.SQN, ErrInvalidProfile))
	}

	return err
}

func checkHex(name, s string, n int) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", name, err, ErrInvalidProfile)
	}
	if len(b) != n {
		return fmt.Errorf("%s: want %d bytes, got %d: %w", name, n, len(b), ErrInvalidProfile)
	}
	return nil
}

// Keys 解码密钥材料；只有 OP 时派生 OPc
func (p *Profile) Keys() (k, opc, amf []byte, err error) {
	if k, err = hex.DecodeString(p.K); err != nil {
		return nil, nil, nil, fmt.Errorf("K: %w", err)
	}
	if amf, err = hex.DecodeString(p.AMF); err != nil {
		return nil, nil, nil, fmt.Errorf("AMF: %w", err)
	}
	if p.Algorithm != aka.Milenage {
		return k, nil, amf, nil
	}

	if p.OPc != "" {
		if opc, err = hex.DecodeString(p.OPc); err != nil {
			return nil, nil, nil, fmt.Errorf("OPc: %w", err)
		}
		return k, opc, amf, nil
	}

	op, err := hex.DecodeString(p.OP)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("OP: %w", err)
	}
	if opc, err = crypto.ComputeOPc(k, op); err != nil {
		return nil, nil, nil, err
	}
	return k, opc, amf, nil
}
