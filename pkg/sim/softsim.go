package sim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/iniwex5/usim-go/pkg/aka"
	"github.com/iniwex5/usim-go/pkg/crypto"
	"github.com/iniwex5/usim-go/pkg/logger"
)

// SoftSIM 软件 SIM 实现 (Milenage 或 XOR 测试算法)
// 不需要物理 SIM 卡，用于测试或特殊场景
type SoftSIM struct {
	imsi string
	imei string
	mcc  string
	mnc  string
	amf  []byte

	eval    *aka.Evaluator
	tracker *SQNTracker // nil 表示不做新鲜度检查
	log     *zap.Logger
}

// NewSoftSIM 根据 Profile 创建软件 SIM
func NewSoftSIM(p *Profile) (*SoftSIM, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	k, opc, amf, err := p.Keys()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidProfile)
	}
	eval, err := aka.NewEvaluator(p.Algorithm, k, opc)
	if err != nil {
		return nil, err
	}

	mcc, mnc := p.MCC, p.MNC
	if mcc == "" || mnc == "" {
		m, n, _ := SplitPLMN(p.IMSI)
		if mcc == "" {
			mcc = m
		}
		if mnc == "" {
			mnc = n
		}
	}

	s := &SoftSIM{
		imsi: p.IMSI,
		imei: p.IMEI,
		mcc:  mcc,
		mnc:  mnc,
		amf:  amf,
		eval: eval,
		log:  logger.Named("softsim"),
	}
	if p.TrackSQN {
		s.tracker = NewSQNTracker(p.SQN, p.SQNDelta)
	}

	s.log.Debug("soft USIM ready",
		logger.IMSI(p.IMSI),
		logger.String("algo", p.Algorithm.String()),
		logger.Secret("k", k),
		logger.Secret("opc", opc),
		logger.Bool("track_sqn", p.TrackSQN),
	)
	return s, nil
}

// NewSoftSIMFromEnv 从环境变量创建软件 SIM
func NewSoftSIMFromEnv(prefix string) (*SoftSIM, error) {
	p, err := LoadProfile(prefix)
	if err != nil {
		return nil, err
	}
	return NewSoftSIM(p)
}

// GetIMSI 返回 IMSI
func (s *SoftSIM) GetIMSI() (string, error) {
	return s.imsi, nil
}

// GetIMEI 返回 IMEI
func (s *SoftSIM) GetIMEI() (string, error) {
	if s.imei == "" {
		return "", fmt.Errorf("IMEI not configured: %w", ErrInvalidIdentity)
	}
	return s.imei, nil
}

// PLMN 返回 MCC 和 MNC
func (s *SoftSIM) PLMN() (mcc, mnc string) {
	return s.mcc, s.mnc
}

// NAI 返回 EAP-AKA 永久身份
func (s *SoftSIM) NAI() (string, error) {
	return BuildNAI(s.imsi, s.mcc, s.mnc)
}

// AMF 返回配置的 AMF，用于测试时构造网络侧 AUTN
func (s *SoftSIM) AMF() []byte {
	return append([]byte(nil), s.amf...)
}

// Algorithm 返回使用的算法
func (s *SoftSIM) Algorithm() aka.Algorithm {
	return s.eval.Algorithm()
}

// Authenticate 计算一次完整鉴权，返回全部中间值
// MAC 不匹配时 err 为 nil，结果在 Vector.Result 中
func (s *SoftSIM) Authenticate(rand, autn []byte) (*aka.Vector, error) {
	v, err := s.eval.Evaluate(rand, autn)
	if err != nil {
		s.log.Warn("AKA input rejected", logger.IMSI(s.imsi), logger.Err(err))
		return nil, err
	}
	s.log.Debug("AKA evaluated",
		logger.IMSI(s.imsi),
		logger.Hex("rand", rand),
		logger.Hex("autn", autn),
		logger.String("result", v.Result.String()),
		logger.Hex("sqn", v.SQN),
	)
	return v, nil
}

// CalculateAKA 执行 AKA 认证
// 返回: RES, CK, IK, AUTS (启用 SQN 跟踪且 SQN 不新鲜时)
func (s *SoftSIM) CalculateAKA(rand, autn []byte) (res, ck, ik, auts []byte, err error) {
	v, err := s.Authenticate(rand, autn)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if v.Result != aka.AuthOK {
		s.log.Warn("AUTN MAC mismatch", logger.IMSI(s.imsi))
		return nil, nil, nil, nil, ErrAuthFailed
	}

	if s.tracker != nil {
		sqn := crypto.DecodeSQN(v.SQN)
		if !s.tracker.Accept(sqn) {
			current := s.tracker.Current()
			s.log.Warn("SQN not fresh",
				logger.IMSI(s.imsi),
				logger.Uint64("sqn", sqn),
				logger.Uint64("sqn_ms", current),
			)
			auts, err = s.eval.GenerateAUTS(rand, crypto.EncodeSQN(current))
			if err != nil {
				return nil, nil, nil, nil, fmt.Errorf("%w: %v", ErrSyncFailure, err)
			}
			return nil, nil, nil, auts, ErrSyncFailure
		}
	}

	return v.RES, v.CK, v.IK, nil, nil
}

// SQN 返回已接受的最大 SQN；未启用跟踪时返回 false
func (s *SoftSIM) SQN() (uint64, bool) {
	if s.tracker == nil {
		return 0, false
	}
	return s.tracker.Current(), true
}

// SetSQN 设置已接受的最大 SQN；未启用跟踪时无效果
func (s *SoftSIM) SetSQN(sqn uint64) {
	if s.tracker != nil {
		s.tracker.Set(sqn)
	}
}

// Close 关闭 (无操作)
func (s *SoftSIM) Close() error {
	return nil
}

var (
	_ SIMProvider  = (*SoftSIM)(nil)
	_ IMEIProvider = (*SoftSIM)(nil)
)
