package aka

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/iniwex5/usim-go/pkg/crypto"
)

var (
	ErrInvalidInput       = errors.New("invalid AKA input")
	ErrUnknownAlgorithm   = errors.New("unknown AKA algorithm")
	ErrResyncUnsupported  = errors.New("algorithm does not support resynchronisation")
	errKernelOutputLength = errors.New("kernel returned short output")
)

// Result 鉴权结果
type Result uint8

const (
	AuthOK Result = iota
	AuthFailed
	// AuthSynchFailure 保留给 SQN 新鲜度检查；Evaluate 本身从不返回它
	AuthSynchFailure
)

func (r Result) String() string {
	switch r {
	case AuthOK:
		return "AUTH_OK"
	case AuthFailed:
		return "AUTH_FAILED"
	case AuthSynchFailure:
		return "AUTH_SYNCH_FAILURE"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// Vector 一次鉴权计算的全部输出，调用方独占
type Vector struct {
	Result Result

	RES    []byte // 8 字节
	RESLen int
	CK     []byte // 16 字节
	IK     []byte // 16 字节
	AK     []byte // 6 字节

	SQN      []byte // 从 AUTN 去掩码得到的 SQN
	AMF      []byte // 原样取自 AUTN
	MAC      []byte // 本地计算的 MAC-A
	AKxorSQN []byte // SQN ⊕ AK，供调用方做新鲜度记录
	AUTN     []byte // 本地重建的 AUTN
}

// Evaluate 校验网络下发的 AUTN 并计算 RES/CK/IK
//
// 1. F2345(RAND) 得到 RES, CK, IK, AK
// 2. SQN = AUTN[0:6] ⊕ AK, AMF = AUTN[6:8]
// 3. F1(RAND, SQN, AMF) 得到 MAC-A
// 4. 重建 AUTN' = (SQN ⊕ AK) || AMF || MAC-A 并与 AUTN 逐字节比较
//
// AUTN' 前 8 字节由 AUTN 自身推出，恒等；实际只有 MAC-A 会导致失败。
// MAC 不匹配通过 Result 返回，error 只表示输入非法。
func Evaluate(k Kernel, rand, autn []byte) (*Vector, error) {
	if k == nil {
		return nil, fmt.Errorf("nil kernel: %w", ErrInvalidInput)
	}
	if len(rand) != crypto.RandLen {
		return nil, fmt.Errorf("RAND: want %d bytes, got %d: %w", crypto.RandLen, len(rand), ErrInvalidInput)
	}
	if len(autn) != crypto.AUTNLen {
		return nil, fmt.Errorf("AUTN: want %d bytes, got %d: %w", crypto.AUTNLen, len(autn), ErrInvalidInput)
	}

	res, ck, ik, ak, err := k.F2345(rand)
	if err != nil {
		return nil, fmt.Errorf("f2345: %w", err)
	}
	if len(res) < crypto.RESLen || len(ak) < crypto.AKLen {
		return nil, fmt.Errorf("f2345: %w", errKernelOutputLength)
	}

	sqnXorAK, amfField, _ := crypto.SplitAUTN(autn)
	sqn := crypto.XorSQN(sqnXorAK, ak)
	amf := append([]byte(nil), amfField...)

	mac, err := k.F1(rand, sqn, amf)
	if err != nil {
		return nil, fmt.Errorf("f1: %w", err)
	}
	if len(mac) < crypto.MACLen {
		return nil, fmt.Errorf("f1: %w", errKernelOutputLength)
	}

	akXorSQN := crypto.XorSQN(sqn, ak)
	rebuilt := crypto.BuildAUTN(akXorSQN, amf, mac[:crypto.MACLen])

	result := AuthOK
	if subtle.ConstantTimeCompare(rebuilt, autn) != 1 {
		result = AuthFailed
	}

	return &Vector{
		Result:   result,
		RES:      append([]byte(nil), res[:crypto.RESLen]...),
		RESLen:   crypto.RESLen,
		CK:       ck,
		IK:       ik,
		AK:       append([]byte(nil), ak[:crypto.AKLen]...),
		SQN:      sqn,
		AMF:      amf,
		MAC:      append([]byte(nil), mac[:crypto.MACLen]...),
		AKxorSQN: akXorSQN,
		AUTN:     rebuilt,
	}, nil
}

// GenerateAUTN 用任意内核构造 AUTN = (SQN ⊕ AK) || AMF || MAC-A
func GenerateAUTN(k Kernel, rand, sqn, amf []byte) ([]byte, error) {
	if k == nil {
		return nil, fmt.Errorf("nil kernel: %w", ErrInvalidInput)
	}
	if len(sqn) != crypto.SQNLen || len(amf) != crypto.AMFLen {
		return nil, fmt.Errorf("SQN/AMF length: %w", ErrInvalidInput)
	}
	_, _, _, ak, err := k.F2345(rand)
	if err != nil {
		return nil, fmt.Errorf("f2345: %w", err)
	}
	mac, err := k.F1(rand, sqn, amf)
	if err != nil {
		return nil, fmt.Errorf("f1: %w", err)
	}
	if len(ak) < crypto.AKLen || len(mac) < crypto.MACLen {
		return nil, errKernelOutputLength
	}
	return crypto.BuildAUTN(crypto.XorSQN(sqn, ak), amf, mac[:crypto.MACLen]), nil
}

// Evaluator 绑定算法与用户密钥，便于重复计算
type Evaluator struct {
	alg    Algorithm
	kernel Kernel
}

// NewEvaluator 创建 Evaluator；Milenage 需要 OPc，XOR 忽略 opc
func NewEvaluator(alg Algorithm, k, opc []byte) (*Evaluator, error) {
	kernel, err := NewKernel(alg, k, opc)
	if err != nil {
		return nil, err
	}
	return &Evaluator{alg: alg, kernel: kernel}, nil
}

// Algorithm 返回使用的算法
func (e *Evaluator) Algorithm() Algorithm {
	return e.alg
}

// Evaluate 见包级 Evaluate
func (e *Evaluator) Evaluate(rand, autn []byte) (*Vector, error) {
	return Evaluate(e.kernel, rand, autn)
}

// GenerateAUTN 网络侧构造 AUTN，用于测试和工具
func (e *Evaluator) GenerateAUTN(rand, sqn, amf []byte) ([]byte, error) {
	return GenerateAUTN(e.kernel, rand, sqn, amf)
}

// GenerateAUTS 用 f1*/f5* 生成重同步参数，XOR 算法不支持
func (e *Evaluator) GenerateAUTS(rand, sqn []byte) ([]byte, error) {
	r, ok := e.kernel.(Resyncer)
	if !ok {
		return nil, fmt.Errorf("%s: %w", e.alg, ErrResyncUnsupported)
	}
	return r.GenerateAUTS(rand, sqn)
}
