package aka

//go:generate mockgen -source=kernel.go -destination=mock_kernel.go -package=aka

import (
	"fmt"

	"github.com/iniwex5/usim-go/pkg/crypto"
)

// Kernel 是 f1 / f2345 的统一接口，Milenage 与 XOR 测试算法都实现它
type Kernel interface {
	// F1 返回 8 字节 MAC-A
	F1(rand, sqn, amf []byte) (macA []byte, err error)
	// F2345 返回 RES, CK, IK, AK；RES 可能长于 8 字节
	F2345(rand []byte) (res, ck, ik, ak []byte, err error)
}

// Resyncer 由支持 f1*/f5* 的内核实现，用于生成 AUTS
type Resyncer interface {
	GenerateAUTS(rand, sqn []byte) ([]byte, error)
}

// NewKernel 按算法创建内核
// opc 仅 Milenage 使用，XOR 忽略
func NewKernel(alg Algorithm, k, opc []byte) (Kernel, error) {
	switch alg {
	case Milenage:
		m, err := crypto.NewMilenage(k, opc, true)
		if err != nil {
			return nil, fmt.Errorf("milenage kernel: %w", err)
		}
		return MilenageKernel{m: *m}, nil
	case XOR:
		x, err := crypto.NewXORTest(k)
		if err != nil {
			return nil, fmt.Errorf("xor kernel: %w", err)
		}
		return XORKernel{x: *x}, nil
	default:
		return nil, fmt.Errorf("%s: %w", alg, ErrUnknownAlgorithm)
	}
}

// MilenageKernel 把 crypto.Milenage 适配为 Kernel，按值持有密钥
type MilenageKernel struct {
	m crypto.Milenage
}

func (k MilenageKernel) F1(rand, sqn, amf []byte) ([]byte, error) {
	macA, _, err := k.m.F1(rand, sqn, amf)
	return macA, err
}

func (k MilenageKernel) F2345(rand []byte) (res, ck, ik, ak []byte, err error) {
	return k.m.F2345(rand)
}

func (k MilenageKernel) GenerateAUTS(rand, sqn []byte) ([]byte, error) {
	return k.m.GenerateAUTS(rand, sqn)
}

// XORKernel 把 crypto.XORTest 适配为 Kernel
type XORKernel struct {
	x crypto.XORTest
}

func (k XORKernel) F1(rand, sqn, amf []byte) ([]byte, error) {
	return k.x.F1(rand, sqn, amf)
}

func (k XORKernel) F2345(rand []byte) (res, ck, ik, ak []byte, err error) {
	return k.x.F2345(rand)
}
