package crypto

import "fmt"

// XORTest 是 3GPP TS 34.108 中的 XOR 测试算法
// 没有任何密码强度，只用于一致性测试
type XORTest struct {
	K [16]byte
}

// NewXORTest 创建 XOR 测试算法实例
func NewXORTest(k []byte) (*XORTest, error) {
	if err := checkLen("K", k, KeyLen); err != nil {
		return nil, err
	}
	x := &XORTest{}
	copy(x.K[:], k)
	return x, nil
}

func (x *XORTest) xd(rand []byte) [16]byte {
	var xd [16]byte
	for i := 0; i < 16; i++ {
		xd[i] = x.K[i] ^ rand[i]
	}
	return xd
}

// F2345 XDOUT = K ⊕ RAND
// RES = XDOUT (16字节), CK/IK 为 XDOUT 左移 1/2 字节, AK = XDOUT[3:9]
func (x *XORTest) F2345(rand []byte) (res, ck, ik, ak []byte, err error) {
	if err := checkLen("RAND", rand, RandLen); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("xor F2345: %w", err)
	}

	xd := x.xd(rand)
	res = make([]byte, 16)
	ck = make([]byte, 16)
	ik = make([]byte, 16)
	for i := 0; i < 16; i++ {
		res[i] = xd[i]
		ck[i] = xd[(i+1)%16]
		ik[i] = xd[(i+2)%16]
	}
	ak = make([]byte, 6)
	copy(ak, xd[3:9])

	return res, ck, ik, ak, nil
}

// F1 MAC-A = XDOUT[0:8] ⊕ (SQN || AMF)
func (x *XORTest) F1(rand, sqn, amf []byte) (macA []byte, err error) {
	if err := checkLen("RAND", rand, RandLen); err != nil {
		return nil, fmt.Errorf("xor F1: %w", err)
	}
	if err := checkLen("SQN", sqn, SQNLen); err != nil {
		return nil, fmt.Errorf("xor F1: %w", err)
	}
	if err := checkLen("AMF", amf, AMFLen); err != nil {
		return nil, fmt.Errorf("xor F1: %w", err)
	}

	xd := x.xd(rand)

	var cd [8]byte
	copy(cd[0:6], sqn)
	copy(cd[6:8], amf)

	macA = make([]byte, 8)
	for i := 0; i < 8; i++ {
		macA[i] = xd[i] ^ cd[i]
	}
	return macA, nil
}

// GenerateAUTN 生成 XOR 算法下的 AUTN，仅供测试网络侧使用
func (x *XORTest) GenerateAUTN(rand, sqn, amf []byte) ([]byte, error) {
	_, _, _, ak, err := x.F2345(rand)
	if err != nil {
		return nil, err
	}
	macA, err := x.F1(rand, sqn, amf)
	if err != nil {
		return nil, err
	}
	return BuildAUTN(XorSQN(sqn, ak), amf, macA), nil
}
