package crypto

import (
	"crypto/aes"
	"errors"
	"fmt"
)

// 各字段长度 (3GPP TS 33.102)
const (
	KeyLen  = 16
	RandLen = 16
	AUTNLen = 16
	AUTSLen = 14
	SQNLen  = 6
	AMFLen  = 2
	AKLen   = 6
	MACLen  = 8
	RESLen  = 8
	CKLen   = 16
	IKLen   = 16
)

// ErrInvalidLength 输入缺失或长度错误
var ErrInvalidLength = errors.New("invalid input length")

// Milenage 实现 3GPP TS 35.206 规范的认证算法
// 值类型，只持有 K 和 OPc，所有方法无副作用，可并发调用
type Milenage struct {
	K   [16]byte // 128 位用户密钥
	OPc [16]byte // 派生的 OPc = AES_K(OP) ⊕ OP
}

// NewMilenage 创建 Milenage 实例
// k: 128 位用户密钥
// op: 128 位运营商密钥 (OP 或 OPc)
// useOPc: 如果为 true，则 op 参数是 OPc，否则是 OP
func NewMilenage(k, op []byte, useOPc bool) (*Milenage, error) {
	if err := checkLen("K", k, KeyLen); err != nil {
		return nil, err
	}
	if err := checkLen("OP/OPc", op, KeyLen); err != nil {
		return nil, err
	}

	m := &Milenage{}
	copy(m.K[:], k)

	if useOPc {
		copy(m.OPc[:], op)
		return m, nil
	}

	opc, err := ComputeOPc(k, op)
	if err != nil {
		return nil, err
	}
	copy(m.OPc[:], opc)
	return m, nil
}

// ComputeOPc 计算 OPc = AES_K(OP) ⊕ OP
func ComputeOPc(k, op []byte) ([]byte, error) {
	if err := checkLen("K", k, KeyLen); err != nil {
		return nil, err
	}
	if err := checkLen("OP", op, KeyLen); err != nil {
		return nil, err
	}

	block, _ := aes.NewCipher(k)
	opc := make([]byte, 16)
	block.Encrypt(opc, op)
	for i := 0; i < 16; i++ {
		opc[i] ^= op[i]
	}
	return opc, nil
}

// temp 计算 TEMP = AES_K(RAND ⊕ OPc)，同时返回本次调用使用的 AES 加密函数
func (m *Milenage) temp(rand []byte) (func(dst, src []byte), [16]byte) {
	block, _ := aes.NewCipher(m.K[:])

	var temp [16]byte
	for i := 0; i < 16; i++ {
		temp[i] = rand[i] ^ m.OPc[i]
	}
	block.Encrypt(temp[:], temp[:])
	return block.Encrypt, temp
}

// F1 计算网络认证码 MAC-A (f1) 和重同步认证码 MAC-S (f1*)
// 输入: RAND (16字节), SQN (6字节), AMF (2字节)
// 输出: MAC-A (8字节), MAC-S (8字节)
func (m *Milenage) F1(rand, sqn, amf []byte) (macA, macS []byte, err error) {
	if err := checkLen("RAND", rand, RandLen); err != nil {
		return nil, nil, fmt.Errorf("F1: %w", err)
	}
	if err := checkLen("SQN", sqn, SQNLen); err != nil {
		return nil, nil, fmt.Errorf("F1: %w", err)
	}
	if err := checkLen("AMF", amf, AMFLen); err != nil {
		return nil, nil, fmt.Errorf("F1: %w", err)
	}

	encrypt, temp := m.temp(rand)

	// IN1 = SQN || AMF || SQN || AMF
	var in1 [16]byte
	copy(in1[0:6], sqn)
	copy(in1[6:8], amf)
	copy(in1[8:14], sqn)
	copy(in1[14:16], amf)

	// OUT1 = AES_K(TEMP ⊕ rot(IN1 ⊕ OPc, r1) ⊕ c1) ⊕ OPc
	// r1 = 64, c1 = 0x00...00
	var tmp [16]byte
	for i := 0; i < 16; i++ {
		tmp[i] = in1[i] ^ m.OPc[i]
	}
	tmp = rotate(tmp, 64)
	for i := 0; i < 16; i++ {
		tmp[i] ^= temp[i]
	}
	encrypt(tmp[:], tmp[:])
	for i := 0; i < 16; i++ {
		tmp[i] ^= m.OPc[i]
	}

	// MAC-A = OUT1[0:8], MAC-S = OUT1[8:16]
	macA = make([]byte, 8)
	macS = make([]byte, 8)
	copy(macA, tmp[0:8])
	copy(macS, tmp[8:16])

	return macA, macS, nil
}

// F2345 一次计算 RES (f2), CK (f3), IK (f4), AK (f5)
// TEMP 只计算一次，三个输出块共用
func (m *Milenage) F2345(rand []byte) (res, ck, ik, ak []byte, err error) {
	if err := checkLen("RAND", rand, RandLen); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("F2345: %w", err)
	}

	encrypt, temp := m.temp(rand)

	// OUT2 = AES_K(rot(TEMP ⊕ OPc, r2) ⊕ c2) ⊕ OPc, r2 = 0, c2 = 0x00...01
	out2 := m.out(encrypt, temp, 0, 1)
	// RES = OUT2[8:16], AK = OUT2[0:6]
	res = make([]byte, 8)
	ak = make([]byte, 6)
	copy(res, out2[8:16])
	copy(ak, out2[0:6])

	// OUT3: r3 = 32, c3 = 0x00...02
	out3 := m.out(encrypt, temp, 32, 2)
	ck = make([]byte, 16)
	copy(ck, out3[:])

	// OUT4: r4 = 64, c4 = 0x00...04
	out4 := m.out(encrypt, temp, 64, 4)
	ik = make([]byte, 16)
	copy(ik, out4[:])

	return res, ck, ik, ak, nil
}

// F5Star 计算重同步用的匿名密钥 AK*
// 输入: RAND (16字节)
// 输出: AK* (6字节)
func (m *Milenage) F5Star(rand []byte) (akStar []byte, err error) {
	if err := checkLen("RAND", rand, RandLen); err != nil {
		return nil, fmt.Errorf("F5Star: %w", err)
	}

	encrypt, temp := m.temp(rand)

	// OUT5: r5 = 96, c5 = 0x00...08
	out5 := m.out(encrypt, temp, 96, 8)
	akStar = make([]byte, 6)
	copy(akStar, out5[0:6])
	return akStar, nil
}

// out 计算 AES_K(rot(TEMP ⊕ OPc, bits) ⊕ c) ⊕ OPc，c 只作用于最后一个字节
func (m *Milenage) out(encrypt func(dst, src []byte), temp [16]byte, bits int, c byte) [16]byte {
	var tmp [16]byte
	for i := 0; i < 16; i++ {
		tmp[i] = temp[i] ^ m.OPc[i]
	}
	tmp = rotate(tmp, bits)
	tmp[15] ^= c
	encrypt(tmp[:], tmp[:])
	for i := 0; i < 16; i++ {
		tmp[i] ^= m.OPc[i]
	}
	return tmp
}

// GenerateAUTN 生成认证令牌 AUTN (网络侧)
// AUTN = (SQN ⊕ AK) || AMF || MAC-A
func (m *Milenage) GenerateAUTN(rand, sqn, amf []byte) (autn []byte, err error) {
	_, _, _, ak, err := m.F2345(rand)
	if err != nil {
		return nil, err
	}

	macA, _, err := m.F1(rand, sqn, amf)
	if err != nil {
		return nil, err
	}

	return BuildAUTN(XorSQN(sqn, ak), amf, macA), nil
}

// GenerateAUTS 生成重同步参数
// AUTS = (SQN_MS ⊕ AK*) || MAC-S
func (m *Milenage) GenerateAUTS(rand, sqn []byte) ([]byte, error) {
	akStar, err := m.F5Star(rand)
	if err != nil {
		return nil, err
	}

	// AMF 在重同步中使用固定值
	amfResync := []byte{0x00, 0x00}
	_, macS, err := m.F1(rand, sqn, amfResync)
	if err != nil {
		return nil, err
	}

	auts := make([]byte, AUTSLen)
	copy(auts[0:6], XorSQN(sqn, akStar))
	copy(auts[6:14], macS)

	return auts, nil
}

// rotate 循环左移 bits 位
func rotate(data [16]byte, bits int) [16]byte {
	var result [16]byte
	byteShift := bits / 8
	for i := 0; i < 16; i++ {
		result[i] = data[(i+byteShift)%16]
	}
	return result
}

func checkLen(name string, b []byte, want int) error {
	if len(b) != want {
		return fmt.Errorf("%s: want %d bytes, got %d: %w", name, want, len(b), ErrInvalidLength)
	}
	return nil
}
