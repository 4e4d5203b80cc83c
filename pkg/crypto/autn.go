package crypto

import "encoding/binary"

// XorSQN 计算 SQN ⊕ AK (或 AK*)，同一函数用于掩码和去掩码
func XorSQN(sqn, ak []byte) []byte {
	out := make([]byte, SQNLen)
	for i := 0; i < SQNLen; i++ {
		out[i] = sqn[i] ^ ak[i]
	}
	return out
}

// BuildAUTN 按 (SQN ⊕ AK) || AMF || MAC-A 拼接 16 字节 AUTN
func BuildAUTN(sqnXorAK, amf, macA []byte) []byte {
	autn := make([]byte, AUTNLen)
	copy(autn[0:6], sqnXorAK)
	copy(autn[6:8], amf)
	copy(autn[8:16], macA)
	return autn
}

// SplitAUTN 拆分 AUTN 的三个字段，返回的切片与 autn 共享底层数组
func SplitAUTN(autn []byte) (sqnXorAK, amf, macA []byte) {
	return autn[0:6], autn[6:8], autn[8:16]
}

// EncodeSQN 将 SQN 编码为 6 字节
func EncodeSQN(sqn uint64) []byte {
	buf := make([]byte, 6)
	binary.BigEndian.PutUint16(buf[0:2], uint16(sqn>>32))
	binary.BigEndian.PutUint32(buf[2:6], uint32(sqn))
	return buf
}

// DecodeSQN 从 6 字节解码 SQN
func DecodeSQN(data []byte) uint64 {
	if len(data) < 6 {
		return 0
	}
	return uint64(data[0])<<40 | uint64(data[1])<<32 |
		uint64(data[2])<<24 | uint64(data[3])<<16 |
		uint64(data[4])<<8 | uint64(data[5])
}
