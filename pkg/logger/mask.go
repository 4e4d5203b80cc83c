package logger

import (
	"encoding/hex"
	"strings"

	"go.uber.org/zap"
)

// MaskIMSI 保留前 6 位和最后 1 位
// 例: 208930000000001 → 208930********1
func MaskIMSI(imsi string) string {
	return maskPartial(imsi, 6, 1)
}

// MaskHex 只保留首尾各 1 字节，用于 K/OPc/CK/IK 等密钥材料
func MaskHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return maskPartial(hex.EncodeToString(b), 2, 2)
}

func maskPartial(s string, keepPrefix, keepSuffix int) string {
	if len(s) <= keepPrefix+keepSuffix {
		return s
	}
	return s[:keepPrefix] + strings.Repeat("*", len(s)-keepPrefix-keepSuffix) + s[len(s)-keepSuffix:]
}

// IMSI 返回已掩码的 IMSI 字段
func IMSI(imsi string) zap.Field {
	return zap.String("imsi", MaskIMSI(imsi))
}

// Secret 返回已掩码的密钥字段
func Secret(key string, b []byte) zap.Field {
	return zap.String(key, MaskHex(b))
}

// Hex 返回明文十六进制字段，只用于公开数据 (RAND, AUTN, AMF)
func Hex(key string, b []byte) zap.Field {
	return zap.String(key, hex.EncodeToString(b))
}
