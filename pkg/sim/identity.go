package sim

import (
	"fmt"
)

// 使用 3 位 MNC 的 MCC (北美)
var threeDigitMNC = map[string]bool{
	"310": true,
	"311": true,
	"312": true,
	"313": true,
	"316": true,
}

// ParseIMSI 校验 15 位 IMSI 并转换为数值
func ParseIMSI(imsi string) (uint64, error) {
	return parseDigits("IMSI", imsi, 15)
}

// ParseIMEI 校验 15 位 IMEI 并转换为数值
func ParseIMEI(imei string) (uint64, error) {
	return parseDigits("IMEI", imei, 15)
}

func parseDigits(name, s string, n int) (uint64, error) {
	if len(s) != n {
		return 0, fmt.Errorf("%s %q: want %d digits, got %d: %w", name, s, n, len(s), ErrInvalidIdentity)
	}
	var v uint64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%s %q: non-digit %q: %w", name, s, c, ErrInvalidIdentity)
		}
		v = v*10 + uint64(c-'0')
	}
	return v, nil
}

// SplitPLMN 从 IMSI 中提取 MCC 和 MNC
func SplitPLMN(imsi string) (mcc, mnc string, err error) {
	if _, err := ParseIMSI(imsi); err != nil {
		return "", "", err
	}
	mncLen := 2
	if threeDigitMNC[imsi[:3]] {
		mncLen = 3
	}
	return imsi[:3], imsi[3 : 3+mncLen], nil
}

// EncodePLMN 将 MCC/MNC 编码为 BCD，不足 4 位用 F 填充
// 例: MCC 208 → 0xF208, MNC 93 → 0xFF93, MNC 466 → 0xF466
func EncodePLMN(mcc, mnc string) (mccBCD, mncBCD uint16, err error) {
	if len(mcc) != 3 || !isDigits(mcc) {
		return 0, 0, fmt.Errorf("MCC %q: %w", mcc, ErrInvalidIdentity)
	}
	mccBCD = 0xF000 | bcd(mcc)

	switch {
	case len(mnc) == 3 && isDigits(mnc):
		mncBCD = 0xF000 | bcd(mnc)
	case len(mnc) == 2 && isDigits(mnc):
		mncBCD = 0xFF00 | bcd(mnc)
	default:
		return 0, 0, fmt.Errorf("MNC %q: %w", mnc, ErrInvalidIdentity)
	}
	return mccBCD, mncBCD, nil
}

func bcd(digits string) uint16 {
	var v uint16
	for i := 0; i < len(digits); i++ {
		v = v<<4 | uint16(digits[i]-'0')
	}
	return v
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func normalizeMNC(mnc string) string {
	if len(mnc) == 2 {
		return "0" + mnc
	}
	return mnc
}

// BuildNAI 构造 EAP-AKA 永久身份 NAI
// mcc/mnc 为空时从 IMSI 推导
func BuildNAI(imsi, mcc, mnc string) (string, error) {
	if mcc == "" || mnc == "" {
		m, n, err := SplitPLMN(imsi)
		if err != nil {
			return "", err
		}
		if mcc == "" {
			mcc = m
		}
		if mnc == "" {
			mnc = n
		}
	}
	return fmt.Sprintf("0%s@nai.epc.mnc%s.mcc%s.3gppnetwork.org", imsi, normalizeMNC(mnc), mcc), nil
}
