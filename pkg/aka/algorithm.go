// Package aka 实现 USIM 侧的 AKA 鉴权计算：
// 根据 RAND 计算 RES/CK/IK/AK，并重建 AUTN 与网络下发的 AUTN 比较。
package aka

import (
	"fmt"
	"strings"
)

// Algorithm 选择鉴权内核
type Algorithm uint8

const (
	Milenage Algorithm = iota
	XOR
)

func (a Algorithm) String() string {
	switch a {
	case Milenage:
		return "milenage"
	case XOR:
		return "xor"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm 解析算法名 (不区分大小写)
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "milenage", "":
		return Milenage, nil
	case "xor":
		return XOR, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q: %w", s, ErrUnknownAlgorithm)
	}
}

// Decode 实现 envconfig.Decoder
func (a *Algorithm) Decode(value string) error {
	alg, err := ParseAlgorithm(value)
	if err != nil {
		return err
	}
	*a = alg
	return nil
}
