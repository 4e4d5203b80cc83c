package crypto

import (
	"bytes"
	"testing"
)

func TestNewRAND(t *testing.T) {
	r1, err := NewRAND()
	if err != nil {
		t.Fatalf("NewRAND 失败: %v", err)
	}
	r2, err := NewRAND()
	if err != nil {
		t.Fatalf("NewRAND 第二次调用失败: %v", err)
	}
	if len(r1) != RandLen {
		t.Errorf("长度错误: got %d, want %d", len(r1), RandLen)
	}
	if bytes.Equal(r1, r2) {
		t.Error("两次 NewRAND 调用不应返回相同的结果")
	}
}
