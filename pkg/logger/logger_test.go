package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestMaskIMSI(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"208930000000001", "208930********1"},
		{"4401012345", "440101***5"},
		{"1234567", "1234567"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := MaskIMSI(tt.in); got != tt.want {
			t.Errorf("MaskIMSI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMaskHex(t *testing.T) {
	k := []byte{0x8b, 0xaf, 0x47, 0x3f, 0x2f, 0x8f, 0xd0, 0x94, 0x87, 0xcc, 0xcb, 0xd7, 0x09, 0x7c, 0x68, 0x62}
	got := MaskHex(k)
	if got != "8b"+strings.Repeat("*", 28)+"62" {
		t.Errorf("MaskHex = %q", got)
	}
	if MaskHex(nil) != "" {
		t.Error("MaskHex(nil) 应为空")
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"DEBUG": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"info":  zapcore.InfoLevel,
		"bogus": zapcore.InfoLevel,
	} {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestReplaceAndFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("debug", "json", &buf)
	if err != nil {
		t.Fatalf("New 失败: %v", err)
	}
	restore := Replace(l)
	defer restore()

	Debug("aka evaluated",
		IMSI("208930000000001"),
		Secret("k", []byte{0x01, 0x02, 0x03}),
		Hex("rand", []byte{0xab, 0xcd}),
	)
	Sync()

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("日志不是 JSON: %v: %s", err, buf.String())
	}
	if entry["imsi"] != "208930********1" {
		t.Errorf("imsi = %v", entry["imsi"])
	}
	if entry["k"] != "01**03" {
		t.Errorf("k = %v", entry["k"])
	}
	if entry["rand"] != "abcd" {
		t.Errorf("rand = %v", entry["rand"])
	}
	if entry["level"] != "debug" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New("warn", "console", &buf)
	l.Info("hidden")
	l.Warn("shown")
	_ = l.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info 日志不应输出")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn 日志应输出")
	}
}
