package sim

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/iniwex5/usim-go/pkg/aka"
	"github.com/iniwex5/usim-go/pkg/crypto"
)

/*
OpenAirInterface HSS 调试输出:

Key: 8b.af.47.3f.2f.8f.d0.94.87.cc.cb.d7.09.7c.68.62.
SQN: 00.00.00.00.1b.57.
OPc: 8e.27.b6.af.0e.69.2e.75.0f.32.66.7a.3b.14.60.5d.
RAND    : 88.38.c3.55.c8.78.aa.57.21.49.fe.69.db.68.6b.5a.
AK      : d7.44.51.9b.3e.fd.
CK      : 05.d3.53.3d.fe.7b.e7.2d.42.c7.bb.02.f2.8e.da.7f.
IK      : 26.33.a2.0b.dc.a8.9d.78.58.ba.42.47.8b.e4.d2.4d.
XRES    : e5.5d.88.27.91.8d.ac.c6.
AUTN    : d7.44.51.9b.25.aa.80.00.84.ba.37.b0.f6.73.4d.d1.
*/
var (
	oaiRAND, _ = hex.DecodeString("8838c355c878aa572149fe69db686b5a")
	oaiAUTN, _ = hex.DecodeString("d744519b25aa800084ba37b0f6734dd1")
)

func TestSoftSIMCalculateAKA(t *testing.T) {
	s, err := NewSoftSIM(validProfile())
	if err != nil {
		t.Fatalf("NewSoftSIM 失败: %v", err)
	}

	res, ck, ik, auts, err := s.CalculateAKA(oaiRAND, oaiAUTN)
	if err != nil {
		t.Fatalf("CalculateAKA 失败: %v", err)
	}
	if auts != nil {
		t.Errorf("不应返回 AUTS: %x", auts)
	}
	if got := hex.EncodeToString(res); got != "e55d8827918dacc6" {
		t.Errorf("RES = %s", got)
	}
	if got := hex.EncodeToString(ck); got != "05d3533dfe7be72d42c7bb02f28eda7f" {
		t.Errorf("CK = %s", got)
	}
	if got := hex.EncodeToString(ik); got != "2633a20bdca89d7858ba42478be4d24d" {
		t.Errorf("IK = %s", got)
	}

	// 未启用跟踪时同一 AUTN 可重复接受
	if _, _, _, _, err := s.CalculateAKA(oaiRAND, oaiAUTN); err != nil {
		t.Errorf("重复 AUTN: err = %v", err)
	}
	if _, ok := s.SQN(); ok {
		t.Error("未启用 SQN 跟踪")
	}
}

func TestSoftSIMAuthFailed(t *testing.T) {
	s, _ := NewSoftSIM(validProfile())
	tampered := append([]byte(nil), oaiAUTN...)
	tampered[15] ^= 0x01

	res, ck, ik, auts, err := s.CalculateAKA(oaiRAND, tampered)
	if !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("err = %v, want ErrAuthFailed", err)
	}
	if res != nil || ck != nil || ik != nil || auts != nil {
		t.Error("失败时不应返回任何输出")
	}

	v, err := s.Authenticate(oaiRAND, tampered)
	if err != nil {
		t.Fatalf("Authenticate 失败: %v", err)
	}
	if v.Result != aka.AuthFailed {
		t.Errorf("Result = %s, want AUTH_FAILED", v.Result)
	}
}

func TestSoftSIMInvalidInput(t *testing.T) {
	s, _ := NewSoftSIM(validProfile())
	if _, _, _, _, err := s.CalculateAKA(oaiRAND[:8], oaiAUTN); !errors.Is(err, aka.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
	if _, _, _, _, err := s.CalculateAKA(oaiRAND, nil); !errors.Is(err, aka.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestSoftSIMFromOP(t *testing.T) {
	// TS 35.208 测试集 1，只配置 OP
	p := &Profile{
		Algorithm: aka.Milenage,
		IMSI:      "001010000000001",
		K:         "465b5ce8b199b49faa5f0a2ee238a6bc",
		OP:        "cdc202d5123e20f62b6d676ac72cb318",
		AMF:       "b9b9",
	}
	s, err := NewSoftSIM(p)
	if err != nil {
		t.Fatalf("NewSoftSIM 失败: %v", err)
	}

	k, _ := hex.DecodeString(p.K)
	opc, _ := hex.DecodeString("cd63cb71954a9f4e48a5994e37a02baf")
	rand, _ := hex.DecodeString("23553cbe9637a89d218ae64dae47bf35")
	sqn, _ := hex.DecodeString("ff9bb4d0b607")
	m, _ := crypto.NewMilenage(k, opc, true)
	autn, _ := m.GenerateAUTN(rand, sqn, s.AMF())

	res, _, _, _, err := s.CalculateAKA(rand, autn)
	if err != nil {
		t.Fatalf("CalculateAKA 失败: %v", err)
	}
	if got := hex.EncodeToString(res); got != "a54211d5e3ba50bf" {
		t.Errorf("RES = %s", got)
	}
}

func TestSoftSIMSQNTracking(t *testing.T) {
	p := validProfile()
	p.TrackSQN = true
	p.SQN = 0x1b57 // 已接受过 OAI 向量中的 SQN
	s, err := NewSoftSIM(p)
	if err != nil {
		t.Fatalf("NewSoftSIM 失败: %v", err)
	}

	_, _, _, auts, err := s.CalculateAKA(oaiRAND, oaiAUTN)
	if !errors.Is(err, ErrSyncFailure) {
		t.Fatalf("err = %v, want ErrSyncFailure", err)
	}
	if len(auts) != crypto.AUTSLen {
		t.Fatalf("AUTS 长度 = %d, want %d", len(auts), crypto.AUTSLen)
	}

	// AUTS 携带 SQN_MS，用 f5* 去掩码验证
	k, _ := hex.DecodeString(p.K)
	opc, _ := hex.DecodeString(p.OPc)
	m, _ := crypto.NewMilenage(k, opc, true)
	akStar, _ := m.F5Star(oaiRAND)
	if got := crypto.DecodeSQN(crypto.XorSQN(auts[:6], akStar)); got != 0x1b57 {
		t.Errorf("AUTS 中的 SQN_MS = %#x, want 0x1b57", got)
	}

	// 网络用更大的 SQN 重发后应成功
	autn, _ := m.GenerateAUTN(oaiRAND, crypto.EncodeSQN(0x1b77), []byte{0x80, 0x00})
	if _, _, _, _, err := s.CalculateAKA(oaiRAND, autn); err != nil {
		t.Fatalf("新 SQN: err = %v", err)
	}
	if cur, ok := s.SQN(); !ok || cur != 0x1b77 {
		t.Errorf("SQN = %#x, %v", cur, ok)
	}

	// 重放
	if _, _, _, _, err := s.CalculateAKA(oaiRAND, autn); !errors.Is(err, ErrSyncFailure) {
		t.Errorf("重放: err = %v, want ErrSyncFailure", err)
	}
}

func TestSoftSIMXORSyncUnsupported(t *testing.T) {
	p := &Profile{
		Algorithm: aka.XOR,
		IMSI:      "001010000000001",
		K:         "00000000000000000000000000000000",
		AMF:       "8000",
		TrackSQN:  true,
		SQN:       0x40,
	}
	s, err := NewSoftSIM(p)
	if err != nil {
		t.Fatalf("NewSoftSIM 失败: %v", err)
	}

	rand := make([]byte, 16)
	x, _ := crypto.NewXORTest(make([]byte, 16))
	autn, _ := x.GenerateAUTN(rand, crypto.EncodeSQN(0x20), s.AMF())

	_, _, _, auts, err := s.CalculateAKA(rand, autn)
	if !errors.Is(err, ErrSyncFailure) {
		t.Fatalf("err = %v, want ErrSyncFailure", err)
	}
	if auts != nil {
		t.Errorf("XOR 算法不应生成 AUTS: %x", auts)
	}

	autn, _ = x.GenerateAUTN(rand, crypto.EncodeSQN(0x60), s.AMF())
	res, _, _, _, err := s.CalculateAKA(rand, autn)
	if err != nil {
		t.Fatalf("CalculateAKA 失败: %v", err)
	}
	if !bytes.Equal(res, make([]byte, 8)) {
		t.Errorf("RES = %x, want 全 0", res)
	}
}

func TestSoftSIMIdentity(t *testing.T) {
	s, _ := NewSoftSIM(validProfile())

	imsi, _ := s.GetIMSI()
	if imsi != "208930000000001" {
		t.Errorf("IMSI = %s", imsi)
	}
	imei, err := s.GetIMEI()
	if err != nil || imei != "356092040793011" {
		t.Errorf("IMEI = %s, %v", imei, err)
	}
	if mcc, mnc := s.PLMN(); mcc != "208" || mnc != "93" {
		t.Errorf("PLMN = %s/%s", mcc, mnc)
	}
	nai, err := s.NAI()
	if err != nil || nai != "0208930000000001@nai.epc.mnc093.mcc208.3gppnetwork.org" {
		t.Errorf("NAI = %s, %v", nai, err)
	}
	if s.Algorithm() != aka.Milenage {
		t.Errorf("Algorithm = %s", s.Algorithm())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}

	p := validProfile()
	p.IMEI = ""
	s2, _ := NewSoftSIM(p)
	if _, err := s2.GetIMEI(); !errors.Is(err, ErrInvalidIdentity) {
		t.Errorf("未配置 IMEI: err = %v", err)
	}
}

func TestNewSoftSIMInvalidProfile(t *testing.T) {
	p := validProfile()
	p.K = "short"
	if _, err := NewSoftSIM(p); !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("err = %v, want ErrInvalidProfile", err)
	}
}

func TestNewSoftSIMFromEnv(t *testing.T) {
	t.Setenv("SOFTSIM_IMSI", "208930000000001")
	t.Setenv("SOFTSIM_K", "8BAF473F2F8FD09487CCCBD7097C6862")
	t.Setenv("SOFTSIM_OPC", "8E27B6AF0E692E750F32667A3B14605D")

	s, err := NewSoftSIMFromEnv("SOFTSIM")
	if err != nil {
		t.Fatalf("NewSoftSIMFromEnv 失败: %v", err)
	}
	if _, _, _, _, err := s.CalculateAKA(oaiRAND, oaiAUTN); err != nil {
		t.Errorf("CalculateAKA: %v", err)
	}
}
