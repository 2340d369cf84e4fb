package synth

import (
	"testing"
)

func TestNewFakerWithSeed(t *testing.T) {
	f1 := NewFaker(12345, "zh_CN")
	f2 := NewFaker(12345, "zh_CN")

	// Same seed should produce the same sequence.
	for i := 0; i < 10; i++ {
		if f1.Username() != f2.Username() {
			t.Fatal("Same seed produced different usernames")
		}
		if f1.Name() != f2.Name() {
			t.Fatal("Same seed produced different names")
		}
		if f1.Email() != f2.Email() {
			t.Fatal("Same seed produced different emails")
		}
		if f1.Province() != f2.Province() {
			t.Fatal("Same seed produced different provinces")
		}
	}
}

func TestFakerZhCNProvince(t *testing.T) {
	f := NewFaker(1, "zh_CN")
	known := make(map[string]struct{})
	for _, p := range locales["zh_CN"].provinces {
		known[p] = struct{}{}
	}

	for i := 0; i < 100; i++ {
		p := f.Province()
		if _, ok := known[p]; !ok {
			t.Fatalf("Province %q not in zh_CN reference data", p)
		}
	}
}

func TestFakerZhCNName(t *testing.T) {
	f := NewFaker(1, "zh_CN")
	name := f.Name()
	if name == "" {
		t.Fatal("Name returned empty string")
	}
	for _, r := range name {
		if r < 0x4E00 || r > 0x9FFF {
			t.Fatalf("Name %q contains non-CJK rune %q", name, r)
		}
	}
}

func TestFakerFallbackLocale(t *testing.T) {
	f := NewFaker(1, "en_US")
	if f.Name() == "" {
		t.Error("Fallback Name returned empty string")
	}
	if f.Province() == "" {
		t.Error("Fallback Province returned empty string")
	}
	if f.Email() == "" {
		t.Error("Fallback Email returned empty string")
	}
}
