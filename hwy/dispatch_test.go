package hwy

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseDispatchLevel(t *testing.T) {
	for _, level := range AllLevels {
		got, ok := ParseDispatchLevel(level.String())
		if !ok || got != level {
			t.Errorf("ParseDispatchLevel(%q): got %v, %v", level.String(), got, ok)
		}
	}

	tests := []struct {
		in   string
		want DispatchLevel
		ok   bool
	}{
		{" AVX2 ", DispatchAVX2, true},
		{"generic", DispatchScalar, true},
		{"fallback", DispatchScalar, true},
		{"mmx", DispatchScalar, false},
		{"", DispatchScalar, false},
	}
	for _, tt := range tests {
		got, ok := ParseDispatchLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDispatchLevel(%q): got %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}

	if s := DispatchLevel(99).String(); s != "unknown" {
		t.Errorf("String of invalid level: got %q", s)
	}
}

func TestWidth(t *testing.T) {
	tests := map[DispatchLevel]int{
		DispatchScalar: 16,
		DispatchSSE2:   16,
		DispatchAVX2:   32,
		DispatchAVX512: 64,
		DispatchNEON:   16,
		DispatchSVE:    16,
		DispatchSME:    64,
	}
	for level, want := range tests {
		if got := level.Width(); got != want {
			t.Errorf("%v.Width(): got %d, want %d", level, got, want)
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv with HWY_NO_SIMD=%q: got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestSelectLevel(t *testing.T) {
	onlyAVX2 := func(l DispatchLevel) bool {
		return l == DispatchScalar || l == DispatchSSE2 || l == DispatchAVX2
	}

	tests := []struct {
		name   string
		noSimd string
		target string
		want   DispatchLevel
	}{
		{"detected", "", "", DispatchAVX2},
		{"no simd", "1", "", DispatchScalar},
		{"no simd wins over target", "1", "sse2", DispatchScalar},
		{"supported target", "", "sse2", DispatchSSE2},
		{"generic target", "", "generic", DispatchScalar},
		{"unsupported target", "", "avx512", DispatchAVX2},
		{"unknown target", "", "altivec", DispatchAVX2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", tt.noSimd)
			t.Setenv("HWY_TARGET", tt.target)
			if got := selectLevel(DispatchAVX2, onlyAVX2); got != tt.want {
				t.Errorf("selectLevel: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if !strings.Contains(buf.String(), "dispatch target") {
		t.Errorf("SetLogger: expected dispatch target record, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "level="+CurrentName()) {
		t.Errorf("SetLogger: record lacks level=%s: %q", CurrentName(), buf.String())
	}

	Logger().Debug("logger check")
	if !strings.Contains(buf.String(), "logger check") {
		t.Error("Logger: installed logger not returned")
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("Logger: default logger should discard everything")
	}
}
