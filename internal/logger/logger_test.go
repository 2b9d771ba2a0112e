package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: "info", want: zerolog.InfoLevel},
		{in: "warn", want: zerolog.WarnLevel},
		{in: "warning", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "ERR", want: zerolog.ErrorLevel},
		{in: "garbage", want: zerolog.InfoLevel},
		{in: "", want: zerolog.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q): want %v got %v", tc.in, tc.want, got)
		}
	}
}

func TestL_InitializesOnFirstUse(t *testing.T) {
	base = zerolog.Logger{}
	if L() == nil {
		t.Fatalf("L returned nil")
	}
	if L().GetLevel() == zerolog.NoLevel {
		t.Fatalf("logger left unconfigured")
	}
}
