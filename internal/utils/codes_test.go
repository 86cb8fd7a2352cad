package utils

import (
	"strings"
	"testing"
)

func TestNewRequestCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := NewRequestCode()
		if !strings.HasPrefix(code, "HP-") {
			t.Fatalf("missing prefix: %q", code)
		}
		if len(code) != len("HP-")+requestCodeHexLen {
			t.Fatalf("code length wrong: %q", code)
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("code not uppercased: %q", code)
		}
		if seen[code] {
			t.Fatalf("duplicate code in 100 draws: %q", code)
		}
		seen[code] = true
	}
}
