package term

import (
	"strings"
	"testing"

	"github.com/funvibe/typeguard/internal/config"
)

func TestForcedModes(t *testing.T) {
	defer SetMode(config.ColorAuto)

	SetMode(config.ColorNever)
	if got := Red("x"); got != "x" {
		t.Errorf("never mode still colored: %q", got)
	}

	SetMode(config.ColorAlways)
	if got := Red("x"); !strings.Contains(got, "\x1b[31m") {
		t.Errorf("always mode did not color: %q", got)
	}
	if got := Bold("x"); !strings.Contains(got, "\x1b[1m") {
		t.Errorf("Bold missing escape: %q", got)
	}
}
