package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWrapWidth(t *testing.T) {
	tests := map[string]struct {
		text  string
		width int
		exp   string
	}{
		"short text unchanged": {
			text:  "orc",
			width: 10,
			exp:   "orc",
		},
		"breaks on spaces": {
			text:  "the quick brown fox",
			width: 10,
			exp:   "the quick\nbrown fox",
		},
		"zero width disables": {
			text:  "the quick brown fox",
			width: 0,
			exp:   "the quick brown fox",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "wrapped", WrapWidth(tt.text, tt.width), tt.exp)
		})
	}
}

func TestWrap(t *testing.T) {
	long := strings.Repeat("goblin ", 20)
	for _, line := range strings.Split(Wrap(long), "\n") {
		testutil.AssertEqual(t, "line fits", len(line) <= DefaultWidth, true)
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]struct {
		in  string
		exp string
	}{
		"empty":      {in: "", exp: ""},
		"lowercase":  {in: "imoen", exp: "Imoen"},
		"already up": {in: "Imoen", exp: "Imoen"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "capitalized", Capitalize(tt.in), tt.exp)
		})
	}
}
