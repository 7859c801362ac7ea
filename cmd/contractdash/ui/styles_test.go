package ui

import (
	"strings"
	"testing"
)

func TestThemeFromName(t *testing.T) {
	if ThemeFromName("light").IsDark {
		t.Error("light theme reported dark")
	}
	if !ThemeFromName("dark").IsDark {
		t.Error("dark theme reported light")
	}
}

func TestDetectTheme(t *testing.T) {
	t.Run("light background index", func(t *testing.T) {
		t.Setenv("COLORFGBG", "0;15")
		if DetectTheme().IsDark {
			t.Error("expected light theme for COLORFGBG 0;15")
		}
	})

	t.Run("dark background index", func(t *testing.T) {
		t.Setenv("COLORFGBG", "15;0")
		if !DetectTheme().IsDark {
			t.Error("expected dark theme for COLORFGBG 15;0")
		}
	})

	t.Run("light mode override", func(t *testing.T) {
		t.Setenv("COLORFGBG", "")
		t.Setenv("CONTRACTDASH_LIGHT_MODE", "1")
		if DetectTheme().IsDark {
			t.Error("expected light theme from override")
		}
	})

	t.Run("defaults to dark", func(t *testing.T) {
		t.Setenv("COLORFGBG", "")
		t.Setenv("CONTRACTDASH_LIGHT_MODE", "")
		if !DetectTheme().IsDark {
			t.Error("expected dark default")
		}
	})
}

func TestRiskStyle(t *testing.T) {
	s := DefaultStyles()

	if s.RiskStyle("High").GetForeground() != s.Error.GetForeground() {
		t.Error("High risk must use the error style")
	}
	if s.RiskStyle("Medium").GetForeground() != s.Warning.GetForeground() {
		t.Error("Medium risk must use the warning style")
	}
	if s.RiskStyle("Low").GetForeground() != s.Info.GetForeground() {
		t.Error("Low risk must use the info style")
	}
}

func TestRenderDivider(t *testing.T) {
	s := DefaultStyles()
	if got := strings.Count(s.RenderDivider(5), "─"); got != 5 {
		t.Errorf("expected 5 segments, got %d", got)
	}
	if s.RenderDivider(0) != "" {
		t.Error("zero width must render nothing")
	}
}

func TestFieldGrid(t *testing.T) {
	grid := NewFieldGrid()
	grid.Add("Parties", "Acme & ABC Corp")
	grid.Add("Status", "Active")

	out := grid.View(DefaultStyles())
	for _, want := range []string{"Parties", "Acme & ABC Corp", "Status", "Active"} {
		if !strings.Contains(out, want) {
			t.Errorf("grid missing %q", want)
		}
	}

	if NewFieldGrid().View(DefaultStyles()) != "" {
		t.Error("empty grid must render nothing")
	}
}
