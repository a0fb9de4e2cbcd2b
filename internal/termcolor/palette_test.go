package termcolor

import "testing"

func TestHeaderStyle(t *testing.T) {
	s := HeaderStyle()
	if !s.Bold || !s.Underline {
		t.Fatalf("header style should enable bold+underline: %+v", s)
	}
}

func TestMatchStyleRespectsProfile(t *testing.T) {
	basic := MatchStyle(SchemeDark, ProfileBasic8)
	if basic.FGBasic == nil || *basic.FGBasic != 1 || !basic.Bold {
		t.Fatalf("match basic style mismatch: %+v", basic)
	}
	ansi := MatchStyle(SchemeLight, ProfileANSI256)
	if ansi.FG256 == nil || *ansi.FG256 != 124 {
		t.Fatalf("match light 256 color mismatch: %+v", ansi)
	}
	for _, scheme := range []Scheme{SchemeDark, SchemeLight} {
		bg := darkBackground
		if scheme == SchemeLight {
			bg = lightBackground
		}
		for name, style := range map[string]Style{
			"match": MatchStyle(scheme, ProfileTrueColor),
			"file":  FileStyle(scheme, ProfileTrueColor),
			"line":  LineNumberStyle(scheme, ProfileTrueColor),
		} {
			if style.FGTrue == nil {
				t.Fatalf("%s truecolor missing fg: %+v", name, style)
			}
			rgb := *style.FGTrue
			if ratio := ContrastRatio(RGB{R: rgb[0], G: rgb[1], B: rgb[2]}, bg); ratio < 4.5 {
				t.Fatalf("%s scheme=%v contrast %.2f < 4.5 (rgb=%v)", name, scheme, ratio, rgb)
			}
		}
	}
}

func TestNewPalette(t *testing.T) {
	p := NewPalette(SchemeDark, ProfileBasic8)
	if p.LineNumber.FGBasic == nil || *p.LineNumber.FGBasic != 2 {
		t.Fatalf("line number should be green: %+v", p.LineNumber)
	}
	if p.File.FGBasic == nil || *p.File.FGBasic != 5 {
		t.Fatalf("file should be magenta: %+v", p.File)
	}
	if !p.Separator.Dim {
		t.Fatalf("separator should be dim: %+v", p.Separator)
	}
}

func TestContrastRatio(t *testing.T) {
	cases := []struct {
		name     string
		fg, bg   RGB
		minRatio float64
	}{
		{"blackOnWhite", RGB{0, 0, 0}, RGB{255, 255, 255}, 4.5},
		{"whiteOnBlack", RGB{255, 255, 255}, RGB{0, 0, 0}, 4.5},
		{"darkRedOnWhite", RGB{185, 28, 28}, RGB{255, 255, 255}, 4.5},
		{"amberOnBlack", RGB{245, 158, 11}, RGB{17, 24, 39}, 4.5},
	}
	for _, tc := range cases {
		ratio := ContrastRatio(tc.fg, tc.bg)
		if ratio < tc.minRatio {
			t.Fatalf("%s contrast ratio %.2f < %.2f", tc.name, ratio, tc.minRatio)
		}
	}
}

func TestEnsureContrastFallsBack(t *testing.T) {
	bg := RGB{255, 255, 255}
	ensured := EnsureContrast(RGB{255, 255, 0}, bg, 4.5)
	if ensured != black {
		t.Fatalf("yellow on white should fall back to black, got %v", ensured)
	}
	kept := EnsureContrast(RGB{185, 28, 28}, bg, 4.5)
	if kept != (RGB{185, 28, 28}) {
		t.Fatalf("readable color should be kept, got %v", kept)
	}
}
