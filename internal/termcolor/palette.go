package termcolor

// Palette holds the styles used when printing matching lines.
type Palette struct {
	Match      Style
	File       Style
	LineNumber Style
	Separator  Style
	Header     Style
}

// Background colors assumed for each scheme when checking contrast.
var (
	darkBackground  = RGB{R: 17, G: 24, B: 39}
	lightBackground = RGB{R: 249, G: 250, B: 251}
)

// NewPalette picks styles for the detected scheme and profile.
func NewPalette(scheme Scheme, profile Profile) Palette {
	return Palette{
		Match:      MatchStyle(scheme, profile),
		File:       FileStyle(scheme, profile),
		LineNumber: LineNumberStyle(scheme, profile),
		Separator:  Style{Dim: true},
		Header:     HeaderStyle(),
	}
}

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// MatchStyle highlights the matched substrings: bold red on dark
// terminals, a darker red on light ones.
func MatchStyle(scheme Scheme, profile Profile) Style {
	rgb := RGB{R: 248, G: 113, B: 113}
	idx := 203
	if scheme == SchemeLight {
		rgb = RGB{R: 185, G: 28, B: 28}
		idx = 124
	}
	return colored(rgb, idx, 1, scheme, profile, true)
}

// FileStyle colors the file name prefix.
func FileStyle(scheme Scheme, profile Profile) Style {
	rgb := RGB{R: 192, G: 132, B: 252}
	idx := 177
	if scheme == SchemeLight {
		rgb = RGB{R: 126, G: 34, B: 206}
		idx = 91
	}
	return colored(rgb, idx, 5, scheme, profile, false)
}

// LineNumberStyle colors the line-number gutter.
func LineNumberStyle(scheme Scheme, profile Profile) Style {
	rgb := RGB{R: 74, G: 222, B: 128}
	idx := 77
	if scheme == SchemeLight {
		rgb = RGB{R: 21, G: 128, B: 61}
		idx = 28
	}
	return colored(rgb, idx, 2, scheme, profile, false)
}

func colored(rgb RGB, idx256, basic int, scheme Scheme, profile Profile, bold bool) Style {
	s := Style{Bold: bold}
	switch profile {
	case ProfileTrueColor:
		bg := darkBackground
		if scheme == SchemeLight {
			bg = lightBackground
		}
		fg := EnsureContrast(rgb, bg, 4.5)
		s.FGTrue = &[3]uint8{fg.R, fg.G, fg.B}
	case ProfileANSI256:
		s.FG256 = &idx256
	default:
		s.FGBasic = &basic
	}
	return s
}
