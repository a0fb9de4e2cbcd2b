package search

import "unicode"

// Mode selects how lines and queries are compared.
type Mode int

const (
	CaseSensitive Mode = iota
	CaseInsensitive
)

func (m Mode) String() string {
	if m == CaseInsensitive {
		return "insensitive"
	}
	return "sensitive"
}

// MarshalText lets Mode appear as its name in JSON results.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Smart derives a mode from seed: any uppercase rune makes the search
// case sensitive, otherwise it is case insensitive.
func Smart(seed string) Mode {
	for _, r := range seed {
		if unicode.IsUpper(r) {
			return CaseSensitive
		}
	}
	return CaseInsensitive
}
