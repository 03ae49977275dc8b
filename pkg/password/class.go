package password

import "unicode"

// Class is a character class used by count rules.
type Class int

const (
	Letters Class = iota
	Lowercase
	Uppercase
	Digits
	Symbols
	Spaces
)

// String returns a human readable class name.
func (c Class) String() string {
	switch c {
	case Letters:
		return "letters"
	case Lowercase:
		return "lowercase letters"
	case Uppercase:
		return "uppercase letters"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	case Spaces:
		return "spaces"
	default:
		return "unknown"
	}
}

// Matches reports whether r belongs to the class.
func (c Class) Matches(r rune) bool {
	switch c {
	case Letters:
		return unicode.IsLetter(r)
	case Lowercase:
		return unicode.IsLower(r)
	case Uppercase:
		return unicode.IsUpper(r)
	case Digits:
		return unicode.IsDigit(r)
	case Symbols:
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	case Spaces:
		return unicode.IsSpace(r)
	default:
		return false
	}
}

// Count returns how many runes of s belong to the class.
func Count(s string, class Class) int {
	n := 0
	for _, r := range s {
		if class.Matches(r) {
			n++
		}
	}
	return n
}

// HasAtLeast reports whether s contains at least n runes of the class.
// A non-positive n requires the class to be absent.
func HasAtLeast(s string, class Class, n int) bool {
	if n <= 0 {
		return Count(s, class) == 0
	}
	return Count(s, class) >= n
}
