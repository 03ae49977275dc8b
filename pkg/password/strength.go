package password

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// commonList is a curated set of frequently compromised passwords, stored lowercase.
var commonList = []string{
	"password", "123456", "password123", "admin", "qwerty", "abc123", "letmein", "welcome",
	"monkey", "1234567890", "dragon", "sunshine", "iloveyou", "princess", "football", "charlie",
	"aa123456", "donald", "password1", "qwerty123", "12345678", "123456789", "1234", "12345",
	"123123", "111111", "000000", "qwertyuiop", "asdfghjkl", "zxcvbnm", "qwerty12", "qwerty1",
	"password12", "password!", "admin123", "administrator", "root", "toor", "guest", "test",
	"testing", "user", "login", "pass", "master", "secret", "trustno1", "baseball", "basketball",
	"soccer", "hockey", "tennis", "golf", "michael", "jennifer", "jessica", "ashley", "sarah",
	"amanda", "joshua", "matthew", "daniel", "david", "christopher", "andrew", "superman",
	"batman", "spiderman", "pokemon", "nintendo", "windows", "computer", "internet", "google",
	"facebook", "twitter", "instagram", "linkedin", "amazon", "apple", "microsoft", "samsung",
	"iphone", "android", "freedom", "america", "eagle", "flower", "spring", "summer", "winter",
	"autumn", "shadow", "midnight", "silver", "golden", "diamond", "rainbow", "chocolate",
	"vanilla", "banana", "orange", "purple", "yellow", "jordan", "hunter", "jackson", "madison",
	"taylor", "hannah", "samantha", "tyler", "nicole", "brittany", "12341234", "1q2w3e4r",
	"1qaz2wsx", "zaq12wsx", "qazwsx", "qazxsw", "654321", "987654321", "abcdef", "abcd1234",
	"a1b2c3", "123qwe", "qwe123", "asd123", "123asd", "zxc123", "123zxc",
}

var common = func() map[string]struct{} {
	m := make(map[string]struct{}, len(commonList))
	for _, pw := range commonList {
		m[pw] = struct{}{}
	}
	return m
}()

// Strength describes a password policy.
type Strength struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSymbols   bool
	// MinClasses is the minimum number of distinct classes among
	// uppercase, lowercase, digits and symbols.
	MinClasses int
	// MinEntropy in bits; zero disables the entropy check.
	MinEntropy float64
}

// DefaultStrength returns the NIST-inspired policy: 8-128 characters, every class
// required, at least 3 distinct classes.
func DefaultStrength() Strength {
	return Strength{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		RequireSymbols:   true,
		MinClasses:       3,
	}
}

// IsStrong reports whether pw satisfies the policy and is not a common password.
func IsStrong(pw string, cfg Strength) bool {
	n := utf8.RuneCountInString(pw)
	if n < cfg.MinLength || (cfg.MaxLength > 0 && n > cfg.MaxLength) {
		return false
	}

	hasUpper := Count(pw, Uppercase) > 0
	hasLower := Count(pw, Lowercase) > 0
	hasDigit := Count(pw, Digits) > 0
	hasSymbol := Count(pw, Symbols) > 0

	if cfg.RequireUppercase && !hasUpper {
		return false
	}
	if cfg.RequireLowercase && !hasLower {
		return false
	}
	if cfg.RequireDigits && !hasDigit {
		return false
	}
	if cfg.RequireSymbols && !hasSymbol {
		return false
	}

	classes := 0
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if ok {
			classes++
		}
	}
	if classes < cfg.MinClasses {
		return false
	}

	if cfg.MinEntropy > 0 && Entropy(pw) < cfg.MinEntropy {
		return false
	}

	return !IsCommon(pw)
}

// IsCommon reports whether pw appears in the common password list, ignoring case.
func IsCommon(pw string) bool {
	_, ok := common[strings.ToLower(pw)]
	return ok
}

// MaxRepeatedRun returns the length of the longest run of identical characters.
func MaxRepeatedRun(pw string) int {
	longest, run := 0, 0
	var prev rune
	for i, r := range []rune(pw) {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		prev = r
		longest = max(longest, run)
	}
	return longest
}

// MaxSequentialRun returns the length of the longest ascending or descending run
// of consecutive code points, such as "abc" or "321".
func MaxSequentialRun(pw string) int {
	runes := []rune(pw)
	if len(runes) == 0 {
		return 0
	}

	longest, run, dir := 1, 1, 0
	for i := 1; i < len(runes); i++ {
		step := int(runes[i]) - int(runes[i-1])
		switch {
		case (step == 1 || step == -1) && (dir == 0 || dir == step):
			run++
		case step == 1 || step == -1:
			run = 2
		default:
			run = 1
			step = 0
		}
		dir = step
		longest = max(longest, run)
	}
	return longest
}

// Entropy estimates password strength in bits: length * log2(effective charset size).
// The charset size is the number of unique characters capped by the theoretical
// size of the classes in use.
func Entropy(pw string) float64 {
	if pw == "" {
		return 0
	}

	unique := make(map[rune]struct{})
	charset := 0
	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range pw {
		unique[r] = struct{}{}
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasOther = true
		}
	}
	if hasLower {
		charset += 26
	}
	if hasUpper {
		charset += 26
	}
	if hasDigit {
		charset += 10
	}
	if hasOther {
		charset += 32
	}

	effective := math.Min(float64(len(unique)), float64(charset))
	if effective <= 1 {
		return 0
	}
	return float64(utf8.RuneCountInString(pw)) * math.Log2(effective)
}
