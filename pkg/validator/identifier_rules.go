package validator

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/condition"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 32
)

var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

var identifierRules = map[condition.Condition]builder{
	condition.IsDomainName: stringGate(isDomainName),
	condition.IsSlug:       stringGate(slugRegex.MatchString),
	condition.IsUsername: stringGate(func(s string) bool {
		return len(s) >= usernameMinLength && len(s) <= usernameMaxLength &&
			usernameRegex.MatchString(s)
	}),
	condition.IsUlid:    tagged("ulid"),
	condition.IsMongoId: tagged("mongodb"),
	condition.IsSemver:  tagged("semver"),
	condition.IsJwt:     tagged("jwt"),
	condition.IsMd5:     tagged("md5"),
	condition.IsSha256:  tagged("sha256"),
	condition.IsCron:    tagged("cron"),
}

// isDomainName accepts at least two dot-separated labels of 1-63 letters, digits
// or inner hyphens, with an alphabetic TLD of two or more letters.
func isDomainName(s string) bool {
	if s == "" || len(s) > 253 {
		return false
	}

	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}

	for i, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			if !isASCIILetter(r) && !isASCIIDigit(r) && r != '-' {
				return false
			}
		}

		if i == len(labels)-1 {
			if len(label) < 2 || strings.IndexFunc(label, func(r rune) bool { return !isASCIILetter(r) }) >= 0 {
				return false
			}
		}
	}

	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
