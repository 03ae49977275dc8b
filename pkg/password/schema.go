package password

import "unicode/utf8"

// RuleKind identifies what a Rule asserts.
type RuleKind int

const (
	// KindHas requires at least N runes of Class.
	KindHas RuleKind = iota
	// KindHasNo forbids runes of Class.
	KindHasNo
	// KindMin requires at least N runes in total.
	KindMin
	// KindMax allows at most N runes in total.
	KindMax
)

// Rule is a single assertion of a Schema.
type Rule struct {
	Kind  RuleKind
	Class Class
	N     int
}

// Check reports whether pw satisfies the rule.
func (r Rule) Check(pw string) bool {
	switch r.Kind {
	case KindHas:
		return HasAtLeast(pw, r.Class, max(r.N, 1))
	case KindHasNo:
		return Count(pw, r.Class) == 0
	case KindMin:
		return utf8.RuneCountInString(pw) >= r.N
	case KindMax:
		return utf8.RuneCountInString(pw) <= r.N
	default:
		return false
	}
}

// Schema is an ordered list of rules built with the fluent helpers below.
type Schema struct {
	rules []Rule
}

// New returns an empty schema. An empty schema accepts every password.
func New() *Schema {
	return &Schema{}
}

// Has requires at least n runes of class. Values below one are treated as one.
func (s *Schema) Has(class Class, n int) *Schema {
	s.rules = append(s.rules, Rule{Kind: KindHas, Class: class, N: max(n, 1)})
	return s
}

// HasNo forbids runes of class.
func (s *Schema) HasNo(class Class) *Schema {
	s.rules = append(s.rules, Rule{Kind: KindHasNo, Class: class})
	return s
}

// Min requires at least n runes in total.
func (s *Schema) Min(n int) *Schema {
	s.rules = append(s.rules, Rule{Kind: KindMin, N: n})
	return s
}

// Max allows at most n runes in total.
func (s *Schema) Max(n int) *Schema {
	s.rules = append(s.rules, Rule{Kind: KindMax, N: n})
	return s
}

// Rules returns a copy of the schema rules.
func (s *Schema) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Validate reports whether pw satisfies every rule.
func (s *Schema) Validate(pw string) bool {
	for _, r := range s.rules {
		if !r.Check(pw) {
			return false
		}
	}
	return true
}

// Failures returns the rules pw violates, in schema order.
func (s *Schema) Failures(pw string) []Rule {
	var failed []Rule
	for _, r := range s.rules {
		if !r.Check(pw) {
			failed = append(failed, r)
		}
	}
	return failed
}
