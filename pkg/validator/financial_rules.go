package validator

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formcheck/pkg/condition"
)

// International format with optional leading plus, up to 15 digits (E.164).
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

var financialRules = map[condition.Condition]builder{
	condition.IsCreditCardNumber: tagged("credit_card"),
	condition.IsLuhnValid: stringGate(func(s string) bool {
		return luhnValid(stripSeparators(s))
	}),
	condition.IsIsbn:            tagged("isbn"),
	condition.IsIssn:            tagged("issn"),
	condition.IsCurrencyCode:    tagged("iso4217"),
	condition.IsCountryCode:     tagged("iso3166_1_alpha2"),
	condition.IsEthereumAddress: tagged("eth_addr"),
	condition.IsBitcoinAddress:  tagged("btc_addr"),
	condition.IsLanguageCode: stringGate(func(s string) bool {
		if strings.TrimSpace(s) == "" {
			return false
		}
		_, err := language.Parse(s)
		return err == nil
	}),
	condition.IsPhoneNumber: stringGate(func(s string) bool {
		cleaned := stripSeparators(s)
		return len(cleaned) >= 7 && phoneRegex.MatchString(cleaned)
	}),
}

// stripSeparators removes spaces and dashes.
func stripSeparators(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "-", "")
}

// luhnValid runs the mod-10 checksum over a digit string of at least two digits.
func luhnValid(digits string) bool {
	if len(digits) < 2 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}

		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}
