package condition

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownCondition is returned by Parse for names outside the enumeration.
var ErrUnknownCondition = errors.New("unknown condition")

// Condition names a single validation rule.
type Condition string

// String returns the condition name.
func (c Condition) String() string {
	return string(c)
}

// Presence and type.
const (
	IsRequired Condition = "IsRequired"
	IsNotNull  Condition = "IsNotNull"
	IsNull     Condition = "IsNull"
	IsNotEmpty Condition = "IsNotEmpty"
	IsNotBlank Condition = "IsNotBlank"
	IsTrue     Condition = "IsTrue"
	IsFalse    Condition = "IsFalse"
	IsString   Condition = "IsString"
	IsBoolean  Condition = "IsBoolean"
	IsNumber   Condition = "IsNumber"
	IsInteger  Condition = "IsInteger"
)

// Equality, substrings and patterns.
const (
	IsEqual             Condition = "IsEqual"
	IsNotEqual          Condition = "IsNotEqual"
	IsEqualIgnoringCase Condition = "IsEqualIgnoringCase"
	Contains            Condition = "Contains"
	DoesNotContain      Condition = "DoesNotContain"
	StartsWith          Condition = "StartsWith"
	EndsWith            Condition = "EndsWith"
	MatchesPattern      Condition = "MatchesPattern"
	DoesNotMatchPattern Condition = "DoesNotMatchPattern"
)

// Character class counts. A zero (or false) parameter requires the class to be absent.
const (
	HasLetterCount    Condition = "HasLetterCount"
	HasLowercaseCount Condition = "HasLowercaseCount"
	HasNumberCount    Condition = "HasNumberCount"
	HasSymbolCount    Condition = "HasSymbolCount"
	HasUppercaseCount Condition = "HasUppercaseCount"
	HasSpaceCount     Condition = "HasSpaceCount"
)

// String composition.
const (
	IsAlpha                Condition = "IsAlpha"
	IsAlphanumeric         Condition = "IsAlphanumeric"
	IsNumeric              Condition = "IsNumeric"
	IsLowercase            Condition = "IsLowercase"
	IsUppercase            Condition = "IsUppercase"
	IsAscii                Condition = "IsAscii"
	IsPrintable            Condition = "IsPrintable"
	IsHexadecimal          Condition = "IsHexadecimal"
	IsBase64               Condition = "IsBase64"
	IsBase64Url            Condition = "IsBase64Url"
	IsTrimmed              Condition = "IsTrimmed"
	IsSingleLine           Condition = "IsSingleLine"
	HasNoControlCharacters Condition = "HasNoControlCharacters"
)

// Length.
const (
	IsLengthEqual                 Condition = "IsLengthEqual"
	IsLengthNotEqual              Condition = "IsLengthNotEqual"
	IsLengthGreaterThan           Condition = "IsLengthGreaterThan"
	IsLengthGreaterThanOrEqual    Condition = "IsLengthGreaterThanOrEqual"
	IsLengthLessThan              Condition = "IsLengthLessThan"
	IsLengthLessThanOrEqual       Condition = "IsLengthLessThanOrEqual"
	IsByteLengthLessThanOrEqual   Condition = "IsByteLengthLessThanOrEqual"
	IsWordCountGreaterThanOrEqual Condition = "IsWordCountGreaterThanOrEqual"
	IsWordCountLessThanOrEqual    Condition = "IsWordCountLessThanOrEqual"
	IsLineCountLessThanOrEqual    Condition = "IsLineCountLessThanOrEqual"
)

// Numbers.
const (
	IsDecimal                      Condition = "IsDecimal"
	IsPositive                     Condition = "IsPositive"
	IsNegative                     Condition = "IsNegative"
	IsNonNegative                  Condition = "IsNonNegative"
	IsNonPositive                  Condition = "IsNonPositive"
	IsGreaterThan                  Condition = "IsGreaterThan"
	IsGreaterThanOrEqual           Condition = "IsGreaterThanOrEqual"
	IsLessThan                     Condition = "IsLessThan"
	IsLessThanOrEqual              Condition = "IsLessThanOrEqual"
	IsDivisibleBy                  Condition = "IsDivisibleBy"
	IsEven                         Condition = "IsEven"
	IsOdd                          Condition = "IsOdd"
	IsDecimalPlacesLessThanOrEqual Condition = "IsDecimalPlacesLessThanOrEqual"
	IsPercentage                   Condition = "IsPercentage"
	IsPort                         Condition = "IsPort"
)

// Dates and times.
const (
	IsDate                  Condition = "IsDate"
	IsDateTime              Condition = "IsDateTime"
	IsTime                  Condition = "IsTime"
	IsDateBefore            Condition = "IsDateBefore"
	IsDateAfter             Condition = "IsDateAfter"
	IsDateOnOrBefore        Condition = "IsDateOnOrBefore"
	IsDateOnOrAfter         Condition = "IsDateOnOrAfter"
	IsPastDate              Condition = "IsPastDate"
	IsFutureDate            Condition = "IsFutureDate"
	IsWeekday               Condition = "IsWeekday"
	IsWeekend               Condition = "IsWeekend"
	IsAgeGreaterThanOrEqual Condition = "IsAgeGreaterThanOrEqual"
	IsAgeLessThanOrEqual    Condition = "IsAgeLessThanOrEqual"
	IsTimezone              Condition = "IsTimezone"
	IsDuration              Condition = "IsDuration"
)

// Network formats.
const (
	IsEmailAddress Condition = "IsEmailAddress"
	IsUrl          Condition = "IsUrl"
	IsSecureUrl    Condition = "IsSecureUrl"
	IsDomainName   Condition = "IsDomainName"
	IsHostname     Condition = "IsHostname"
	IsIpAddress    Condition = "IsIpAddress"
	IsIpv4Address  Condition = "IsIpv4Address"
	IsIpv6Address  Condition = "IsIpv6Address"
	IsCidr         Condition = "IsCidr"
	IsMacAddress   Condition = "IsMacAddress"
	IsDataUri      Condition = "IsDataUri"
)

// Identifiers.
const (
	IsUuid     Condition = "IsUuid"
	IsUuidV4   Condition = "IsUuidV4"
	IsUlid     Condition = "IsUlid"
	IsMongoId  Condition = "IsMongoId"
	IsSlug     Condition = "IsSlug"
	IsUsername Condition = "IsUsername"
	// IsUsernameAvailable needs a remote lookup and is never evaluated.
	IsUsernameAvailable Condition = "IsUsernameAvailable"
	IsSemver            Condition = "IsSemver"
	IsJwt               Condition = "IsJwt"
	IsMd5               Condition = "IsMd5"
	IsSha256            Condition = "IsSha256"
	IsCron              Condition = "IsCron"
)

// Financial and standard codes.
const (
	IsCreditCardNumber Condition = "IsCreditCardNumber"
	IsLuhnValid        Condition = "IsLuhnValid"
	IsIsbn             Condition = "IsIsbn"
	IsIssn             Condition = "IsIssn"
	IsCurrencyCode     Condition = "IsCurrencyCode"
	IsCountryCode      Condition = "IsCountryCode"
	IsLanguageCode     Condition = "IsLanguageCode"
	IsPhoneNumber      Condition = "IsPhoneNumber"
	IsEthereumAddress  Condition = "IsEthereumAddress"
	IsBitcoinAddress   Condition = "IsBitcoinAddress"
)

// Geography and colors.
const (
	IsLatitude  Condition = "IsLatitude"
	IsLongitude Condition = "IsLongitude"
	IsHexColor  Condition = "IsHexColor"
	IsRgbColor  Condition = "IsRgbColor"
	IsHslColor  Condition = "IsHslColor"
)

// Passwords.
const (
	IsStrongPassword           Condition = "IsStrongPassword"
	IsNotCommonPassword        Condition = "IsNotCommonPassword"
	HasMaxRepeatedCharacters   Condition = "HasMaxRepeatedCharacters"
	HasMaxSequentialCharacters Condition = "HasMaxSequentialCharacters"
)

// Structured data.
const (
	IsJson     Condition = "IsJson"
	IsMimeType Condition = "IsMimeType"
)

// all holds every condition in declaration order. Evaluation and listings follow this order.
var all = []Condition{
	IsRequired, IsNotNull, IsNull, IsNotEmpty, IsNotBlank, IsTrue, IsFalse,
	IsString, IsBoolean, IsNumber, IsInteger,

	IsEqual, IsNotEqual, IsEqualIgnoringCase, Contains, DoesNotContain, StartsWith, EndsWith,
	MatchesPattern, DoesNotMatchPattern,

	HasLetterCount, HasLowercaseCount, HasNumberCount, HasSymbolCount, HasUppercaseCount, HasSpaceCount,

	IsAlpha, IsAlphanumeric, IsNumeric, IsLowercase, IsUppercase, IsAscii, IsPrintable,
	IsHexadecimal, IsBase64, IsBase64Url, IsTrimmed, IsSingleLine, HasNoControlCharacters,

	IsLengthEqual, IsLengthNotEqual, IsLengthGreaterThan, IsLengthGreaterThanOrEqual,
	IsLengthLessThan, IsLengthLessThanOrEqual, IsByteLengthLessThanOrEqual,
	IsWordCountGreaterThanOrEqual, IsWordCountLessThanOrEqual, IsLineCountLessThanOrEqual,

	IsDecimal, IsPositive, IsNegative, IsNonNegative, IsNonPositive, IsGreaterThan,
	IsGreaterThanOrEqual, IsLessThan, IsLessThanOrEqual, IsDivisibleBy, IsEven, IsOdd,
	IsDecimalPlacesLessThanOrEqual, IsPercentage, IsPort,

	IsDate, IsDateTime, IsTime, IsDateBefore, IsDateAfter, IsDateOnOrBefore, IsDateOnOrAfter,
	IsPastDate, IsFutureDate, IsWeekday, IsWeekend, IsAgeGreaterThanOrEqual, IsAgeLessThanOrEqual,
	IsTimezone, IsDuration,

	IsEmailAddress, IsUrl, IsSecureUrl, IsDomainName, IsHostname, IsIpAddress, IsIpv4Address,
	IsIpv6Address, IsCidr, IsMacAddress, IsDataUri,

	IsUuid, IsUuidV4, IsUlid, IsMongoId, IsSlug, IsUsername, IsUsernameAvailable, IsSemver,
	IsJwt, IsMd5, IsSha256, IsCron,

	IsCreditCardNumber, IsLuhnValid, IsIsbn, IsIssn, IsCurrencyCode, IsCountryCode,
	IsLanguageCode, IsPhoneNumber, IsEthereumAddress, IsBitcoinAddress,

	IsLatitude, IsLongitude, IsHexColor, IsRgbColor, IsHslColor,

	IsStrongPassword, IsNotCommonPassword, HasMaxRepeatedCharacters, HasMaxSequentialCharacters,

	IsJson, IsMimeType,
}

var index = func() map[Condition]int {
	m := make(map[Condition]int, len(all))
	for i, c := range all {
		m[c] = i
	}
	return m
}()

// All returns every condition in declaration order. The returned slice is a copy.
func All() []Condition {
	return slices.Clone(all)
}

// IsValid reports whether c belongs to the enumeration.
func IsValid(c Condition) bool {
	_, ok := index[c]
	return ok
}

// Index returns the declaration position of c, or -1 when c is unknown.
func Index(c Condition) int {
	if i, ok := index[c]; ok {
		return i
	}
	return -1
}

// Parse resolves a condition name. Surrounding whitespace is ignored; the match is case sensitive.
func Parse(name string) (Condition, error) {
	c := Condition(strings.TrimSpace(name))
	if !IsValid(c) {
		return "", fmt.Errorf("%w: %q", ErrUnknownCondition, name)
	}
	return c, nil
}
