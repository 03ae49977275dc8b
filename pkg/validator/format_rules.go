package validator

import (
	"mime"
	"net/url"
	"strconv"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formcheck/pkg/condition"
)

// formats runs go-playground/validator tags against single strings. Validate
// instances are safe for concurrent use once configured.
var formats = playground.New()

var formatRules = map[condition.Condition]builder{
	condition.IsEmailAddress: tagged("email"),
	condition.IsUrl:          tagged("url"),
	condition.IsHostname:     tagged("hostname_rfc1123"),
	condition.IsIpAddress:    tagged("ip"),
	condition.IsIpv4Address:  tagged("ipv4"),
	condition.IsIpv6Address:  tagged("ipv6"),
	condition.IsCidr:         tagged("cidr"),
	condition.IsMacAddress:   tagged("mac"),
	condition.IsDataUri:      tagged("datauri"),
	condition.IsHexColor:     tagged("hexcolor"),
	condition.IsRgbColor:     tagged("rgb"),
	condition.IsHslColor:     tagged("hsl"),
	condition.IsJson:         tagged("json"),
	condition.IsLatitude:     coordinate("latitude"),
	condition.IsLongitude:    coordinate("longitude"),
	condition.IsSecureUrl: stringGate(func(s string) bool {
		if formats.Var(s, "url") != nil {
			return false
		}
		u, err := url.Parse(s)
		return err == nil && u.Scheme == "https" && u.Host != ""
	}),
	condition.IsMimeType: stringGate(func(s string) bool {
		mediaType, _, err := mime.ParseMediaType(s)
		if err != nil {
			return false
		}
		typ, sub, ok := strings.Cut(mediaType, "/")
		return ok && typ != "" && sub != ""
	}),
}

// tagged builds a boolean-gated rule that runs a validator tag against a string value.
func tagged(tag string) builder {
	return stringGate(func(s string) bool {
		return formats.Var(s, tag) == nil
	})
}

// stringGate builds a boolean-gated rule over string values. Other values fail.
func stringGate(check func(s string) bool) builder {
	return func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			s, ok := stringValue(value)
			return ok && check(s)
		})
	}
}

// coordinate accepts numbers as well as numeric strings.
func coordinate(tag string) builder {
	return func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			s, ok := stringValue(value)
			if !ok {
				f, isNum := numberValue(value)
				if !isNum {
					return false
				}
				s = strconv.FormatFloat(f, 'f', -1, 64)
			}
			return formats.Var(s, tag) == nil
		})
	}
}
