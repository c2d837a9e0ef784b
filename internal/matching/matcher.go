package matching

import (
	"regexp"
	"strings"

	"fleet-parts-backend/internal/database/models"
)

// Matches decides whether a stored rule covers the given equipment
// manufacturer/model pair. Manufacturer is always an exact normalized
// comparison; only the model axis dispatches on match type.
func Matches(rule *models.CompatibilityRule, manufacturer, model string) bool {
	if rule == nil {
		return false
	}
	if Normalize(manufacturer) != rule.ManufacturerNorm {
		return false
	}

	switch rule.MatchType {
	case models.MatchTypeAny:
		return true
	case models.MatchTypeExact:
		return rule.ModelNorm != nil && Normalize(model) == *rule.ModelNorm
	case models.MatchTypePrefix:
		return rule.ModelNorm != nil && strings.HasPrefix(Normalize(model), *rule.ModelNorm)
	case models.MatchTypeWildcard:
		if rule.ModelNorm == nil {
			return false
		}
		re, err := compileWildcard(*rule.ModelNorm)
		if err != nil {
			return false
		}
		return re.MatchString(Normalize(model))
	}
	// Unknown match type never matches.
	return false
}

// MatchesAny reports whether any rule in the set matches; short-circuits on
// the first hit.
func MatchesAny(rules []models.CompatibilityRule, manufacturer, model string) bool {
	for i := range rules {
		if Matches(&rules[i], manufacturer, model) {
			return true
		}
	}
	return false
}

// compileWildcard translates a normalized wildcard pattern into an anchored
// regexp: '*' is zero-or-more characters, '?' is exactly one. Full-string
// match, not substring.
func compileWildcard(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return regexp.Compile(sb.String())
}
