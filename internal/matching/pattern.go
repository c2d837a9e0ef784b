package matching

import (
	"strings"

	"fleet-parts-backend/internal/database/models"
	apperrors "fleet-parts-backend/internal/errors"
)

const (
	// minWildcardLiterals is the minimum number of literal characters a
	// wildcard pattern must keep after stripping wildcards and separators.
	// Guards against over-broad patterns like "*" or "*-*" that would match
	// an entire manufacturer's fleet.
	minWildcardLiterals = 2

	// maxStarCount keeps wildcard matching cheap and patterns readable.
	maxStarCount = 2
)

// separators are ignored when counting literal characters in a wildcard
// pattern; "A-*" has one literal, not two.
const separators = "-_./ "

// ValidatePattern checks a candidate model pattern against its declared
// match type before it is stored. Violations are hard validation errors,
// never silently corrected.
func ValidatePattern(matchType models.MatchType, model *string) error {
	pattern := ""
	if model != nil {
		pattern = strings.TrimSpace(*model)
	}

	switch matchType {
	case models.MatchTypeAny:
		if pattern != "" {
			return apperrors.NewValidationError("model", "model must be empty for an any-model rule")
		}
		return nil

	case models.MatchTypeExact, models.MatchTypePrefix:
		if pattern == "" {
			return apperrors.NewValidationError("model", "model is required for this match type")
		}
		if strings.ContainsAny(pattern, "*?") {
			return apperrors.NewValidationError("model", "wildcard characters are not allowed in this match type")
		}
		return nil

	case models.MatchTypeWildcard:
		if pattern == "" {
			return apperrors.NewValidationError("model", "model is required for a wildcard rule")
		}
		if strings.Count(pattern, "*") > maxStarCount {
			return apperrors.NewValidationError("model", "wildcard pattern may contain at most 2 '*' characters")
		}
		if literalCount(pattern) < minWildcardLiterals {
			return apperrors.NewValidationError("model", "wildcard pattern must contain at least 2 literal characters")
		}
		return nil
	}

	return apperrors.NewValidationError("match_type", "unknown match type")
}

// literalCount counts pattern characters that are neither wildcards nor
// separators.
func literalCount(pattern string) int {
	n := 0
	for _, r := range pattern {
		if r == '*' || r == '?' {
			continue
		}
		if strings.ContainsRune(separators, r) {
			continue
		}
		n++
	}
	return n
}
