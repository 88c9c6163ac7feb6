package preference

import (
	"fmt"
	"strings"
)

// ValidationError reports every tag that failed the vocabulary check, not
// just the first, so a caller can surface all problems at once. The offending
// entries are reported lower-cased.
type ValidationError struct {
	Field   string
	Invalid []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, strings.Join(e.Invalid, ", "))
}

// ValidateActivities checks each tag, case-folded, against the activity
// vocabulary. nil and empty lists are always valid.
func ValidateActivities(tags []string) error {
	return validate("activities", tags, validActivities)
}

// ValidateDestinations checks each tag, case-folded, against the destination
// vocabulary. nil and empty lists are always valid.
func ValidateDestinations(tags []string) error {
	return validate("destinations", tags, validDestinations)
}

// Normalize returns a lower-cased, space-trimmed copy of tags. Stored tags go
// through this so "HIKING" and "hiking" are the same value.
func Normalize(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, strings.ToLower(strings.TrimSpace(tag)))
	}
	return out
}

func validate(field string, tags []string, vocab map[string]struct{}) error {
	if len(tags) == 0 {
		return nil
	}

	var invalid []string
	seen := map[string]struct{}{}
	for _, tag := range tags {
		folded := strings.ToLower(strings.TrimSpace(tag))
		if _, ok := vocab[folded]; ok {
			continue
		}
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		invalid = append(invalid, folded)
	}

	if len(invalid) > 0 {
		return &ValidationError{Field: field, Invalid: invalid}
	}
	return nil
}
