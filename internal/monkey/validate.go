package monkey

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Field names used in violations. They match the wire field names.
const (
	FieldName           = "name"
	FieldSpecies        = "species"
	FieldAgeYears       = "age_years"
	FieldFavouriteFruit = "favourite_fruit"
	FieldLastCheckupAt  = "last_checkup_at"
)

// ViolationKind classifies a field rule failure.
type ViolationKind string

const (
	InvalidLength ViolationKind = "InvalidLength"
	InvalidEnum   ViolationKind = "InvalidEnum"
	InvalidRange  ViolationKind = "InvalidRange"
	Required      ViolationKind = "Required"
	InvalidFormat ViolationKind = "InvalidFormat"
)

// Violation is a single failed field rule.
type Violation struct {
	Field   string
	Kind    ViolationKind
	Message string
}

// ValidationError collects every violation found in a form.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "invalid monkey: " + strings.Join(parts, "; ")
}

// For returns the first violation for field, if any.
func (e *ValidationError) For(field string) (Violation, bool) {
	if e == nil {
		return Violation{}, false
	}
	for _, v := range e.Violations {
		if v.Field == field {
			return v, true
		}
	}
	return Violation{}, false
}

// Validate checks every field of f independently. On success it returns the
// normalized Input; otherwise the error is a *ValidationError listing all
// violations.
func Validate(f Form) (Input, error) {
	var (
		in         Input
		violations []Violation
	)

	in.Name = strings.TrimSpace(f.Name)
	if n := uniseg.GraphemeClusterCount(in.Name); n < MinNameLength || n > MaxNameLength {
		violations = append(violations, Violation{
			Field:   FieldName,
			Kind:    InvalidLength,
			Message: fmt.Sprintf("must be %d-%d characters", MinNameLength, MaxNameLength),
		})
	}

	if sp, ok := ParseSpecies(f.Species); ok {
		in.Species = sp
	} else {
		violations = append(violations, Violation{
			Field:   FieldSpecies,
			Kind:    InvalidEnum,
			Message: "must be one of capuchin, macaque, marmoset, howler",
		})
	}

	in.AgeYears = ParseAge(f.AgeYears)
	if in.AgeYears < MinAge || in.AgeYears > MaxAge {
		violations = append(violations, Violation{
			Field:   FieldAgeYears,
			Kind:    InvalidRange,
			Message: fmt.Sprintf("must be between %d and %d", MinAge, MaxAge),
		})
	}

	in.FavouriteFruit = strings.TrimSpace(f.FavouriteFruit)
	if in.FavouriteFruit == "" {
		violations = append(violations, Violation{
			Field:   FieldFavouriteFruit,
			Kind:    Required,
			Message: "is required",
		})
	}

	if checkup := strings.TrimSpace(f.LastCheckupAt); checkup != "" {
		if _, ok := ParseTimestamp(checkup); ok {
			in.LastCheckupAt = &checkup
		} else {
			violations = append(violations, Violation{
				Field:   FieldLastCheckupAt,
				Kind:    InvalidFormat,
				Message: "must be a date-time like 2024-01-15T10:30",
			})
		}
	}

	if len(violations) > 0 {
		return Input{}, &ValidationError{Violations: violations}
	}
	return in, nil
}

// ParseAge reads the leading integer of s. Input with no leading integer,
// such as "abc" or "", yields 0. Trailing characters are ignored, so "3.7"
// yields 3.
func ParseAge(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		// Saturate well above MaxAge so huge inputs stay out of range.
		if n < 1_000_000 {
			n = n*10 + int(s[digits]-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
