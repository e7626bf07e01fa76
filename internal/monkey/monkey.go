// Package monkey defines the registry record and the field rules every
// outgoing create or update must satisfy.
package monkey

import (
	"strconv"
	"strings"
	"time"
)

// Species is one of the fixed registry species.
type Species string

const (
	Capuchin Species = "capuchin"
	Macaque  Species = "macaque"
	Marmoset Species = "marmoset"
	Howler   Species = "howler"
)

// AllSpecies lists species in display order.
var AllSpecies = []Species{Capuchin, Macaque, Marmoset, Howler}

// ParseSpecies returns the species named by s, ignoring case and surrounding
// space.
func ParseSpecies(s string) (Species, bool) {
	candidate := Species(strings.ToLower(strings.TrimSpace(s)))
	for _, sp := range AllSpecies {
		if sp == candidate {
			return sp, true
		}
	}
	return "", false
}

// Label is the capitalized display name.
func (s Species) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Age bounds enforced by Validate.
const (
	MinAge = 0
	MaxAge = 45

	// MarmosetAgeHint is shown next to the age field. It is not enforced.
	MarmosetAgeHint = 22
)

// Name length bounds, counted in grapheme clusters after trimming.
const (
	MinNameLength = 2
	MaxNameLength = 40
)

// Monkey is a record as returned by the registry.
type Monkey struct {
	ID             string
	Name           string
	Species        Species
	AgeYears       int
	FavouriteFruit string
	LastCheckupAt  string
	CreatedAt      string
	UpdatedAt      string
}

// ShortID is the first eight characters of the id.
func (m Monkey) ShortID() string {
	if len(m.ID) <= 8 {
		return m.ID
	}
	return m.ID[:8]
}

// LastCheckup parses LastCheckupAt. ok is false when the field is empty or
// not in a recognized layout.
func (m Monkey) LastCheckup() (t time.Time, ok bool) {
	return ParseTimestamp(m.LastCheckupAt)
}

// LastCheckupLabel renders the last checkup for display.
func (m Monkey) LastCheckupLabel() string {
	if strings.TrimSpace(m.LastCheckupAt) == "" {
		return "Never"
	}
	if t, ok := m.LastCheckup(); ok {
		return t.Format("Jan 2, 2006")
	}
	return m.LastCheckupAt
}

// Form converts the record back into raw form values for editing.
func (m Monkey) Form() Form {
	return Form{
		Name:           m.Name,
		Species:        string(m.Species),
		AgeYears:       strconv.Itoa(m.AgeYears),
		FavouriteFruit: m.FavouriteFruit,
		LastCheckupAt:  m.LastCheckupAt,
	}
}

// Input is a validated record ready for transport. It never carries an id.
type Input struct {
	Name           string
	Species        Species
	AgeYears       int
	FavouriteFruit string
	// LastCheckupAt is nil when no checkup was entered.
	LastCheckupAt *string
}

// Form holds raw, unvalidated field values as typed by the user.
type Form struct {
	Name           string
	Species        string
	AgeYears       string
	FavouriteFruit string
	LastCheckupAt  string
}

// timestampLayouts are the accepted last_checkup_at layouts, most specific
// first. The minute-precision layout is what browser datetime inputs send.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses s in any accepted layout.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
