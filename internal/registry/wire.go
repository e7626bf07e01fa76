package registry

import (
	"github.com/zjrosen/monkeyreg/internal/monkey"
)

// Record is the JSON shape served by the registry. Some deployments send
// "id" instead of "monkey_id"; both are accepted on decode.
type Record struct {
	MonkeyID       string  `json:"monkey_id,omitempty" yaml:"monkey_id"`
	ID             string  `json:"id,omitempty" yaml:"-"`
	Name           string  `json:"name" yaml:"name"`
	Species        string  `json:"species" yaml:"species"`
	AgeYears       int     `json:"age_years" yaml:"age_years"`
	FavouriteFruit string  `json:"favourite_fruit" yaml:"favourite_fruit"`
	LastCheckupAt  *string `json:"last_checkup_at" yaml:"last_checkup_at"`
	CreatedAt      string  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt      string  `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// ToMonkey converts the wire record to the domain type.
func (r Record) ToMonkey() monkey.Monkey {
	id := r.MonkeyID
	if id == "" {
		id = r.ID
	}
	m := monkey.Monkey{
		ID:             id,
		Name:           r.Name,
		Species:        monkey.Species(r.Species),
		AgeYears:       r.AgeYears,
		FavouriteFruit: r.FavouriteFruit,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.LastCheckupAt != nil {
		m.LastCheckupAt = *r.LastCheckupAt
	}
	return m
}

// FromMonkey converts a domain record to its wire shape.
func FromMonkey(m monkey.Monkey) Record {
	r := Record{
		MonkeyID:       m.ID,
		Name:           m.Name,
		Species:        string(m.Species),
		AgeYears:       m.AgeYears,
		FavouriteFruit: m.FavouriteFruit,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.LastCheckupAt != "" {
		checkup := m.LastCheckupAt
		r.LastCheckupAt = &checkup
	}
	return r
}

// Payload is the create/update request body: a record minus its id.
// LastCheckupAt has no omitempty so an absent checkup is sent as null.
type Payload struct {
	Name           string  `json:"name"`
	Species        string  `json:"species"`
	AgeYears       int     `json:"age_years"`
	FavouriteFruit string  `json:"favourite_fruit"`
	LastCheckupAt  *string `json:"last_checkup_at"`
}

// NewPayload builds the request body for a validated input.
func NewPayload(in monkey.Input) Payload {
	return Payload{
		Name:           in.Name,
		Species:        string(in.Species),
		AgeYears:       in.AgeYears,
		FavouriteFruit: in.FavouriteFruit,
		LastCheckupAt:  in.LastCheckupAt,
	}
}
