package presentation

import (
	"github.com/zjrosen/monkeyreg/internal/monkey"
)

// MonkeyDTO is a monkey record as printed by the non-interactive commands.
type MonkeyDTO struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Species        string `json:"species" yaml:"species"`
	AgeYears       int    `json:"age_years" yaml:"age_years"`
	FavouriteFruit string `json:"favourite_fruit" yaml:"favourite_fruit"`
	LastCheckupAt  string `json:"last_checkup_at,omitempty" yaml:"last_checkup_at,omitempty"`
	CreatedAt      string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// FromMonkey converts a record to its DTO.
func FromMonkey(m monkey.Monkey) MonkeyDTO {
	return MonkeyDTO{
		ID:             m.ID,
		Name:           m.Name,
		Species:        string(m.Species),
		AgeYears:       m.AgeYears,
		FavouriteFruit: m.FavouriteFruit,
		LastCheckupAt:  m.LastCheckupAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromMonkeys converts a record set, keeping its order. A nil input yields
// an empty slice so JSON output is [] rather than null.
func FromMonkeys(ms []monkey.Monkey) []MonkeyDTO {
	out := make([]MonkeyDTO, len(ms))
	for i, m := range ms {
		out[i] = FromMonkey(m)
	}
	return out
}
