package testutil

import (
	"time"

	"github.com/zjrosen/monkeyreg/internal/monkey"
)

// defaultMonkey returns a record with sensible defaults for name.
func defaultMonkey(name string) monkey.Monkey {
	return monkey.Monkey{
		Name:           name,
		Species:        monkey.Capuchin,
		AgeYears:       5,
		FavouriteFruit: "banana",
	}
}

// MonkeyOption configures a monkey during builder setup.
type MonkeyOption func(*monkey.Monkey)

// ID fixes the record id instead of letting the registry assign one.
func ID(id string) MonkeyOption {
	return func(m *monkey.Monkey) { m.ID = id }
}

// Species sets the species.
func Species(sp monkey.Species) MonkeyOption {
	return func(m *monkey.Monkey) { m.Species = sp }
}

// Age sets the age in years.
func Age(years int) MonkeyOption {
	return func(m *monkey.Monkey) { m.AgeYears = years }
}

// Fruit sets the favourite fruit.
func Fruit(fruit string) MonkeyOption {
	return func(m *monkey.Monkey) { m.FavouriteFruit = fruit }
}

// LastCheckup sets the last checkup in the registry's wire layout.
func LastCheckup(t time.Time) MonkeyOption {
	return func(m *monkey.Monkey) { m.LastCheckupAt = t.UTC().Format("2006-01-02T15:04:05") }
}

// CreatedAt sets both timestamps.
func CreatedAt(t time.Time) MonkeyOption {
	return func(m *monkey.Monkey) {
		stamp := t.UTC().Format("2006-01-02T15:04:05.000000")
		m.CreatedAt = stamp
		m.UpdatedAt = stamp
	}
}
