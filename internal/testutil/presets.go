package testutil

import (
	"time"

	"github.com/zjrosen/monkeyreg/internal/monkey"
)

// WithStandardTestData adds one monkey per species plus a second capuchin,
// enough to exercise species filtering and search together.
func (b *Builder) WithStandardTestData() *Builder {
	lastMonth := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)

	return b.
		WithMonkey("Coco", Species(monkey.Capuchin), Age(12), Fruit("banana"), LastCheckup(lastMonth)).
		WithMonkey("Kenji", Species(monkey.Macaque), Age(8), Fruit("persimmon")).
		WithMonkey("Pip", Species(monkey.Marmoset), Age(3), Fruit("grape")).
		WithMonkey("Bruno", Species(monkey.Howler), Age(15), Fruit("fig")).
		WithMonkey("Jojo", Species(monkey.Capuchin), Age(2), Fruit("mango"))
}
