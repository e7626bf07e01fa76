package testutil

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/monkeyreg/internal/monkey"
)

func TestBuilder_WithMonkey_Defaults(t *testing.T) {
	reg := NewRegistry(t)

	got := reg.Seed(t).WithMonkey("Coco").Build()

	require.Len(t, got, 1)
	require.NotEmpty(t, got[0].ID)
	require.Equal(t, monkey.Capuchin, got[0].Species)
	require.Equal(t, 1, reg.Fake.Len())
}

func TestBuilder_WithMonkey_AllOptions(t *testing.T) {
	reg := NewRegistry(t)
	at := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

	reg.Seed(t).
		WithMonkey("Pip",
			ID("m-1"),
			Species(monkey.Marmoset),
			Age(3),
			Fruit("grape"),
			LastCheckup(at),
			CreatedAt(at),
		).
		Build()

	rec, err := reg.Client.Get(context.Background(), "m-1")
	require.NoError(t, err)
	require.Equal(t, "Pip", rec.Name)
	require.Equal(t, monkey.Marmoset, rec.Species)
	require.Equal(t, 3, rec.AgeYears)
	require.Equal(t, "grape", rec.FavouriteFruit)
	require.Equal(t, "2024-01-15T10:00:00", rec.LastCheckupAt)
	require.Equal(t, "2024-01-15T10:00:00.000000", rec.CreatedAt)
}

func TestWithStandardTestData(t *testing.T) {
	reg := NewRegistry(t)
	reg.Seed(t).WithStandardTestData().Build()

	all, err := reg.Client.List(context.Background(), url.Values{})
	require.NoError(t, err)
	require.Len(t, all, 5)

	capuchins, err := reg.Client.List(context.Background(), url.Values{"species": {"capuchin"}})
	require.NoError(t, err)
	require.Len(t, capuchins, 2)
}
