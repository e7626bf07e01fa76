package details

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/monkeyreg/internal/monkey"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newAt(now time.Time) Model {
	m := New()
	m.now = func() time.Time { return now }
	return m
}

func TestView_Hidden(t *testing.T) {
	m := New()
	require.False(t, m.Visible())
	require.Empty(t, m.View())
	require.Equal(t, "bg", m.Overlay("bg"))
}

func TestView_Loading(t *testing.T) {
	m := New().SetRecord(nil, true)
	require.True(t, m.Visible())
	require.Contains(t, m.View(), "Loading...")
}

func TestView_Record(t *testing.T) {
	rec := monkey.Monkey{
		ID:             "2f1c9a7e-1111-2222-3333-444455556666",
		Name:           "Coco",
		Species:        monkey.Capuchin,
		AgeYears:       5,
		FavouriteFruit: "banana",
		CreatedAt:      "2024-02-29T12:00:00.000000",
		UpdatedAt:      "2024-03-01T10:00:00.000000",
	}
	view := ansi.Strip(newAt(fixedNow).SetRecord(&rec, false).View())

	require.Contains(t, view, "Coco")
	require.Contains(t, view, "Capuchin")
	require.Contains(t, view, "5 years")
	require.Contains(t, view, "banana")
	require.Contains(t, view, "Never")
	require.Contains(t, view, "2f1c9a7e-1111-2222-3333-444455556666")
	require.Contains(t, view, "Feb 29, 2024 12:00 (1d ago)")
	require.Contains(t, view, "(2h ago)")
}

func TestView_WrapsLongValues(t *testing.T) {
	rec := monkey.Monkey{
		Name:           "Bingo",
		Species:        monkey.Howler,
		FavouriteFruit: "dragon fruit with a side of passion fruit and a little mango",
	}
	view := ansi.Strip(newAt(fixedNow).SetRecord(&rec, false).View())

	for _, line := range strings.Split(view, "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), boxWidth+2)
	}
	require.Contains(t, view, "dragon fruit")
	require.Contains(t, view, "mango")
}

func TestRelative(t *testing.T) {
	require.Equal(t, "just now", relative(10*time.Second))
	require.Equal(t, "5m ago", relative(5*time.Minute))
	require.Equal(t, "3h ago", relative(3*time.Hour))
	require.Equal(t, "2d ago", relative(49*time.Hour))
}

func TestTimestamp_Unparseable(t *testing.T) {
	m := newAt(fixedNow)
	require.Equal(t, "-", m.timestamp(""))
	require.Equal(t, "yesterday", m.timestamp("yesterday"))
}
