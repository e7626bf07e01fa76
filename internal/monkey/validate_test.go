package monkey

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validForm() Form {
	return Form{
		Name:           "Jo",
		Species:        "howler",
		AgeYears:       "7",
		FavouriteFruit: "mango",
	}
}

func requireViolation(t *testing.T, err error, field string, kind ViolationKind) {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	v, ok := verr.For(field)
	require.True(t, ok, "expected violation for %s in %v", field, verr.Violations)
	require.Equal(t, kind, v.Kind)
}

func TestValidate_AcceptsCreateScenario(t *testing.T) {
	in, err := Validate(validForm())
	require.NoError(t, err)
	require.Equal(t, Input{
		Name:           "Jo",
		Species:        Howler,
		AgeYears:       7,
		FavouriteFruit: "mango",
		LastCheckupAt:  nil,
	}, in)
}

func TestValidate_TrimsAndNormalizes(t *testing.T) {
	f := Form{
		Name:           "  Coco  ",
		Species:        " Marmoset ",
		AgeYears:       " 12 ",
		FavouriteFruit: "\tbanana\n",
		LastCheckupAt:  " 2024-01-15T10:30 ",
	}

	in, err := Validate(f)
	require.NoError(t, err)
	require.Equal(t, "Coco", in.Name)
	require.Equal(t, Marmoset, in.Species)
	require.Equal(t, 12, in.AgeYears)
	require.Equal(t, "banana", in.FavouriteFruit)
	require.NotNil(t, in.LastCheckupAt)
	require.Equal(t, "2024-01-15T10:30", *in.LastCheckupAt)
}

func TestValidate_NameLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"single char", "J", false},
		{"only spaces around one char", "   J   ", false},
		{"two chars", "Jo", true},
		{"forty chars", strings.Repeat("a", 40), true},
		{"forty one chars", strings.Repeat("a", 41), false},
		{"emoji counts as one", "🐒🐒", true},
		{"combining marks", "é", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			f.Name = tt.input
			_, err := Validate(f)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			requireViolation(t, err, FieldName, InvalidLength)
		})
	}
}

func TestValidate_SpeciesEnum(t *testing.T) {
	for _, s := range []string{"", "all", "gorilla", "howlers"} {
		f := validForm()
		f.Species = s
		_, err := Validate(f)
		requireViolation(t, err, FieldSpecies, InvalidEnum)
	}
}

func TestValidate_AgeParseFailureCoercesToZero(t *testing.T) {
	f := validForm()
	f.AgeYears = "abc"

	in, err := Validate(f)
	require.NoError(t, err)
	require.Equal(t, 0, in.AgeYears)
}

func TestValidate_AgeRange(t *testing.T) {
	for _, age := range []string{"-1", "46", "1000", "99999999999999999999"} {
		f := validForm()
		f.AgeYears = age
		_, err := Validate(f)
		requireViolation(t, err, FieldAgeYears, InvalidRange)
	}
}

func TestValidate_MarmosetCapIsAdvisory(t *testing.T) {
	f := validForm()
	f.Species = "marmoset"
	f.AgeYears = "30"

	in, err := Validate(f)
	require.NoError(t, err)
	require.Equal(t, 30, in.AgeYears)
}

func TestValidate_FruitRequired(t *testing.T) {
	f := validForm()
	f.FavouriteFruit = "   "
	_, err := Validate(f)
	requireViolation(t, err, FieldFavouriteFruit, Required)
}

func TestValidate_LastCheckupFormat(t *testing.T) {
	accepted := []string{
		"2024-01-15",
		"2024-01-15T10:30",
		"2024-01-15T10:30:00",
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00.123456",
		"2024-01-15T10:30:00+02:00",
	}
	for _, s := range accepted {
		f := validForm()
		f.LastCheckupAt = s
		_, err := Validate(f)
		require.NoError(t, err, s)
	}

	for _, s := range []string{"yesterday", "15/01/2024", "2024-13-01"} {
		f := validForm()
		f.LastCheckupAt = s
		_, err := Validate(f)
		requireViolation(t, err, FieldLastCheckupAt, InvalidFormat)
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	_, err := Validate(Form{AgeYears: "50", LastCheckupAt: "nope"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 5)
	require.Contains(t, err.Error(), "name:")
	require.Contains(t, err.Error(), "last_checkup_at:")
}

func TestParseAge(t *testing.T) {
	tests := map[string]int{
		"":      0,
		"abc":   0,
		"7":     7,
		" 12 ":  12,
		"3.7":   3,
		"7abc":  7,
		"-3":    -3,
		"+4":    4,
		"-":     0,
		"0045":  45,
		"1e3":   1,
		"٣":     0,
		"  -0 ": 0,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseAge(in), "ParseAge(%q)", in)
	}
}

func TestValidate_Property_ValidInputsAccepted(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,38}[A-Za-z]`).Draw(rt, "name")
		species := rapid.SampledFrom(AllSpecies).Draw(rt, "species")
		age := rapid.IntRange(MinAge, MaxAge).Draw(rt, "age")
		fruit := rapid.StringMatching(`[a-z]{1,20}`).Draw(rt, "fruit")

		in, err := Validate(Form{
			Name:           name,
			Species:        string(species),
			AgeYears:       strconv.Itoa(age),
			FavouriteFruit: fruit,
		})
		if err != nil {
			rt.Fatalf("valid form rejected: %v", err)
		}
		if in.AgeYears < MinAge || in.AgeYears > MaxAge {
			rt.Fatalf("age %d outside range", in.AgeYears)
		}
		if in.AgeYears != age {
			rt.Fatalf("age changed: got %d want %d", in.AgeYears, age)
		}
		if in.Species != species {
			rt.Fatalf("species changed: got %s want %s", in.Species, species)
		}
	})
}

func TestValidate_Property_AgeNeverOutOfRangeWhenAccepted(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := validForm()
		f.AgeYears = rapid.String().Draw(rt, "age")

		in, err := Validate(f)
		if err != nil {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				rt.Fatalf("unexpected error type %T", err)
			}
			if _, ok := verr.For(FieldAgeYears); !ok {
				rt.Fatalf("only age varied but got %v", verr.Violations)
			}
			return
		}
		if in.AgeYears < MinAge || in.AgeYears > MaxAge {
			rt.Fatalf("accepted out of range age %d", in.AgeYears)
		}
	})
}

func TestMonkey_Display(t *testing.T) {
	m := Monkey{ID: "0123456789abcdef", Species: Capuchin, AgeYears: 4}
	require.Equal(t, "01234567", m.ShortID())
	require.Equal(t, "Never", m.LastCheckupLabel())
	require.Equal(t, "Capuchin", m.Species.Label())

	m.LastCheckupAt = "2024-01-15T10:30"
	require.Equal(t, "Jan 15, 2024", m.LastCheckupLabel())

	m.LastCheckupAt = "sometime"
	require.Equal(t, "sometime", m.LastCheckupLabel())

	require.Equal(t, "ab", Monkey{ID: "ab"}.ShortID())
	require.Equal(t, "4", m.Form().AgeYears)
}

func TestParseSpecies(t *testing.T) {
	sp, ok := ParseSpecies(" HOWLER ")
	require.True(t, ok)
	require.Equal(t, Howler, sp)

	_, ok = ParseSpecies("all")
	require.False(t, ok)
}
