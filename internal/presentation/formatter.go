package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/monkeyreg/internal/monkey"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the accepted --output values.
var Formats = []string{FormatTable, FormatJSON, FormatYAML}

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatMonkeys writes records in the given format.
func (f *Formatter) FormatMonkeys(format string, records []MonkeyDTO) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	case FormatYAML:
		encoder := yaml.NewEncoder(f.writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(records); err != nil {
			return err
		}
		return encoder.Close()
	case FormatTable, "":
		return f.table(records)
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

// FormatMonkey writes a single record as indented JSON.
func (f *Formatter) FormatMonkey(record MonkeyDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(record)
}

func (f *Formatter) table(records []MonkeyDTO) error {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "SPECIES", "AGE", "FAVOURITE FRUIT", "LAST CHECKUP").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, r := range records {
		rec := monkey.Monkey{ID: r.ID, LastCheckupAt: r.LastCheckupAt}
		species, _ := monkey.ParseSpecies(r.Species)
		t.Row(rec.ShortID(), r.Name, species.Label(), strconv.Itoa(r.AgeYears), r.FavouriteFruit, rec.LastCheckupLabel())
	}

	if _, err := fmt.Fprintln(f.writer, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(f.writer, "Total monkeys: %d\n", len(records))
	return err
}
