// Package controller holds the registry view state and the reducer that
// advances it. Reduce is the only way state changes: every user action and
// every network completion is an Event, and anything that must happen outside
// the state (HTTP calls, notifications) comes back as an Effect for the caller
// to run.
package controller

import (
	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/query"
)

// Phase is the coarse controller state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Operation is a mutation kind.
type Operation int

const (
	OpNone Operation = iota
	OpCreate
	OpUpdate
	OpDelete
)

func (o Operation) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "none"
	}
}

// DialogMode says which form dialog is open.
type DialogMode int

const (
	DialogClosed DialogMode = iota
	DialogCreate
	DialogEdit
)

// Dialog is the create/edit dialog state. Key identifies one opening of the
// dialog; the form component is rebuilt whenever Key changes, so a closed and
// reopened dialog never shows stale values.
type Dialog struct {
	Mode   DialogMode
	Key    uint64
	Target monkey.Monkey
	// Violations holds the field errors from the last rejected submit.
	Violations *monkey.ValidationError
}

// Open reports whether a dialog is showing.
func (d Dialog) Open() bool { return d.Mode != DialogClosed }

// Title is the dialog heading.
func (d Dialog) Title() string {
	if d.Mode == DialogEdit {
		return "Edit Monkey"
	}
	return "Add New Monkey"
}

// State is the whole controller state. The zero value is Idle with no
// records and no filter.
type State struct {
	Filter  query.Filter
	Records []monkey.Monkey
	Dialog  Dialog
	// Confirm is the record awaiting delete confirmation.
	Confirm *monkey.Monkey
	// Details is the record shown in the details overlay.
	Details *monkey.Monkey

	loading        bool
	loaded         bool
	pending        Operation
	pendingID      string
	listSeq        uint64
	dialogSeq      uint64
	detailsPending string
}

// Phase derives the coarse state. A pending mutation dominates an in-flight
// list request.
func (s State) Phase() Phase {
	switch {
	case s.pending != OpNone:
		return PhaseSubmitting
	case s.loading:
		return PhaseLoading
	case s.loaded:
		return PhaseLoaded
	default:
		return PhaseIdle
	}
}

// Loading reports whether a list request is in flight.
func (s State) Loading() bool { return s.loading }

// Loaded reports whether any list response has been applied yet.
func (s State) Loaded() bool { return s.loaded }

// Submitting reports whether a mutation is in flight.
func (s State) Submitting() bool { return s.pending != OpNone }

// Pending returns the in-flight mutation and the id it targets, if any.
func (s State) Pending() (Operation, string) { return s.pending, s.pendingID }

// ListSeq is the sequence number of the most recent list request. Only a
// response carrying this number is applied.
func (s State) ListSeq() uint64 { return s.listSeq }

// DetailsLoading reports whether a details fetch is in flight.
func (s State) DetailsLoading() bool { return s.detailsPending != "" }

// Empty reports whether the empty-state branch should render.
func (s State) Empty() bool {
	return s.loaded && !s.loading && len(s.Records) == 0
}

// EmptyHint is the secondary empty-state line. It depends on whether the
// current filter narrows the listing; species "all" does not.
func (s State) EmptyHint() string {
	if s.Filter.Active() {
		return "Try adjusting your search criteria"
	}
	return "Start by adding your first monkey!"
}
