package controller

import (
	"net/url"

	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/notify"
)

// Event is an input to Reduce.
type Event interface{ event() }

// Mounted starts the controller; it issues the first list request.
type Mounted struct{}

// RefreshRequested reissues the list for the current filter.
type RefreshRequested struct{}

// SearchChanged sets the search term.
type SearchChanged struct{ Term string }

// SpeciesChanged sets the species filter ("", "all" or a species name).
type SpeciesChanged struct{ Species string }

// ListSucceeded is a completed list request.
type ListSucceeded struct {
	Seq     uint64
	Records []monkey.Monkey
}

// ListFailed is a failed list request.
type ListFailed struct {
	Seq uint64
	Err error
}

// CreateOpened opens a blank create dialog.
type CreateOpened struct{}

// EditOpened opens the edit dialog for Target.
type EditOpened struct{ Target monkey.Monkey }

// DialogDismissed closes the dialog and discards its form.
type DialogDismissed struct{}

// Submitted is a create or edit form submission with raw field values.
type Submitted struct{ Form monkey.Form }

// MutationSucceeded is a completed create, update or delete.
type MutationSucceeded struct {
	Op     Operation
	Record monkey.Monkey
}

// MutationFailed is a failed create, update or delete.
type MutationFailed struct {
	Op  Operation
	Err error
}

// DeleteRequested asks for confirmation before deleting Target.
type DeleteRequested struct{ Target monkey.Monkey }

// DeleteConfirmed is a yes answer to the pending confirmation.
type DeleteConfirmed struct{}

// DeleteDeclined is a no answer to the pending confirmation.
type DeleteDeclined struct{}

// DetailsRequested opens the details overlay for ID.
type DetailsRequested struct{ ID string }

// DetailsLoaded is a completed details fetch.
type DetailsLoaded struct{ Record monkey.Monkey }

// DetailsFailed is a failed details fetch.
type DetailsFailed struct {
	ID  string
	Err error
}

// DetailsClosed hides the details overlay.
type DetailsClosed struct{}

func (Mounted) event()           {}
func (RefreshRequested) event()  {}
func (SearchChanged) event()     {}
func (SpeciesChanged) event()    {}
func (ListSucceeded) event()     {}
func (ListFailed) event()        {}
func (CreateOpened) event()      {}
func (EditOpened) event()        {}
func (DialogDismissed) event()   {}
func (Submitted) event()         {}
func (MutationSucceeded) event() {}
func (MutationFailed) event()    {}
func (DeleteRequested) event()   {}
func (DeleteConfirmed) event()   {}
func (DeleteDeclined) event()    {}
func (DetailsRequested) event()  {}
func (DetailsLoaded) event()     {}
func (DetailsFailed) event()     {}
func (DetailsClosed) event()     {}

// Effect is work Reduce asks the caller to perform.
type Effect interface{ effect() }

// FetchList lists records; the result must come back tagged with Seq.
type FetchList struct {
	Seq   uint64
	Query url.Values
}

// CreateRecord creates a record from a validated input.
type CreateRecord struct{ Input monkey.Input }

// UpdateRecord replaces record ID with a validated input.
type UpdateRecord struct {
	ID    string
	Input monkey.Input
}

// DeleteRecord deletes the given record.
type DeleteRecord struct{ Target monkey.Monkey }

// FetchRecord loads one record for the details overlay.
type FetchRecord struct{ ID string }

// Notify reports an outcome to the notification sink.
type Notify struct{ Notification notify.Notification }

func (FetchList) effect()    {}
func (CreateRecord) effect() {}
func (UpdateRecord) effect() {}
func (DeleteRecord) effect() {}
func (FetchRecord) effect()  {}
func (Notify) effect()       {}
