package controller

import (
	"errors"

	"github.com/zjrosen/monkeyreg/internal/log"
	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/notify"
	"github.com/zjrosen/monkeyreg/internal/query"
	"github.com/zjrosen/monkeyreg/internal/registry"
)

// Notification texts.
const (
	MsgCreated     = "Monkey created successfully!"
	MsgUpdated     = "Monkey updated successfully!"
	MsgDeleted     = "Monkey deleted successfully!"
	MsgFetchFailed = "Failed to fetch monkeys"
)

// ConfirmDeletePrompt is asked before any delete.
const ConfirmDeletePrompt = "Are you sure you want to delete this monkey?"

// Reduce applies ev to s and returns the new state with the effects to run.
// It never performs I/O.
func Reduce(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case Mounted, RefreshRequested:
		return refetch(s)

	case SearchChanged:
		if ev.Term == s.Filter.SearchTerm {
			return s, nil
		}
		s.Filter.SearchTerm = ev.Term
		return refetch(s)

	case SpeciesChanged:
		if ev.Species == s.Filter.Species {
			return s, nil
		}
		s.Filter.Species = ev.Species
		return refetch(s)

	case ListSucceeded:
		if ev.Seq != s.listSeq {
			log.Debug(log.CatController, "dropping stale list response", "seq", ev.Seq, "current", s.listSeq)
			return s, nil
		}
		s.loading = false
		s.loaded = true
		s.Records = ev.Records
		if s.Records == nil {
			s.Records = []monkey.Monkey{}
		}
		return s, nil

	case ListFailed:
		if ev.Seq != s.listSeq {
			log.Debug(log.CatController, "dropping stale list failure", "seq", ev.Seq, "current", s.listSeq)
			return s, nil
		}
		log.ErrorErr(log.CatController, "list failed", ev.Err, "seq", ev.Seq)
		s.loading = false
		s.loaded = true
		s.Records = []monkey.Monkey{}
		return s, []Effect{Notify{notify.Failure(MsgFetchFailed)}}

	case CreateOpened:
		if s.Dialog.Open() || s.Confirm != nil {
			return s, nil
		}
		s.dialogSeq++
		s.Dialog = Dialog{Mode: DialogCreate, Key: s.dialogSeq}
		return s, nil

	case EditOpened:
		if s.Dialog.Open() || s.Confirm != nil {
			return s, nil
		}
		s.dialogSeq++
		s.Dialog = Dialog{Mode: DialogEdit, Key: s.dialogSeq, Target: ev.Target}
		return s, nil

	case DialogDismissed:
		if s.pending == OpCreate || s.pending == OpUpdate {
			return s, nil
		}
		s.Dialog = Dialog{}
		return s, nil

	case Submitted:
		return submit(s, ev.Form)

	case MutationSucceeded:
		return mutationSucceeded(s, ev)

	case MutationFailed:
		return mutationFailed(s, ev)

	case DeleteRequested:
		if s.pending != OpNone || s.Dialog.Open() || s.Confirm != nil {
			return s, nil
		}
		target := ev.Target
		s.Confirm = &target
		return s, nil

	case DeleteDeclined:
		s.Confirm = nil
		return s, nil

	case DeleteConfirmed:
		if s.Confirm == nil || s.pending != OpNone {
			return s, nil
		}
		target := *s.Confirm
		s.Confirm = nil
		s.pending = OpDelete
		s.pendingID = target.ID
		return s, []Effect{DeleteRecord{Target: target}}

	case DetailsRequested:
		s.Details = nil
		s.detailsPending = ev.ID
		return s, []Effect{FetchRecord{ID: ev.ID}}

	case DetailsLoaded:
		if s.detailsPending != ev.Record.ID {
			return s, nil
		}
		rec := ev.Record
		s.Details = &rec
		s.detailsPending = ""
		return s, nil

	case DetailsFailed:
		if s.detailsPending != ev.ID {
			return s, nil
		}
		s.detailsPending = ""
		return s, []Effect{Notify{notify.Failure(registry.Message(ev.Err))}}

	case DetailsClosed:
		s.Details = nil
		s.detailsPending = ""
		return s, nil
	}

	log.Warn(log.CatController, "unhandled event", "event", ev)
	return s, nil
}

// refetch starts a list request for the current filter. The sequence bump
// makes any response still in flight stale.
func refetch(s State) (State, []Effect) {
	s.listSeq++
	s.loading = true
	return s, []Effect{FetchList{Seq: s.listSeq, Query: query.Build(s.Filter)}}
}

func submit(s State, f monkey.Form) (State, []Effect) {
	if !s.Dialog.Open() || s.pending != OpNone {
		return s, nil
	}

	in, err := monkey.Validate(f)
	if err != nil {
		var verr *monkey.ValidationError
		if errors.As(err, &verr) {
			s.Dialog.Violations = verr
		}
		return s, nil
	}
	s.Dialog.Violations = nil

	if s.Dialog.Mode == DialogEdit {
		s.pending = OpUpdate
		s.pendingID = s.Dialog.Target.ID
		return s, []Effect{UpdateRecord{ID: s.Dialog.Target.ID, Input: in}}
	}
	s.pending = OpCreate
	s.pendingID = ""
	return s, []Effect{CreateRecord{Input: in}}
}

func mutationSucceeded(s State, ev MutationSucceeded) (State, []Effect) {
	if ev.Op != s.pending {
		log.Warn(log.CatController, "mutation result without matching request", "op", ev.Op, "pending", s.pending)
		return s, nil
	}
	s.pending = OpNone
	s.pendingID = ""

	var msg string
	switch ev.Op {
	case OpCreate:
		s.Dialog = Dialog{}
		msg = MsgCreated
	case OpUpdate:
		s.Dialog = Dialog{}
		if s.Details != nil && s.Details.ID == ev.Record.ID {
			rec := ev.Record
			s.Details = &rec
		}
		msg = MsgUpdated
	case OpDelete:
		if s.Details != nil && s.Details.ID == ev.Record.ID {
			s.Details = nil
		}
		msg = MsgDeleted
	}

	s, effects := refetch(s)
	return s, append([]Effect{Notify{notify.Success(msg)}}, effects...)
}

func mutationFailed(s State, ev MutationFailed) (State, []Effect) {
	if ev.Op != s.pending {
		log.Warn(log.CatController, "mutation failure without matching request", "op", ev.Op, "pending", s.pending)
		return s, nil
	}
	log.ErrorErr(log.CatController, "mutation failed", ev.Err, "op", ev.Op, "id", s.pendingID)
	s.pending = OpNone
	s.pendingID = ""
	return s, []Effect{Notify{notify.Failure(registry.Message(ev.Err))}}
}
