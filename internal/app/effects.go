package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/monkeyreg/internal/controller"
	"github.com/zjrosen/monkeyreg/internal/log"
)

// runEffect turns an effect into a command. Network effects run off the
// update loop and report back as controller events.
func (m Model) runEffect(e controller.Effect) tea.Cmd {
	ctx, client := m.ctx, m.client

	switch e := e.(type) {
	case controller.FetchList:
		return func() tea.Msg {
			records, err := client.List(ctx, e.Query)
			if err != nil {
				log.ErrorErr(log.CatAPI, "list failed", err, "seq", e.Seq, "query", e.Query.Encode())
				return controller.ListFailed{Seq: e.Seq, Err: err}
			}
			return controller.ListSucceeded{Seq: e.Seq, Records: records}
		}

	case controller.FetchRecord:
		return func() tea.Msg {
			rec, err := client.Get(ctx, e.ID)
			if err != nil {
				log.ErrorErr(log.CatAPI, "get failed", err, "id", e.ID)
				return controller.DetailsFailed{ID: e.ID, Err: err}
			}
			return controller.DetailsLoaded{Record: rec}
		}

	case controller.CreateRecord:
		return func() tea.Msg {
			rec, err := client.Create(ctx, e.Input)
			if err != nil {
				log.ErrorErr(log.CatAPI, "create failed", err, "name", e.Input.Name)
				return controller.MutationFailed{Op: controller.OpCreate, Err: err}
			}
			return controller.MutationSucceeded{Op: controller.OpCreate, Record: rec}
		}

	case controller.UpdateRecord:
		return func() tea.Msg {
			rec, err := client.Update(ctx, e.ID, e.Input)
			if err != nil {
				log.ErrorErr(log.CatAPI, "update failed", err, "id", e.ID)
				return controller.MutationFailed{Op: controller.OpUpdate, Err: err}
			}
			return controller.MutationSucceeded{Op: controller.OpUpdate, Record: rec}
		}

	case controller.DeleteRecord:
		return func() tea.Msg {
			if err := client.Delete(ctx, e.Target.ID); err != nil {
				log.ErrorErr(log.CatAPI, "delete failed", err, "id", e.Target.ID)
				return controller.MutationFailed{Op: controller.OpDelete, Err: err}
			}
			return controller.MutationSucceeded{Op: controller.OpDelete, Record: e.Target}
		}

	case controller.Notify:
		// The broker sink only enqueues, so this stays on the update loop and
		// notifications keep the order the reducer produced them in.
		m.sink.Notify(e.Notification)
		return nil
	}

	log.Warn(log.CatController, "unhandled effect", "type", fmt.Sprintf("%T", e))
	return nil
}

// eventName is the short type name of ev for log lines.
func eventName(ev controller.Event) string {
	name := fmt.Sprintf("%T", ev)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
