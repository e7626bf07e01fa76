package app

import (
	"bytes"
	"errors"
	"net/url"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/monkeyreg/internal/controller"
	"github.com/zjrosen/monkeyreg/internal/mocks"
	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/notify"
	"github.com/zjrosen/monkeyreg/internal/pubsub"
	"github.com/zjrosen/monkeyreg/internal/query"
	"github.com/zjrosen/monkeyreg/internal/registry"
	"github.com/zjrosen/monkeyreg/internal/testutil"
	"github.com/zjrosen/monkeyreg/internal/ui/modal"
	"github.com/zjrosen/monkeyreg/internal/ui/monkeyform"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

var coco = monkey.Monkey{
	ID:             "2f1c9a7e-0000-4000-8000-000000000001",
	Name:           "Coco",
	Species:        monkey.Capuchin,
	AgeYears:       5,
	FavouriteFruit: "banana",
}

type recorder struct{ got []notify.Notification }

func (r *recorder) Notify(n notify.Notification) { r.got = append(r.got, n) }

func newTestModel(t *testing.T, client registry.Client, sink notify.Sink) Model {
	t.Helper()
	m := New(client, Options{Sink: sink, ToastDuration: time.Second})
	t.Cleanup(func() { _ = m.Close() })
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(m Model, k string) Model {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	m, _ = update(m, msg)
	return m
}

func loaded(m Model, records ...monkey.Monkey) Model {
	m, _ = update(m, controller.Mounted{})
	m, _ = update(m, controller.ListSucceeded{Seq: m.State().ListSeq(), Records: records})
	return m
}

func TestView_BeforeFirstLoad(t *testing.T) {
	m := newTestModel(t, nil, nil)
	m, _ = update(m, controller.Mounted{})

	require.Contains(t, m.View(), "Loading monkeys...")
}

func TestView_EmptyState(t *testing.T) {
	m := loaded(newTestModel(t, nil, nil))

	view := m.View()
	require.Contains(t, view, "No monkeys found")
	require.Contains(t, view, "Start by adding your first monkey!")
	require.Contains(t, view, "Total monkeys: 0")
}

func TestView_ListsRecords(t *testing.T) {
	m := loaded(newTestModel(t, nil, nil), coco)

	view := m.View()
	require.Contains(t, view, "Coco")
	require.Contains(t, view, "Capuchin")
	require.Contains(t, view, "Total monkeys: 1")
}

func TestRunEffect_FetchList(t *testing.T) {
	q := url.Values{query.KeySpecies: {"howler"}}
	client := mocks.NewMockClient(t)
	client.EXPECT().List(mock.Anything, q).Return([]monkey.Monkey{coco}, nil).Once()

	m := newTestModel(t, client, nil)
	msg := m.runEffect(controller.FetchList{Seq: 4, Query: q})()

	require.Equal(t, controller.ListSucceeded{Seq: 4, Records: []monkey.Monkey{coco}}, msg)
}

func TestRunEffect_FetchListFailure(t *testing.T) {
	boom := errors.New("boom")
	client := mocks.NewMockClient(t)
	client.EXPECT().List(mock.Anything, mock.Anything).Return(nil, boom).Once()

	m := newTestModel(t, client, nil)
	msg := m.runEffect(controller.FetchList{Seq: 2})()

	require.Equal(t, controller.ListFailed{Seq: 2, Err: boom}, msg)
}

func TestRunEffect_DeleteReportsTarget(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.EXPECT().Delete(mock.Anything, coco.ID).Return(nil).Once()

	m := newTestModel(t, client, nil)
	msg := m.runEffect(controller.DeleteRecord{Target: coco})()

	require.Equal(t, controller.MutationSucceeded{Op: controller.OpDelete, Record: coco}, msg)
}

func TestRunEffect_MutationFailure(t *testing.T) {
	conflict := &registry.RemoteError{Category: registry.CategoryClient, StatusCode: 409, Message: "name already exists"}
	client := mocks.NewMockClient(t)
	client.EXPECT().Create(mock.Anything, mock.Anything).Return(monkey.Monkey{}, conflict).Once()

	m := newTestModel(t, client, nil)
	msg := m.runEffect(controller.CreateRecord{Input: monkey.Input{Name: "Jo"}})()

	require.Equal(t, controller.MutationFailed{Op: controller.OpCreate, Err: conflict}, msg)
}

func TestRunEffect_NotifyFansOut(t *testing.T) {
	rec := &recorder{}
	m := newTestModel(t, nil, rec)

	cmd := m.runEffect(controller.Notify{Notification: notify.Success(controller.MsgCreated)})
	require.Nil(t, cmd)
	require.Equal(t, []notify.Notification{notify.Success(controller.MsgCreated)}, rec.got)

	ev, ok := m.listener.Listen()().(pubsub.Event[notify.Notification])
	require.True(t, ok, "the toaster listener receives it too")
	require.Equal(t, controller.MsgCreated, ev.Payload.Description)
}

func TestNotificationShowsToast(t *testing.T) {
	m := loaded(newTestModel(t, nil, nil), coco)

	m, cmd := update(m, pubsub.Event[notify.Notification]{
		Type:    pubsub.NotificationEvent,
		Payload: notify.Failure("name already exists"),
	})
	require.NotNil(t, cmd)
	require.Contains(t, m.View(), "name already exists")
}

func TestCreateDialog_OpenAndDismiss(t *testing.T) {
	m := loaded(newTestModel(t, nil, nil))

	m = press(m, "a")
	require.NotNil(t, m.form)
	require.Equal(t, controller.DialogCreate, m.State().Dialog.Mode)
	require.Contains(t, m.View(), "Add New Monkey")

	key := m.State().Dialog.Key
	m, _ = update(m, monkeyform.CancelMsg{Key: key + 1})
	require.NotNil(t, m.form, "a message for an older dialog is ignored")

	m, _ = update(m, monkeyform.CancelMsg{Key: key})
	require.Nil(t, m.form)
	require.False(t, m.State().Dialog.Open())
}

func TestCreateDialog_InvalidSubmitKeepsForm(t *testing.T) {
	rec := &recorder{}
	m := loaded(newTestModel(t, nil, rec))
	m = press(m, "a")

	m, _ = update(m, monkeyform.SubmitMsg{
		Key:  m.State().Dialog.Key,
		Form: monkey.Form{Name: "J", Species: "howler", AgeYears: "7", FavouriteFruit: "mango"},
	})

	require.NotNil(t, m.form)
	require.NotNil(t, m.State().Dialog.Violations)
	require.Equal(t, monkeyform.FieldName, m.form.Focused())
	require.False(t, m.State().Submitting())
	require.Empty(t, rec.got)
}

func TestCreateDialog_SubmitStartsRequest(t *testing.T) {
	m := loaded(newTestModel(t, nil, nil))
	m = press(m, "a")

	m, cmd := update(m, monkeyform.SubmitMsg{
		Key:  m.State().Dialog.Key,
		Form: monkey.Form{Name: "Jo", Species: "howler", AgeYears: "7", FavouriteFruit: "mango"},
	})

	require.NotNil(t, cmd)
	require.True(t, m.State().Submitting())
	require.Contains(t, m.form.View(), "Saving...")

	// Keys other than the form's are swallowed while the dialog is up.
	m = press(m, "d")
	require.Nil(t, m.confirm)
}

func TestDeleteFlow(t *testing.T) {
	rec := &recorder{}
	m := loaded(newTestModel(t, nil, rec), coco)

	m = press(m, "d")
	require.NotNil(t, m.confirm)
	view := m.View()
	require.Contains(t, view, controller.ConfirmDeletePrompt)
	require.Contains(t, view, "Coco (Capuchin)")

	m, cmd := update(m, modal.ConfirmMsg{})
	require.NotNil(t, cmd)
	require.Nil(t, m.confirm)
	op, id := m.State().Pending()
	require.Equal(t, controller.OpDelete, op)
	require.Equal(t, coco.ID, id)

	m, _ = update(m, controller.MutationSucceeded{Op: controller.OpDelete, Record: coco})
	require.False(t, m.State().Submitting())
	require.Equal(t, []notify.Notification{notify.Success(controller.MsgDeleted)}, rec.got)
}

func TestDeleteFlow_FailureNotifiesOnce(t *testing.T) {
	missing := &registry.RemoteError{Category: registry.CategoryNotFound, StatusCode: 404, Message: "Monkey not found"}
	client := mocks.NewMockClient(t)
	client.EXPECT().Delete(mock.Anything, coco.ID).Return(missing).Once()
	sink := mocks.NewMockSink(t)
	sink.EXPECT().Notify(notify.Failure("Monkey not found")).Once()

	m := loaded(newTestModel(t, client, sink), coco)
	m = press(m, "d")
	m, _ = update(m, modal.ConfirmMsg{})

	seq := m.State().ListSeq()
	msg := m.runEffect(controller.DeleteRecord{Target: coco})()
	m, _ = update(m, msg)

	require.Equal(t, seq, m.State().ListSeq(), "a failed delete does not refetch")
	require.False(t, m.State().Submitting())
	require.Equal(t, []monkey.Monkey{coco}, m.State().Records)
}

func TestDeleteFlow_Declined(t *testing.T) {
	m := loaded(newTestModel(t, nil, nil), coco)

	m = press(m, "d")
	m, _ = update(m, modal.CancelMsg{})

	require.Nil(t, m.confirm)
	require.False(t, m.State().Submitting())
}

func TestDetails_KeysActOnRecord(t *testing.T) {
	m := loaded(newTestModel(t, nil, nil), coco)

	m = press(m, "enter")
	require.True(t, m.State().DetailsLoading())
	require.Contains(t, m.View(), "Loading...")

	m, _ = update(m, controller.DetailsLoaded{Record: coco})
	require.Contains(t, m.View(), "Favourite Fruit")

	m = press(m, "e")
	require.NotNil(t, m.form)
	require.Equal(t, coco.Form(), m.form.Values())
	require.Contains(t, m.View(), "Edit Monkey")

	m, _ = update(m, monkeyform.CancelMsg{Key: m.State().Dialog.Key})
	m = press(m, "esc")
	require.False(t, m.details.Visible())
}

func TestSearch_DispatchesPerKeystroke(t *testing.T) {
	m := loaded(newTestModel(t, nil, nil), coco)
	seq := m.State().ListSeq()

	m = press(m, "/")
	require.True(t, m.searchFocused)

	m = press(m, "c")
	m = press(m, "o")
	require.Equal(t, "co", m.State().Filter.SearchTerm)
	require.Equal(t, seq+2, m.State().ListSeq())

	m = press(m, "esc")
	require.False(t, m.searchFocused)
	require.Equal(t, "co", m.State().Filter.SearchTerm, "leaving the box keeps the term")
}

func TestSpeciesFilterKeys(t *testing.T) {
	m := loaded(newTestModel(t, nil, nil))

	m = press(m, "f")
	require.Equal(t, query.Filter{}.NextSpecies(), m.State().Filter.Species)

	m = press(m, "c")
	require.Empty(t, m.State().Filter.Species)
	require.Empty(t, m.State().Filter.SearchTerm)
}

func TestHelpOverlay(t *testing.T) {
	m := loaded(newTestModel(t, nil, nil))

	m = press(m, "?")
	require.True(t, m.showHelp)
	require.Contains(t, m.View(), "Records")

	m = press(m, "a")
	require.Nil(t, m.form, "keys do not leak through help")

	m = press(m, "?")
	require.False(t, m.showHelp)
}

func TestProgram_CreateAgainstFakeRegistry(t *testing.T) {
	reg := testutil.NewRegistry(t)
	reg.Seed(t).WithMonkey("Coco").Build()

	m := New(reg.Client, Options{Endpoint: reg.Server.URL, ToastDuration: time.Minute})
	t.Cleanup(func() { _ = m.Close() })

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(110, 35))
	waitFor(t, tm, "Coco")

	tm.Type("a")
	waitFor(t, tm, "Add New Monkey")

	tm.Type("Jo")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("4")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("7")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("mango")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	waitFor(t, tm, controller.MsgCreated, "Total monkeys: 2")

	tm.Type("q")
	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)

	require.Len(t, final.State().Records, 2)
	require.Nil(t, final.form)
	require.Equal(t, 2, reg.Fake.Len())
}

// waitFor blocks until every text has been written since the last wait.
func waitFor(t *testing.T, tm *teatest.TestModel, texts ...string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		for _, text := range texts {
			if !bytes.Contains(b, []byte(text)) {
				return false
			}
		}
		return true
	}, teatest.WithDuration(3*time.Second), teatest.WithCheckInterval(20*time.Millisecond))
}
