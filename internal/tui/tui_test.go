package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Makepad-fr/robo/internal/app"
	"github.com/Makepad-fr/robo/internal/form"
	"github.com/Makepad-fr/robo/internal/history"
	"github.com/Makepad-fr/robo/internal/model"
	"github.com/Makepad-fr/robo/internal/store/jsonstore"
)

type stubGen struct {
	plan  model.BusinessPlan
	err   error
	calls int
}

func (s *stubGen) Generate(_ context.Context, _ model.BusinessInput) (model.BusinessPlan, error) {
	s.calls++
	return s.plan, s.err
}

type fakeClip struct{ text string }

func (f *fakeClip) WriteAll(text string) error {
	f.text = text
	return nil
}

func eightSections() model.BusinessPlan {
	plan := make(model.BusinessPlan, 0, len(model.CanonicalSections))
	for _, title := range model.CanonicalSections {
		plan = append(plan, model.PlanSection{Title: title, Content: title + " body"})
	}
	return plan
}

type harness struct {
	m      Model
	ctrl   *app.Controller
	gen    *stubGen
	clip   *fakeClip
	export string
}

func newHarness(t *testing.T, gen *stubGen) *harness {
	t.Helper()
	kv, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)
	hist := history.New(kv)
	hist.Load()
	ctrl := app.New(gen, hist, app.WithLogger(zaptest.NewLogger(t)))
	h := &harness{ctrl: ctrl, gen: gen, clip: &fakeClip{}, export: t.TempDir()}
	h.m = New(ctrl, Options{
		Logger:    zaptest.NewLogger(t),
		Clipboard: h.clip,
		ExportDir: h.export,
		Source:    form.NewSource(7),
		Now:       func() time.Time { return time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC) },
	})
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) key(k tea.KeyType) tea.Cmd { return h.send(tea.KeyMsg{Type: k}) }

func (h *harness) runes(s string) tea.Cmd {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// drain runs cmd and any batched commands, returning the produced messages.
// Only call it on commands that do not sleep.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func only[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("no %T in %v", zero, msgs)
	return zero
}

// submitInspired fills the form with an example and generates.
func (h *harness) submitInspired(t *testing.T) {
	t.Helper()
	h.key(tea.KeyCtrlR)
	sub := only[submitMsg](t, drain(h.key(tea.KeyCtrlS)))
	cmd := h.send(sub)
	require.Equal(t, model.StatusGenerating, h.m.Status())
	h.send(only[planGeneratedMsg](t, drain(cmd)))
}

func TestIncompleteFormDoesNotSubmit(t *testing.T) {
	h := newHarness(t, &stubGen{plan: eightSections()})
	h.runes("Acme")

	cmd := h.key(tea.KeyCtrlS)
	assert.Nil(t, cmd)
	assert.Equal(t, model.StatusInput, h.m.Status())
	assert.Equal(t, "Acme", h.m.form.values().BusinessName)
	assert.Contains(t, h.m.form.hint, "Industry")
	assert.Contains(t, h.m.View(), "Please fill in")
	assert.Equal(t, 0, h.gen.calls)
}

func TestInspireFillsEveryField(t *testing.T) {
	h := newHarness(t, &stubGen{})
	h.key(tea.KeyCtrlR)

	got := h.m.form.values()
	assert.True(t, form.Ready(got))
	assert.Contains(t, form.Examples, got)
}

func TestSubmitGeneratesAndShowsPlan(t *testing.T) {
	h := newHarness(t, &stubGen{plan: eightSections()})
	h.submitInspired(t)

	assert.Equal(t, model.StatusComplete, h.m.Status())
	assert.Equal(t, 1, h.gen.calls)
	assert.Len(t, h.ctrl.History(), 1)
	assert.Len(t, h.m.plan.sidebar.Items(), 8)
	assert.Contains(t, h.m.View(), h.ctrl.BusinessName())
}

func TestSecondSubmitWhileGeneratingIsIgnored(t *testing.T) {
	h := newHarness(t, &stubGen{plan: eightSections()})
	h.key(tea.KeyCtrlR)
	sub := only[submitMsg](t, drain(h.key(tea.KeyCtrlS)))

	first := h.send(sub)
	second := h.send(sub)
	assert.Nil(t, second)
	assert.Nil(t, h.key(tea.KeyCtrlS))

	h.send(only[planGeneratedMsg](t, drain(first)))
	assert.Equal(t, 1, h.gen.calls)
	assert.Len(t, h.ctrl.History(), 1)
}

func TestGeneratingViewNamesTheBusiness(t *testing.T) {
	h := newHarness(t, &stubGen{plan: eightSections()})
	h.key(tea.KeyCtrlR)
	h.send(only[submitMsg](t, drain(h.key(tea.KeyCtrlS))))

	view := h.m.View()
	assert.Contains(t, view, "Architecting Your Plan")
	assert.Contains(t, view, "constructing your "+h.ctrl.BusinessName()+" strategy")
}

func TestFailureShowsErrorAndRetryClearsForm(t *testing.T) {
	h := newHarness(t, &stubGen{err: errors.New("quota exceeded")})
	h.submitInspired(t)

	require.Equal(t, model.StatusError, h.m.Status())
	view := h.m.View()
	assert.Contains(t, view, "Generation Failed")
	assert.Contains(t, view, "quota exceeded")
	assert.Empty(t, h.ctrl.History())

	h.key(tea.KeyEnter)
	assert.Equal(t, model.StatusInput, h.m.Status())
	assert.Equal(t, model.BusinessInput{}, h.m.form.values())
}

func TestPlanNavigation(t *testing.T) {
	h := newHarness(t, &stubGen{plan: eightSections()})
	h.submitInspired(t)

	assert.Equal(t, 0, h.m.plan.v.Active())
	h.key(tea.KeyDown)
	assert.Equal(t, 1, h.m.plan.v.Active())
	h.runes("j")
	assert.Equal(t, 2, h.m.plan.v.Active())
	h.runes("k")
	assert.Equal(t, 1, h.m.plan.v.Active())
	h.runes("8")
	assert.Equal(t, 7, h.m.plan.v.Active())
	assert.Equal(t, 7, h.m.plan.sidebar.Index())
	h.key(tea.KeyDown)
	assert.Equal(t, 7, h.m.plan.v.Active())
	h.runes("9")
	assert.Equal(t, 7, h.m.plan.v.Active())
}

func TestCopyActiveSection(t *testing.T) {
	h := newHarness(t, &stubGen{plan: eightSections()})
	h.submitInspired(t)
	h.runes("2")
	h.runes("c")

	assert.Equal(t, "Company Overview body", h.clip.text)
	assert.Contains(t, h.m.plan.flash, "Copied")
}

func TestMarkdownAndPrintExports(t *testing.T) {
	h := newHarness(t, &stubGen{plan: eightSections()})
	h.submitInspired(t)

	h.runes("m")
	entries, err := os.ReadDir(h.export)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_Business_Plan.md"))

	h.runes("p")
	assert.True(t, h.m.plan.printing)
	matches, err := filepath.Glob(filepath.Join(h.export, "*.html"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	h.runes("p")
	assert.False(t, h.m.plan.printing)
}

func TestResetReturnsToEmptyForm(t *testing.T) {
	h := newHarness(t, &stubGen{plan: eightSections()})
	h.submitInspired(t)

	h.send(only[resetMsg](t, drain(h.runes("r"))))
	assert.Equal(t, model.StatusInput, h.m.Status())
	assert.Equal(t, model.BusinessInput{}, h.m.form.values())
	assert.Len(t, h.ctrl.History(), 1)
}

func TestHistoryDrawerLoadsWithoutGenerating(t *testing.T) {
	h := newHarness(t, &stubGen{plan: eightSections()})
	h.submitInspired(t)
	name := h.ctrl.BusinessName()
	h.send(only[resetMsg](t, drain(h.runes("r"))))

	h.key(tea.KeyCtrlO)
	require.True(t, h.m.drawerOpen)
	assert.Contains(t, h.m.View(), name)

	h.send(only[loadHistoryMsg](t, drain(h.key(tea.KeyEnter))))
	assert.False(t, h.m.drawerOpen)
	assert.Equal(t, model.StatusComplete, h.m.Status())
	assert.Equal(t, name, h.ctrl.BusinessName())
	assert.Equal(t, 1, h.gen.calls)
}

func TestHistoryDrawerDelete(t *testing.T) {
	h := newHarness(t, &stubGen{plan: eightSections()})
	h.submitInspired(t)

	h.runes("h")
	require.True(t, h.m.drawerOpen)
	h.send(only[deleteHistoryMsg](t, drain(h.runes("d"))))
	assert.Empty(t, h.ctrl.History())
	assert.Contains(t, h.m.View(), "No saved plans yet")
	assert.Equal(t, model.StatusComplete, h.m.Status())

	h.send(only[closeHistoryMsg](t, drain(h.key(tea.KeyEsc))))
	assert.False(t, h.m.drawerOpen)
}

func TestHistoryDrawerTreatsQAsPlainKey(t *testing.T) {
	h := newHarness(t, &stubGen{plan: eightSections()})
	h.submitInspired(t)
	h.send(only[resetMsg](t, drain(h.runes("r"))))

	h.key(tea.KeyCtrlO)
	require.True(t, h.m.drawerOpen)
	for _, msg := range drain(h.runes("q")) {
		assert.NotEqual(t, tea.QuitMsg{}, msg)
	}
	assert.True(t, h.m.drawerOpen)
	assert.Equal(t, model.StatusInput, h.m.Status())
}

func TestHistoryDrawerEscClearsFilterFirst(t *testing.T) {
	h := newHarness(t, &stubGen{plan: eightSections()})
	h.submitInspired(t)
	name := h.ctrl.BusinessName()

	h.runes("h")
	require.True(t, h.m.drawerOpen)
	h.m.drawer.list.SetFilterText(name[:3])
	require.Equal(t, list.FilterApplied, h.m.drawer.list.FilterState())

	for _, msg := range drain(h.key(tea.KeyEsc)) {
		assert.NotEqual(t, closeHistoryMsg{}, msg)
	}
	assert.True(t, h.m.drawerOpen)
	assert.Equal(t, list.Unfiltered, h.m.drawer.list.FilterState())

	h.send(only[closeHistoryMsg](t, drain(h.key(tea.KeyEsc))))
	assert.False(t, h.m.drawerOpen)
}

func TestQuit(t *testing.T) {
	h := newHarness(t, &stubGen{})
	cmd := h.key(tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHistoryItemDescription(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 0, 0, time.Local)
	it := historyItem{saved: model.SavedPlan{BusinessName: "Acme", CreatedAt: at.UnixMilli()}}
	assert.Equal(t, "Acme", it.Title())
	assert.Equal(t, "Mar 9, 2024 • 14:05", it.Description())
}
