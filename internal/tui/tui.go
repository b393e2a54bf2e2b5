// Package tui is the interactive Bubble Tea front end. All state changes go
// through app.Controller; the models here only hold presentation state.
package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Makepad-fr/robo/internal/app"
	"github.com/Makepad-fr/robo/internal/form"
	"github.com/Makepad-fr/robo/internal/model"
	"github.com/Makepad-fr/robo/internal/viewer"
)

// planGeneratedMsg carries the generator outcome back into Update.
type planGeneratedMsg struct {
	plan model.BusinessPlan
	err  error
}

// Options configures the TUI.
type Options struct {
	Context   context.Context
	Logger    *zap.Logger
	Clipboard viewer.Clipboard
	ExportDir string
	Source    form.Source
	Now       func() time.Time
}

// Model is the root Bubble Tea model.
type Model struct {
	ctrl *app.Controller
	opt  Options

	form    formModel
	plan    planModel
	drawer  historyModel
	spinner spinner.Model

	drawerOpen bool
	flash      string
	width      int
	height     int
}

// New builds the root model around ctrl.
func New(ctrl *app.Controller, opt Options) Model {
	if opt.Context == nil {
		opt.Context = context.Background()
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	if opt.Clipboard == nil {
		opt.Clipboard = viewer.SystemClipboard
	}
	if opt.ExportDir == "" {
		opt.ExportDir = "."
	}
	if opt.Source == nil {
		opt.Source = form.NewSource(uint64(time.Now().UnixNano()))
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	m := Model{
		ctrl:    ctrl,
		opt:     opt,
		form:    newFormModel(opt.Source),
		drawer:  newHistoryModel(ctrl.History(), 60, 20),
		spinner: sp,
		width:   100,
		height:  30,
	}
	if ctrl.Status() == model.StatusComplete {
		m.showPlan()
	}
	return m
}

// Run starts the program on the alternate screen.
func Run(ctrl *app.Controller, opt Options) error {
	p := tea.NewProgram(New(ctrl, opt), tea.WithAltScreen(), tea.WithContext(optContext(opt)))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func optContext(opt Options) context.Context {
	if opt.Context != nil {
		return opt.Context
	}
	return context.Background()
}

func (m Model) Init() tea.Cmd { return nil }

// Status is the controller state; exposed for tests.
func (m Model) Status() model.Status { return m.ctrl.Status() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if m.drawerOpen {
			var cmd tea.Cmd
			m.drawer, cmd = m.drawer.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case submitMsg:
		return m.submit(msg.data)

	case planGeneratedMsg:
		if err := m.ctrl.Finish(msg.plan, msg.err); err != nil {
			m.opt.Logger.Warn("stale generation result", zap.Error(err))
			return m, nil
		}
		if m.ctrl.Status() == model.StatusComplete {
			m.showPlan()
			m.drawer.setItems(m.ctrl.History())
		}
		return m, nil

	case resetMsg:
		if err := m.ctrl.Reset(); err == nil {
			m.newForm()
		}
		return m, nil

	case loadHistoryMsg:
		if err := m.ctrl.LoadFromHistory(msg.id); err != nil {
			m.flash = errorStyle.Render(err.Error())
			return m, nil
		}
		m.drawerOpen = false
		m.showPlan()
		return m, nil

	case deleteHistoryMsg:
		if err := m.ctrl.DeleteHistory(msg.id); err != nil {
			m.flash = errorStyle.Render("Could not delete: " + err.Error())
		}
		m.drawer.setItems(m.ctrl.History())
		return m, nil

	case closeHistoryMsg:
		m.drawerOpen = false
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Status() != model.StatusGenerating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// cursor blinks and other component messages
	var cmd tea.Cmd
	switch m.ctrl.Status() {
	case model.StatusInput:
		m.form, cmd = m.form.Update(msg)
	case model.StatusComplete:
		m.plan, cmd = m.plan.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""
	switch m.ctrl.Status() {
	case model.StatusInput:
		// letters belong to the fields here
		if k.String() == "ctrl+o" {
			return m.openDrawer()
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(k)
		return m, cmd

	case model.StatusGenerating:
		return m, nil

	case model.StatusComplete:
		if key.Matches(k, keys.History) {
			return m.openDrawer()
		}
		var cmd tea.Cmd
		m.plan, cmd = m.plan.Update(k)
		return m, cmd

	case model.StatusError:
		switch {
		case key.Matches(k, keys.Retry):
			if err := m.ctrl.Retry(); err == nil {
				m.newForm()
			}
		case key.Matches(k, keys.History):
			return m.openDrawer()
		}
	}
	return m, nil
}

func (m Model) submit(data model.BusinessInput) (tea.Model, tea.Cmd) {
	if err := m.ctrl.Begin(data); err != nil {
		m.opt.Logger.Debug("submit ignored", zap.Error(err))
		return m, nil
	}
	gen := m.ctrl.Generator()
	ctx := m.opt.Context
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		plan, err := gen.Generate(ctx, data)
		return planGeneratedMsg{plan: plan, err: err}
	})
}

func (m Model) openDrawer() (tea.Model, tea.Cmd) {
	m.drawer.setItems(m.ctrl.History())
	m.drawerOpen = true
	return m, nil
}

func (m *Model) newForm() {
	m.form = newFormModel(m.opt.Source)
	m.layout()
}

func (m *Model) showPlan() {
	m.plan = newPlanModel(m.ctrl.Plan(), m.ctrl.BusinessName(), m.opt.Clipboard, m.opt.ExportDir, m.opt.Now)
	m.layout()
}

// layout hands the body area to the active screens.
func (m *Model) layout() {
	w := max(40, m.width-4)
	h := max(8, m.height-8)
	m.form.setWidth(w - 2)
	m.form.setHeight(h)
	if m.plan.v != nil {
		m.plan.setSize(w, h)
	}
	m.drawer.setSize(w, h)
}

func (m Model) View() string {
	var body string
	switch {
	case m.drawerOpen:
		body = m.drawer.View()
	case m.ctrl.Status() == model.StatusInput:
		body = m.form.View()
	case m.ctrl.Status() == model.StatusGenerating:
		body = m.generatingView()
	case m.ctrl.Status() == model.StatusComplete:
		body = m.plan.View()
	case m.ctrl.Status() == model.StatusError:
		body = m.errorView()
	}
	header := brandStyle.Render("Robo") + brandAccent.Render(" AI") + mutedStyle.Render("  Business Plan Architect")
	if n := len(m.ctrl.History()); n > 0 && !m.drawerOpen {
		header += mutedStyle.Render("   history: ") + accentStyle.Render(strconv.Itoa(n))
	}
	out := header + "\n\n" + body
	if m.flash != "" {
		out += "\n" + m.flash
	}
	return panelString(out)
}

func (m Model) generatingView() string {
	name := strings.TrimSpace(m.ctrl.BusinessName())
	return m.spinner.View() + " " + titleStyle.Render("Architecting Your Plan") + "\n\n" +
		mutedStyle.Render("Our AI is analyzing market data and constructing your "+name+" strategy...")
}

func (m Model) errorView() string {
	msg := m.ctrl.ErrorMessage()
	return errorBox.Render(errorStyle.Render("Generation Failed")+"\n\n"+msg) + "\n\n" +
		helpLine(keys.Retry, keys.History, keys.Quit)
}
