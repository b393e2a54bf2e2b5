// Package app holds the application state machine:
//
//	INPUT --Begin--> GENERATING --Finish(ok)--> COMPLETE --Reset--> INPUT
//	                            \-Finish(err)-> ERROR    --Retry--> INPUT
//
// plus LoadFromHistory, which jumps straight to COMPLETE with a saved plan.
// It has no UI code; the TUI and the CLI both drive it.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Makepad-fr/robo/internal/generator"
	"github.com/Makepad-fr/robo/internal/history"
	"github.com/Makepad-fr/robo/internal/model"
)

var (
	// ErrBusy is returned when a generation is already running.
	ErrBusy = errors.New("app: a plan is already being generated")
	// ErrInvalidTransition is returned when an action is not allowed in the
	// current state.
	ErrInvalidTransition = errors.New("app: invalid state transition")
	// ErrNotFound is returned for unknown history ids.
	ErrNotFound = errors.New("app: saved plan not found")
)

// Generator produces a plan. generator.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, in model.BusinessInput) (model.BusinessPlan, error)
}

// Controller is the single writer of application state and history.
type Controller struct {
	gen  Generator
	hist *history.Store
	log  *zap.Logger
	now  func() time.Time

	status       model.Status
	plan         model.BusinessPlan
	businessName string
	errMsg       string
	lastErr      error
	submittedAt  time.Time
	saved        *model.SavedPlan
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New returns a controller in INPUT. hist should already be loaded.
func New(gen Generator, hist *history.Store, opts ...Option) *Controller {
	c := &Controller{
		gen:    gen,
		hist:   hist,
		log:    zap.NewNop(),
		now:    time.Now,
		status: model.StatusInput,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) Status() model.Status         { return c.status }
func (c *Controller) Plan() model.BusinessPlan     { return c.plan }
func (c *Controller) BusinessName() string         { return c.businessName }
func (c *Controller) ErrorMessage() string         { return c.errMsg }
func (c *Controller) Err() error                   { return c.lastErr }
func (c *Controller) SubmittedAt() time.Time       { return c.submittedAt }
func (c *Controller) History() []model.SavedPlan   { return c.hist.List() }
func (c *Controller) HistoryStore() *history.Store { return c.hist }
func (c *Controller) Generator() Generator         { return c.gen }

// LastSaved is the history entry written by the last successful generation.
func (c *Controller) LastSaved() (model.SavedPlan, bool) {
	if c.saved == nil {
		return model.SavedPlan{}, false
	}
	return *c.saved, true
}

// Begin moves INPUT to GENERATING. The caller must then run the generator
// and report the outcome with Finish.
func (c *Controller) Begin(data model.BusinessInput) error {
	switch c.status {
	case model.StatusGenerating:
		return ErrBusy
	case model.StatusInput:
	default:
		return fmt.Errorf("%w: submit from %s", ErrInvalidTransition, c.status)
	}
	c.status = model.StatusGenerating
	c.businessName = data.BusinessName
	c.errMsg = ""
	c.lastErr = nil
	c.saved = nil
	c.submittedAt = c.now()
	c.log.Info("generation started", zap.String("business", data.BusinessName))
	return nil
}

// Finish ends a generation started with Begin. On success the plan is shown
// and appended to history; a history write failure is logged and does not
// hide the plan.
func (c *Controller) Finish(plan model.BusinessPlan, err error) error {
	if c.status != model.StatusGenerating {
		return fmt.Errorf("%w: finish from %s", ErrInvalidTransition, c.status)
	}
	if err != nil {
		c.status = model.StatusError
		c.lastErr = err
		c.errMsg = generator.UserMessage(err)
		c.log.Warn("generation failed", zap.String("business", c.businessName), zap.Error(err))
		return nil
	}
	c.plan = plan
	c.status = model.StatusComplete
	saved, herr := c.hist.Append(c.businessName, plan)
	if herr != nil {
		c.log.Error("history append failed", zap.String("business", c.businessName), zap.Error(herr))
		return nil
	}
	c.saved = &saved
	c.log.Info("generation complete", zap.String("business", c.businessName), zap.Int("sections", len(plan)))
	return nil
}

// Submit runs a whole generation synchronously.
func (c *Controller) Submit(ctx context.Context, data model.BusinessInput) error {
	if err := c.Begin(data); err != nil {
		return err
	}
	plan, err := c.gen.Generate(ctx, data)
	return c.Finish(plan, err)
}

// Retry leaves ERROR for a fresh INPUT. The business name stays for display.
func (c *Controller) Retry() error {
	if c.status != model.StatusError {
		return fmt.Errorf("%w: retry from %s", ErrInvalidTransition, c.status)
	}
	c.status = model.StatusInput
	c.errMsg = ""
	c.lastErr = nil
	return nil
}

// Reset discards the shown plan and returns to INPUT. History is untouched.
func (c *Controller) Reset() error {
	if c.status != model.StatusComplete {
		return fmt.Errorf("%w: reset from %s", ErrInvalidTransition, c.status)
	}
	c.status = model.StatusInput
	c.plan = nil
	c.businessName = ""
	c.saved = nil
	return nil
}

// LoadFromHistory shows a saved plan without generating anything.
func (c *Controller) LoadFromHistory(id string) error {
	if c.status == model.StatusGenerating {
		return ErrBusy
	}
	item, ok := c.hist.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	c.plan = item.Plan
	c.businessName = item.BusinessName
	c.errMsg = ""
	c.lastErr = nil
	c.saved = nil
	c.status = model.StatusComplete
	c.log.Info("loaded plan from history", zap.String("id", id))
	return nil
}

// DeleteHistory removes a saved plan. The plan on screen, if any, stays.
func (c *Controller) DeleteHistory(id string) error {
	return c.hist.Remove(id)
}
