// Package viewer holds the read-only side of a finished plan: which section
// is on screen, copying it, and the Markdown / print exports.
package viewer

import (
	"github.com/atotto/clipboard"

	"github.com/Makepad-fr/robo/internal/model"
)

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard is the OS clipboard.
var SystemClipboard Clipboard = systemClipboard{}

// Viewer tracks the active section of one plan.
type Viewer struct {
	plan         model.BusinessPlan
	businessName string
	active       int
}

// New starts at the first section.
func New(plan model.BusinessPlan, businessName string) *Viewer {
	return &Viewer{plan: plan, businessName: businessName}
}

func (v *Viewer) Plan() model.BusinessPlan { return v.plan }
func (v *Viewer) BusinessName() string     { return v.businessName }
func (v *Viewer) Active() int              { return v.active }
func (v *Viewer) Len() int                 { return len(v.plan) }

// ActiveSection returns the section on screen; ok is false for empty plans.
func (v *Viewer) ActiveSection() (model.PlanSection, bool) {
	if v.active < 0 || v.active >= len(v.plan) {
		return model.PlanSection{}, false
	}
	return v.plan[v.active], true
}

// Select moves to section i. Out-of-range indexes are rejected.
func (v *Viewer) Select(i int) bool {
	if i < 0 || i >= len(v.plan) {
		return false
	}
	v.active = i
	return true
}

// Next moves down one section, stopping at the last.
func (v *Viewer) Next() bool { return v.Select(v.active + 1) }

// Prev moves up one section, stopping at the first.
func (v *Viewer) Prev() bool { return v.Select(v.active - 1) }

// Copy puts the active section's raw Markdown on clip. Nothing happens when
// there is no active section; copied reports whether text was written.
func (v *Viewer) Copy(clip Clipboard) (copied bool, err error) {
	sec, ok := v.ActiveSection()
	if !ok {
		return false, nil
	}
	if err := clip.WriteAll(sec.Content); err != nil {
		return false, err
	}
	return true, nil
}
