package linkedin

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fadilmartias/linkedin-autoapply/internal/browser"
	"github.com/fadilmartias/linkedin-autoapply/internal/model"
)

// MaxSteps bounds the number of modal pages walked per application.
const MaxSteps = 7

type ModalState int

const (
	Stepping ModalState = iota
	Applied
	Failed
)

// Observation is what a step sees after uploading and auto-filling.
type Observation struct {
	Submit          bool
	Review          bool
	Continue        bool
	ValidationError bool
}

// Transition is the outcome of one step: which button to press and where the
// modal ends up.
type Transition struct {
	State  ModalState
	Click  string
	Status model.ApplicationStatus
}

// Next decides a step. Submit beats Review beats Continue.
func Next(obs Observation) Transition {
	switch {
	case obs.Submit:
		return Transition{State: Applied, Click: SelSubmit, Status: model.StatusApplied}
	case obs.Review:
		return Transition{State: Stepping, Click: SelReview}
	case obs.Continue && obs.ValidationError:
		return Transition{State: Failed, Status: model.StatusFailedCustomQuestionnaire}
	case obs.Continue:
		return Transition{State: Stepping, Click: SelContinue}
	default:
		return Transition{State: Failed, Status: model.StatusFailedUnknownState}
	}
}

// Workflow walks an open Easy Apply modal.
type Workflow struct {
	page   browser.Page
	timing Timing
}

func NewWorkflow(page browser.Page, timing Timing) *Workflow {
	return &Workflow{page: page, timing: timing}
}

// Run drives the modal until it is submitted or gives up. The modal is closed
// exactly once on every outcome.
func (w *Workflow) Run(ctx context.Context, resumePath string) (status model.ApplicationStatus) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("✗ [modal] panic: %v", r)
			status = model.StatusFailedException
		}
		w.Close(ctx)
	}()

	for step := 1; step <= MaxSteps; step++ {
		t, err := w.step(ctx, resumePath)
		if err != nil {
			log.Printf("✗ [modal] step %d: %v", step, err)
			return model.StatusFailedException
		}
		if t.State != Stepping {
			return t.Status
		}
	}
	return model.StatusFailedTooManySteps
}

func (w *Workflow) step(ctx context.Context, resumePath string) (Transition, error) {
	if err := pause(ctx, w.timing.StepSettle); err != nil {
		return Transition{}, err
	}

	upload, err := w.page.Visible(ctx, SelFileInput)
	if err != nil {
		return Transition{}, err
	}
	if upload {
		abs, err := filepath.Abs(resumePath)
		if err != nil {
			return Transition{}, fmt.Errorf("resolve resume path: %w", err)
		}
		if err := w.page.SetFiles(ctx, SelFileInput, abs); err != nil {
			return Transition{}, err
		}
		_ = pause(ctx, w.timing.ActionSettle)
	}

	AutoFill(ctx, w.page)

	obs, err := w.observe(ctx)
	if err != nil {
		return Transition{}, err
	}
	t := Next(obs)
	if t.Click != "" {
		if err := w.page.Click(ctx, t.Click); err != nil {
			return Transition{}, err
		}
		_ = pause(ctx, w.timing.ActionSettle)
	}
	return t, nil
}

func (w *Workflow) observe(ctx context.Context) (Observation, error) {
	var obs Observation
	var err error
	if obs.Submit, err = w.page.Visible(ctx, SelSubmit); err != nil || obs.Submit {
		return obs, err
	}
	if obs.Review, err = w.page.Visible(ctx, SelReview); err != nil || obs.Review {
		return obs, err
	}
	if obs.Continue, err = w.page.Visible(ctx, SelContinue); err != nil || !obs.Continue {
		return obs, err
	}
	obs.ValidationError, err = w.page.Visible(ctx, SelValidationError)
	return obs, err
}

// Close dismisses the modal: Escape a few times, then the dismiss button, then
// the discard confirmation. Failures are only logged.
func (w *Workflow) Close(ctx context.Context) {
	for i := 0; i < 3; i++ {
		if err := w.page.PressKey(ctx, browser.KeyEscape); err != nil {
			log.Printf("⚠ [modal] escape: %v", err)
		}
		_ = pause(ctx, w.timing.EscapeGap)
	}
	for _, sel := range []string{SelDismiss, SelDiscard} {
		visible, err := w.page.Visible(ctx, sel)
		if err != nil {
			log.Printf("⚠ [modal] check %s: %v", sel, err)
			continue
		}
		if !visible {
			continue
		}
		if err := w.page.Click(ctx, sel); err != nil {
			log.Printf("⚠ [modal] click %s: %v", sel, err)
		}
		_ = pause(ctx, w.timing.ActionSettle)
	}
}
