package linkedin

import (
	"context"
	"log"
	"strings"

	"github.com/fadilmartias/linkedin-autoapply/internal/browser"
)

type fillRule struct {
	name  string
	match func(label string) bool
	value string
}

func containsAll(words ...string) func(string) bool {
	return func(label string) bool {
		for _, w := range words {
			if !strings.Contains(label, w) {
				return false
			}
		}
		return true
	}
}

func containsAny(words ...string) func(string) bool {
	return func(label string) bool {
		for _, w := range words {
			if strings.Contains(label, w) {
				return true
			}
		}
		return false
	}
}

// Evaluated top to bottom, first match wins.
var fillRules = []fillRule{
	{"experience-months", containsAll("experience", "months"), "0"},
	{"experience", containsAll("experience"), "2"},
	{"expected-salary", func(l string) bool {
		return strings.Contains(l, "expected") && containsAny("salary", "ctc", "compensation")(l)
	}, "500000"},
	{"current-salary", containsAny("ctc", "current salary", "annual"), "350000"},
	{"notice-period", containsAny("notice", "join"), "0"},
}

// AnswerFor returns the value to type into a field with the given label.
func AnswerFor(label string) (string, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return "", false
	}
	for _, r := range fillRules {
		if r.match(label) {
			return r.value, true
		}
	}
	return "", false
}

// ChooseYes picks the option reading exactly "yes", else the first one that
// mentions it. It returns -1 when there is none.
func ChooseYes(options []browser.Option) int {
	for i, o := range options {
		if strings.EqualFold(strings.TrimSpace(o.Text), "yes") {
			return i
		}
	}
	for i, o := range options {
		if strings.Contains(strings.ToLower(o.Text), "yes") {
			return i
		}
	}
	return -1
}

// ChooseYesValue returns the value of a dropdown option reading exactly "yes".
func ChooseYesValue(options []browser.Option) (string, bool) {
	for _, o := range options {
		if strings.EqualFold(strings.TrimSpace(o.Text), "yes") {
			return o.Value, true
		}
	}
	return "", false
}

// AutoFill answers the common screening questions on the current step. Every
// failure is logged and skipped.
func AutoFill(ctx context.Context, page browser.Page) {
	if fields, err := page.TextFields(ctx); err != nil {
		log.Printf("⚠ [autofill] scan fields: %v", err)
	} else {
		for _, f := range fields {
			if strings.TrimSpace(f.Value) != "" {
				continue
			}
			value, ok := AnswerFor(f.Label)
			if !ok {
				continue
			}
			if err := page.Fill(ctx, f.Selector, value); err != nil {
				log.Printf("⚠ [autofill] %q: %v", f.Label, err)
			}
		}
	}

	if groups, err := page.RadioGroups(ctx); err != nil {
		log.Printf("⚠ [autofill] scan radios: %v", err)
	} else {
		for _, g := range groups {
			if g.Checked {
				continue
			}
			if i := ChooseYes(g.Options); i >= 0 {
				if err := page.Click(ctx, g.Options[i].Selector); err != nil {
					log.Printf("⚠ [autofill] radio %s: %v", g.Selector, err)
				}
			}
		}
	}

	if dropdowns, err := page.Dropdowns(ctx); err != nil {
		log.Printf("⚠ [autofill] scan selects: %v", err)
	} else {
		for _, d := range dropdowns {
			if value, ok := ChooseYesValue(d.Options); ok {
				if err := page.SelectOption(ctx, d.Selector, value); err != nil {
					log.Printf("⚠ [autofill] select %s: %v", d.Selector, err)
				}
			}
		}
	}
}
