package linkedin

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/linkedin-autoapply/internal/browser"
	"github.com/fadilmartias/linkedin-autoapply/internal/browser/browsertest"
	"github.com/stretchr/testify/assert"
)

func TestAnswerFor(t *testing.T) {
	cases := []struct {
		label string
		want  string
		ok    bool
	}{
		{"How many years of experience do you have with Java?", "2", true},
		{"Experience", "2", true},
		{"Experience in months with Kafka", "0", true},
		{"Expected salary (INR)", "500000", true},
		{"Expected CTC", "500000", true},
		{"Expected total compensation", "500000", true},
		{"Current CTC", "350000", true},
		{"Current salary", "350000", true},
		{"Annual income", "350000", true},
		{"Notice period in days", "0", true},
		{"How soon can you join?", "0", true},
		{"City", "", false},
		{"", "", false},
		{"   ", "", false},
	}
	for _, tc := range cases {
		got, ok := AnswerFor(tc.label)
		assert.Equal(t, tc.ok, ok, tc.label)
		assert.Equal(t, tc.want, got, tc.label)
	}
}

func TestChooseYes(t *testing.T) {
	opts := func(texts ...string) []browser.Option {
		out := make([]browser.Option, len(texts))
		for i, text := range texts {
			out[i] = browser.Option{Selector: text, Text: text}
		}
		return out
	}
	assert.Equal(t, 1, ChooseYes(opts("No", " YES ")))
	assert.Equal(t, 2, ChooseYes(opts("No", "Yes, immediately", "yes")))
	assert.Equal(t, 0, ChooseYes(opts("Yes, with sponsorship", "No")))
	assert.Equal(t, -1, ChooseYes(opts("No", "Maybe")))
	assert.Equal(t, -1, ChooseYes(nil))
}

func TestChooseYesValue(t *testing.T) {
	v, ok := ChooseYesValue([]browser.Option{{Value: "", Text: "Select an option"}, {Value: "Yes", Text: "Yes"}, {Value: "No", Text: "No"}})
	assert.True(t, ok)
	assert.Equal(t, "Yes", v)

	_, ok = ChooseYesValue([]browser.Option{{Value: "y", Text: "Yes please"}})
	assert.False(t, ok)
}

func TestAutoFill(t *testing.T) {
	page := browsertest.New()
	page.Fields = []browser.Field{
		{Selector: "#exp", Label: "Years of Experience"},
		{Selector: "#months", Label: "Experience (months)"},
		{Selector: "#filled", Label: "Notice period", Value: "30"},
		{Selector: "#nolabel", Label: ""},
		{Selector: "#salary", Label: "Expected Salary"},
	}
	page.Radios = []browser.RadioGroup{
		{Selector: "#auth", Options: []browser.Option{{Selector: "#auth-no", Text: "No"}, {Selector: "#auth-yes", Text: "Yes"}}},
		{Selector: "#done", Checked: true, Options: []browser.Option{{Selector: "#done-yes", Text: "Yes"}}},
	}
	page.Selects = []browser.Dropdown{
		{Selector: "#relocate", Options: []browser.Option{{Value: "", Text: "Select"}, {Value: "opt-yes", Text: "Yes"}}},
		{Selector: "#level", Options: []browser.Option{{Value: "jr", Text: "Junior"}}},
	}
	page.Fail("#salary", errors.New("detached"))

	AutoFill(context.Background(), page)

	assert.Equal(t, map[string]string{"#exp": "2", "#months": "0"}, page.Filled)
	assert.Equal(t, []string{"#auth-yes"}, page.Clicks)
	assert.Equal(t, map[string]string{"#relocate": "opt-yes"}, page.Selected)
}
