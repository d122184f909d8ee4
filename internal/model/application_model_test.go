package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Acme Corp":           "acme_corp",
		"  Senior  Java Dev ": "senior_java_dev",
		"C++ / Go (Remote)":   "c_go_remote",
		"":                    "unknown",
		"!!!":                 "unknown",
		"Ünïcode GmbH":        "ünïcode_gmbh",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func TestApplicationKey(t *testing.T) {
	a := &Application{Company: "Acme, Inc.", JobTitle: "Backend Engineer - Java"}
	assert.Equal(t, "acme_inc_backend_engineer_java", a.DocumentKey())
	assert.Equal(t, a.DocumentKey(), ApplicationKey("ACME inc", "backend engineer java"))
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, StatusApplied.IsApplied())
	assert.False(t, StatusApplied.IsFailure())
	assert.False(t, StatusSkippedAlreadyApplied.IsFailure())
	for _, s := range []ApplicationStatus{
		StatusFailedNoButton, StatusFailedCustomQuestionnaire, StatusFailedUnknownState,
		StatusFailedTooManySteps, StatusFailedException,
	} {
		assert.True(t, s.IsFailure(), s)
		assert.False(t, s.IsApplied(), s)
	}
}
