package linkedin

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/linkedin-autoapply/internal/browser/browsertest"
	"github.com/fadilmartias/linkedin-autoapply/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	company, title, link string
	status               model.ApplicationStatus
}

type fakeRecorder struct{ calls []recorded }

func (r *fakeRecorder) Record(_ context.Context, company, title, link string, status model.ApplicationStatus) {
	r.calls = append(r.calls, recorded{company, title, link, status})
}

type fakeResumes struct {
	descriptions []string
	renderOK     bool
}

func (f *fakeResumes) Tailor(_ context.Context, jd string) string {
	f.descriptions = append(f.descriptions, jd)
	return "tailored"
}

func (f *fakeResumes) Render(string, string) bool { return f.renderOK }

func resultsPage(cards int) *browsertest.Page {
	page := browsertest.New()
	page.Show(SelResultsReady, SelResultsList)
	page.Counts[SelJobCard] = cards
	return page
}

func TestProcessKeywordAppliesUpToLimit(t *testing.T) {
	page := resultsPage(3)
	page.Texts[SelJobTitle] = " Go Engineer "
	page.Texts[SelCompany] = "Acme"
	page.Texts[SelDescription] = "We use Go"
	page.Show(SelJobTitle, SelCompany, SelDescription, SelApplyButton, SelSubmit)
	page.CurrentURL = "https://www.linkedin.com/jobs/view/1"

	rec := &fakeRecorder{}
	resumes := &fakeResumes{renderOK: true}
	it := NewIterator(page, resumes, rec, "cv.pdf", Timing{})

	applied := it.ProcessKeyword(context.Background(), "Go", "Remote", 2)

	assert.Equal(t, 2, applied)
	require.Len(t, rec.calls, 2)
	assert.Equal(t, recorded{"Acme", "Go Engineer", SearchURL("Go", "Remote"), model.StatusApplied}, rec.calls[0])
	assert.Equal(t, []string{"We use Go", "We use Go"}, resumes.descriptions)
	assert.Equal(t, 0, page.ClickCount(SelJobCard+"[2]"))
}

func TestProcessKeywordDefaultsAndFailedCardsDoNotConsumeQuota(t *testing.T) {
	page := resultsPage(2)
	page.Show(SelApplyButton, SelContinue, SelValidationError)

	rec := &fakeRecorder{}
	it := NewIterator(page, &fakeResumes{}, rec, "cv.pdf", Timing{})

	applied := it.ProcessKeyword(context.Background(), "Go", "Remote", 1)

	assert.Equal(t, 0, applied)
	require.Len(t, rec.calls, 2)
	for _, c := range rec.calls {
		assert.Equal(t, model.DefaultCompany, c.company)
		assert.Equal(t, model.DefaultJobTitle, c.title)
		assert.Equal(t, model.StatusFailedCustomQuestionnaire, c.status)
	}
}

func TestProcessKeywordIsolatesCardFaults(t *testing.T) {
	page := resultsPage(2)
	page.Fail(SelJobCard+"[0]", errors.New("stale element"))
	page.Show(SelApplyButton, SelSubmit)

	rec := &fakeRecorder{}
	it := NewIterator(page, &fakeResumes{renderOK: true}, rec, "cv.pdf", Timing{})

	assert.Equal(t, 1, it.ProcessKeyword(context.Background(), "Go", "Remote", 5))
	assert.Len(t, rec.calls, 1)
}

func TestProcessKeywordSearchFailureYieldsZero(t *testing.T) {
	page := browsertest.New()
	page.Fail(SelJobsNav, errors.New("offline"))

	rec := &fakeRecorder{}
	it := NewIterator(page, &fakeResumes{}, rec, "cv.pdf", Timing{})

	assert.Equal(t, 0, it.ProcessKeyword(context.Background(), "Go", "Remote", 5))
	assert.Empty(t, rec.calls)
}

func TestProcessKeywordFallsBackToButtonText(t *testing.T) {
	page := resultsPage(1)
	page.ByText[SelButton+"|"+EasyApplyText] = "#apply"
	page.Show("#apply", SelSubmit)

	rec := &fakeRecorder{}
	it := NewIterator(page, &fakeResumes{}, rec, "cv.pdf", Timing{})

	assert.Equal(t, 1, it.ProcessKeyword(context.Background(), "Go", "Remote", 1))
	assert.Equal(t, 1, page.ClickCount("#apply"))
}
