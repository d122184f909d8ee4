package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/linkedin-autoapply/internal/browser"
	"github.com/fadilmartias/linkedin-autoapply/internal/browser/browsertest"
	"github.com/fadilmartias/linkedin-autoapply/internal/config"
	"github.com/fadilmartias/linkedin-autoapply/internal/linkedin"
	"github.com/fadilmartias/linkedin-autoapply/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryLog struct{ rows []model.Application }

func (l *memoryLog) Append(_ context.Context, app *model.Application) error {
	l.rows = append(l.rows, *app)
	return nil
}

type staticResumes struct{}

func (staticResumes) Tailor(context.Context, string) string { return "resume" }
func (staticResumes) Render(string, string) bool            { return true }

type harness struct {
	page *browsertest.Page
	log  *memoryLog
	uc   *ApplyUsecase
}

func newHarness(cards int) *harness {
	page := browsertest.New()
	page.Show(linkedin.SelResultsReady)
	page.Counts[linkedin.SelJobCard] = cards
	page.Texts[linkedin.SelCompany] = "Acme"
	page.Texts[linkedin.SelJobTitle] = "Java Developer"
	page.Show(linkedin.SelCompany, linkedin.SelJobTitle)

	tabular := &memoryLog{}
	runID := uuid.New()
	recorder := NewRecorderUsecase(tabular, runID)
	session := linkedin.NewSession(page, config.LinkedInConfig{SessionCookie: "token"}, linkedin.Timing{})
	iterator := linkedin.NewIterator(page, staticResumes{}, recorder, "cv.pdf", linkedin.Timing{})
	return &harness{page: page, log: tabular, uc: NewApplyUsecase(session, iterator, runID)}
}

func TestRunNoApplyButton(t *testing.T) {
	h := newHarness(1)

	summary, err := h.uc.Run(context.Background(), model.SearchCriteria{Keywords: []string{"Java"}, Location: "Remote", DailyLimit: 1})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Applied)
	require.Len(t, h.log.rows, 1)
	assert.Equal(t, model.StatusFailedNoButton, h.log.rows[0].Status)
	assert.Equal(t, "Acme", h.log.rows[0].Company)
}

func TestRunAlreadyAppliedIsSkipped(t *testing.T) {
	h := newHarness(2)
	h.page.OnClick[linkedin.SelJobCard+"[0]"] = func(p *browsertest.Page) {
		p.Show(linkedin.SelAlreadyApplied)
		p.Hide(linkedin.SelApplyButton, linkedin.SelSubmit)
	}
	h.page.OnClick[linkedin.SelJobCard+"[1]"] = func(p *browsertest.Page) {
		p.Hide(linkedin.SelAlreadyApplied)
		p.Show(linkedin.SelApplyButton, linkedin.SelSubmit)
	}

	summary, err := h.uc.Run(context.Background(), model.SearchCriteria{Keywords: []string{"Java"}, Location: "Remote", DailyLimit: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Applied)
	require.Len(t, h.log.rows, 1, "the skipped card is not recorded")
	assert.Equal(t, model.StatusApplied, h.log.rows[0].Status)
}

func TestRunSubmitOnFirstStep(t *testing.T) {
	h := newHarness(1)
	h.page.Show(linkedin.SelApplyButton, linkedin.SelSubmit)

	summary, err := h.uc.Run(context.Background(), model.SearchCriteria{Keywords: []string{"Java"}, Location: "Remote", DailyLimit: 5})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Applied)
	assert.Equal(t, 1, h.page.ClickCount(linkedin.SelSubmit))
	assert.Equal(t, 3, h.page.KeyCount(browser.KeyEscape), "close sequence invoked once")
	require.Len(t, h.log.rows, 1)
	assert.Equal(t, summary.RunID, h.log.rows[0].RunID)
}

func TestRunQuotaSpansKeywords(t *testing.T) {
	h := newHarness(3)
	h.page.Show(linkedin.SelApplyButton, linkedin.SelSubmit)

	summary, err := h.uc.Run(context.Background(), model.SearchCriteria{Keywords: []string{"Java", "Kotlin", "Go"}, Location: "Remote", DailyLimit: 4})
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Applied)
	assert.Equal(t, []KeywordResult{{"Java", 3}, {"Kotlin", 1}}, summary.Keywords)
	assert.Len(t, h.log.rows, 4)
}

func TestRunLoginFailureIsFatal(t *testing.T) {
	page := browsertest.New()
	page.OnNavigate = func(p *browsertest.Page, url string) { p.CurrentURL = linkedin.LoginURL }
	recorder := NewRecorderUsecase(&memoryLog{}, uuid.New())
	session := linkedin.NewSession(page, config.LinkedInConfig{}, linkedin.Timing{})
	iterator := linkedin.NewIterator(page, staticResumes{}, recorder, "cv.pdf", linkedin.Timing{})

	_, err := NewApplyUsecase(session, iterator, uuid.New()).Run(context.Background(), model.SearchCriteria{Keywords: []string{"Java"}, DailyLimit: 1})
	assert.ErrorIs(t, err, linkedin.ErrAuthentication)
}
