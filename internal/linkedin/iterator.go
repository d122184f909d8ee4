package linkedin

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/linkedin-autoapply/internal/browser"
	"github.com/fadilmartias/linkedin-autoapply/internal/model"
)

type ResumeTailor interface {
	Tailor(ctx context.Context, jobDescription string) string
	Render(text, path string) bool
}

type Recorder interface {
	Record(ctx context.Context, company, title, link string, status model.ApplicationStatus)
}

// Iterator walks the cards of a results page and applies to each one.
type Iterator struct {
	page       browser.Page
	resumes    ResumeTailor
	recorder   Recorder
	workflow   *Workflow
	resumePath string
	timing     Timing
}

func NewIterator(page browser.Page, resumes ResumeTailor, recorder Recorder, resumePath string, timing Timing) *Iterator {
	return &Iterator{
		page:       page,
		resumes:    resumes,
		recorder:   recorder,
		workflow:   NewWorkflow(page, timing),
		resumePath: resumePath,
		timing:     timing,
	}
}

// ProcessKeyword applies to at most limit listings for keyword and returns how
// many were submitted. Search failures yield 0.
func (it *Iterator) ProcessKeyword(ctx context.Context, keyword, location string, limit int) int {
	if limit <= 0 {
		return 0
	}
	log.Printf("▶ [%s] searching in %s", keyword, location)
	if err := OpenSearch(ctx, it.page, keyword, location, it.timing); err != nil {
		log.Printf("✗ [%s] %v", keyword, err)
		return 0
	}
	_ = pause(ctx, it.timing.NavSettle)

	if n, err := it.page.Count(ctx, SelResultsList); err == nil && n > 0 {
		if err := it.page.ScrollToBottom(ctx, SelResultsList); err != nil {
			log.Printf("⚠ [%s] scroll results: %v", keyword, err)
		}
		_ = pause(ctx, it.timing.ListSettle)
	}

	cards, err := it.page.Count(ctx, SelJobCard)
	if err != nil {
		log.Printf("✗ [%s] count cards: %v", keyword, err)
		return 0
	}
	log.Printf("[%s] found %d Easy Apply cards", keyword, cards)

	applied := 0
	for idx := 0; idx < cards && applied < limit; idx++ {
		if ctx.Err() != nil {
			break
		}
		status, err := it.processCard(ctx, idx)
		if err != nil {
			log.Printf("⚠ [%s] card %d: %v", keyword, idx, err)
			continue
		}
		if status.IsApplied() {
			applied++
		}
		_ = pause(ctx, it.timing.BetweenCards)
	}
	log.Printf("✓ [%s] done, applied %d", keyword, applied)
	return applied
}

func (it *Iterator) processCard(ctx context.Context, idx int) (status model.ApplicationStatus, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if err := it.page.ClickNth(ctx, SelJobCard, idx); err != nil {
		return "", err
	}
	_ = pause(ctx, it.timing.CardSettle)

	if n, err := it.page.Count(ctx, SelAlreadyApplied); err != nil {
		return "", err
	} else if n > 0 {
		log.Printf("[card %d] already applied, skipping", idx)
		return model.StatusSkippedAlreadyApplied, nil
	}

	listing, err := it.readListing(ctx)
	if err != nil {
		return "", err
	}
	log.Printf("▶ [%s] %s", listing.Company, listing.Title)

	tailored := it.resumes.Tailor(ctx, listing.Description)
	if !it.resumes.Render(tailored, it.resumePath) {
		log.Printf("⚠ [%s] resume not rendered, uploading the previous file", listing.Company)
	}

	apply := it.findApplyButton(ctx)
	if apply == "" {
		log.Printf("✗ [%s] no Easy Apply button", listing.Company)
		it.recorder.Record(ctx, listing.Company, listing.Title, listing.URL, model.StatusFailedNoButton)
		return model.StatusFailedNoButton, nil
	}
	if err := it.page.Click(ctx, apply); err != nil {
		return "", err
	}
	_ = pause(ctx, it.timing.CardSettle)

	status = it.workflow.Run(ctx, it.resumePath)
	it.recorder.Record(ctx, listing.Company, listing.Title, listing.URL, status)
	switch {
	case status.IsApplied():
		log.Printf("✓ [%s] %s", listing.Company, status)
	case status.IsFailure():
		log.Printf("✗ [%s] %s", listing.Company, status)
	default:
		log.Printf("• [%s] %s", listing.Company, status)
	}
	return status, nil
}

func (it *Iterator) readListing(ctx context.Context) (model.JobListing, error) {
	link, err := it.page.URL(ctx)
	if err != nil {
		return model.JobListing{}, err
	}
	return model.JobListing{
		Title:       it.textOr(ctx, SelJobTitle, model.DefaultJobTitle),
		Company:     it.textOr(ctx, SelCompany, model.DefaultCompany),
		URL:         link,
		Description: it.textOr(ctx, SelDescription, model.DefaultDescription),
	}, nil
}

func (it *Iterator) textOr(ctx context.Context, sel, def string) string {
	if n, err := it.page.Count(ctx, sel); err != nil || n == 0 {
		return def
	}
	text, err := it.page.Text(ctx, sel)
	if err != nil || strings.TrimSpace(text) == "" {
		return def
	}
	return strings.TrimSpace(text)
}

// findApplyButton returns a selector for a visible apply trigger, or "".
func (it *Iterator) findApplyButton(ctx context.Context) string {
	candidates := []string{}
	if n, err := it.page.Count(ctx, SelApplyButton); err == nil && n > 0 {
		candidates = append(candidates, SelApplyButton)
	}
	if sel, err := it.page.FindByText(ctx, SelButton, EasyApplyText); err == nil {
		candidates = append(candidates, sel)
	}
	for _, sel := range candidates {
		if err := it.page.WaitVisible(ctx, sel, it.timing.ApplyButtonWait); err == nil {
			return sel
		}
	}
	return ""
}
