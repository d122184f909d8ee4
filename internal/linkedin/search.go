package linkedin

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/fadilmartias/linkedin-autoapply/internal/browser"
	"github.com/fadilmartias/linkedin-autoapply/internal/model"
)

// SearchURL is the results page for keyword in location, restricted to
// Easy Apply listings.
func SearchURL(keyword, location string) string {
	q := url.Values{}
	q.Set("keywords", keyword)
	q.Set("location", location)
	q.Set("f_AL", "true")
	return JobsURL + "?" + q.Encode()
}

// OpenSearch brings up the results list. Direct navigation is tried first and
// the search box is used when it fails. If both fail a screenshot is kept.
func OpenSearch(ctx context.Context, page browser.Page, keyword, location string, timing Timing) error {
	directErr := func() error {
		if err := page.Navigate(ctx, SearchURL(keyword, location)); err != nil {
			return err
		}
		return page.WaitVisible(ctx, SelResultsReady, timing.ResultsTimeout)
	}()
	if directErr == nil {
		return nil
	}
	log.Printf("⚠ [%s] direct search failed, trying the search box: %v", keyword, directErr)

	if err := searchViaUI(ctx, page, keyword, timing); err != nil {
		shot := fmt.Sprintf("search_error_%s.png", model.Normalize(keyword))
		if serr := page.Screenshot(ctx, shot); serr != nil {
			log.Printf("⚠ [%s] screenshot: %v", keyword, serr)
		}
		return fmt.Errorf("%w: search %q: direct: %v; ui: %v", ErrNavigation, keyword, directErr, err)
	}
	return nil
}

func searchViaUI(ctx context.Context, page browser.Page, keyword string, timing Timing) error {
	if err := page.Navigate(ctx, FeedURL); err != nil {
		return err
	}
	_ = pause(ctx, timing.NavSettle)
	if err := page.Click(ctx, SelJobsNav); err != nil {
		return err
	}
	_ = pause(ctx, timing.NavSettle)

	input := SelSearchBox
	if n, err := page.Count(ctx, SelSearchBoxLabel); err == nil && n > 0 {
		input = SelSearchBoxLabel
	}
	if err := page.Fill(ctx, input, keyword); err != nil {
		return err
	}
	if err := page.PressKey(ctx, browser.KeyEnter); err != nil {
		return err
	}
	_ = pause(ctx, timing.NavSettle)

	if filter, err := page.FindByText(ctx, SelButton, EasyApplyText); err == nil {
		if err := page.Click(ctx, filter); err != nil {
			log.Printf("⚠ [%s] easy apply filter: %v", keyword, err)
		}
		_ = pause(ctx, timing.NavSettle)
	}
	return page.WaitVisible(ctx, SelResultsFallback, timing.ResultsTimeout)
}
