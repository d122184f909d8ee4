package linkedin

// CSS selectors for LinkedIn's DOM. They change often; keep them all here.
const (
	FeedURL  = "https://www.linkedin.com/feed/"
	LoginURL = "https://www.linkedin.com/login"
	JobsURL  = "https://www.linkedin.com/jobs/search/"

	SessionCookieName   = "li_at"
	SessionCookieDomain = ".www.linkedin.com"

	SelGlobalSearch = "input[placeholder='Search']"
	SelUsername     = "input#username"
	SelPassword     = "input#password"
	SelLoginSubmit  = "button[type='submit']"
	SelChallenge    = "#captcha-internal, form#two-step-challenge, input[name='pin'], iframe[src*='captcha']"

	SelResultsReady    = ".job-card-container, .scaffold-layout__list-container, .jobs-search-results-list"
	SelResultsFallback = ".scaffold-layout__list-container, .job-card-container"
	SelJobsNav         = "a[href*='/jobs']"
	SelSearchBoxLabel  = "input.jobs-search-box__text-input[aria-label='Search by title, skill, or company']"
	SelSearchBox       = "input.jobs-search-box__text-input"
	SelButton          = "button"

	SelResultsList    = ".scaffold-layout__list-container"
	SelJobCard        = ".job-card-container"
	SelAlreadyApplied = ".artdeco-inline-feedback--success"
	SelJobTitle       = ".job-details-jobs-unified-top-card__job-title-link, .job-details-jobs-unified-top-card__job-title h1"
	SelCompany        = ".job-details-jobs-unified-top-card__company-name, .job-details-jobs-unified-top-card__primary-description span:first-child"
	SelDescription    = "article.jobs-description__container"
	SelApplyButton    = "button.jobs-apply-button[aria-label*='Easy Apply']"

	SelFileInput       = "input[type='file']"
	SelSubmit          = "button[aria-label='Submit application']"
	SelReview          = "button[aria-label='Review your application']"
	SelContinue        = "button[aria-label='Continue to next step']"
	SelValidationError = ".artdeco-inline-feedback--error"
	SelDismiss         = "button[aria-label='Dismiss']"
	SelDiscard         = "button[data-control-name='discard_application_confirm_btn']"

	EasyApplyText = "Easy Apply"
)
