package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/linkedin-autoapply/internal/util"
)

const tailorPrompt = `You are an expert technical recruiter and resume writer.
Rewrite the candidate's resume so it is tailored to the job description below.
Keep every fact truthful: do not invent employers, dates, degrees or certifications.
Reorder and rephrase experience so the most relevant work comes first, and mirror the
job description's vocabulary where the candidate genuinely has the skill.
Highlight these skills where they apply: %s.

Job description:
%s

Base resume:
%s

Output the full tailored resume as plain text only. Do not use markdown, bullets made of
asterisks, headings with '#', or any commentary before or after the resume.`

// ResumeService reads the base resume, tailors it per listing and renders the
// result. Generation faults never reach the caller: the base text is returned.
type ResumeService struct {
	basePath  string
	generator TextGenerator
	extract   func(path string) (string, error)
	render    func(text, path string) error
}

// NewResumeService builds the store. generator may be nil, in which case
// Tailor always returns the base text.
func NewResumeService(basePath string, generator TextGenerator) *ResumeService {
	return &ResumeService{
		basePath:  basePath,
		generator: generator,
		extract:   util.ExtractPDFText,
		render:    util.RenderPDF,
	}
}

// ExtractBaseText returns the text of the base resume, or "" when it cannot be
// read.
func (s *ResumeService) ExtractBaseText() string {
	text, err := s.extract(s.basePath)
	if err != nil {
		log.Printf("⚠ [resume] %v", fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, s.basePath, err))
		return ""
	}
	return text
}

func (s *ResumeService) Tailor(ctx context.Context, jobDescription string) string {
	base := s.ExtractBaseText()
	if s.generator == nil {
		return base
	}

	prompt := BuildTailorPrompt(jobDescription, base)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("⚠ [resume] tailoring failed, using base resume: %v", err)
		return base
	}
	return text
}

// Render writes text to path. It reports false instead of failing.
func (s *ResumeService) Render(text, path string) bool {
	if err := s.render(text, path); err != nil {
		log.Printf("✗ [resume] %v", err)
		return false
	}
	return true
}

func BuildTailorPrompt(jobDescription, baseResume string) string {
	words := strings.Fields(jobDescription)
	if len(words) > 5 {
		words = words[:5]
	}
	skills := strings.Join(words, ", ")
	if skills == "" {
		skills = "the role's core requirements"
	}
	return fmt.Sprintf(tailorPrompt, skills, jobDescription, baseResume)
}
