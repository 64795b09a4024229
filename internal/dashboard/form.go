package dashboard

import (
	"strings"

	"github.com/portfolio-suite/admin-dashboard/internal/portfolio"
	"github.com/portfolio-suite/admin-dashboard/internal/portfolio/domain"
)

// FormDraft is the project form's working copy. It round-trips through
// hidden fields between tag-edit actions so entered data survives without
// any server-held draft state.
type FormDraft struct {
	ID            string
	Title         string
	DescriptionEn string
	DescriptionID string
	Technologies  []string
	DemoURL       string
	GithubURL     string
	Featured      bool
	ExistingImage string // URL of the already-uploaded image, if any
	TechInput     string // pending value of the tag input
}

// IsEdit reports whether the draft targets an existing project.
func (d FormDraft) IsEdit() bool { return d.ID != "" }

// Fields converts the draft into the client's scalar fields.
func (d *FormDraft) Fields() portfolio.ProjectFields {
	return portfolio.ProjectFields{
		Title:         d.Title,
		DescriptionEn: d.DescriptionEn,
		DescriptionID: d.DescriptionID,
		Technologies:  d.Technologies,
		DemoURL:       d.DemoURL,
		GithubURL:     d.GithubURL,
		Featured:      d.Featured,
	}
}

// DraftFromProject pre-populates the form for edit mode.
func DraftFromProject(p domain.Project) FormDraft {
	return FormDraft{
		ID:            p.ID,
		Title:         p.Title,
		DescriptionEn: p.DescriptionEn,
		DescriptionID: p.DescriptionID,
		Technologies:  append([]string(nil), p.Technologies...),
		DemoURL:       p.DemoURL,
		GithubURL:     p.GithubURL,
		Featured:      p.Featured,
		ExistingImage: p.Image,
	}
}

// AddTech appends a technology tag. Blank input and duplicates are no-ops.
func AddTech(techs []string, input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return techs
	}
	for _, t := range techs {
		if t == input {
			return techs
		}
	}
	return append(techs, input)
}

// RemoveTech removes a tag by value.
func RemoveTech(techs []string, target string) []string {
	out := techs[:0]
	for _, t := range techs {
		if t != target {
			out = append(out, t)
		}
	}
	return out
}

// MutationErrorMessage maps known backend statuses to user-facing messages,
// falling back to the error's own text.
func MutationErrorMessage(err error) string {
	switch portfolio.StatusOf(err) {
	case 400:
		return "Validation error. Please check all required fields."
	case 401:
		return "Unauthorized. Please login again."
	case 413:
		return "Image file is too large. Maximum 5MB allowed."
	}
	if err != nil {
		return err.Error()
	}
	return "Something went wrong"
}
