package http

import (
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-suite/admin-dashboard/internal/dashboard"
	"github.com/portfolio-suite/admin-dashboard/internal/logging"
	"github.com/portfolio-suite/admin-dashboard/internal/portfolio"
	"github.com/portfolio-suite/admin-dashboard/internal/portfolio/domain"
)

const visibleTechs = 2

type projectRow struct {
	Project      domain.Project
	VisibleTechs []string
	HiddenTechs  []string
	MoreCount    int
	Expanded     bool
	ExpandURL    string
	Created      string
}

type projectsView struct {
	pageData
	Rows        []projectRow
	Count       int
	SearchQuery string
	LoadError   string

	FormOpen  bool
	Draft     dashboard.FormDraft
	FormError string

	DeleteID    string
	DeleteTitle string
}

// projects renders the list page. The q parameter writes through the shared
// search state (last writer wins), so a search made from the navbar on any
// page lands here with the query applied.
func (h *Handler) projects(c *gin.Context) {
	token, ok := h.sessionToken(c)
	if !ok {
		return
	}

	if c.Request.URL.Query().Has("q") {
		if q := c.Query("q"); q == "" {
			h.search.ClearQuery()
		} else {
			h.search.SetQuery(q)
		}
	}

	view := h.listView(c, token)

	switch c.Query("form") {
	case "new":
		view.FormOpen = true
		view.Draft = dashboard.FormDraft{}
	case "edit":
		id := c.Query("id")
		for _, row := range view.Rows {
			if row.Project.ID == id {
				view.FormOpen = true
				view.Draft = dashboard.DraftFromProject(row.Project)
				break
			}
		}
	}

	if id := c.Query("delete"); id != "" {
		for _, row := range view.Rows {
			if row.Project.ID == id {
				view.DeleteID = id
				view.DeleteTitle = row.Project.Title
				break
			}
		}
	}

	c.HTML(http.StatusOK, "projects", view)
}

// projectForm handles every form action: tag add/remove, image removal and
// the final submit. Non-submit actions just re-render the page with the
// draft carried along; only submit reaches the backend.
func (h *Handler) projectForm(c *gin.Context) {
	token, ok := h.sessionToken(c)
	if !ok {
		return
	}

	draft := draftFromRequest(c)

	// Browsers submit only the activated button, so removeTech carries the
	// tag of the ✕ that was clicked.
	if target := c.PostForm("removeTech"); target != "" {
		draft.Technologies = dashboard.RemoveTech(draft.Technologies, target)
		h.renderFormOpen(c, token, draft, "")
		return
	}

	switch c.PostForm("action") {
	case "add-tech":
		draft.Technologies = dashboard.AddTech(draft.Technologies, draft.TechInput)
		draft.TechInput = ""
		h.renderFormOpen(c, token, draft, "")
		return

	case "remove-image":
		draft.ExistingImage = ""
		h.renderFormOpen(c, token, draft, "")
		return
	}

	payload := portfolio.MultipartPayload{
		ProjectFields: draft.Fields(),
		Image:         imageFromRequest(c),
	}

	ctx := c.Request.Context()
	var err error
	if draft.IsEdit() {
		err = h.client.UpdateProject(ctx, token, draft.ID, payload)
	} else {
		err = h.client.CreateProject(ctx, token, payload)
	}

	if err != nil {
		logging.NewLogger(ctx).LogError("project_form", err)
		h.renderFormOpen(c, token, draft, dashboard.MutationErrorMessage(err))
		return
	}

	title := "Project created successfully"
	if draft.IsEdit() {
		title = "Project updated successfully"
	}
	dashboard.SetFlash(c, dashboard.Flash{Title: title})
	c.Redirect(http.StatusFound, "/dashboard/projects")
}

// deleteProject is the confirmed second phase of deletion; the confirmation
// dialog itself never calls the backend.
func (h *Handler) deleteProject(c *gin.Context) {
	token, ok := h.sessionToken(c)
	if !ok {
		return
	}

	err := h.client.DeleteProject(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("delete_project", err)
		dashboard.SetFlash(c, dashboard.Flash{
			Title:       "Error",
			Description: err.Error(),
			Variant:     "destructive",
		})
	} else {
		dashboard.SetFlash(c, dashboard.Flash{Title: "Project deleted successfully"})
	}
	c.Redirect(http.StatusFound, "/dashboard/projects")
}

func (h *Handler) listView(c *gin.Context, token string) projectsView {
	view := projectsView{
		pageData:    h.base(c, "Projects"),
		SearchQuery: h.search.Query(),
	}

	resp, err := h.client.GetProjects(c.Request.Context(), token, portfolio.ListOptions{
		Search:    view.SearchQuery,
		SortBy:    "createdAt",
		SortOrder: "desc",
	})
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("list_projects", err)
		view.LoadError = "Failed to fetch projects"
		return view
	}

	items := resp.Items()
	expanded := make(map[string]bool)
	for _, id := range c.QueryArray("expand") {
		expanded[id] = true
	}

	view.Count = len(items)
	view.Rows = make([]projectRow, 0, len(items))
	for _, p := range items {
		row := projectRow{
			Project:  p,
			Expanded: expanded[p.ID],
			Created:  dashboard.FormatCreated(p.CreatedAt),
		}
		if len(p.Technologies) > visibleTechs {
			row.VisibleTechs = p.Technologies[:visibleTechs]
			row.HiddenTechs = p.Technologies[visibleTechs:]
			row.MoreCount = len(p.Technologies) - visibleTechs
			row.ExpandURL = expandURL(c, p.ID)
		} else {
			row.VisibleTechs = p.Technologies
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

func (h *Handler) renderFormOpen(c *gin.Context, token string, draft dashboard.FormDraft, formError string) {
	view := h.listView(c, token)
	view.FormOpen = true
	view.Draft = draft
	view.FormError = formError
	c.HTML(http.StatusOK, "projects", view)
}

// expandURL rebuilds the list URL with one more expanded row, keeping the
// other expansions independent per row.
func expandURL(c *gin.Context, id string) string {
	q := url.Values{}
	if query := c.Query("q"); query != "" {
		q.Set("q", query)
	}
	for _, e := range c.QueryArray("expand") {
		q.Add("expand", e)
	}
	q.Add("expand", id)
	return "/dashboard/projects?" + q.Encode()
}

func draftFromRequest(c *gin.Context) dashboard.FormDraft {
	return dashboard.FormDraft{
		ID:            c.PostForm("id"),
		Title:         c.PostForm("title"),
		DescriptionEn: c.PostForm("descriptionEn"),
		DescriptionID: c.PostForm("descriptionId"),
		Technologies:  c.PostFormArray("technologies"),
		DemoURL:       c.PostForm("demoUrl"),
		GithubURL:     c.PostForm("githubUrl"),
		Featured:      c.PostForm("featured") == "on" || c.PostForm("featured") == "true",
		ExistingImage: c.PostForm("existingImage"),
		TechInput:     c.PostForm("techInput"),
	}
}

func imageFromRequest(c *gin.Context) *portfolio.ImageFile {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil || fh.Size == 0 {
		return nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil
	}
	return &portfolio.ImageFile{Filename: fh.Filename, Data: data}
}
