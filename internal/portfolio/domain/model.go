package domain

// Project is a portfolio project record as served by the remote backend.
// The dashboard only ever holds transient in-memory copies; create, update
// and delete all go through the API.
type Project struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	DescriptionEn string   `json:"descriptionEn"`
	DescriptionID string   `json:"descriptionId"`
	Technologies  []string `json:"technologies"`
	DemoURL       string   `json:"demoUrl"`
	GithubURL     string   `json:"githubUrl"`
	Featured      bool     `json:"featured"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
	Image         string   `json:"image,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListResponse mirrors the backend list payload. Older deployments returned
// the array under "projects" instead of "data"; Items() hides that.
type ListResponse struct {
	Success    bool        `json:"success"`
	Data       []Project   `json:"data"`
	Projects   []Project   `json:"projects"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func (r *ListResponse) Items() []Project {
	if len(r.Data) > 0 {
		return r.Data
	}
	return r.Projects
}

// LoginResponse carries the session token; the field name varies between
// backend versions.
type LoginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
}

// BearerToken returns whichever token field the backend populated.
func (r *LoginResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// HealthStatus is the backend health payload, passed through to the
// settings page verbatim.
type HealthStatus map[string]any
