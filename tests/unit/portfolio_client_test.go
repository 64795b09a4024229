package unit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/portfolio-suite/admin-dashboard/internal/portfolio"
)

func TestClient_LoginToken(t *testing.T) {
	// Create a test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decode credentials: %v", err)
		}
		if creds["email"] != "admin@example.com" || creds["password"] != "secret" {
			t.Errorf("unexpected credentials: %v", creds)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token": "tok-123"}`))
	}))
	defer server.Close()

	client := portfolio.NewClient(server.URL)

	token, err := client.LoginToken(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("expected token 'tok-123', got %q", token)
	}
}

func TestClient_LoginToken_AccessTokenField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": "tok-456"}`))
	}))
	defer server.Close()

	client := portfolio.NewClient(server.URL)

	token, err := client.LoginToken(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok-456" {
		t.Errorf("expected token 'tok-456', got %q", token)
	}
}

func TestClient_Login_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "invalid credentials"}`))
	}))
	defer server.Close()

	client := portfolio.NewClient(server.URL)

	_, err := client.LoginToken(context.Background(), "a@b.c", "wrong")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	apiErr, ok := portfolio.AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "invalid credentials" {
		t.Errorf("expected backend message, got %q", apiErr.Message)
	}
}

func TestClient_GetProjects_QueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/projects" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("expected bearer header, got %q", got)
		}

		q := r.URL.Query()
		if q.Get("search") != "api" {
			t.Errorf("expected search=api, got %q", q.Get("search"))
		}
		if q.Get("sortBy") != "createdAt" || q.Get("sortOrder") != "desc" {
			t.Errorf("unexpected sort params: %s", r.URL.RawQuery)
		}
		// zero values must be omitted
		if q.Has("page") || q.Has("limit") || q.Has("featured") {
			t.Errorf("unexpected params in query: %s", r.URL.RawQuery)
		}

		w.Write([]byte(`{"success": true, "data": [{"id": "p1", "title": "API Gateway"}]}`))
	}))
	defer server.Close()

	client := portfolio.NewClient(server.URL)

	resp, err := client.GetProjects(context.Background(), "tok", portfolio.ListOptions{
		Search:    "api",
		SortBy:    "createdAt",
		SortOrder: "desc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := resp.Items()
	if len(items) != 1 || items[0].ID != "p1" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestClient_GetProjects_LegacyProjectsField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"projects": [{"id": "p1"}, {"id": "p2"}]}`))
	}))
	defer server.Close()

	client := portfolio.NewClient(server.URL)

	resp, err := client.GetProjects(context.Background(), "tok", portfolio.ListOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Items()) != 2 {
		t.Errorf("expected 2 items, got %d", len(resp.Items()))
	}
}

func TestClient_CreateProject_MultipartWithImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/projects" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}

		if got := r.FormValue("title"); got != "My Project" {
			t.Errorf("expected title, got %q", got)
		}
		if got := r.FormValue("technologies"); got != `["Go","Redis"]` {
			t.Errorf("expected JSON-encoded technologies, got %q", got)
		}
		if got := r.FormValue("featured"); got != "true" {
			t.Errorf("expected featured=true, got %q", got)
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("expected image part: %v", err)
		}
		defer file.Close()
		if header.Filename != "shot.png" {
			t.Errorf("expected filename shot.png, got %q", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "png-bytes" {
			t.Errorf("unexpected image content: %q", data)
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := portfolio.NewClient(server.URL)

	payload := portfolio.MultipartPayload{
		ProjectFields: portfolio.ProjectFields{
			Title:        "My Project",
			Technologies: []string{"Go", "Redis"},
			Featured:     true,
		},
		Image: &portfolio.ImageFile{Filename: "shot.png", Data: []byte("png-bytes")},
	}
	if err := client.CreateProject(context.Background(), "tok", payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_CreateProject_WithoutImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if _, _, err := r.FormFile("image"); err == nil {
			t.Error("expected no image part")
		}
		// empty technologies must encode as an empty JSON array
		if got := r.FormValue("technologies"); got != "[]" {
			t.Errorf("expected empty array, got %q", got)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := portfolio.NewClient(server.URL)

	err := client.CreateProject(context.Background(), "tok", portfolio.MultipartPayload{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_UpdateProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/projects/p1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := portfolio.NewClient(server.URL)

	err := client.UpdateProject(context.Background(), "tok", "p1", portfolio.MultipartPayload{
		ProjectFields: portfolio.ProjectFields{Title: "Renamed"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_UpdateProject_PayloadTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))
	defer server.Close()

	client := portfolio.NewClient(server.URL)

	err := client.UpdateProject(context.Background(), "tok", "p1", portfolio.MultipartPayload{})
	if portfolio.StatusOf(err) != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, got %d (err %v)", portfolio.StatusOf(err), err)
	}
}

func TestClient_DeleteProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/projects/p1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := portfolio.NewClient(server.URL)

	if err := client.DeleteProject(context.Background(), "tok", "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("health check must be unauthenticated")
		}
		w.Write([]byte(`{"status": "ok"}`))
	}))
	defer server.Close()

	client := portfolio.NewClient(server.URL)

	status, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status["status"] != "ok" {
		t.Errorf("unexpected status payload: %v", status)
	}
}

func TestClient_NetworkError(t *testing.T) {
	client := portfolio.NewClient("http://invalid-host-that-does-not-exist")

	_, err := client.GetProjects(context.Background(), "tok", portfolio.ListOptions{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	// network failures carry no HTTP status
	if portfolio.StatusOf(err) != 0 {
		t.Errorf("expected status 0, got %d", portfolio.StatusOf(err))
	}
}
