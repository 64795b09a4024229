package portfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
)

// ProjectFields are the scalar fields of a create/update request.
type ProjectFields struct {
	Title         string   `json:"title"`
	DescriptionEn string   `json:"descriptionEn"`
	DescriptionID string   `json:"descriptionId"`
	Technologies  []string `json:"technologies"`
	DemoURL       string   `json:"demoUrl"`
	GithubURL     string   `json:"githubUrl"`
	Featured      bool     `json:"featured"`
}

// ImageFile is an uploaded image to attach to a mutation request.
type ImageFile struct {
	Filename string
	Data     []byte
}

// Payload is a mutation request body. The encoding variant (JSON vs
// multipart) is chosen at the call site; each variant has its own
// serialization path.
type Payload interface {
	encode() (body io.Reader, contentType string, err error)
}

// JSONPayload sends the fields as a plain JSON object.
type JSONPayload struct {
	ProjectFields
}

func (p JSONPayload) encode() (io.Reader, string, error) {
	buf, err := json.Marshal(p.ProjectFields)
	if err != nil {
		return nil, "", fmt.Errorf("marshal project: %w", err)
	}
	return bytes.NewReader(buf), "application/json", nil
}

// MultipartPayload sends the fields as a multipart form: every scalar
// stringified, technologies as a JSON-encoded array, plus an optional image
// file part.
type MultipartPayload struct {
	ProjectFields
	Image *ImageFile
}

func (p MultipartPayload) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	techs, err := json.Marshal(p.Technologies)
	if err != nil {
		return nil, "", fmt.Errorf("marshal technologies: %w", err)
	}
	if p.Technologies == nil {
		techs = []byte("[]")
	}

	fields := map[string]string{
		"title":         p.Title,
		"descriptionEn": p.DescriptionEn,
		"descriptionId": p.DescriptionID,
		"technologies":  string(techs),
		"demoUrl":       p.DemoURL,
		"githubUrl":     p.GithubURL,
		"featured":      strconv.FormatBool(p.Featured),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if p.Image != nil {
		part, err := w.CreateFormFile("image", p.Image.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("create image part: %w", err)
		}
		if _, err := part.Write(p.Image.Data); err != nil {
			return nil, "", fmt.Errorf("write image: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
