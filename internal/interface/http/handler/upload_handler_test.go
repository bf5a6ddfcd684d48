package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/media"
)

func newUploadApp(t *testing.T) *fiber.App {
	t.Helper()
	store := media.NewStore(t.TempDir(), "/uploads", 1<<20, nil)
	app := fiber.New(fiber.Config{Immutable: true})
	NewUploadHandler(store).RegisterAdminRoutes(app.Group("/admin"))
	return app
}

func multipartBody(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		_, _ = part.Write(content)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &body, w.FormDataContentType()
}

func TestStore_ReturnsStoredFile(t *testing.T) {
	app := newUploadApp(t)
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	body, contentType := multipartBody(t, "diagram.png", png, map[string]string{"collection": "articles"})

	req := httptest.NewRequest("POST", "/admin/uploads", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var f media.File
	if err := json.NewDecoder(res.Body).Decode(&f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.ContentType != "image/png" || !strings.HasPrefix(f.URL, "/uploads/articles/") {
		t.Fatalf("unexpected file %+v", f)
	}
}

func TestStore_Validation(t *testing.T) {
	app := newUploadApp(t)

	cases := []struct {
		name     string
		filename string
		content  []byte
	}{
		{"missing file", "", nil},
		{"unsupported type", "run.sh", []byte("#!/bin/sh\necho hi\n")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, contentType := multipartBody(t, tc.filename, tc.content, nil)
			req := httptest.NewRequest("POST", "/admin/uploads", body)
			req.Header.Set(fiber.HeaderContentType, contentType)
			res, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if res.StatusCode != fiber.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", res.StatusCode)
			}
			var out errorResponse
			if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if out.Errors["file"] == "" {
				t.Fatalf("expected file error, got %+v", out)
			}
		})
	}
}
