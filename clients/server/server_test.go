package server

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlejandroGlezSan/memescript/pkg/imgflip"
	"github.com/AlejandroGlezSan/memescript/pkg/phrases"
)

func newTestServer() *server {
	return &server{pool: phrases.New("TEST PHRASE"), flip: imgflip.NewClient()}
}

func renderRequest(t *testing.T, fields map[string]string, withImage bool) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if withImage {
		fw, err := mw.CreateFormFile("image", "bg.png")
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(fw, image.NewRGBA(image.Rect(0, 0, 120, 90))); err != nil {
			t.Fatal(err)
		}
	}
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/render", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandleRender(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()

	s.handleRender(rec, renderRequest(t, map[string]string{
		"top":    "TOP TEXT",
		"bottom": "BOTTOM TEXT",
	}, true))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("Content-Type = %q, want image/png", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("response is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 90 {
		t.Fatalf("rendered size = %dx%d, want 120x90", b.Dx(), b.Dy())
	}
}

func TestHandleRenderMissingImage(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()

	s.handleRender(rec, renderRequest(t, map[string]string{"top": "TOP"}, false))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRenderBadFontSizeIgnored(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()

	s.handleRender(rec, renderRequest(t, map[string]string{
		"top":       "TOP",
		"font_size": "not-a-number",
	}, true))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (bad overrides degrade to defaults)", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
