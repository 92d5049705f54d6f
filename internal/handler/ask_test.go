package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"queryx/internal/model"
	"queryx/internal/service"
)

type stubGenerator struct {
	text string
	err  error

	lastPrompt string
	lastMime   string
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.text, s.err
}

func (s *stubGenerator) GenerateVision(ctx context.Context, prompt string, mimeType string, image []byte) (string, error) {
	s.lastPrompt = prompt
	s.lastMime = mimeType
	return s.text, s.err
}

func newTestRouter(gen *stubGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	healthHdl := NewHealthHandler()
	engine.GET("/health", healthHdl.Health)

	askHdl := NewAskHandler(service.NewAskService(gen))
	engine.POST("/ask-text", askHdl.AskText)
	engine.POST("/ask-image", askHdl.AskImage)

	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeAnswer(t *testing.T, w *httptest.ResponseRecorder) model.AnswerResponse {
	t.Helper()
	var resp model.AnswerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestHealth(t *testing.T) {
	engine := newTestRouter(&stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != `{"status":"ok"}` {
		t.Errorf("body = %s, want {\"status\":\"ok\"}", w.Body.String())
	}
}

func TestAskTextDefaults(t *testing.T) {
	gen := &stubGenerator{text: "V = IR"}
	engine := newTestRouter(gen)

	w := doJSON(t, engine, "/ask-text", `{"question": "What is Ohm's law?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	resp := decodeAnswer(t, w)
	if resp.AnswerText != "V = IR" {
		t.Errorf("answer_text = %q", resp.AnswerText)
	}

	// Defaults: basic + detailed + hinglish.
	if strings.Contains(gen.lastPrompt, "JEE/NEET exam depth") {
		t.Errorf("default level should be basic, prompt has the advanced clause")
	}
	if !strings.Contains(gen.lastPrompt, "DETAILED, step-by-step") {
		t.Errorf("default style should be detailed")
	}
	if !strings.Contains(gen.lastPrompt, "Hinglish") {
		t.Errorf("default language should be hinglish")
	}
}

func TestAskTextExplicitOptions(t *testing.T) {
	gen := &stubGenerator{text: "done"}
	engine := newTestRouter(gen)

	w := doJSON(t, engine, "/ask-text",
		`{"question": "Derive Gauss's law.", "level": "advanced", "style": "short", "language": "english"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(gen.lastPrompt, "JEE/NEET exam depth") {
		t.Errorf("advanced clause missing")
	}
	if !strings.Contains(gen.lastPrompt, "SHORT, exam-ready") {
		t.Errorf("short clause missing")
	}
	if !strings.Contains(gen.lastPrompt, "clear English") {
		t.Errorf("english clause missing")
	}
}

func TestAskTextProviderFailureStays200(t *testing.T) {
	engine := newTestRouter(&stubGenerator{err: errors.New("provider down")})

	w := doJSON(t, engine, "/ask-text", `{"question": "What is Ohm's law?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even on provider failure", w.Code)
	}
	resp := decodeAnswer(t, w)
	if resp.AnswerText != "Sorry, backend me kuch error aa gaya. Please try again." {
		t.Errorf("answer_text = %q, want the fixed fallback sentence", resp.AnswerText)
	}
}

func TestAskTextBoundaryValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing question", `{"level": "basic"}`},
		{"empty body", `{}`},
		{"malformed json", `{"question": `},
		{"unknown level", `{"question": "q", "level": "expert"}`},
		{"unknown style", `{"question": "q", "style": "verbose"}`},
		{"unknown language", `{"question": "q", "language": "hindi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{text: "should not be called"}
			engine := newTestRouter(gen)

			w := doJSON(t, engine, "/ask-text", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", w.Code, w.Body.String())
			}
			if gen.lastPrompt != "" {
				t.Errorf("provider was called despite boundary rejection")
			}

			var resp model.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("error body is not valid JSON: %v", err)
			}
			if resp.Code == 0 || resp.Message == "" {
				t.Errorf("error body missing code/message: %s", w.Body.String())
			}
		})
	}
}

// multipartBody builds an /ask-image form. contentType == "" omits the part's
// Content-Type header entirely.
func multipartBody(t *testing.T, contentType string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="question.jpg"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0}); err != nil {
		t.Fatalf("part.Write: %v", err)
	}

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func doMultipart(t *testing.T, engine *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ask-image", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAskImageDefaultsMimeType(t *testing.T) {
	gen := &stubGenerator{text: "solved"}
	engine := newTestRouter(gen)

	body, ct := multipartBody(t, "", nil)
	w := doMultipart(t, engine, body, ct)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if gen.lastMime != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg default", gen.lastMime)
	}
	resp := decodeAnswer(t, w)
	if resp.AnswerText != "solved" {
		t.Errorf("answer_text = %q", resp.AnswerText)
	}
}

func TestAskImageDeclaredMimeType(t *testing.T) {
	gen := &stubGenerator{text: "solved"}
	engine := newTestRouter(gen)

	body, ct := multipartBody(t, "image/png", map[string]string{
		"level": "advanced",
		"style": "short",
	})
	w := doMultipart(t, engine, body, ct)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if gen.lastMime != "image/png" {
		t.Errorf("mime = %q, want declared image/png", gen.lastMime)
	}
	if !strings.Contains(gen.lastPrompt, "JEE/NEET exam depth") {
		t.Errorf("advanced form field not applied")
	}
	if !strings.Contains(gen.lastPrompt, "SHORT, exam-ready") {
		t.Errorf("short form field not applied")
	}
}

func TestAskImageOptionsFromQuery(t *testing.T) {
	gen := &stubGenerator{text: "solved"}
	engine := newTestRouter(gen)

	body, ct := multipartBody(t, "image/jpeg", nil)
	req := httptest.NewRequest(http.MethodPost, "/ask-image?language=english", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(gen.lastPrompt, "clear English") {
		t.Errorf("query option not applied")
	}
}

func TestAskImageMissingFile(t *testing.T) {
	gen := &stubGenerator{}
	engine := newTestRouter(gen)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("level", "basic")
	_ = mw.Close()

	w := doMultipart(t, engine, &buf, mw.FormDataContentType())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if gen.lastPrompt != "" {
		t.Errorf("provider was called without a file")
	}
}

func TestAskImageUnknownOption(t *testing.T) {
	gen := &stubGenerator{}
	engine := newTestRouter(gen)

	body, ct := multipartBody(t, "image/jpeg", map[string]string{"level": "expert"})
	w := doMultipart(t, engine, body, ct)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", w.Code, w.Body.String())
	}
	if gen.lastPrompt != "" {
		t.Errorf("provider was called despite invalid option")
	}
}

func TestAskImageProviderFailureStays200(t *testing.T) {
	engine := newTestRouter(&stubGenerator{err: errors.New("provider down")})

	body, ct := multipartBody(t, "image/jpeg", nil)
	w := doMultipart(t, engine, body, ct)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even on provider failure", w.Code)
	}
	resp := decodeAnswer(t, w)
	if resp.AnswerText != "Sorry, image se question read karte waqt error aa gaya." {
		t.Errorf("answer_text = %q, want the fixed image fallback", resp.AnswerText)
	}
}
