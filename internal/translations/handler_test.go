package translations_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/polyglot/internal/translations"
	"github.com/JaimeStill/polyglot/internal/workflow"
	"github.com/JaimeStill/polyglot/pkg/pagination"
	"github.com/JaimeStill/polyglot/pkg/routes"
)

type mockSystem struct {
	listFn           func(ctx context.Context, page pagination.PageRequest, filters translations.Filters) (*pagination.PageResult[translations.Translation], error)
	findFn           func(ctx context.Context, id uuid.UUID) (*translations.Translation, error)
	findByDocumentFn func(ctx context.Context, documentID uuid.UUID) (*translations.Translation, error)
	translateFn      func(ctx context.Context, documentID uuid.UUID, cmd translations.TranslateCommand) (*translations.Translation, error)
	translateTextFn  func(ctx context.Context, cmd translations.TranslateTextCommand) (*workflow.Result, error)
	approveFn        func(ctx context.Context, id uuid.UUID, cmd translations.ApproveCommand) (*translations.Translation, error)
	correctFn        func(ctx context.Context, id uuid.UUID, cmd translations.CorrectCommand) (*translations.Translation, error)
	deleteFn         func(ctx context.Context, id uuid.UUID) error
}

func (m *mockSystem) Handler() *translations.Handler { return newTestHandler(m) }

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters translations.Filters) (*pagination.PageResult[translations.Translation], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*translations.Translation, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) FindByDocument(ctx context.Context, documentID uuid.UUID) (*translations.Translation, error) {
	return m.findByDocumentFn(ctx, documentID)
}

func (m *mockSystem) Translate(ctx context.Context, documentID uuid.UUID, cmd translations.TranslateCommand) (*translations.Translation, error) {
	return m.translateFn(ctx, documentID, cmd)
}

func (m *mockSystem) TranslateText(ctx context.Context, cmd translations.TranslateTextCommand) (*workflow.Result, error) {
	return m.translateTextFn(ctx, cmd)
}

func (m *mockSystem) Approve(ctx context.Context, id uuid.UUID, cmd translations.ApproveCommand) (*translations.Translation, error) {
	return m.approveFn(ctx, id, cmd)
}

func (m *mockSystem) Correct(ctx context.Context, id uuid.UUID, cmd translations.CorrectCommand) (*translations.Translation, error) {
	return m.correctFn(ctx, id, cmd)
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func newTestHandler(sys translations.System) *translations.Handler {
	return translations.NewHandler(
		sys,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
	)
}

func setupMux(h *translations.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, h.Routes())
	return mux
}

func TestTranslateText(t *testing.T) {
	sys := &mockSystem{
		translateTextFn: func(_ context.Context, cmd translations.TranslateTextCommand) (*workflow.Result, error) {
			return &workflow.Result{
				OriginalText:   cmd.Content,
				TranslatedText: "bonjour le monde",
				TargetLanguage: "French",
			}, nil
		},
	}
	mux := setupMux(newTestHandler(sys))

	body, _ := json.Marshal(translations.TranslateTextCommand{
		Content: "hello world",
	})
	req := httptest.NewRequest("POST", "/translations/text", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result workflow.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.TranslatedText != "bonjour le monde" {
		t.Errorf("unexpected translated text %q", result.TranslatedText)
	}
	if result.TargetLanguage != "French" {
		t.Errorf("unexpected target language %q", result.TargetLanguage)
	}
}

func TestTranslateTextPipelineFailure(t *testing.T) {
	rt := failingRuntime(errors.New("model unavailable"))
	sys := &mockSystem{
		translateTextFn: func(ctx context.Context, cmd translations.TranslateTextCommand) (*workflow.Result, error) {
			return nil, mustFail(ctx, rt)
		},
	}
	mux := setupMux(newTestHandler(sys))

	body, _ := json.Marshal(translations.TranslateTextCommand{Content: "hello"})
	req := httptest.NewRequest("POST", "/translations/text", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["stage"] != "analyze" {
		t.Errorf("expected failed stage analyze, got %q", payload["stage"])
	}
	if payload["error"] == "" {
		t.Error("expected error message in payload")
	}
}

func TestTranslateDocument(t *testing.T) {
	documentID := uuid.New()
	sys := &mockSystem{
		translateFn: func(_ context.Context, id uuid.UUID, cmd translations.TranslateCommand) (*translations.Translation, error) {
			if id != documentID {
				t.Errorf("unexpected document id %s", id)
			}
			return &translations.Translation{
				ID:             uuid.New(),
				DocumentID:     id,
				TargetLanguage: cmd.TargetLanguage,
				TranslatedText: "texto traducido",
			}, nil
		},
	}
	mux := setupMux(newTestHandler(sys))

	body, _ := json.Marshal(translations.TranslateCommand{TargetLanguage: "Spanish"})
	req := httptest.NewRequest("POST", "/translations/"+documentID.String(), bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var tr translations.Translation
	if err := json.Unmarshal(rec.Body.Bytes(), &tr); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if tr.TargetLanguage != "Spanish" {
		t.Errorf("unexpected target language %q", tr.TargetLanguage)
	}
}

func TestTranslateInvalidDocumentID(t *testing.T) {
	mux := setupMux(newTestHandler(&mockSystem{}))

	req := httptest.NewRequest("POST", "/translations/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestApprove(t *testing.T) {
	id := uuid.New()
	sys := &mockSystem{
		approveFn: func(_ context.Context, gotID uuid.UUID, cmd translations.ApproveCommand) (*translations.Translation, error) {
			approvedBy := cmd.ApprovedBy
			return &translations.Translation{ID: gotID, ApprovedBy: &approvedBy}, nil
		},
	}
	mux := setupMux(newTestHandler(sys))

	body, _ := json.Marshal(translations.ApproveCommand{ApprovedBy: "reviewer@example.com"})
	req := httptest.NewRequest("POST", "/translations/"+id.String()+"/approve", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var tr translations.Translation
	if err := json.Unmarshal(rec.Body.Bytes(), &tr); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if tr.ApprovedBy == nil || *tr.ApprovedBy != "reviewer@example.com" {
		t.Error("expected approved_by in response")
	}
}

func TestApproveInvalidStatus(t *testing.T) {
	sys := &mockSystem{
		approveFn: func(context.Context, uuid.UUID, translations.ApproveCommand) (*translations.Translation, error) {
			return nil, translations.ErrInvalidStatus
		},
	}
	mux := setupMux(newTestHandler(sys))

	body, _ := json.Marshal(translations.ApproveCommand{ApprovedBy: "reviewer"})
	req := httptest.NewRequest("POST", "/translations/"+uuid.NewString()+"/approve", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestDelete(t *testing.T) {
	sys := &mockSystem{
		deleteFn: func(context.Context, uuid.UUID) error { return nil },
	}
	mux := setupMux(newTestHandler(sys))

	req := httptest.NewRequest("DELETE", "/translations/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

// mustFail runs the pipeline with a runtime wired to fail, returning the
// resulting stage-tagged error.
func mustFail(ctx context.Context, rt *workflow.Runtime) error {
	_, err := workflow.Execute(ctx, rt, "content", "German")
	return err
}
