package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/jonesrussell/creative-radar/internal/domain"
	"github.com/jonesrussell/creative-radar/internal/ranker"
)

// mockLogger implements Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Info(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(msg string, keysAndValues ...interface{}) {}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(ranker.DefaultWeights(), 10, nil, noop.NewTracerProvider().Tracer("test"), &mockLogger{})

	router := gin.New()
	SetupRoutes(router, handler, nil)
	return router
}

func testOffer() *domain.OfferSpec {
	return &domain.OfferSpec{
		Name:         "KeepClose",
		Pains:        []string{"losing touch with friends"},
		JobsToBeDone: []string{"stay close without feeling forced"},
	}
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTagEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/tag", TagRequest{
		Offer: testOffer(),
		Item: &domain.ContentItem{
			Source: "tiktok",
			Text:   "I used to lose touch with people until I found a simple system for it.",
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp TagResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Tags == nil {
		t.Fatal("response missing tags")
	}
	if resp.Tags.HookType != domain.HookPersonalStory {
		t.Errorf("HookType = %q, want personal_story", resp.Tags.HookType)
	}
	if resp.Tags.FitScore <= 0 {
		t.Errorf("FitScore = %v, want > 0", resp.Tags.FitScore)
	}
}

func TestTagEndpoint_MissingOffer(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/tag", gin.H{
		"item": gin.H{"text": "some text"},
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestScoreEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/score", ScoreRequest{
		Offer: testOffer(),
		Item: &domain.ContentItem{
			Source:   "tiktok",
			Text:     "I used to lose touch with people until I found a simple system for it.",
			Likes:    150,
			Comments: 10,
			Shares:   2,
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp ScoreResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Scores == nil || resp.Tags == nil {
		t.Fatal("response missing tags or scores")
	}
	if resp.Scores.Total <= 0 {
		t.Errorf("Total = %v, want > 0", resp.Scores.Total)
	}
	if resp.Scores.Performance != 0.4 {
		t.Errorf("Performance = %v, want 0.4", resp.Scores.Performance)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/analyze", AnalyzeRequest{
		Offer: testOffer(),
		Items: []domain.ContentItem{
			{Source: "tiktok", ID: "a", Text: "I used to lose touch with people until I found a simple system for it.", Likes: 150},
			{Source: "tiktok", ID: "a", Text: "duplicate of the record above"},
			{Source: "meta_ads", ID: "b", Text: "Losing touch with friends is optional. Try this today."},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Errorf("ranked %d records, want 2 (duplicate collapsed)", len(resp.Items))
	}
	if resp.Summary == nil || resp.Summary.SampleSize != 2 {
		t.Errorf("Summary = %+v, want sample size 2", resp.Summary)
	}
	if len(resp.Briefs) != len(domain.FunnelStages) {
		t.Errorf("got %d briefs, want one per funnel stage", len(resp.Briefs))
	}
	for i := 1; i < len(resp.Items); i++ {
		if resp.Items[i-1].Scores.Total < resp.Items[i].Scores.Total {
			t.Errorf("items not sorted descending at %d", i)
		}
	}
}

func TestAnalyzeEndpoint_EmptyItems(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/analyze", gin.H{
		"offer": testOffer(),
		"items": []domain.ContentItem{},
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRunsEndpoint_DisabledWithoutRepository(t *testing.T) {
	router := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotImplemented {
		t.Errorf("status = %d, want 501", w.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := setupTestRouter()

	for _, path := range []string{"/health", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, w.Code)
		}
	}
}
