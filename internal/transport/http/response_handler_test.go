package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"perception-quiz-service/internal/app"
	"perception-quiz-service/internal/content"
	"perception-quiz-service/internal/domain"
	"perception-quiz-service/internal/infra/sqlite"
)

func newSQLiteService(t *testing.T) *app.ResponseService {
	t.Helper()
	store, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := store.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc := app.NewResponseService(store, nil, content.NewCatalog())
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("%s %s: decode body %q: %v", method, path, rec.Body.String(), err)
	}
	return rec, out
}

func TestRecordRejectsInvalidBodies(t *testing.T) {
	router := NewRouter(newSQLiteService(t), nil)
	cases := []struct {
		name, path, body string
	}{
		{"missing session", "/api/crime-responses", `{"answerHistory":[]}`},
		{"empty session", "/api/crime-responses", `{"sessionId":"","answerHistory":[]}`},
		{"history not a list", "/api/crime-responses", `{"sessionId":"s1","answerHistory":{"0":1}}`},
		{"history item missing id", "/api/responses", `{"sessionId":"s1","answerHistory":[{"userQ1":"Yes"}]}`},
		{"null history", "/api/responses", `{"sessionId":"s1","answerHistory":null}`},
	}
	for _, tc := range cases {
		rec, body := doRequest(t, router, http.MethodPost, tc.path, tc.body)
		if rec.Code != http.StatusBadRequest || body["error"] != "Missing required fields" {
			t.Fatalf("%s: expected 400 missing fields, got %d %v", tc.name, rec.Code, body)
		}
	}

	rec, body := doRequest(t, router, http.MethodPost, "/api/responses", `{not json`)
	if rec.Code != http.StatusBadRequest || body["error"] != "Invalid request body" {
		t.Fatalf("expected 400 invalid body, got %d %v", rec.Code, body)
	}

	_, stats := doRequest(t, router, http.MethodGet, "/api/insights", "")
	if stats["totalResponses"].(float64) != 0 {
		t.Fatalf("rejected bodies must not be stored: %v", stats)
	}
}

func TestDegradedModeAcknowledges(t *testing.T) {
	router := NewRouter(app.NewResponseService(nil, nil, content.NewCatalog()), nil)

	rec, body := doRequest(t, router, http.MethodPost, "/api/crime-responses",
		`{"sessionId":"s1","answerHistory":[{"questionId":1,"userAnswer":"much-lower","wasCorrect":true}],"correctCount":1,"totalQuestions":1,"perceptionGapPercent":0}`)
	if rec.Code != http.StatusOK || body["success"] != true || body["message"] != "Response logged (no database configured)" {
		t.Fatalf("unexpected degraded ack %d %v", rec.Code, body)
	}

	for _, path := range []string{"/api/crime-responses", "/api/responses"} {
		rec, body = doRequest(t, router, http.MethodGet, path, "")
		if rec.Code != http.StatusOK || body["configured"] != false || body["message"] != "Database not configured" {
			t.Fatalf("%s: unexpected degraded stats %d %v", path, rec.Code, body)
		}
	}
}

func TestRecordAndAggregate(t *testing.T) {
	router := NewRouter(newSQLiteService(t), nil)

	rec, body := doRequest(t, router, http.MethodPost, "/api/crime-responses",
		`{"sessionId":"c1","answerHistory":[{"questionId":1,"userAnswer":"much-lower","wasCorrect":true},{"questionId":3,"userAnswer":"increased","wasCorrect":false}],"correctCount":1,"totalQuestions":2,"perceptionGapPercent":50}`)
	if rec.Code != http.StatusOK || body["message"] != "Responses saved successfully" {
		t.Fatalf("unexpected ack %d %v", rec.Code, body)
	}
	rec, _ = doRequest(t, router, http.MethodPost, "/api/responses",
		`{"sessionId":"v1","score":1.5,"totalQuestions":6,"scaleImpact":{"low":5000,"high":20000},"answerHistory":[{"id":1,"userQ1":"No","userQ2":"Yes","deportationOpinion":"Yes"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status record failed: %d", rec.Code)
	}

	rec, body = doRequest(t, router, http.MethodGet, "/api/crime-responses", "")
	if rec.Code != http.StatusOK || body["configured"] != true {
		t.Fatalf("unexpected crime stats %d %v", rec.Code, body)
	}
	sess := body["sessionStats"].(map[string]any)
	if sess["total_sessions"].(float64) != 1 || sess["avg_perception_gap"].(float64) != 50 {
		t.Fatalf("unexpected crime session stats %v", sess)
	}
	questions := body["questionStats"].([]any)
	if len(questions) != 2 || questions[0].(map[string]any)["question_id"].(float64) != 1 {
		t.Fatalf("unexpected question stats %v", questions)
	}

	_, body = doRequest(t, router, http.MethodGet, "/api/insights", "")
	if body["configured"] != true || body["totalResponses"].(float64) != 2 {
		t.Fatalf("unexpected insights %v", body)
	}
	status := body["status"].(map[string]any)
	if status["sessionStats"].(map[string]any)["total_deport_yes"].(float64) != 1 {
		t.Fatalf("unexpected status stats %v", status)
	}
}

func TestRecordedSummaryFollowsRescoredRows(t *testing.T) {
	router := NewRouter(newSQLiteService(t), nil)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/crime-responses",
		`{"sessionId":"c1","answerHistory":[{"questionId":1,"userAnswer":"bogus","wasCorrect":true}],"correctCount":1,"totalQuestions":1,"perceptionGapPercent":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("record failed: %d", rec.Code)
	}

	_, body := doRequest(t, router, http.MethodGet, "/api/crime-responses", "")
	sess := body["sessionStats"].(map[string]any)
	if sess["avg_accuracy"].(float64) != 0 || sess["avg_perception_gap"].(float64) != 100 {
		t.Fatalf("session stats contradict question stats: %v", sess)
	}
	q := body["questionStats"].([]any)[0].(map[string]any)
	if q["correct_count"].(float64) != 0 {
		t.Fatalf("unexpected question stats %v", q)
	}
}

func TestDuplicateSessionIsServerError(t *testing.T) {
	router := NewRouter(newSQLiteService(t), nil)
	payload := `{"sessionId":"dup","answerHistory":[],"correctCount":0,"totalQuestions":0,"perceptionGapPercent":0}`
	if rec, _ := doRequest(t, router, http.MethodPost, "/api/crime-responses", payload); rec.Code != http.StatusOK {
		t.Fatalf("first record failed: %d", rec.Code)
	}
	rec, body := doRequest(t, router, http.MethodPost, "/api/crime-responses", payload)
	if rec.Code != http.StatusInternalServerError || body["error"] != "Failed to save responses" {
		t.Fatalf("expected 500, got %d %v", rec.Code, body)
	}
}

func TestContentEndpoints(t *testing.T) {
	router := NewRouter(app.NewResponseService(nil, nil, nil), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/content/crime", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var questions []domain.QuestionItem
	if err := json.Unmarshal(rec.Body.Bytes(), &questions); err != nil {
		t.Fatalf("decode questions: %v", err)
	}
	if len(questions) != len(content.CrimeQuestions()) {
		t.Fatalf("expected %d questions, got %d", len(content.CrimeQuestions()), len(questions))
	}

	rec, body := doRequest(t, router, http.MethodGet, "/api/content/pushback", "")
	if rec.Code != http.StatusOK || body["closingNote"] != content.ClosingNote {
		t.Fatalf("unexpected pushback %d", rec.Code)
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/api/content/weather", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := NewRouter(app.NewResponseService(nil, nil, nil), []string{"https://quiz.example.org"})
	req := httptest.NewRequest(http.MethodOptions, "/api/responses", nil)
	req.Header.Set("Origin", "https://quiz.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://quiz.example.org" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}

func TestClientRoundTrip(t *testing.T) {
	server := httptest.NewServer(NewRouter(newSQLiteService(t), nil))
	defer server.Close()
	client := NewClient(server.URL+"/", nil)
	ctx := context.Background()

	ack, err := client.RecordStatus(ctx, domain.StatusSubmission{
		SessionID:     "client-1",
		AnswerHistory: []domain.AnswerHistoryItem{{Vignette: domain.Vignette{ID: 2}, UserQ1: domain.Yes, UserQ2: domain.No, DeportationOpinion: domain.OpinionNo}},
	})
	if err != nil || !ack.Success {
		t.Fatalf("record status: %+v %v", ack, err)
	}

	if err := client.SendCrime(ctx, domain.CrimeSubmission{AnswerHistory: []domain.UserAnswer{}}); err == nil || !strings.Contains(err.Error(), "Missing required fields") {
		t.Fatalf("expected validation error, got %v", err)
	}

	stats, err := client.StatusStats(ctx)
	if err != nil {
		t.Fatalf("status stats: %v", err)
	}
	if !stats.Configured || stats.SessionStats.TotalSessions != 1 || len(stats.VignetteStats) != 1 || stats.VignetteStats[0].DeportNo != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	in, err := client.Insights(ctx)
	if err != nil || in.TotalResponses != 1 {
		t.Fatalf("unexpected insights %+v %v", in, err)
	}
}
