package cli

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"perception-quiz-service/internal/app"
	"perception-quiz-service/internal/config"
	"perception-quiz-service/internal/content"
	"perception-quiz-service/internal/domain"
	"perception-quiz-service/internal/infra/sqlite"
	transport "perception-quiz-service/internal/transport/http"
)

func runCLI(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlayCrimeOffline(t *testing.T) {
	input := strings.Repeat("9\n1\n", len(content.CrimeQuestions()))
	out, err := runCLI(t, input, "play", "crime", "--offline")
	if err != nil {
		t.Fatalf("play: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Perception gap:") {
		t.Fatalf("expected results in output:\n%s", out)
	}
	if strings.Contains(out, "Submission:") {
		t.Fatalf("offline play must not submit:\n%s", out)
	}
}

func TestPlayStopsOnClosedInput(t *testing.T) {
	if _, err := runCLI(t, "1\n", "play", "crime", "--offline"); err == nil {
		t.Fatalf("expected error when input ends mid-quiz")
	}
}

func TestPlayRejectsUnknownQuiz(t *testing.T) {
	if _, err := runCLI(t, "", "play", "trivia", "--offline"); err == nil {
		t.Fatalf("expected unknown quiz to be rejected")
	}
}

func TestPlayStatusSubmitsToServer(t *testing.T) {
	store, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := store.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	service := app.NewResponseService(store, nil, content.NewCatalog())
	defer service.Close()
	server := httptest.NewServer(transport.NewRouter(service, nil))
	defer server.Close()

	input := strings.Repeat("y\nmaybe\nn\nu\n", len(content.Vignettes()))
	out, err := runCLI(t, input, "play", "status", "--server", server.URL)
	if err != nil {
		t.Fatalf("play: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Submission: success") {
		t.Fatalf("expected successful submission:\n%s", out)
	}

	out, err = runCLI(t, "", "stats", "--server", server.URL)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "Completed sessions: 1") || !strings.Contains(out, "Status quiz: 1 sessions") {
		t.Fatalf("unexpected stats output:\n%s", out)
	}

	out, err = runCLI(t, "", "stats", "--server", server.URL, "--quiz", "status")
	if err != nil {
		t.Fatalf("stats status: %v", err)
	}
	if !strings.Contains(out, "Status quiz: 1 sessions") || strings.Contains(out, "Crime quiz") {
		t.Fatalf("unexpected status-only output:\n%s", out)
	}
	out, err = runCLI(t, "", "stats", "--server", server.URL, "--quiz", "crime")
	if err != nil {
		t.Fatalf("stats crime: %v", err)
	}
	if !strings.Contains(out, "Completed sessions: 0") || strings.Contains(out, "Status quiz") {
		t.Fatalf("unexpected crime-only output:\n%s", out)
	}
	if _, err := runCLI(t, "", "stats", "--server", server.URL, "--quiz", "trivia"); !errors.Is(err, domain.ErrUnknownQuiz) {
		t.Fatalf("expected unknown quiz error, got %v", err)
	}
}

func TestPrintInsightsPercentages(t *testing.T) {
	var out bytes.Buffer
	printInsights(&out, domain.Insights{
		Configured:     true,
		TotalResponses: 1200,
		Status: domain.StatusStats{
			Configured:    true,
			SessionStats:  &domain.StatusSessionStats{TotalSessions: 3},
			VignetteStats: []domain.VignetteStats{{VignetteID: 1, TotalResponses: 3, Q1Correct: 2, Q2Correct: 0}},
		},
	})
	got := out.String()
	if !strings.Contains(got, "Completed sessions: 1,200") || !strings.Contains(got, "q1 66.7% correct, q2 0.0% correct") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestPrintInsightsUnconfigured(t *testing.T) {
	var out bytes.Buffer
	printInsights(&out, domain.Insights{})
	if !strings.Contains(out.String(), "Database not configured") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestResolvePort(t *testing.T) {
	var cfg config.Config
	cfg.Server.Port = "9090"

	t.Setenv("PORT", "")
	if got := resolvePort("", config.Config{}); got != "8080" {
		t.Fatalf("default: got %s", got)
	}
	if got := resolvePort("", cfg); got != "9090" {
		t.Fatalf("config: got %s", got)
	}
	t.Setenv("PORT", "7070")
	if got := resolvePort("", cfg); got != "7070" {
		t.Fatalf("env: got %s", got)
	}
	if got := resolvePort("6060", cfg); got != "6060" {
		t.Fatalf("flag: got %s", got)
	}
}

func TestPortFlagDefaultsEmpty(t *testing.T) {
	f := newRootCmd().PersistentFlags().Lookup("port")
	if f == nil || f.DefValue != "" {
		t.Fatalf("port flag must default to empty so config can apply, got %+v", f)
	}
}
