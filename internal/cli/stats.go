package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"perception-quiz-service/internal/domain"
	"perception-quiz-service/internal/scoring"
	transport "perception-quiz-service/internal/transport/http"
)

// NewStatsCmd prints the aggregate insights of a running server.
func NewStatsCmd() *cobra.Command {
	var server, quizName string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate results from a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			insights, err := fetchInsights(cmd.Context(), transport.NewClient(server, nil), domain.QuizKind(quizName))
			if err != nil {
				return err
			}
			printInsights(cmd.OutOrStdout(), insights)
			return nil
		},
	}
	cmd.Flags().StringVar(&server, "server", "http://localhost:8080", "collection endpoint base URL")
	cmd.Flags().StringVar(&quizName, "quiz", "", "only show one quiz (crime or status)")
	return cmd
}

// fetchInsights reads both aggregates, or only the one named by kind.
func fetchInsights(ctx context.Context, client *transport.Client, kind domain.QuizKind) (domain.Insights, error) {
	switch kind {
	case "":
		return client.Insights(ctx)
	case domain.QuizCrime:
		crime, err := client.CrimeStats(ctx)
		if err != nil {
			return domain.Insights{}, err
		}
		out := domain.Insights{Configured: crime.Configured, Crime: crime}
		if crime.SessionStats != nil {
			out.TotalResponses = crime.SessionStats.TotalSessions
		}
		return out, nil
	case domain.QuizStatus:
		status, err := client.StatusStats(ctx)
		if err != nil {
			return domain.Insights{}, err
		}
		out := domain.Insights{Configured: status.Configured, Status: status}
		if status.SessionStats != nil {
			out.TotalResponses = status.SessionStats.TotalSessions
		}
		return out, nil
	default:
		return domain.Insights{}, fmt.Errorf("%w: %s", domain.ErrUnknownQuiz, kind)
	}
}

func printInsights(w io.Writer, in domain.Insights) {
	if !in.Configured {
		fmt.Fprintln(w, "Database not configured on the server; no statistics are collected.")
		return
	}
	fmt.Fprintf(w, "Completed sessions: %s\n", humanize.Comma(in.TotalResponses))

	if s := in.Status.SessionStats; s != nil {
		fmt.Fprintf(w, "\nStatus quiz: %s sessions, average score %.2f, average deportation support %.2f\n",
			humanize.Comma(s.TotalSessions), s.AvgScore, s.AvgDeportYes)
		for _, v := range in.Status.VignetteStats {
			fmt.Fprintf(w, "  scenario %d: %d responses, q1 %s correct, q2 %s correct, deport yes/no/unsure %d/%d/%d\n",
				v.VignetteID, v.TotalResponses, percent(v.Q1Correct, v.TotalResponses), percent(v.Q2Correct, v.TotalResponses),
				v.DeportYes, v.DeportNo, v.DeportUnsure)
		}
	}

	if c := in.Crime.SessionStats; c != nil {
		fmt.Fprintf(w, "\nCrime quiz: %s sessions, average perception gap %.1f%%, average accuracy %.1f%%\n",
			humanize.Comma(c.TotalSessions), c.AvgPerceptionGap, c.AvgAccuracy)
		for _, q := range in.Crime.QuestionStats {
			fmt.Fprintf(w, "  question %d: %d responses, %.1f%% correct\n", q.QuestionID, q.TotalResponses, q.CorrectPercentage)
		}
	}
}

func percent(part, total int64) string {
	return fmt.Sprintf("%.1f%%", scoring.Accuracy(int(part), int(total)))
}
