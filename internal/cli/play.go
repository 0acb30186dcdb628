package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"perception-quiz-service/internal/content"
	"perception-quiz-service/internal/domain"
	"perception-quiz-service/internal/quiz"
	transport "perception-quiz-service/internal/transport/http"
)

// NewPlayCmd runs a quiz in the terminal and submits the result to a server.
func NewPlayCmd() *cobra.Command {
	var (
		server  string
		offline bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:       "play crime|status",
		Short:     "Take a quiz in the terminal",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(domain.QuizCrime), string(domain.QuizStatus)},
		RunE: func(cmd *cobra.Command, args []string) error {
			var client *transport.Client
			if !offline {
				client = transport.NewClient(server, nil)
			}
			p := &player{in: bufio.NewScanner(cmd.InOrStdin()), out: cmd.OutOrStdout(), timeout: timeout}
			if domain.QuizKind(args[0]) == domain.QuizStatus {
				return p.playStatus(cmd.Context(), client)
			}
			return p.playCrime(cmd.Context(), client)
		},
	}
	cmd.Flags().StringVar(&server, "server", "http://localhost:8080", "collection endpoint base URL")
	cmd.Flags().BoolVar(&offline, "offline", false, "do not submit results")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "how long to wait for the submission")
	return cmd
}

type player struct {
	in      *bufio.Scanner
	out     io.Writer
	timeout time.Duration
}

func (p *player) playCrime(ctx context.Context, client *transport.Client) error {
	var submitter *quiz.Submitter[domain.CrimeSubmission]
	if client != nil {
		submitter = quiz.NewSubmitter(quiz.SendFunc[domain.CrimeSubmission](client.SendCrime), quiz.WithTimeout(p.timeout))
	}
	q := quiz.NewCrimeQuiz(quiz.NewCrimeMachine(content.CrimeQuestions()), submitter)
	q.Start()

	for q.State().Phase == quiz.InProgress {
		item, _ := q.Current()
		fmt.Fprintf(p.out, "\nQuestion %d of %d (%s)\n%s\n", q.State().Index+1, q.Len(), item.Category, item.Prompt)
		if item.Context != "" {
			fmt.Fprintf(p.out, "%s\n", item.Context)
		}
		for i, opt := range item.Options {
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt.Label)
		}

		n, err := p.askNumber("Your answer", len(item.Options))
		if err != nil {
			return err
		}
		choice := item.Options[n-1]
		q.Select(choice.Value)
		q.Submit()

		verdict := "Not quite."
		if choice.Value == item.CorrectAnswer {
			verdict = "Correct!"
		}
		fmt.Fprintf(p.out, "%s %s\n%s\n", verdict, item.ActualData, item.Explanation)
		q.Advance()
	}

	gap, err := q.Results()
	if err != nil {
		fmt.Fprintln(p.out, "No questions answered.")
		return nil
	}
	fmt.Fprintf(p.out, "\nYou matched the data on %d of %d questions. Perception gap: %d%%\n", gap.CorrectCount, gap.Total, gap.GapPercent)
	p.reportSubmission(q.WaitSubmission(ctx), client != nil)
	return nil
}

func (p *player) playStatus(ctx context.Context, client *transport.Client) error {
	var submitter *quiz.Submitter[domain.StatusSubmission]
	if client != nil {
		submitter = quiz.NewSubmitter(quiz.SendFunc[domain.StatusSubmission](client.SendStatus), quiz.WithTimeout(p.timeout))
	}
	q := quiz.NewStatusQuiz(quiz.NewStatusMachine(content.Vignettes()), submitter)
	q.Start()

	for q.State().Phase == quiz.InProgress {
		v, _ := q.Current()
		fmt.Fprintf(p.out, "\nScenario %d of %d: %s\n%s\n", q.State().Index+1, q.Len(), v.Title, v.Scenario)

		a1, err := p.askYesNo(v.Q1.Text)
		if err != nil {
			return err
		}
		q.SelectAnswer(quiz.LegalStatus, a1)
		a2, err := p.askYesNo(v.Q2.Text)
		if err != nil {
			return err
		}
		q.SelectAnswer(quiz.Compliance, a2)
		q.Submit()

		pts, _ := q.RevealedPoints()
		fmt.Fprintf(p.out, "%s\n%s\n%s: %s\nPoints: %.1f\n", v.Q1.Feedback, v.Q2.Feedback, v.ConflictType, v.ConflictText, pts)
		fmt.Fprintf(p.out, "Scale: %s. %s\n", v.ScaleEstimate, v.ScaleDescription)

		op, err := p.askOpinion()
		if err != nil {
			return err
		}
		q.SetOpinion(op)
		q.Advance()
	}

	res := q.Results()
	fmt.Fprintf(p.out, "\nScore: %.1f / %d\n", res.Score, res.TotalQuestions)
	fmt.Fprintf(p.out, "You supported deportation in %d of %d scenarios.\n", res.DeportationYesCount, res.TotalQuestions)
	if res.DeportationYesCount > 0 {
		fmt.Fprintf(p.out, "Applied consistently, that would affect %s to %s people.\n", res.ScaleLow, res.ScaleHigh)
	}
	p.reportSubmission(q.WaitSubmission(ctx), client != nil)
	return nil
}

func (p *player) reportSubmission(res quiz.SubmitResult, enabled bool) {
	if !enabled {
		return
	}
	if res.Status == quiz.SubmitFailed {
		fmt.Fprintf(p.out, "Could not save your responses: %s\n", res.Reason)
		return
	}
	fmt.Fprintf(p.out, "Submission: %s\n", res.Status)
}

func (p *player) ask(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *player) askNumber(prompt string, max int) (int, error) {
	for {
		line, err := p.ask(fmt.Sprintf("%s [1-%d]", prompt, max))
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= max {
			return n, nil
		}
	}
}

func (p *player) askYesNo(prompt string) (domain.YesNo, error) {
	for {
		line, err := p.ask(prompt + " [y/n]")
		if err != nil {
			return "", err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return domain.Yes, nil
		case "n", "no":
			return domain.No, nil
		}
	}
}

func (p *player) askOpinion() (domain.Opinion, error) {
	for {
		line, err := p.ask("Should this person be deported? [y/n/u]")
		if err != nil {
			return "", err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return domain.OpinionYes, nil
		case "n", "no":
			return domain.OpinionNo, nil
		case "u", "unsure":
			return domain.OpinionUnsure, nil
		}
	}
}
