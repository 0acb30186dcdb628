package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"

	"perception-quiz-service/internal/app"
	"perception-quiz-service/internal/content"
	"perception-quiz-service/internal/domain"
	"perception-quiz-service/internal/quiz"
)

// PlayHandler runs one quiz session per websocket connection. Finished
// sessions are recorded in-process through the response service.
type PlayHandler struct {
	service   *app.ResponseService
	questions []domain.QuestionItem
	vignettes []domain.Vignette
	upgrader  websocket.Upgrader
}

// NewPlayHandler accepts upgrades from allowedOrigins only. An empty list or
// "*" allows any origin; requests without an Origin header are always allowed.
func NewPlayHandler(service *app.ResponseService, allowedOrigins []string) *PlayHandler {
	return &PlayHandler{
		service:   service,
		questions: content.CrimeQuestions(),
		vignettes: content.Vignettes(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServePlay upgrades GET /ws/play?quiz=crime|status and drives the quiz from client events.
func (h *PlayHandler) ServePlay(w http.ResponseWriter, r *http.Request) {
	kind := domain.QuizKind(r.URL.Query().Get("quiz"))
	if kind != domain.QuizCrime && kind != domain.QuizStatus {
		http.Error(w, "quiz must be crime or status", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		glog.Errorf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Submission results arrive from the submitter goroutine, possibly after
	// the client has gone; keep only the latest and never block.
	notices := make(chan quiz.SubmitResult, 1)
	notify := func(res quiz.SubmitResult) {
		select {
		case notices <- res:
		default:
			select {
			case <-notices:
			default:
			}
			select {
			case notices <- res:
			default:
			}
		}
	}
	session := h.newSession(kind, notify)

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	noticesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				glog.Errorf("ws write error: %v", err)
				// Keep draining so the read loop never blocks on a dead writer.
				for range send {
				}
				return
			}
		}
	}()

	go func() {
		defer close(noticesDone)
		for {
			select {
			case res := <-notices:
				msg := outboundMessage[any]{Type: "submission", Payload: submissionPayload(res)}
				select {
				case send <- msg:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	send <- outboundMessage[any]{Type: "state", Payload: session.view()}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if err := session.apply(inbound.Type, inbound.Payload); err != nil {
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
			continue
		}
		send <- outboundMessage[any]{Type: "state", Payload: session.view()}
	}

	close(closeSignals)
	<-noticesDone
	close(send)
	<-writerDone
}

func (h *PlayHandler) newSession(kind domain.QuizKind, notify func(quiz.SubmitResult)) playSession {
	if kind == domain.QuizStatus {
		submitter := quiz.NewSubmitter(quiz.SendFunc[domain.StatusSubmission](h.service.SendStatus), quiz.WithNotify(notify))
		return &statusPlay{q: quiz.NewStatusQuiz(quiz.NewStatusMachine(h.vignettes), submitter)}
	}
	submitter := quiz.NewSubmitter(quiz.SendFunc[domain.CrimeSubmission](h.service.SendCrime), quiz.WithNotify(notify))
	return &crimePlay{q: quiz.NewCrimeQuiz(quiz.NewCrimeMachine(h.questions), submitter)}
}

type submissionBody struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

func submissionPayload(res quiz.SubmitResult) submissionBody {
	return submissionBody{Status: res.Status.String(), Reason: res.Reason}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	for _, o := range allowed {
		if strings.TrimSpace(o) == "*" {
			allowed = nil
			break
		}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if strings.EqualFold(strings.TrimRight(strings.TrimSpace(o), "/"), origin) {
				return true
			}
		}
		// same host, as gorilla's default check
		u, err := url.Parse(origin)
		return err == nil && strings.EqualFold(u.Host, r.Host)
	}
}
