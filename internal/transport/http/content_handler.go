package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"perception-quiz-service/internal/content"
	"perception-quiz-service/internal/domain"
)

type pushbackBody struct {
	Items       []domain.PushbackItem `json:"items"`
	ClosingNote string                `json:"closingNote"`
}

// ServeContent handles GET /api/content/{quiz}.
func ServeContent(w http.ResponseWriter, r *http.Request) {
	switch mux.Vars(r)["quiz"] {
	case string(domain.QuizCrime):
		writeJSON(w, http.StatusOK, content.CrimeQuestions())
	case string(domain.QuizStatus):
		writeJSON(w, http.StatusOK, content.Vignettes())
	case "pushback":
		writeJSON(w, http.StatusOK, pushbackBody{Items: content.Pushback(), ClosingNote: content.ClosingNote})
	default:
		writeJSON(w, http.StatusNotFound, errorBody{Error: domain.ErrUnknownQuiz.Error()})
	}
}
