package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/golang/glog"

	"perception-quiz-service/internal/app"
	"perception-quiz-service/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// ResponseHandler exposes the collection endpoint over HTTP.
type ResponseHandler struct {
	service      *app.ResponseService
	crimeSchema  bodySchema
	statusSchema bodySchema
}

func NewResponseHandler(service *app.ResponseService) *ResponseHandler {
	return &ResponseHandler{
		service:      service,
		crimeSchema:  mustSchema(crimeSubmissionSchema),
		statusSchema: mustSchema(statusSubmissionSchema),
	}
}

// RecordStatus handles POST /api/responses.
func (h *ResponseHandler) RecordStatus(w http.ResponseWriter, r *http.Request) {
	var sub domain.StatusSubmission
	if !h.decode(w, r, h.statusSchema, &sub) {
		return
	}
	ack, err := h.service.RecordStatus(r.Context(), sub)
	h.writeAck(w, ack, err)
}

// RecordCrime handles POST /api/crime-responses.
func (h *ResponseHandler) RecordCrime(w http.ResponseWriter, r *http.Request) {
	var sub domain.CrimeSubmission
	if !h.decode(w, r, h.crimeSchema, &sub) {
		return
	}
	ack, err := h.service.RecordCrime(r.Context(), sub)
	h.writeAck(w, ack, err)
}

// StatusStats handles GET /api/responses.
func (h *ResponseHandler) StatusStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.StatusStats(r.Context())
	if err != nil {
		glog.Errorf("fetch status stats: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Failed to fetch statistics"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// CrimeStats handles GET /api/crime-responses.
func (h *ResponseHandler) CrimeStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.CrimeStats(r.Context())
	if err != nil {
		glog.Errorf("fetch crime stats: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Failed to fetch statistics"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Insights handles GET /api/insights.
func (h *ResponseHandler) Insights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.service.Insights(r.Context())
	if err != nil {
		glog.Errorf("fetch insights: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Failed to fetch statistics"})
		return
	}
	writeJSON(w, http.StatusOK, insights)
}

func (h *ResponseHandler) decode(w http.ResponseWriter, r *http.Request, schema bodySchema, out any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return false
	}
	if !json.Valid(body) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return false
	}
	violations, err := schema.validate(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return false
	}
	if len(violations) > 0 {
		glog.V(2).Infof("%s %s rejected: %v", r.Method, r.URL.Path, violations)
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Missing required fields", Details: violations})
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return false
	}
	return true
}

func (h *ResponseHandler) writeAck(w http.ResponseWriter, ack domain.Ack, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, ack)
	case errors.Is(err, domain.ErrMissingSessionID), errors.Is(err, domain.ErrMalformedHistory):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Missing required fields"})
	default:
		glog.Errorf("save responses: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Failed to save responses"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		glog.Errorf("write response: %v", err)
	}
}
