package http

import (
	"net/http"

	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"perception-quiz-service/internal/app"
)

var (
	corsHeaders = handlers.AllowedHeaders([]string{"Content-Type", "Accept"})
	corsMethods = handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"})
)

// NewRouter wires every HTTP and websocket route of the service. An empty
// allowedOrigins list allows any origin.
func NewRouter(service *app.ResponseService, allowedOrigins []string) http.Handler {
	responses := NewResponseHandler(service)
	play := NewPlayHandler(service, allowedOrigins)

	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/responses", responses.RecordStatus).Methods(http.MethodPost)
	api.HandleFunc("/responses", responses.StatusStats).Methods(http.MethodGet)
	api.HandleFunc("/crime-responses", responses.RecordCrime).Methods(http.MethodPost)
	api.HandleFunc("/crime-responses", responses.CrimeStats).Methods(http.MethodGet)
	api.HandleFunc("/insights", responses.Insights).Methods(http.MethodGet)
	api.HandleFunc("/content/{quiz}", ServeContent).Methods(http.MethodGet)

	r.HandleFunc("/ws/play", play.ServePlay).Methods(http.MethodGet)

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	var h http.Handler = r
	h = handlers.CORS(corsHeaders, corsMethods, handlers.AllowedOrigins(allowedOrigins))(h)
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(glogRecovery{}), handlers.PrintRecoveryStack(true))(h)
	return handlers.LoggingHandler(glogWriter{}, h)
}

// glogWriter feeds access log lines into glog at verbosity 1.
type glogWriter struct{}

func (glogWriter) Write(p []byte) (int, error) {
	if glog.V(1) {
		glog.InfoDepth(1, string(p))
	}
	return len(p), nil
}

type glogRecovery struct{}

func (glogRecovery) Println(v ...interface{}) {
	glog.ErrorDepth(1, v...)
}
