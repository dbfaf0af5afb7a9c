package delivery

import (
	"net/http"

	"github.com/Vovarama1992/fine_teaching/internal/apperr"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders err as {"error": {...}}. Causes are logged, never sent.
func writeError(w http.ResponseWriter, r *http.Request, log *logger.ZapLogger, err error) {
	status := apperr.Status(err)

	level := "warn"
	if status >= http.StatusInternalServerError {
		level = "error"
	}
	log.Log(logger.LogEntry{
		Level:   level,
		Message: r.Method + " " + r.URL.Path + " failed (request " + middleware.GetReqID(r.Context()) + ")",
		Service: "delivery",
		Error:   err,
	})

	writeJSON(w, status, apperr.ToResponse(err))
}
