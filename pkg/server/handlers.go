package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/vango-dev/htmlcomponent/internal/errors"
)

// reply is the JSON body for websocket replies and HTTP errors. Details
// carries the structured error: location, detail, suggestion and doc URL.
type reply struct {
	HTML    string          `json:"html,omitempty"`
	Error   string          `json:"error,omitempty"`
	Code    string          `json:"code,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

func errorReply(err error) reply {
	e := errors.FromError(err, errors.CodeServerBody)
	return reply{
		Error:   e.FormatCompact(),
		Code:    e.Code,
		Details: json.RawMessage(e.FormatJSON()),
	}
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		e := errors.New(errors.CodeServerBody).Wrap(err)
		s.logger.Warn("request body rejected", "error", e.FormatCompact(), "limit", s.config.MaxBodyBytes)
		writeJSON(w, status, errorReply(e))
		return
	}

	out, err := s.compile(r.Context(), sourceHTTP, body, r.URL.Query()["attr"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorReply(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
