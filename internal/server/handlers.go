package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sushil-thakur/enviro-segment/internal/engine"
)

// handleSegment runs one segmentation invocation. The response body is
// always the result JSON, success or failure; the status code tells the
// two apart (400 for caller mistakes, 500 for engine-side failures).
func (s *Server) handleSegment(w http.ResponseWriter, r *http.Request) {
	var params engine.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		badReq := &engine.InvalidInputError{Reason: "malformed request body: " + err.Error()}
		writeResult(w, http.StatusBadRequest, engine.FailureResult(badReq))
		return
	}

	result, err := s.engine.Run(params)
	if err != nil {
		writeResult(w, statusFor(err), engine.FailureResult(err))
		return
	}
	writeResult(w, http.StatusOK, result)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// statusFor maps the engine error taxonomy to HTTP statuses: input and
// load problems are the caller's (400), write failures and the
// defensive unsupported-class path are ours (500).
func statusFor(err error) int {
	var invalid *engine.InvalidInputError
	var load *engine.ImageLoadError
	if errors.As(err, &invalid) || errors.As(err, &load) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeResult(w http.ResponseWriter, status int, result *engine.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
