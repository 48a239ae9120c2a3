package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"globalquote/internal/application"
	"globalquote/internal/domain"
)

type Server struct {
	svc  *application.QuoteService
	ping func(ctx context.Context) error
}

func NewServer(svc *application.QuoteService) *Server { return &Server{svc: svc} }

// SetReadyCheck installs the probe used by /readyz.
func (s *Server) SetReadyCheck(fn func(ctx context.Context) error) { s.ping = fn }

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

func (s *Server) GetGlobalQuote(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	q, err := s.svc.GetGlobalQuote(r.Context(), symbol)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	if q.IsEmpty() {
		writeError(w, http.StatusNotFound, "symbol not found")
		return
	}
	writeJSON(w, http.StatusOK, q.Snapshot)
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, application.ErrBadRequest) {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}
	var de *domain.Error
	if !errors.As(err, &de) {
		internalError(w)
		return
	}
	body := errorBody{Kind: de.Kind.String()}
	switch de.Kind {
	case domain.KindRateLimited:
		body.Code, body.Message = http.StatusTooManyRequests, de.Message
	case domain.KindUpstream:
		body.Code, body.Message = http.StatusBadGateway, de.Message
	case domain.KindMalformed:
		body.Code, body.Message = http.StatusBadGateway, "malformed upstream response"
	case domain.KindTransport:
		body.Code, body.Message = http.StatusBadGateway, "upstream unavailable"
		if de.Timeout {
			body.Code, body.Message = http.StatusGatewayTimeout, "upstream timeout"
		}
	default:
		internalError(w)
		return
	}
	writeJSON(w, body.Code, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Code: status, Message: msg})
}

func internalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
