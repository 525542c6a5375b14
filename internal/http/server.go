// README: API gateway; registers HTTP routes and delegates to the pricing service.
package http

import (
	"net/http"

	"go.uber.org/zap"

	"fareengine/internal/modules/pricing"
)

type ServerDeps struct {
	Pricing *pricing.Service
	Log     *zap.Logger
}

type Server struct {
	pricing *pricing.Service
	log     *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		pricing: deps.Pricing,
		log:     deps.Log,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/estimates", s.HandleEstimate)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return mux
}
