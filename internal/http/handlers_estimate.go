// README: Estimate HTTP handler; accepts addresses or raw coordinates.
package http

import (
	"encoding/json"
	"net/http"

	"fareengine/internal/types"
)

type estimateRequest struct {
	PickupAddress  string       `json:"pickup_address"`
	DropoffAddress string       `json:"dropoff_address"`
	Pickup         *types.Point `json:"pickup"`
	Dropoff        *types.Point `json:"dropoff"`
}

// HandleEstimate prices a trip. The body carries either a pair of street
// addresses or a pair of coordinates; addresses win when both are present.
// Pricing never fails, so the only error responses are for bad input.
func (s *Server) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	switch {
	case req.PickupAddress != "" && req.DropoffAddress != "":
		est := s.pricing.EstimateByAddress(r.Context(), req.PickupAddress, req.DropoffAddress)
		writeJSON(w, http.StatusOK, est)
	case req.Pickup != nil && req.Dropoff != nil:
		est := s.pricing.EstimateByCoordinates(r.Context(), *req.Pickup, *req.Dropoff)
		writeJSON(w, http.StatusOK, est)
	default:
		s.log.Debug("estimate request missing trip endpoints")
		writeError(w, http.StatusBadRequest, "pickup and dropoff addresses or coordinates are required")
	}
}
