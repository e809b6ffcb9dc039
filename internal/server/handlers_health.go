package server

import (
	"net/http"
)

// handleHealth godoc
// @Title Health check
// @Description Returns host uptime in seconds and the hostname.
// @Resource System
// @Produce json
// @Success 200 {object} health.Snapshot
// @Failure 500 {object} APIError
// @Route /api/v1/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap, err := s.health.Snapshot(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("health snapshot failed")
		s.writeError(w, http.StatusInternalServerError, msgHealthFailed, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}
