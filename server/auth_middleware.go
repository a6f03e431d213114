package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// RequireSession is middleware for pages that need a signed in tab. Visitors
// without a valid session are sent back to the landing page.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			session, err := s.sessionFor(w, r)
			if err != nil {
				log.Err(err).Msg("Failed to create session helper")
				http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
				return
			}

			if !session.IsSessionValid() {
				redirectSuccess(w, r, RouteIndex)
				return
			}

			next(w, r)
		}
	}
}
