package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// LoginHandler starts the provider login for the requesting tab (GET /auth/login)
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.sessionFor(w, r)
		if err != nil {
			log.Err(err).Msg("Login: failed to create session helper")
			http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
			return
		}

		if err := session.BeginLogin(); err != nil {
			log.Err(err).Msg("Login: failed to start login")
			http.Error(w, "Failed to start login", http.StatusInternalServerError)
			return
		}
		// Success - the navigator has already written the redirect
	}
}

// LogoutHandler clears the tab session and sends the user agent to the
// provider logout endpoint (POST /auth/logout)
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.sessionFor(w, r)
		if err != nil {
			log.Err(err).Msg("Logout: failed to create session helper")
			http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
			return
		}

		if err := session.EndSession(); err != nil {
			log.Err(err).Msg("Logout: failed to redirect to provider")
			redirectSuccess(w, r, RouteIndex)
		}
	}
}
