package server

import (
	"fmt"
	"net/http"

	"github.com/jrsteele09/codelearn-landing/oauth2"
	"github.com/rs/zerolog/log"
)

// OAuthCallbackHandler receives the provider's redirect, checks the state of
// the tab's in-flight login, exchanges the code and stores the session.
func (s *Server) OAuthCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		state := query.Get(oauth2.ParamState)
		code := query.Get(oauth2.ParamCode)
		errorParam := query.Get(oauth2.ParamError)
		errorDesc := query.Get(oauth2.ParamErrorDesc)

		// Check for authorization errors
		if errorParam != "" {
			http.Error(w, fmt.Sprintf("Authorization failed: %s - %s", errorParam, errorDesc), http.StatusBadRequest)
			return
		}

		if code == "" || state == "" {
			http.Error(w, "Missing code or state parameter", http.StatusBadRequest)
			return
		}

		session, err := s.sessionFor(w, r)
		if err != nil {
			log.Err(err).Msg("Callback: failed to create session helper")
			http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
			return
		}

		if err := session.VerifyState(state); err != nil {
			log.Warn().Err(err).Msg("Callback: state check failed")
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		tokens, err := s.exchanger.Exchange(r.Context(), code)
		if err != nil {
			log.Err(err).Msg("Callback: token exchange failed")
			http.Error(w, "Token exchange failed", http.StatusBadGateway)
			return
		}

		if err := session.WriteSession(tokens); err != nil {
			// Already logged by the session helper; the landing page shows the login CTA again.
			redirectSuccess(w, r, RouteIndex)
			return
		}

		redirectSuccess(w, r, RouteDashboard)
	}
}
