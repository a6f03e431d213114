package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// DashboardPageData contains data for rendering the dashboard placeholder.
// The identity fields come from the unverified ID token and are display only.
type DashboardPageData struct {
	AppName   string
	Name      string
	Email     string
	ExpiresAt time.Time
	LogoutURL string
}

// DashboardHandler renders the signed in landing area (GET /dashboard)
func (s *Server) DashboardHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("dashboard.html")

	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.sessionFor(w, r)
		if err != nil {
			log.Err(err).Msg("Dashboard: failed to create session helper")
			http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
			return
		}

		data := DashboardPageData{
			AppName:   s.config.GetAppName(),
			LogoutURL: RouteAuthLogout,
		}

		if stored, err := session.ReadSession(); err == nil {
			data.ExpiresAt = stored.ExpiresAt()
		}
		if claims, err := session.CurrentClaims(); err == nil {
			data.Name = claims.Name()
			data.Email = claims.Email()
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render dashboard template")
		}
	}
}
