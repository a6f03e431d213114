package server

import (
	"net/http"

	"github.com/jrsteele09/codelearn-landing/catalog"
	"github.com/rs/zerolog/log"
)

// IndexPageData contains data for rendering the landing page
type IndexPageData struct {
	AppName       string
	Authenticated bool // chooses between the login and the dashboard CTA
	Courses       []catalog.Course
	LoginURL      string
	DashboardURL  string
}

// IndexHandler renders the home page
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.sessionFor(w, r)
		if err != nil {
			log.Err(err).Msg("Failed to create session helper")
			http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
			return
		}

		data := IndexPageData{
			AppName:       s.config.GetAppName(),
			Authenticated: session.IsSessionValid(),
			Courses:       catalog.Enabled(s.courses),
			LoginURL:      RouteAuthLogin,
			DashboardURL:  RouteDashboard,
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render index template")
		}
	}
}
