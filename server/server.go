package server

import (
	"fmt"
	"net/http"
	"strings"

	"filippo.io/csrf"
	"github.com/jrsteele09/codelearn-landing/auth"
	"github.com/jrsteele09/codelearn-landing/catalog"
	"github.com/jrsteele09/codelearn-landing/internal/config"
	"github.com/jrsteele09/codelearn-landing/sessions/tabstore"
)

type Server struct {
	env        string // Environment (e.g., "DEV", "PROD")
	mux        *http.ServeMux
	handler    http.Handler
	routes     []string
	config     config.Config
	authConfig auth.Config
	tabs       *tabstore.Store
	exchanger  CodeExchanger
	courses    []catalog.Course

	sessionOptions []auth.SessionServiceOption
}

// ServerOption defines a function type to modify the Server instance.
type ServerOption func(*Server)

// WithSessionOptions passes options to every per-request session helper.
func WithSessionOptions(options ...auth.SessionServiceOption) ServerOption {
	return func(s *Server) {
		s.sessionOptions = append(s.sessionOptions, options...)
	}
}

// WithCourses replaces the embedded catalog.
func WithCourses(courses []catalog.Course) ServerOption {
	return func(s *Server) {
		s.courses = courses
	}
}

func New(config config.Config, tabs *tabstore.Store, exchanger CodeExchanger, options ...ServerOption) (*Server, error) {
	if tabs == nil {
		return nil, fmt.Errorf("[Server New] tab store is required")
	}
	if exchanger == nil {
		return nil, fmt.Errorf("[Server New] code exchanger is required")
	}

	authConfig := AuthConfig(config)
	if err := authConfig.Validate(); err != nil {
		return nil, fmt.Errorf("[Server New] %w", err)
	}

	s := &Server{
		env:        config.GetEnv(),
		mux:        http.NewServeMux(),
		config:     config,
		authConfig: authConfig,
		tabs:       tabs,
		exchanger:  exchanger,
	}

	for _, opt := range options {
		opt(s)
	}
	if s.courses == nil {
		s.courses = catalog.Courses()
	}

	s.initRoutes()
	s.logRoutes()

	// Cross-origin protection for state changing requests; the provider's
	// redirect back to the callback is a safe GET and passes through.
	s.handler = csrf.New().Handler(s.mux)

	return s, nil
}

// AuthConfig derives the login flow parameters from the site configuration.
func AuthConfig(c config.Config) auth.Config {
	return auth.Config{
		ProviderDomain: c.GetProviderDomain(),
		ClientID:       c.GetClientID(),
		RedirectURI:    c.GetBaseURL() + c.GetCallbackPath(),
		LogoutURI:      c.GetBaseURL(),
		Scopes:         c.GetScopes(),
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// sessionFor builds the session helper of the tab that sent r. Navigation
// is answered as a redirect on w.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) (*auth.SessionService, error) {
	tabID := s.tabFor(w, r)
	return auth.NewSessionService(s.authConfig, s.tabs.Tab(tabID), &httpNavigator{w: w, r: r}, s.sessionOptions...)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
