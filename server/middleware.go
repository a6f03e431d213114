package server

import (
	"fmt"
	"net/http"
	"path"
	"runtime/debug"
	"strings"

	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog/log"
)

type middleware = func(http.HandlerFunc) http.HandlerFunc

func ChainMiddleware(routeFunction http.HandlerFunc, mw ...middleware) http.HandlerFunc {
	chainedHandler := routeFunction
	for i := len(mw) - 1; i >= 0; i-- {
		chainedHandler = mw[i](chainedHandler)
	}
	return chainedHandler
}

// HTMLMiddleWare is the chain for pages rendered from the tab session. Extra
// middleware runs innermost, after the security headers are set.
func (s *Server) HTMLMiddleWare(mw ...middleware) []middleware {
	return append([]middleware{
		s.WWWRedirectMiddleware,
		s.LoggingMiddleware,
		s.RecoverMiddleware,
		s.SecurityHeadersMiddleware,
		s.NoStoreMiddleware,
	}, mw...)
}

func (s *Server) StaticMiddleware() []middleware {
	return []middleware{
		s.WWWRedirectMiddleware,
		s.LoggingMiddleware,
		s.RecoverMiddleware,
		s.CacheMiddleware,
		s.compress,
	}
}

func (s *Server) WWWRedirectMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if host, ok := strings.CutPrefix(r.Host, "www."); ok {
			http.Redirect(w, r, fmt.Sprintf("https://%s%s", host, r.RequestURI), http.StatusMovedPermanently)
			return
		}
		next(w, r)
	}
}

// SecurityHeadersMiddleware stops other sites from framing the pages and
// keeps the tab cookie's pages from leaking the URL in referrers.
func (s *Server) SecurityHeadersMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("Content-Security-Policy", "frame-ancestors 'self'")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next(w, r)
	}
}

// NoStoreMiddleware keeps pages that depend on the tab session out of shared caches.
func (s *Server) NoStoreMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next(w, r)
	}
}

func (s *Server) RecoverMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("path", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("Recovered from panic")
				http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next(w, r)
	}
}

// Static assets are small, compress anything worth a gzip frame.
var gzipWrapper = func() func(http.Handler) http.HandlerFunc {
	wrapper, err := gzhttp.NewWrapper(gzhttp.MinSize(256))
	if err != nil {
		panic("Failed to create gzip wrapper: " + err.Error())
	}
	return wrapper
}()

func (s *Server) compress(next http.HandlerFunc) http.HandlerFunc {
	return gzipWrapper(next)
}

// cacheMaxAge maps static asset extensions to their Cache-Control max-age.
var cacheMaxAge = map[string]int{
	".svg":   3600,
	".png":   3600,
	".ico":   3600,
	".css":   300,
	".js":    300,
	".woff2": 300,
}

// CacheMiddleware sets Cache-Control for known static asset types
func (s *Server) CacheMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if maxAge, ok := cacheMaxAge[path.Ext(r.URL.Path)]; ok {
			w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, must-revalidate", maxAge))
		}
		next(w, r)
	}
}
