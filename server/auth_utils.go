package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jrsteele09/codelearn-landing/auth"
)

// tabFor returns the storage id of the browser session that sent r, issuing a
// new one when the request carries none. The cookie has no Max-Age so it ends
// with the browser session. Every tab of one browser sends the same cookie
// and therefore shares one storage area.
func (s *Server) tabFor(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(s.config.GetTabCookieName()); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}

	tabID := uuid.New().String()
	s.SetTabCookie(w, r, tabID)
	return tabID
}

func (s *Server) SetTabCookie(w http.ResponseWriter, r *http.Request, tabID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.GetTabCookieName(),
		Value:    tabID,
		Path:     "/",
		HttpOnly: true,
		Secure:   getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode, // sent on the provider's top-level redirect back
	})
}

// httpNavigator answers a navigation request with a redirect.
type httpNavigator struct {
	w http.ResponseWriter
	r *http.Request
}

var _ auth.Navigator = (*httpNavigator)(nil)

func (n *httpNavigator) Navigate(target string) error {
	http.Redirect(n.w, n.r, target, http.StatusFound)
	return nil
}

// redirectSuccess sends the user agent on to path after a completed action.
func redirectSuccess(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}
