package httpserver

import (
	"encoding/base64"
	"net/http"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/bryanwahyu/cad-detect/internal/infra/web"
)

const (
	flashCookie   = "cad_flash"
	sidebarCookie = "cad_sidebar"
	menuCookie    = "cad_menu"
)

// setFlash stores a toast for the next page the browser loads.
func setFlash(w http.ResponseWriter, t web.Toast) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    t.Kind + "." + base64.RawURLEncoding.EncodeToString([]byte(t.Message)),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash reads and clears the pending toast.
func takeFlash(w http.ResponseWriter, r *http.Request) web.Toast {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return web.Toast{}
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})

	kind, enc, ok := strings.Cut(c.Value, ".")
	if !ok {
		return web.Toast{}
	}
	msg, err := base64.RawURLEncoding.DecodeString(enc)
	if err != nil {
		return web.Toast{}
	}
	return web.Toast{Kind: kind, Message: string(msg)}
}

// redirect flashes t and sends the browser to target with 303.
func redirect(w http.ResponseWriter, r *http.Request, target string, t web.Toast) {
	if !t.Empty() {
		setFlash(w, t)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// flag reads a UI flag from the query, remembers it in a cookie, and
// otherwise falls back to the cookie.
func flag(w http.ResponseWriter, r *http.Request, param, cookie, on, off string) bool {
	switch v := r.URL.Query().Get(param); v {
	case on, off:
		http.SetCookie(w, &http.Cookie{Name: cookie, Value: v, Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
		return v == on
	}
	if c, err := r.Cookie(cookie); err == nil {
		return c.Value == on
	}
	return false
}

func (r *Router) uiState(w http.ResponseWriter, req *http.Request) web.UIState {
	st := web.UIState{
		ActivePath: req.URL.Path,
		Collapsed:  flag(w, req, "sidebar", sidebarCookie, "collapsed", "expanded"),
		MenuOpen:   flag(w, req, "menu", menuCookie, "open", "closed"),
		Toast:      takeFlash(w, req),
	}
	if r.cat != nil {
		st.Footer = r.cat.App.Footer
	}
	return st
}

func clearUIState(w http.ResponseWriter) {
	for _, name := range []string{sidebarCookie, menuCookie} {
		http.SetCookie(w, &http.Cookie{Name: name, Value: "", Path: "/", MaxAge: -1})
	}
}

// render writes a full HTML page.
func render(w http.ResponseWriter, status int, n g.Node) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return n.Render(w)
}
