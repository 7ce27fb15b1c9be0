// Package web hosts the site's HTTP surface: the public command listing,
// the login flow and the role-gated admin panel.
package web

import (
	"net/http"

	"github.com/abismo-rpg/comandos/internal/blob"
	"github.com/abismo-rpg/comandos/internal/storage"
	"github.com/abismo-rpg/comandos/internal/web/i18n"
	"github.com/abismo-rpg/comandos/internal/web/platform/flash"
	"github.com/abismo-rpg/comandos/internal/web/platform/httpx"
	"github.com/abismo-rpg/comandos/internal/web/platform/sessioncookie"
	"github.com/abismo-rpg/comandos/internal/web/routepath"
	"github.com/abismo-rpg/comandos/internal/web/session"
	"github.com/abismo-rpg/comandos/internal/web/static"
	"github.com/abismo-rpg/comandos/internal/web/templates"
)

// Handler serves every site route.
type Handler struct {
	store   storage.Store
	assets  blob.Store
	session session.Config
}

// NewHandler wires the site routes into an http.Handler.
func NewHandler(store storage.Store, assets blob.Store, sessionCfg session.Config) http.Handler {
	h := &Handler{store: store, assets: assets, session: sessionCfg}

	mux := http.NewServeMux()
	mux.HandleFunc(routepath.Home, h.handleHome)
	mux.HandleFunc(routepath.Login, h.handleLogin)
	mux.Handle(routepath.Logout, httpx.Chain(
		http.HandlerFunc(h.handleLogout),
		httpx.RequireMethod(http.MethodPost),
	))
	mux.Handle(routepath.Unauthorized, httpx.Chain(
		http.HandlerFunc(h.handleUnauthorized),
		httpx.RequireMethod(http.MethodGet),
	))

	mux.Handle(routepath.Admin, h.requireAdmin(http.HandlerFunc(h.handleAdmin)))
	mux.Handle(routepath.AdminDelete, h.requireAdmin(http.HandlerFunc(h.handleAdminDelete)))

	mux.Handle(routepath.StaticPrefix, http.StripPrefix(
		routepath.StaticPrefix,
		http.FileServer(http.FS(static.FS)),
	))
	mux.HandleFunc(routepath.AssetsPrefix, h.handleAsset)

	return httpx.Chain(mux, httpx.RequestID(), httpx.Trace("comandos/web"), httpx.RecoverPanic())
}

// pageContext resolves the language, flash notice and session state shared by
// every rendered page.
func (h *Handler) pageContext(w http.ResponseWriter, r *http.Request, titleKey string) templates.Page {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}

	page := templates.NewPage(tag)
	page.TitleKey = titleKey

	if notice, ok := flash.ReadAndClear(w, r); ok {
		page.Notice = &templates.NoticeView{
			Kind: string(notice.Kind),
			Text: page.T(notice.Key),
		}
	}

	if token, ok := sessioncookie.Read(r); ok {
		if _, err := session.Verify(token, h.session); err == nil {
			page.LoggedIn = true
		}
	}
	return page
}
