package web

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/abismo-rpg/comandos/internal/storage"
	"github.com/abismo-rpg/comandos/internal/web/platform/sessioncookie"
	"github.com/abismo-rpg/comandos/internal/web/routepath"
	"github.com/abismo-rpg/comandos/internal/web/session"
	"github.com/abismo-rpg/comandos/internal/web/templates"
)

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderLogin(w, r, "", "")
	case http.MethodPost:
		h.handleLoginSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, email, errorKey string) {
	page := templates.LoginPage{
		Page:  h.pageContext(w, r, "title.login"),
		Email: email,
	}
	if page.LoggedIn {
		http.Redirect(w, r, routepath.Admin, http.StatusFound)
		return
	}

	status := http.StatusOK
	if errorKey != "" {
		page.Error = page.T(errorKey)
		status = http.StatusUnauthorized
	}
	if err := templates.RenderStatus(w, status, "login.html", page); err != nil {
		log.Printf("render login: %v", err)
	}
}

func (h *Handler) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, "", "error.invalid_credentials")
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		h.renderLogin(w, r, email, "error.invalid_credentials")
		return
	}

	profile, err := h.store.GetProfileByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("login profile lookup: %v", err)
		}
		h.renderLogin(w, r, email, "error.invalid_credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		h.renderLogin(w, r, email, "error.invalid_credentials")
		return
	}

	token, err := session.Mint(profile.UserID, h.session)
	if err != nil {
		log.Printf("mint session user_id=%s: %v", profile.UserID, err)
		h.renderLogin(w, r, email, "error.unknown")
		return
	}
	sessioncookie.Write(w, r, token)
	http.Redirect(w, r, routepath.Admin, http.StatusFound)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessioncookie.Clear(w, r)
	http.Redirect(w, r, routepath.Home, http.StatusFound)
}
