package web

import (
	"log"
	"net/http"

	"github.com/abismo-rpg/comandos/internal/platform/requestctx"
	"github.com/abismo-rpg/comandos/internal/storage"
	"github.com/abismo-rpg/comandos/internal/web/platform/sessioncookie"
	"github.com/abismo-rpg/comandos/internal/web/routepath"
	"github.com/abismo-rpg/comandos/internal/web/session"
	"github.com/abismo-rpg/comandos/internal/web/templates"
)

// requireAdmin wraps next with session-based role authentication.
//
// Requests without a valid session are sent to the login page. Sessions that
// resolve to a profile without the admin role are sent to the unauthorized
// page, keeping the two failure modes distinguishable to the visitor.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := sessioncookie.Read(r)
		if !ok {
			http.Redirect(w, r, routepath.Login, http.StatusFound)
			return
		}

		userID, err := session.Verify(token, h.session)
		if err != nil {
			sessioncookie.Clear(w, r)
			http.Redirect(w, r, routepath.Login, http.StatusFound)
			return
		}

		profile, err := h.store.GetProfile(r.Context(), userID)
		if err != nil {
			log.Printf("admin gate profile lookup user_id=%s: %v", userID, err)
			http.Redirect(w, r, routepath.Unauthorized, http.StatusFound)
			return
		}
		if profile.Role != storage.RoleAdmin {
			http.Redirect(w, r, routepath.Unauthorized, http.StatusFound)
			return
		}

		ctx := requestctx.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) handleUnauthorized(w http.ResponseWriter, r *http.Request) {
	page := templates.UnauthorizedPage{Page: h.pageContext(w, r, "title.unauthorized")}
	if err := templates.RenderStatus(w, http.StatusForbidden, "unauthorized.html", page); err != nil {
		log.Printf("render unauthorized: %v", err)
	}
}
