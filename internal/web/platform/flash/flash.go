// Package flash provides one-time notices persisted across redirects.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/abismo-rpg/comandos/internal/web/platform/requestmeta"
)

// CookieName is the canonical cookie used for one-time notices.
const CookieName = "comandos_flash"

// Kind classifies flash notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice stores one flash message reference. Key is a localization key
// resolved at render time.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// NoticeSuccess creates a success notice for the provided localization key.
func NoticeSuccess(key string) Notice {
	return Notice{Kind: KindSuccess, Key: key}
}

// NoticeError creates an error notice for the provided localization key.
func NoticeError(key string) Notice {
	return Notice{Kind: KindError, Key: key}
}

// Write stores a flash notice cookie for the next page render.
func Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	if w == nil {
		return
	}
	normalized, ok := normalizeNotice(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear reads and clears the flash notice cookie.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return Notice{}, false
	}
	if w != nil {
		Clear(w, r)
	}
	return decodeNotice(cookie.Value)
}

// Clear expires any flash notice cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func decodeNotice(raw string) (Notice, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Notice{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalizeNotice(notice)
}

func normalizeNotice(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	if notice.Key == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
