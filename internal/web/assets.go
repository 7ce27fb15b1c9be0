package web

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/abismo-rpg/comandos/internal/blob"
	"github.com/abismo-rpg/comandos/internal/web/routepath"
)

// handleAsset serves stored command images.
func (h *Handler) handleAsset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	key := strings.TrimPrefix(r.URL.Path, "/")
	if !strings.HasPrefix(r.URL.Path, routepath.AssetsPrefix) || !blob.ValidKey(key) {
		http.NotFound(w, r)
		return
	}

	data, err := h.assets.Read(r.Context(), key)
	if err != nil {
		if !errors.Is(err, blob.ErrNotExist) {
			log.Printf("read asset key=%s: %v", key, err)
		}
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=300")
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(data); err != nil {
		log.Printf("write asset key=%s: %v", key, err)
	}
}
