package web

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/abismo-rpg/comandos/internal/command"
	"github.com/abismo-rpg/comandos/internal/storage"
	"github.com/abismo-rpg/comandos/internal/web/routepath"
	"github.com/abismo-rpg/comandos/internal/web/templates"
)

// handleHome renders the public command listing. Storage failures degrade to
// an empty page so visitors never see an error for a read-only view.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Home {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	page := templates.HomePage{Page: h.pageContext(w, r, "title.home")}

	if history, err := h.store.GetCommandByName(ctx, command.HistoryCommand); err == nil {
		view := h.commandView(ctx, history, false)
		page.History = &view
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("home history lookup: %v", err)
	}

	commands, err := h.store.ListPublicCommands(ctx)
	if err != nil {
		log.Printf("home list commands: %v", err)
		commands = nil
	}
	page.Groups = h.groupCommands(ctx, commands, true)

	if err := templates.Render(w, "home.html", page); err != nil {
		log.Printf("render home: %v", err)
	}
}

// groupCommands buckets commands by category, preserving the store's command
// order and sorting category names with the default category pinned first.
func (h *Handler) groupCommands(ctx context.Context, commands []command.Command, withImages bool) []templates.CategoryGroup {
	if len(commands) == 0 {
		return nil
	}
	grouped := command.GroupByCategory(commands)
	groups := make([]templates.CategoryGroup, 0, len(grouped))
	for _, category := range command.SortedCategories(grouped) {
		group := templates.CategoryGroup{Name: category}
		for _, cmd := range grouped[category] {
			group.Commands = append(group.Commands, h.commandView(ctx, cmd, withImages))
		}
		groups = append(groups, group)
	}
	return groups
}

// commandView prepares one command for display. The image URL is only set
// when the asset actually exists so pages never render broken images.
func (h *Handler) commandView(ctx context.Context, cmd command.Command, withImage bool) templates.CommandView {
	view := templates.CommandView{
		ID:         cmd.ID,
		Command:    cmd.Command,
		Title:      cmd.Title,
		Category:   cmd.Category,
		Paragraphs: command.Paragraphs(cmd.Response),
	}
	if withImage {
		key := command.ImageKey(cmd.Command)
		if h.assets.Exists(ctx, key) {
			view.ImageURL = routepath.Asset(key)
		}
	}
	return view
}
