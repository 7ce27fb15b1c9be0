package web

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/abismo-rpg/comandos/internal/command"
	"github.com/abismo-rpg/comandos/internal/image"
	apperrors "github.com/abismo-rpg/comandos/internal/platform/errors"
	"github.com/abismo-rpg/comandos/internal/platform/requestctx"
	"github.com/abismo-rpg/comandos/internal/storage"
	"github.com/abismo-rpg/comandos/internal/web/platform/flash"
	"github.com/abismo-rpg/comandos/internal/web/routepath"
	"github.com/abismo-rpg/comandos/internal/web/templates"
)

// multipartMemoryLimit bounds how much of an upload is held in memory while
// parsing the admin form.
const multipartMemoryLimit = 8 * 1024 * 1024

func (h *Handler) handleAdmin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderAdmin(w, r, h.adminFormFromQuery(r), nil, http.StatusOK)
	case http.MethodPost:
		h.handleAdminSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// adminFormFromQuery prefills the form when an edit id is present. A missing
// record degrades to an empty form so the panel stays usable.
func (h *Handler) adminFormFromQuery(r *http.Request) templates.AdminForm {
	editID := strings.TrimSpace(r.URL.Query().Get("edit"))
	if editID == "" {
		return templates.AdminForm{}
	}
	cmd, err := h.store.GetCommand(r.Context(), editID)
	if err != nil {
		log.Printf("admin edit lookup id=%s: %v", editID, err)
		return templates.AdminForm{}
	}
	return templates.AdminForm{
		ID:       cmd.ID,
		Command:  cmd.Command,
		Title:    cmd.Title,
		Category: cmd.Category,
		Response: cmd.Response,
	}
}

// renderAdmin builds the full panel: the form plus every command grouped by
// category. Read failures degrade to empty sections and are logged.
func (h *Handler) renderAdmin(w http.ResponseWriter, r *http.Request, form templates.AdminForm, formErr error, status int) {
	ctx := r.Context()
	page := templates.AdminPage{
		Page:    h.pageContext(w, r, "title.admin"),
		Form:    form,
		Editing: strings.TrimSpace(form.ID) != "",
	}
	if formErr != nil {
		code := apperrors.CodeOf(formErr)
		page.Error = page.T(code.LocalizationKey())
		// Storage failures carry the backend's own message; show it so
		// the admin sees what actually went wrong.
		if cause := apperrors.CauseOf(formErr); cause != nil && code == apperrors.CodeStorageFailure {
			page.Error += ": " + cause.Error()
		}
	}

	categories, err := h.store.DistinctCategories(ctx)
	if err != nil {
		log.Printf("admin list categories: %v", err)
		categories = nil
	}
	page.Categories = withDefaultCategory(categories)

	commands, err := h.store.ListCommands(ctx)
	if err != nil {
		log.Printf("admin list commands: %v", err)
		commands = nil
	}
	page.Groups = h.groupCommands(ctx, commands, false)

	if err := templates.RenderStatus(w, status, "admin.html", page); err != nil {
		log.Printf("render admin: %v", err)
	}
}

func (h *Handler) handleAdminSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		h.renderAdmin(w, r, templates.AdminForm{}, apperrors.Wrap(apperrors.CodeUnknown, "parse admin form", err), http.StatusBadRequest)
		return
	}

	form := templates.AdminForm{
		ID:          strings.TrimSpace(r.PostFormValue("id")),
		Command:     r.PostFormValue("command"),
		Title:       r.PostFormValue("title"),
		Category:    r.PostFormValue("categoria"),
		NewCategory: r.PostFormValue("new_categoria"),
		Response:    r.PostFormValue("response"),
	}

	choice := command.CategoryChoice{Existing: form.Category, New: form.NewCategory}
	cmd := command.Command{
		ID:       form.ID,
		Command:  form.Command,
		Title:    form.Title,
		Category: choice.Resolve(),
		Response: form.Response,
	}

	if err := cmd.Validate(); err != nil {
		h.renderAdminError(w, r, form, err)
		return
	}

	// The image is normalized and stored before the record so a failed
	// upload never leaves a half-saved command.
	if err := h.storeUploadedImage(r, cmd); err != nil {
		h.renderAdminError(w, r, form, err)
		return
	}

	userID := requestctx.UserIDFromContext(r.Context())
	noticeKey := "flash.command_created"
	if cmd.ID != "" {
		noticeKey = "flash.command_updated"
		if err := h.store.UpdateCommand(r.Context(), cmd); err != nil {
			h.persistFailure(w, r, form, err)
			return
		}
		log.Printf("command updated id=%s user=%s", cmd.ID, userID)
	} else {
		created, err := h.store.InsertCommand(r.Context(), cmd)
		if err != nil {
			h.persistFailure(w, r, form, err)
			return
		}
		log.Printf("command created id=%s user=%s", created.ID, userID)
	}

	flash.Write(w, r, flash.NoticeSuccess(noticeKey))
	http.Redirect(w, r, routepath.Admin, http.StatusFound)
}

func (h *Handler) renderAdminError(w http.ResponseWriter, r *http.Request, form templates.AdminForm, err error) {
	h.renderAdmin(w, r, form, err, apperrors.CodeOf(err).HTTPStatus())
}

func (h *Handler) persistFailure(w http.ResponseWriter, r *http.Request, form templates.AdminForm, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		h.renderAdminError(w, r, form, apperrors.New(apperrors.CodeNotFound, "command not found"))
		return
	}
	log.Printf("admin persist command: %v", err)
	h.renderAdminError(w, r, form, apperrors.Wrap(apperrors.CodeStorageFailure, "persist command", err))
}

// storeUploadedImage validates, normalizes and stores the optional form
// image. A request without a file is not an error.
func (h *Handler) storeUploadedImage(r *http.Request, cmd command.Command) error {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil
		}
		return apperrors.Wrap(apperrors.CodeUploadFailed, "read uploaded image", err)
	}
	defer file.Close()

	if err := image.ValidateUpload(header.Header.Get("Content-Type"), header.Size); err != nil {
		return err
	}

	data, err := io.ReadAll(io.LimitReader(file, image.MaxUploadBytes+1))
	if err != nil {
		return apperrors.Wrap(apperrors.CodeUploadFailed, "read uploaded image", err)
	}
	if int64(len(data)) > image.MaxUploadBytes {
		return apperrors.New(apperrors.CodeImageTooLarge, "uploaded image exceeds the size limit")
	}

	normalized, err := image.Normalize(data)
	if err != nil {
		return err
	}

	key := command.ImageKey(cmd.Command)
	if err := h.assets.Put(r.Context(), key, normalized); err != nil {
		log.Printf("store command image key=%s: %v", key, err)
		return apperrors.Wrap(apperrors.CodeUploadFailed, "store command image", err)
	}
	return nil
}

func (h *Handler) handleAdminDelete(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderDeleteConfirm(w, r)
	case http.MethodPost:
		h.handleDeleteSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) renderDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	commandID := strings.TrimSpace(r.URL.Query().Get("id"))
	if commandID == "" {
		http.Redirect(w, r, routepath.Admin, http.StatusFound)
		return
	}

	cmd, err := h.store.GetCommand(r.Context(), commandID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("delete confirm lookup id=%s: %v", commandID, err)
		}
		http.Redirect(w, r, routepath.Admin, http.StatusFound)
		return
	}

	page := templates.DeletePage{
		Page: h.pageContext(w, r, "title.delete"),
		Command: templates.CommandView{
			ID:      cmd.ID,
			Command: cmd.Command,
			Title:   cmd.Title,
		},
	}
	if err := templates.Render(w, "delete.html", page); err != nil {
		log.Printf("render delete confirm: %v", err)
	}
}

func (h *Handler) handleDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, routepath.Admin, http.StatusFound)
		return
	}
	commandID := strings.TrimSpace(r.PostFormValue("id"))
	if commandID == "" {
		http.Redirect(w, r, routepath.Admin, http.StatusFound)
		return
	}

	// The stored image is left behind on purpose: a dangling object is
	// harmless and the key is reclaimed by the next upload for the same
	// command name.
	if err := h.store.DeleteCommand(r.Context(), commandID); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("delete command id=%s: %v", commandID, err)
		}
		http.Redirect(w, r, routepath.Admin, http.StatusFound)
		return
	}

	log.Printf("command deleted id=%s user=%s", commandID, requestctx.UserIDFromContext(r.Context()))
	flash.Write(w, r, flash.NoticeSuccess("flash.command_deleted"))
	http.Redirect(w, r, routepath.Admin, http.StatusFound)
}

func withDefaultCategory(categories []string) []string {
	for _, category := range categories {
		if category == command.DefaultCategory {
			return categories
		}
	}
	return append([]string{command.DefaultCategory}, categories...)
}
