package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mvdberg/huisportaal/internal/domain"
	"github.com/mvdberg/huisportaal/internal/service"
	"github.com/mvdberg/huisportaal/internal/web/middleware"
	"github.com/mvdberg/huisportaal/internal/web/render"
)

type ContactHandler struct {
	contactService *service.ContactService
	renderer       *render.Renderer
	logger         zerolog.Logger
}

func NewContactHandler(contactService *service.ContactService, renderer *render.Renderer, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		renderer:       renderer,
		logger:         logger,
	}
}

// List renders the caller's phone book in insertion order.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "")
}

// CreateAndList inserts a contact from the listing page's own form and
// re-renders the updated list in the same response.
func (h *ContactHandler) CreateAndList(w http.ResponseWriter, r *http.Request) {
	account, _ := middleware.AccountFrom(r.Context())

	form, err := formFields(r, "name", "phone_number")
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}

	_, err = h.contactService.Add(r.Context(), account.ID, form.Get("name"), form.Get("phone_number"))
	if err != nil {
		h.logger.Error().Err(err).Msg("contact insert failed")
		renderInternalError(h.renderer, w, r)
		return
	}

	h.renderList(w, r, "Contact added successfully")
}

func (h *ContactHandler) Add(w http.ResponseWriter, r *http.Request) {
	account, _ := middleware.AccountFrom(r.Context())

	form, err := formFields(r, "naam", "nummer")
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}

	_, err = h.contactService.Add(r.Context(), account.ID, form.Get("naam"), form.Get("nummer"))
	if err != nil {
		h.logger.Error().Err(err).Msg("contact insert failed")
		renderInternalError(h.renderer, w, r)
		return
	}

	render.SetFlash(w, "Contact added successfully")
	http.Redirect(w, r, "/telefoonboek", http.StatusSeeOther)
}

func (h *ContactHandler) EditPhone(w http.ResponseWriter, r *http.Request) {
	account, _ := middleware.AccountFrom(r.Context())

	form, err := formFields(r, "telid", "nieuwnummer")
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}
	id, err := parseID(form.Get("telid"))
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}

	err = h.contactService.UpdatePhone(r.Context(), id, account.ID, form.Get("nieuwnummer"))
	h.finishMutation(w, r, err, "Nummer updated successfully", "contact phone update failed")
}

func (h *ContactHandler) EditName(w http.ResponseWriter, r *http.Request) {
	account, _ := middleware.AccountFrom(r.Context())

	form, err := formFields(r, "telid", "nieuwenaam")
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}
	id, err := parseID(form.Get("telid"))
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}

	err = h.contactService.UpdateName(r.Context(), id, account.ID, form.Get("nieuwenaam"))
	h.finishMutation(w, r, err, "Naam updated successfully", "contact name update failed")
}

func (h *ContactHandler) Remove(w http.ResponseWriter, r *http.Request) {
	account, _ := middleware.AccountFrom(r.Context())

	form, err := formFields(r, "telid")
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}
	id, err := parseID(form.Get("telid"))
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}

	err = h.contactService.Delete(r.Context(), id, account.ID)
	h.finishMutation(w, r, err, "Contact deleted successfully", "contact delete failed")
}

// finishMutation flashes the outcome and redirects back to the listing, so a
// refresh never resubmits the form.
func (h *ContactHandler) finishMutation(w http.ResponseWriter, r *http.Request, err error, success, logMsg string) {
	switch {
	case err == nil:
		render.SetFlash(w, success)
	case errors.Is(err, domain.ErrRecordNotFound):
		render.SetFlash(w, "Contact not found")
	default:
		h.logger.Error().Err(err).Msg(logMsg)
		renderInternalError(h.renderer, w, r)
		return
	}
	http.Redirect(w, r, "/telefoonboek", http.StatusSeeOther)
}

func (h *ContactHandler) renderList(w http.ResponseWriter, r *http.Request, flash string) {
	account, _ := middleware.AccountFrom(r.Context())

	contacts, err := h.contactService.List(r.Context(), account.ID)
	if err != nil {
		h.logger.Error().Err(err).Msg("contact listing failed")
		renderInternalError(h.renderer, w, r)
		return
	}

	data := pageData(r, map[string]interface{}{
		"Title":    "Telefoonboek",
		"Contacts": contacts,
	})
	if flash != "" {
		data["Flash"] = flash
	}
	h.renderer.Render(w, r, "telefoonboek.html", data)
}
