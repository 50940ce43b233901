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

type FilmHandler struct {
	filmService *service.FilmService
	renderer    *render.Renderer
	logger      zerolog.Logger
}

func NewFilmHandler(filmService *service.FilmService, renderer *render.Renderer, logger zerolog.Logger) *FilmHandler {
	return &FilmHandler{
		filmService: filmService,
		renderer:    renderer,
		logger:      logger,
	}
}

func (h *FilmHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "")
}

// CreateAndList inserts a film from the listing page's own form and
// re-renders the updated list in the same response.
func (h *FilmHandler) CreateAndList(w http.ResponseWriter, r *http.Request) {
	account, _ := middleware.AccountFrom(r.Context())

	form, err := formFields(r, "film", "jaar", "bekeken", "timestamp")
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}

	_, err = h.filmService.Add(r.Context(), account.ID, service.FilmInput{
		Title:     form.Get("film"),
		Year:      form.Get("jaar"),
		Watched:   parseWatched(form.Get("bekeken")),
		Timestamp: form.Get("timestamp"),
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("film insert failed")
		renderInternalError(h.renderer, w, r)
		return
	}

	h.renderList(w, r, "Film added successfully")
}

func (h *FilmHandler) Add(w http.ResponseWriter, r *http.Request) {
	account, _ := middleware.AccountFrom(r.Context())

	form, err := formFields(r, "film", "jaar", "bekeken", "timestamp")
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}

	_, err = h.filmService.Add(r.Context(), account.ID, service.FilmInput{
		Title:     form.Get("film"),
		Year:      form.Get("jaar"),
		Watched:   parseWatched(form.Get("bekeken")),
		Timestamp: form.Get("timestamp"),
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("film insert failed")
		renderInternalError(h.renderer, w, r)
		return
	}

	render.SetFlash(w, "Film added successfully")
	http.Redirect(w, r, "/films", http.StatusSeeOther)
}

func (h *FilmHandler) Edit(w http.ResponseWriter, r *http.Request) {
	account, _ := middleware.AccountFrom(r.Context())

	form, err := formFields(r, "idfilm", "nieuwenaam", "nieuwjaar", "edit_bekeken", "timestamp")
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}
	id, err := parseID(form.Get("idfilm"))
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}

	err = h.filmService.Update(r.Context(), id, account.ID, service.FilmInput{
		Title:     form.Get("nieuwenaam"),
		Year:      form.Get("nieuwjaar"),
		Watched:   parseWatched(form.Get("edit_bekeken")),
		Timestamp: form.Get("timestamp"),
	})
	h.finishMutation(w, r, err, "Film updated successfully", "film update failed")
}

func (h *FilmHandler) Remove(w http.ResponseWriter, r *http.Request) {
	account, _ := middleware.AccountFrom(r.Context())

	form, err := formFields(r, "idfilm")
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}
	id, err := parseID(form.Get("idfilm"))
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}

	err = h.filmService.Delete(r.Context(), id, account.ID)
	h.finishMutation(w, r, err, "Film deleted successfully", "film delete failed")
}

func (h *FilmHandler) finishMutation(w http.ResponseWriter, r *http.Request, err error, success, logMsg string) {
	switch {
	case err == nil:
		render.SetFlash(w, success)
	case errors.Is(err, domain.ErrRecordNotFound):
		render.SetFlash(w, "Film not found")
	default:
		h.logger.Error().Err(err).Msg(logMsg)
		renderInternalError(h.renderer, w, r)
		return
	}
	http.Redirect(w, r, "/films", http.StatusSeeOther)
}

func (h *FilmHandler) renderList(w http.ResponseWriter, r *http.Request, flash string) {
	account, _ := middleware.AccountFrom(r.Context())

	films, err := h.filmService.List(r.Context(), account.ID)
	if err != nil {
		h.logger.Error().Err(err).Msg("film listing failed")
		renderInternalError(h.renderer, w, r)
		return
	}

	data := pageData(r, map[string]interface{}{
		"Title": "Films",
		"Films": films,
	})
	if flash != "" {
		data["Flash"] = flash
	}
	h.renderer.Render(w, r, "films.html", data)
}
