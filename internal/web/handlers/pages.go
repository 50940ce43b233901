package handlers

import (
	"net/http"

	"github.com/mvdberg/huisportaal/internal/web/render"
)

type PageHandler struct {
	renderer *render.Renderer
}

func NewPageHandler(renderer *render.Renderer) *PageHandler {
	return &PageHandler{renderer: renderer}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "home.html", pageData(r, nil))
}

func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "dashboard.html", pageData(r, nil))
}
