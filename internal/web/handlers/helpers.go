package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mvdberg/huisportaal/internal/domain"
	"github.com/mvdberg/huisportaal/internal/web/middleware"
	"github.com/mvdberg/huisportaal/internal/web/render"
)

// formFields parses the form and checks that each named field was submitted.
// Empty values pass; an absent field is a client error.
func formFields(r *http.Request, fields ...string) (url.Values, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: unparseable form", domain.ErrMissingField)
	}
	for _, field := range fields {
		if !r.PostForm.Has(field) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingField, field)
		}
	}
	return r.PostForm, nil
}

func parseID(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

// parseWatched maps the submitted checkbox value to the stored 0/1 integer.
func parseWatched(value string) int {
	switch strings.ToLower(value) {
	case "1", "true", "on", "ja", "yes":
		return 1
	}
	return 0
}

// pageData adds the authenticated account, when present, for the layout.
func pageData(r *http.Request, data map[string]interface{}) map[string]interface{} {
	if data == nil {
		data = map[string]interface{}{}
	}
	if account, ok := middleware.AccountFrom(r.Context()); ok {
		data["Account"] = account
	}
	return data
}

func renderBadRequest(rn *render.Renderer, w http.ResponseWriter, r *http.Request) {
	rn.RenderStatus(w, r, http.StatusBadRequest, "error.html", pageData(r, map[string]interface{}{
		"Title":   "Bad Request",
		"Message": "The request was missing required form fields.",
	}))
}

func renderInternalError(rn *render.Renderer, w http.ResponseWriter, r *http.Request) {
	rn.RenderStatus(w, r, http.StatusInternalServerError, "error.html", pageData(r, map[string]interface{}{
		"Title":   "Internal Server Error",
		"Message": "Something went wrong. Please try again.",
	}))
}
