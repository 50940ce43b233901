package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mvdberg/huisportaal/internal/domain"
	"github.com/mvdberg/huisportaal/internal/service"
	"github.com/mvdberg/huisportaal/internal/web/middleware"
	"github.com/mvdberg/huisportaal/internal/web/render"
)

type AuthHandler struct {
	authService *service.AuthService
	renderer    *render.Renderer
	logger      zerolog.Logger
}

func NewAuthHandler(authService *service.AuthService, renderer *render.Renderer, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		renderer:    renderer,
		logger:      logger,
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "login.html", pageData(r, nil))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	form, err := formFields(r, "username", "password")
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}

	account, session, err := h.authService.Login(r.Context(), service.LoginInput{
		Username: form.Get("username"),
		Password: form.Get("password"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.renderer.Render(w, r, "login.html", pageData(r, map[string]interface{}{
				"Error": "Invalid username or password",
			}))
			return
		}
		h.logger.Error().Err(err).Msg("login failed")
		renderInternalError(h.renderer, w, r)
		return
	}

	h.logger.Info().Int64("account_id", account.ID).Msg("login")
	setSessionCookie(w, r, session)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "register.html", pageData(r, nil))
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	form, err := formFields(r, "username", "password")
	if err != nil {
		renderBadRequest(h.renderer, w, r)
		return
	}

	account, err := h.authService.Register(r.Context(), service.RegisterInput{
		Username: form.Get("username"),
		Password: form.Get("password"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			h.renderer.Render(w, r, "register.html", pageData(r, map[string]interface{}{
				"Error": "Username already exists",
			}))
			return
		}
		h.logger.Error().Err(err).Msg("registration failed")
		renderInternalError(h.renderer, w, r)
		return
	}

	h.logger.Info().Int64("account_id", account.ID).Msg("account registered")
	render.SetFlash(w, "You have successfully registered! Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Error().Err(err).Msg("logout failed")
		}
	}

	clearSessionCookie(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
