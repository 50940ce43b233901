package middleware

import (
	"context"
	"net/http"

	"github.com/mvdberg/huisportaal/internal/domain"
	"github.com/mvdberg/huisportaal/internal/service"
)

type contextKey string

const accountKey contextKey = "account"

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// The fixed page returned for unauthenticated access to protected routes.
// A link home, not a redirect to login.
const unauthorizedPage = `Hij doet het niet
<p>
<a href="/">
<button>Home</button>
</a></p>`

// Sessions resolves the session cookie to an account and stores it in the
// request context. The account row is fetched fresh on every request;
// invalid, expired, or unknown tokens just leave the request anonymous.
func Sessions(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			account, err := authService.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), accountKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAccount guards protected routes. Anonymous requests get the fixed
// unauthorized page and the handler never runs.
func RequireAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := AccountFrom(r.Context()); !ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(unauthorizedPage))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AccountFrom returns the authenticated account for this request, if any.
func AccountFrom(ctx context.Context) (*domain.Account, bool) {
	account, ok := ctx.Value(accountKey).(*domain.Account)
	return account, ok
}
