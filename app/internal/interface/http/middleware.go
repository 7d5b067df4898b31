package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"example.com/cosmatic-storefront/app/internal/domain/locale"
	"example.com/cosmatic-storefront/app/internal/infra/security"
	cartuc "example.com/cosmatic-storefront/app/internal/usecase/cart"
	sessionuc "example.com/cosmatic-storefront/app/internal/usecase/session"
)

const sessionCookie = "storefront_session"

type (
	ctxLocaleKey  struct{}
	ctxSessionKey struct{}
)

// localeMiddleware resolves the {locale} path segment. Unknown locales 404.
func (a *API) localeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l, err := locale.Parse(chi.URLParam(r, "locale"))
		if err != nil {
			handleDomainError(w, err)
			return
		}
		w.Header().Set("Content-Language", string(l))
		ctx := context.WithValue(r.Context(), ctxLocaleKey{}, l)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getLocale(ctx context.Context) locale.Locale {
	if l, ok := ctx.Value(ctxLocaleKey{}).(locale.Locale); ok {
		return l
	}
	return locale.Default
}

// sessionMiddleware attaches the caller's session, starting a new one when
// the cookie is missing or does not verify. The session stays locked until
// the request completes.
func (a *API) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if c, err := r.Cookie(sessionCookie); err == nil {
			if id, err := a.tokenSvc.ParseToken(c.Value); err == nil {
				sessionID = id
			} else {
				a.logger.WithError(err).Debug("session cookie rejected")
			}
		}

		if sessionID == "" {
			sessionID = security.NewSessionID()
			token, err := a.tokenSvc.GenerateToken(sessionID)
			if err != nil {
				respondError(w, http.StatusInternalServerError, err)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    token,
				Path:     "/",
				MaxAge:   int(a.sessionTTL.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		sess, err := a.sessions.Open(r.Context(), sessionID)
		if err != nil {
			a.logger.WithError(err).WithField("session_id", sessionID).Error("session unavailable")
			handleDomainError(w, err)
			return
		}
		sess.Lock()
		defer sess.Unlock()

		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		ctx = cartuc.NewContext(ctx, sess.Cart)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getSession(ctx context.Context) *sessionuc.Session {
	if s, ok := ctx.Value(ctxSessionKey{}).(*sessionuc.Session); ok {
		return s
	}
	return nil
}
