package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

// tokenFinders is the lookup order shared by Verifier and ForwardCredentials,
// so the token sent upstream is always the one that was verified.
var tokenFinders = []func(r *http.Request) string{
	jwtauth.TokenFromHeader,
	jwtauth.TokenFromCookie,
}

// Verifier verifies the caller's token from the Authorization header or the
// jwt cookie.
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return jwtauth.Verify(ja, tokenFinders...)
}

// callerToken returns the raw token Verifier picked for r.
func callerToken(r *http.Request) string {
	for _, find := range tokenFinders {
		if token := find(r); token != "" {
			return token
		}
	}
	return ""
}

// ForwardCredentials hands the caller's verified token and request id to the
// backend client so upstream calls run as the signed-in user.
func ForwardCredentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if token := callerToken(r); token != "" {
			ctx = apiclient.WithBearer(ctx, token)
		}
		if reqID := chiMiddleware.GetReqID(ctx); reqID != "" {
			ctx = apiclient.WithRequestID(ctx, reqID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
