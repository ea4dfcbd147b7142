package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-mobile-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireReviewer requires manager or owner role
func RequireReviewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, auth.ErrReviewerAccessRequired)
			return
		}

		if !auth.Role(roleStr).CanReview() {
			response.HandleError(w, auth.ErrReviewerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
