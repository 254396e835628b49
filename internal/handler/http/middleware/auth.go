package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/mealroll/console-backend-go/internal/domain/auth"
	"github.com/mealroll/console-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose token fails verification, is not an
// access token, or carries no backend credential to forward.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			upstreamToken, ok := claims["upstream_token"].(string)
			if !ok || upstreamToken == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
