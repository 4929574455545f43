// Package mwauth authenticates requests from a Bearer token and puts the
// resulting actor into the request context. Handlers read the actor back
// with Actor; there is no other session state.
package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"pgBooker/internal/lib/api/response"
	"pgBooker/internal/lib/jwt"
	"pgBooker/internal/models"

	"github.com/go-chi/render"
)

type ctxKey struct{}

// New rejects requests without a valid Bearer token.
func New(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("please log in to continue"))
				return
			}

			actor, err := jwt.ParseToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
			if err != nil {
				log.Debug("rejected token", slog.String("remote_addr", r.RemoteAddr))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		}

		return http.HandlerFunc(fn)
	}
}

func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

// Actor returns the authenticated actor, if the request carried one.
func Actor(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(models.Actor)
	return actor, ok
}
