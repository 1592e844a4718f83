package auth

import (
	"context"
	"net/http"
	"strings"

	"amerex/pkg/logger"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserID достаёт id пользователя, положенный Middleware.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithUserID кладёт id пользователя в контекст, парный к UserID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// Middleware проверяет Bearer-токен и кладёт id пользователя в контекст.
func Middleware(log handlerLogger, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeUnauthorized(log, w, r, "missing bearer token")
				return
			}

			userID, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				writeUnauthorized(log, w, r, "invalid or expired token")
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware пускает только администраторов, вешается после Middleware.
func AdminMiddleware(log handlerLogger, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserID(r.Context())
			if !ok {
				writeUnauthorized(log, w, r, "missing bearer token")
				return
			}

			isAdmin, err := authenticator.IsAdmin(r.Context(), userID)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("user_id", userID),
				).Error("admin check failed")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if !isAdmin {
				log.With(
					logger.NewField("user_id", userID),
					logger.NewField("path", r.URL.Path),
				).Warn("forbidden, admin only")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)

				_, err := w.Write([]byte(`{"error":"Forbidden","message":"Admin access required."}`))
				if err != nil {
					log.With(
						logger.NewField("error", err),
						logger.NewField("path", r.URL.Path),
					).Error("failed to write forbidden response")
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}
	return token, true
}

func writeUnauthorized(log handlerLogger, w http.ResponseWriter, r *http.Request, reason string) {
	log.With(
		logger.NewField("path", r.URL.Path),
		logger.NewField("reason", reason),
	).Info("unauthorized request")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	_, err := w.Write([]byte(`{"error":"Unauthorized","message":"Authentication required."}`))
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("failed to write unauthorized response")
	}
}
