package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"request_desk/internal/common"
	"request_desk/internal/common/security"
	"request_desk/internal/domain/model"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UserIDCtxKey   contextKey = "userID"
	UserRoleCtxKey contextKey = "userRole"
)

// RoleResolver resolves a user's role for the legacy user_id authorization
// fallback.
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID int) (string, error)
}

// Authenticator establishes the caller's identity. A bearer token is the
// preferred credential; when none is presented, a user_id query parameter is
// accepted and the role re-resolved through the identity store. Callers with
// no resolvable identity proceed without one and are rejected downstream by
// AdminOnly.
func Authenticator(resolver RoleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			switch {
			case err == nil && token != nil:
				userID, err := security.GetUserIDFromClaims(claims)
				if err != nil {
					common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
					return
				}
				userRole, err := security.GetUserRoleFromClaims(claims)
				if err != nil {
					common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
					return
				}
				ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
				ctx = context.WithValue(ctx, UserRoleCtxKey, userRole)
				next.ServeHTTP(w, r.WithContext(ctx))

			case errors.Is(err, jwtauth.ErrNoTokenFound):
				ctx := r.Context()
				if userID, ok := parseUserIDParam(r); ok {
					if role, err := resolver.ResolveRole(ctx, userID); err == nil {
						ctx = context.WithValue(ctx, UserIDCtxKey, userID)
						ctx = context.WithValue(ctx, UserRoleCtxKey, role)
					}
				}
				next.ServeHTTP(w, r.WithContext(ctx))

			default:
				// A token was presented but did not verify.
				msg := "Invalid token"
				if err != nil {
					msg = "Invalid token: " + err.Error()
				}
				common.RespondWithError(w, http.StatusUnauthorized, msg)
			}
		})
	}
}

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetUserRoleFromContext(r.Context())
		if !ok || role != model.RoleAdmin {
			common.RespondWithError(w, http.StatusForbidden, "Unauthorized access")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Helper to get user ID from context
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int)
	return userID, ok
}

// Helper to get user role from context
func GetUserRoleFromContext(ctx context.Context) (string, bool) {
	userRole, ok := ctx.Value(UserRoleCtxKey).(string)
	return userRole, ok
}

func parseUserIDParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}
