package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"tolujohn-backend-go/internal/models"
	"tolujohn-backend-go/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type contextKey string

const ctxAdmin contextKey = "admin"

// RequireAdmin verifies the bearer token and loads the matching admin record
// into the request context, password excluded. All failure modes are 401.
func (s *Server) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			WriteJSON(w, http.StatusUnauthorized, Envelope{Message: "Not authorized, token missing"})
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		adminID, err := s.Tokens.ParseToken(tokenStr)
		if err != nil {
			WriteJSON(w, http.StatusUnauthorized, Envelope{Message: "Not authorized, token invalid"})
			return
		}
		oid, err := primitive.ObjectIDFromHex(adminID)
		if err != nil {
			WriteJSON(w, http.StatusUnauthorized, Envelope{Message: "Not authorized, token invalid"})
			return
		}
		admin, err := s.Store.AdminByID(r.Context(), oid)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				WriteJSON(w, http.StatusUnauthorized, Envelope{Message: "Not authorized, admin not found"})
				return
			}
			s.Error(w, r, err)
			return
		}
		admin.Password = ""
		ctx := context.WithValue(r.Context(), ctxAdmin, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func CurrentAdmin(r *http.Request) *models.Admin {
	if admin, ok := r.Context().Value(ctxAdmin).(*models.Admin); ok {
		return admin
	}
	return nil
}
