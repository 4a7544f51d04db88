package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"tolujohn-backend-go/internal/services"
	"tolujohn-backend-go/internal/validate"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// bind decodes the body into dst and runs its declared validation rules.
// On failure the response has already been written.
func (s *Server) bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteJSON(w, http.StatusBadRequest, Envelope{Message: "Invalid payload"})
		return false
	}
	if errs := validate.Struct(dst); errs != nil {
		s.Error(w, r, services.ErrValidation(errs))
		return false
	}
	return true
}

func idParam(r *http.Request) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
}

// parseDatePtr converts an already-validated date string. A nil input stays
// nil, meaning the field was absent from the payload.
func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	parsed, err := validate.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &parsed
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
