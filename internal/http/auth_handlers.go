package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"tolujohn-backend-go/internal/models"
	"tolujohn-backend-go/internal/services"
	"tolujohn-backend-go/internal/store"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AdminProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Admin AdminProfile `json:"admin"`
}

type UpdateProfileRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=2"`
	Email           *string `json:"email" validate:"omitempty,email"`
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword" validate:"omitempty,min=8"`
}

func profileOf(admin *models.Admin) AdminProfile {
	return AdminProfile{
		ID:    admin.ID.Hex(),
		Name:  admin.Name,
		Email: admin.Email,
		Role:  admin.Role,
	}
}

// Login deliberately answers wrong-email and wrong-password with the same
// message.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !s.bind(w, r, &req) {
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	admin, err := s.Store.AdminByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Error(w, r, services.ErrUnauthorized("Invalid credentials"))
			return
		}
		s.Error(w, r, err)
		return
	}
	if !s.Tokens.VerifyPassword(req.Password, admin.Password) {
		s.Error(w, r, services.ErrUnauthorized("Invalid credentials"))
		return
	}
	token, err := s.Tokens.IssueToken(admin.ID.Hex())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, LoginResponse{Token: token, Admin: profileOf(admin)})
}

func (s *Server) Profile(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, profileOf(CurrentAdmin(r)))
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !s.bind(w, r, &req) {
		return
	}
	// Reload with the password hash; the context copy has it stripped.
	admin, err := s.Store.AdminByID(r.Context(), CurrentAdmin(r).ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Error(w, r, services.ErrNotFound("Admin not found"))
			return
		}
		s.Error(w, r, err)
		return
	}
	setString(&admin.Name, req.Name)
	if req.Email != nil {
		admin.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.NewPassword != nil {
		if req.CurrentPassword == nil {
			s.Error(w, r, services.ErrUnprocessable("Current password is required"))
			return
		}
		if !s.Tokens.VerifyPassword(*req.CurrentPassword, admin.Password) {
			s.Error(w, r, services.ErrUnauthorized("Current password is incorrect"))
			return
		}
		hashed, err := s.Tokens.HashPassword(*req.NewPassword)
		if err != nil {
			s.Error(w, r, err)
			return
		}
		admin.Password = hashed
	}
	if err := s.Store.SaveAdmin(r.Context(), admin); err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, profileOf(admin))
}
