package httpapi

import (
	"errors"
	"net/http"

	"tolujohn-backend-go/internal/services"
	"tolujohn-backend-go/internal/store"
)

type MessageStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in-progress resolved"`
}

func (s *Server) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := s.Store.ListSubscribers(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, subscribers)
}

func (s *Server) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := s.Store.ListMessages(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, messages)
}

// UpdateContactStatus changes the one mutable field a contact message has.
func (s *Server) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.Error(w, r, services.ErrNotFound("Message not found"))
		return
	}
	var req MessageStatusRequest
	if !s.bind(w, r, &req) {
		return
	}
	msg, err := s.Store.MessageByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Error(w, r, services.ErrNotFound("Message not found"))
			return
		}
		s.Error(w, r, err)
		return
	}
	msg.Status = req.Status
	if err := s.Store.SaveMessage(r.Context(), msg); err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, msg)
}
