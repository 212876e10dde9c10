package handlers

import (
	"fmt"
	"net/http"

	"github.com/aligreat689-stack/Retlcommerce-Final/internal/models"
	"github.com/aligreat689-stack/Retlcommerce-Final/internal/relay"
)

// Lead capture always commits the local record first; the relay is
// fired afterwards and its outcome never changes the response. The
// caller sees success as soon as the submission is stored.

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
	// PostTitle is set when the signup came from a blog post sidebar.
	PostTitle string `json:"postTitle"`
}

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	sub := h.store.AddSubmission(r.Context(), models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	})

	h.notifier.Send(relay.Message{
		Recipient: h.store.Snapshot().Config.ContactEmail,
		Subject:   fmt.Sprintf("New Inquiry from %s - Retlcommerce", req.Name),
		Template:  "table",
		Fields: map[string]string{
			"name":    req.Name,
			"email":   req.Email,
			"phone":   req.Phone,
			"service": req.Service,
			"message": req.Message,
		},
	})

	respondJSON(w, http.StatusCreated, sub)
}

func (h *Handler) Newsletter(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	name := "Newsletter Subscriber"
	message := "New subscription request from the website footer."
	subject := fmt.Sprintf("Newsletter Signup: %s", req.Email)
	relayMessage := "User signed up for the newsletter from the website footer."
	if req.PostTitle != "" {
		name = "Blog Subscriber"
		message = fmt.Sprintf("Subscribed while reading: %s", req.PostTitle)
		subject = fmt.Sprintf("Newsletter Subscriber (Blog): %s", req.Email)
		relayMessage = fmt.Sprintf("User subscribed while reading: %s", req.PostTitle)
	}

	sub := h.store.AddSubmission(r.Context(), models.ContactSubmission{
		Name:    name,
		Email:   req.Email,
		Phone:   "N/A",
		Service: "Newsletter",
		Message: message,
	})

	h.notifier.Send(relay.Message{
		Recipient: h.store.Snapshot().Config.ContactEmail,
		Subject:   subject,
		Fields: map[string]string{
			"email":   req.Email,
			"message": relayMessage,
		},
	})

	respondJSON(w, http.StatusCreated, sub)
}

func (h *Handler) Waitlist(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	sub := h.store.AddSubmission(r.Context(), models.ContactSubmission{
		Name:    "ERP Waitlist User",
		Email:   req.Email,
		Phone:   "N/A",
		Service: "ERP Software",
		Message: "Joined early access waitlist for Summer 2026 launch.",
	})

	h.notifier.Send(relay.Message{
		Recipient: h.store.Snapshot().Config.ContactEmail,
		Subject:   fmt.Sprintf("ERP Waitlist Signup: %s", req.Email),
		Fields: map[string]string{
			"email":   req.Email,
			"message": "User requested early access to the retail ERP platform.",
		},
	})

	respondJSON(w, http.StatusCreated, sub)
}
