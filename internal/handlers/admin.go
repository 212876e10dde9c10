package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aligreat689-stack/Retlcommerce-Final/internal/auth"
	"github.com/aligreat689-stack/Retlcommerce-Final/internal/models"
)

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RecoverRequest struct {
	RecoveryKey string `json:"recoveryKey"`
	NewPassword string `json:"newPassword"`
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

type TaskStatusRequest struct {
	Status models.TaskStatus `json:"status"`
}

// AdminStateResponse is the authenticated snapshot: everything except
// the stored password.
type AdminStateResponse struct {
	Config          models.SiteConfig          `json:"config"`
	Services        []models.Service           `json:"services"`
	Posts           []models.BlogPost          `json:"posts"`
	Team            []models.TeamMember        `json:"team"`
	Tasks           []models.Task              `json:"tasks"`
	Testimonials    []models.Testimonial       `json:"testimonials"`
	Submissions     []models.ContactSubmission `json:"submissions"`
	IsAuthenticated bool                       `json:"isAuthenticated"`
	IsDarkMode      bool                       `json:"isDarkMode"`
}

// Login checks the password against the store and returns a session
// token. The comparison is exact string equality against the stored
// password. No lockout, no attempt counting.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !h.store.Login(r.Context(), req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := auth.NewToken(h.jwtSecret)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "token error")
		return
	}
	respondJSON(w, http.StatusOK, LoginResponse{Token: token})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout(r.Context())
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Recover unlocks a password reset with the fixed recovery key. Exact
// equality, no rate limit, no expiry.
func (h *Handler) Recover(w http.ResponseWriter, r *http.Request) {
	var req RecoverRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.RecoveryKey != h.recoveryKey {
		respondError(w, http.StatusUnauthorized, "invalid key")
		return
	}
	if req.NewPassword == "" {
		respondError(w, http.StatusBadRequest, "new password is required")
		return
	}
	h.store.UpdateAdminPassword(r.Context(), req.NewPassword)
	respondJSON(w, http.StatusOK, map[string]string{"status": "password reset"})
}

func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req UpdatePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.NewPassword == "" {
		respondError(w, http.StatusBadRequest, "new password is required")
		return
	}
	h.store.UpdateAdminPassword(r.Context(), req.NewPassword)
	respondJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}

func (h *Handler) AdminState(w http.ResponseWriter, r *http.Request) {
	state := h.store.Snapshot()
	respondJSON(w, http.StatusOK, AdminStateResponse{
		Config:          state.Config,
		Services:        state.Services,
		Posts:           state.Posts,
		Team:            state.Team,
		Tasks:           state.Tasks,
		Testimonials:    state.Testimonials,
		Submissions:     state.Submissions,
		IsAuthenticated: state.IsAuthenticated,
		IsDarkMode:      state.IsDarkMode,
	})
}

func (h *Handler) ReplaceConfig(w http.ResponseWriter, r *http.Request) {
	var config models.SiteConfig
	if !decodeBody(w, r, &config) {
		return
	}
	h.store.ReplaceConfig(r.Context(), config)
	respondJSON(w, http.StatusOK, config)
}

func (h *Handler) ReplaceServices(w http.ResponseWriter, r *http.Request) {
	var services []models.Service
	if !decodeBody(w, r, &services) {
		return
	}
	h.store.ReplaceServices(r.Context(), services)
	respondJSON(w, http.StatusOK, h.store.Snapshot().Services)
}

func (h *Handler) ReplacePosts(w http.ResponseWriter, r *http.Request) {
	var posts []models.BlogPost
	if !decodeBody(w, r, &posts) {
		return
	}
	h.store.ReplacePosts(r.Context(), posts)
	respondJSON(w, http.StatusOK, h.store.Snapshot().Posts)
}

func (h *Handler) ReplaceTeam(w http.ResponseWriter, r *http.Request) {
	var team []models.TeamMember
	if !decodeBody(w, r, &team) {
		return
	}
	h.store.ReplaceTeam(r.Context(), team)
	respondJSON(w, http.StatusOK, h.store.Snapshot().Team)
}

func (h *Handler) ReplaceTasks(w http.ResponseWriter, r *http.Request) {
	var tasks []models.Task
	if !decodeBody(w, r, &tasks) {
		return
	}
	h.store.ReplaceTasks(r.Context(), tasks)
	respondJSON(w, http.StatusOK, h.store.Snapshot().Tasks)
}

func (h *Handler) ReplaceTestimonials(w http.ResponseWriter, r *http.Request) {
	var testimonials []models.Testimonial
	if !decodeBody(w, r, &testimonials) {
		return
	}
	h.store.ReplaceTestimonials(r.Context(), testimonials)
	respondJSON(w, http.StatusOK, h.store.Snapshot().Testimonials)
}

// UpdateTaskStatus changes one task's status. The panel edits tasks by
// mapping over the list and bulk-replacing it; this endpoint does the
// same on the server side.
func (h *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req TaskStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	switch req.Status {
	case models.TaskPending, models.TaskInProgress, models.TaskCompleted, models.TaskOnHold:
	default:
		respondError(w, http.StatusBadRequest, "invalid status")
		return
	}

	tasks := h.store.Snapshot().Tasks
	found := false
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Status = req.Status
			found = true
			break
		}
	}
	if !found {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	h.store.ReplaceTasks(r.Context(), tasks)
	respondJSON(w, http.StatusOK, map[string]string{"status": "task updated"})
}

func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, _, ok := h.submissionsByKind(r.URL.Query().Get("kind"))
	if !ok {
		respondError(w, http.StatusBadRequest, "kind must be inquiries or waitlist")
		return
	}
	respondJSON(w, http.StatusOK, subs)
}

func (h *Handler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.store.DeleteSubmission(r.Context(), id)
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ExportSubmissions streams the selected dataset as CSV. An empty
// dataset is a client error, not an empty file.
func (h *Handler) ExportSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, name, ok := h.submissionsByKind(r.URL.Query().Get("kind"))
	if !ok {
		respondError(w, http.StatusBadRequest, "kind must be inquiries or waitlist")
		return
	}
	if len(subs) == 0 {
		respondError(w, http.StatusBadRequest, "no data to export")
		return
	}

	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"ID", "Name", "Email", "Phone", "Service", "Message", "Date"})
	for _, sub := range subs {
		_ = writer.Write([]string{sub.ID, sub.Name, sub.Email, sub.Phone, sub.Service, sub.Message, sub.Date})
	}
	writer.Flush()
}

func (h *Handler) submissionsByKind(kind string) ([]models.ContactSubmission, string, bool) {
	switch kind {
	case "", "inquiries":
		return h.store.Inquiries(), "Retlcommerce_Inquiries", true
	case "waitlist":
		return h.store.Waitlist(), "Retl_Waitlist_Dataset", true
	default:
		return nil, "", false
	}
}

func (h *Handler) ResetToDefaults(w http.ResponseWriter, r *http.Request) {
	h.store.ResetToDefaults(r.Context())
	respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (h *Handler) ToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	dark := h.store.ToggleDarkMode(r.Context())
	respondJSON(w, http.StatusOK, map[string]bool{"isDarkMode": dark})
}
