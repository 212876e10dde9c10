package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aligreat689-stack/Retlcommerce-Final/internal/markdown"
	"github.com/aligreat689-stack/Retlcommerce-Final/internal/models"
)

// SiteResponse is the public snapshot: everything the site renders,
// never the admin password or the captured submissions.
type SiteResponse struct {
	Config       models.SiteConfig    `json:"config"`
	Services     []models.Service     `json:"services"`
	Posts        []models.BlogPost    `json:"posts"`
	Team         []models.TeamMember  `json:"team"`
	Testimonials []models.Testimonial `json:"testimonials"`
	IsDarkMode   bool                 `json:"isDarkMode"`
}

type PostDetailResponse struct {
	models.BlogPost
	ContentHTML string `json:"contentHtml"`
}

func (h *Handler) Site(w http.ResponseWriter, r *http.Request) {
	state := h.store.Snapshot()
	respondJSON(w, http.StatusOK, SiteResponse{
		Config:       state.Config,
		Services:     state.Services,
		Posts:        state.Posts,
		Team:         state.Team,
		Testimonials: state.Testimonials,
		IsDarkMode:   state.IsDarkMode,
	})
}

func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Snapshot().Services)
}

func (h *Handler) GetServiceBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		respondError(w, http.StatusBadRequest, "missing slug")
		return
	}
	svc, ok := h.store.ServiceBySlug(slug)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, svc)
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Snapshot().Posts)
}

func (h *Handler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing id")
		return
	}
	post, ok := h.store.PostByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, PostDetailResponse{
		BlogPost:    post,
		ContentHTML: markdown.Render(post.Content),
	})
}

func (h *Handler) ListTeam(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Snapshot().Team)
}
