package store

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aligreat689-stack/Retlcommerce-Final/internal/models"
)

// Store owns the single root state object. Reads return snapshots;
// mutations replace the relevant fields and write the whole state back
// to the persister before returning (write-through). A save failure is
// logged and swallowed: the in-memory state stays authoritative and a
// failed write is never surfaced to the caller.
type Store struct {
	mu      sync.RWMutex
	state   models.AppState
	persist Persister
}

// New loads the persisted blob and merges it onto a fresh default
// snapshot, so fields missing from an older blob fall back to defaults
// instead of zero values. An absent or unparseable blob is a recoverable
// condition: the store falls back to the built-in seed and re-seeds the
// slot.
func New(ctx context.Context, p Persister) *Store {
	s := &Store{persist: p}
	s.state = loadState(ctx, p)
	s.mu.Lock()
	s.persistLocked(ctx)
	s.mu.Unlock()
	return s
}

func loadState(ctx context.Context, p Persister) models.AppState {
	data, err := p.Load(ctx)
	if err != nil {
		log.Printf("state load failed, using defaults: %v", err)
		return DefaultState()
	}
	if len(data) == 0 {
		return DefaultState()
	}
	state := DefaultState()
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("state parse failed, using defaults: %v", err)
		return DefaultState()
	}
	normalize(&state)
	return state
}

// normalize keeps collections non-nil so an older blob with missing or
// null fields rehydrates to empty lists rather than null.
func normalize(state *models.AppState) {
	if state.Services == nil {
		state.Services = []models.Service{}
	}
	if state.Posts == nil {
		state.Posts = []models.BlogPost{}
	}
	if state.Team == nil {
		state.Team = []models.TeamMember{}
	}
	if state.Tasks == nil {
		state.Tasks = []models.Task{}
	}
	if state.Testimonials == nil {
		state.Testimonials = []models.Testimonial{}
	}
	if state.Submissions == nil {
		state.Submissions = []models.ContactSubmission{}
	}
	if state.Config.SocialLinks == nil {
		state.Config.SocialLinks = map[string]string{}
	}
}

// persistLocked serializes the entire root state to the slot. Callers
// must hold the write lock.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err != nil {
		log.Printf("state marshal failed: %v", err)
		return
	}
	if err := s.persist.Save(ctx, data); err != nil {
		log.Printf("state save failed: %v", err)
	}
}

// Snapshot returns a defensive copy of the current state.
func (s *Store) Snapshot() models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Store) ReplaceConfig(ctx context.Context, config models.SiteConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Config = config
	if s.state.Config.SocialLinks == nil {
		s.state.Config.SocialLinks = map[string]string{}
	}
	s.persistLocked(ctx)
}

func (s *Store) ReplaceServices(ctx context.Context, services []models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Services = append([]models.Service{}, services...)
	s.persistLocked(ctx)
}

func (s *Store) ReplacePosts(ctx context.Context, posts []models.BlogPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Posts = append([]models.BlogPost{}, posts...)
	s.persistLocked(ctx)
}

func (s *Store) ReplaceTeam(ctx context.Context, team []models.TeamMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Team = append([]models.TeamMember{}, team...)
	s.persistLocked(ctx)
}

func (s *Store) ReplaceTasks(ctx context.Context, tasks []models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tasks = append([]models.Task{}, tasks...)
	s.persistLocked(ctx)
}

func (s *Store) ReplaceTestimonials(ctx context.Context, testimonials []models.Testimonial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Testimonials = append([]models.Testimonial{}, testimonials...)
	s.persistLocked(ctx)
}

// AddSubmission generates the id and date and prepends the record, so
// the submissions list stays newest-first. The id is derived from the
// creation time in milliseconds.
func (s *Store) AddSubmission(ctx context.Context, sub models.ContactSubmission) models.ContactSubmission {
	now := time.Now().UTC()
	sub.ID = strconv.FormatInt(now.UnixMilli(), 10)
	sub.Date = now.Format(time.RFC3339)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Submissions = append([]models.ContactSubmission{sub}, s.state.Submissions...)
	s.persistLocked(ctx)
	return sub
}

// DeleteSubmission removes the record with the given id; unknown ids
// are a no-op.
func (s *Store) DeleteSubmission(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]models.ContactSubmission, 0, len(s.state.Submissions))
	for _, sub := range s.state.Submissions {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	s.state.Submissions = kept
	s.persistLocked(ctx)
}

// Login compares the password against the stored admin password by
// exact string equality. On match the authenticated flag is set and
// persisted; on mismatch the state is left untouched.
func (s *Store) Login(ctx context.Context, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if password != s.state.AdminPassword {
		return false
	}
	s.state.IsAuthenticated = true
	s.persistLocked(ctx)
	return true
}

func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsAuthenticated = false
	s.persistLocked(ctx)
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

// ResetToDefaults restores the built-in seed snapshot but keeps the
// current session flag.
func (s *Store) ResetToDefaults(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	auth := s.state.IsAuthenticated
	s.state = DefaultState()
	s.state.IsAuthenticated = auth
	s.persistLocked(ctx)
}

// ToggleDarkMode flips the theme flag and returns the new value.
func (s *Store) ToggleDarkMode(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsDarkMode = !s.state.IsDarkMode
	s.persistLocked(ctx)
	return s.state.IsDarkMode
}

// UpdateAdminPassword sets the new password with no strength checks,
// matching the recovery flow it backs.
func (s *Store) UpdateAdminPassword(ctx context.Context, newPass string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AdminPassword = newPass
	s.persistLocked(ctx)
}

// MaintenanceMode reports the current config flag.
func (s *Store) MaintenanceMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Config.MaintenanceMode
}

// ServiceBySlug returns the first catalog entry with a matching slug.
// The seed data contains a duplicate slug; first match wins, which is
// the behavior the site has always had.
func (s *Store) ServiceBySlug(slug string) (models.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.state.Services {
		if svc.Slug == slug {
			return svc, true
		}
	}
	return models.Service{}, false
}

func (s *Store) PostByID(id string) (models.BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, post := range s.state.Posts {
		if post.ID == id {
			return post, true
		}
	}
	return models.BlogPost{}, false
}

// IsWaitlistService reports whether a service-interest label routes a
// submission into the waitlist view. The comparison trims and lowers
// the label, so "ERP Software " and "newsletter" both count.
func IsWaitlistService(service string) bool {
	svc := strings.ToLower(strings.TrimSpace(service))
	return svc == "erp software" || svc == "newsletter"
}

// Inquiries returns the submissions that are not waitlist signups,
// newest-first.
func (s *Store) Inquiries() []models.ContactSubmission {
	return s.filterSubmissions(false)
}

// Waitlist returns the ERP waitlist and newsletter signups,
// newest-first.
func (s *Store) Waitlist() []models.ContactSubmission {
	return s.filterSubmissions(true)
}

func (s *Store) filterSubmissions(waitlist bool) []models.ContactSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ContactSubmission, 0, len(s.state.Submissions))
	for _, sub := range s.state.Submissions {
		if IsWaitlistService(sub.Service) == waitlist {
			out = append(out, sub)
		}
	}
	return out
}
