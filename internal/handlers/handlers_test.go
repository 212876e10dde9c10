package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aligreat689-stack/Retlcommerce-Final/internal/auth"
	appmiddleware "github.com/aligreat689-stack/Retlcommerce-Final/internal/middleware"
	"github.com/aligreat689-stack/Retlcommerce-Final/internal/models"
	"github.com/aligreat689-stack/Retlcommerce-Final/internal/relay"
	"github.com/aligreat689-stack/Retlcommerce-Final/internal/store"
)

var testSecret = []byte("test-secret")

// newTestEnv wires a store on a throwaway file slot behind the same
// route layout main uses.
func newTestEnv(t *testing.T, relayURL string) (http.Handler, *store.Store) {
	t.Helper()
	st := store.New(context.Background(), store.NewFilePersister(filepath.Join(t.TempDir(), "state.json")))
	notifier := relay.New(relayURL, time.Second, relayURL == "")
	h := New(st, notifier, testSecret, "RETL2026")

	r := chi.NewRouter()
	r.Get("/health", Health)
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Maintenance(st.MaintenanceMode))
			r.Get("/site", h.Site)
			r.Get("/services", h.ListServices)
			r.Get("/services/{slug}", h.GetServiceBySlug)
			r.Get("/posts", h.ListPosts)
			r.Get("/posts/{id}", h.GetPostByID)
			r.Get("/team", h.ListTeam)
		})
		r.Post("/contact", h.Contact)
		r.Post("/newsletter", h.Newsletter)
		r.Post("/waitlist", h.Waitlist)
		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/recover", h.Recover)
			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware(testSecret))
				r.Post("/logout", h.Logout)
				r.Get("/state", h.AdminState)
				r.Put("/config", h.ReplaceConfig)
				r.Put("/services", h.ReplaceServices)
				r.Put("/tasks", h.ReplaceTasks)
				r.Patch("/tasks/{id}/status", h.UpdateTaskStatus)
				r.Get("/submissions", h.ListSubmissions)
				r.Get("/submissions/export", h.ExportSubmissions)
				r.Delete("/submissions/{id}", h.DeleteSubmission)
				r.Put("/password", h.UpdatePassword)
				r.Post("/reset", h.ResetToDefaults)
				r.Post("/theme/toggle", h.ToggleDarkMode)
			})
		})
	})
	return r, st
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, router http.Handler, password string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/admin/login", "", LoginRequest{Password: password})
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: status %d body %s", rec.Code, rec.Body.String())
	}
	var resp LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp.Token
}

func TestLogin(t *testing.T) {
	router, st := newTestEnv(t, "")

	rec := doJSON(t, router, http.MethodPost, "/api/admin/login", "", LoginRequest{Password: "nope"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: expected 401, got %d", rec.Code)
	}
	if st.IsAuthenticated() {
		t.Error("failed login must not set the session flag")
	}

	token := loginToken(t, router, "admin123")
	if token == "" {
		t.Fatal("expected a session token")
	}
	if !st.IsAuthenticated() {
		t.Error("successful login must set the session flag")
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, _ := newTestEnv(t, "")
	rec := doJSON(t, router, http.MethodGet, "/api/admin/state", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}
}

func TestContactCreatesSubmissionAndFiresRelay(t *testing.T) {
	hit := make(chan map[string]string, 1)
	relayServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		hit <- body
	}))
	defer relayServer.Close()

	router, st := newTestEnv(t, relayServer.URL)

	rec := doJSON(t, router, http.MethodPost, "/api/contact", "", ContactRequest{
		Name: "Ali", Email: "ali@example.com", Phone: "0300", Service: "Consultancy", Message: "Hi",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var sub models.ContactSubmission
	if err := json.Unmarshal(rec.Body.Bytes(), &sub); err != nil {
		t.Fatal(err)
	}
	if sub.ID == "" || sub.Date == "" {
		t.Error("stored submission must carry generated id and date")
	}
	if len(st.Inquiries()) != 1 {
		t.Error("contact submission must be classified as an inquiry")
	}

	select {
	case body := <-hit:
		if body["_subject"] != "New Inquiry from Ali - Retlcommerce" {
			t.Errorf("unexpected relay subject: %q", body["_subject"])
		}
		if body["_template"] != "table" {
			t.Error("contact relay must use the table template")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("relay was never called")
	}
}

func TestContactSucceedsWhenRelayDown(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	router, st := newTestEnv(t, dead.URL)
	rec := doJSON(t, router, http.MethodPost, "/api/contact", "", ContactRequest{Name: "A", Email: "a@x.pk"})
	if rec.Code != http.StatusCreated {
		t.Errorf("local save must succeed regardless of relay: got %d", rec.Code)
	}
	if len(st.Snapshot().Submissions) != 1 {
		t.Error("submission must be stored even when the relay is unreachable")
	}
}

func TestNewsletterVariants(t *testing.T) {
	router, st := newTestEnv(t, "")

	doJSON(t, router, http.MethodPost, "/api/newsletter", "", SubscribeRequest{Email: "f@x.pk"})
	doJSON(t, router, http.MethodPost, "/api/newsletter", "", SubscribeRequest{Email: "b@x.pk", PostTitle: "Why Packaging is Your Silent Salesman in Retail"})

	subs := st.Waitlist()
	if len(subs) != 2 {
		t.Fatalf("newsletter signups must land in the waitlist view, got %d", len(subs))
	}
	// Newest-first: the blog signup is at the head.
	if subs[0].Name != "Blog Subscriber" {
		t.Errorf("blog signup name: got %q", subs[0].Name)
	}
	if !strings.Contains(subs[0].Message, "Subscribed while reading:") {
		t.Errorf("blog signup message: got %q", subs[0].Message)
	}
	if subs[1].Name != "Newsletter Subscriber" {
		t.Errorf("footer signup name: got %q", subs[1].Name)
	}
}

func TestWaitlistSignup(t *testing.T) {
	router, st := newTestEnv(t, "")
	rec := doJSON(t, router, http.MethodPost, "/api/waitlist", "", SubscribeRequest{Email: "erp@x.pk"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	wl := st.Waitlist()
	if len(wl) != 1 || wl[0].Service != "ERP Software" {
		t.Errorf("waitlist signup misfiled: %+v", wl)
	}
}

func TestServiceSlugFirstMatch(t *testing.T) {
	router, _ := newTestEnv(t, "")
	rec := doJSON(t, router, http.MethodGet, "/api/services/logo-design-identity", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var svc models.Service
	if err := json.Unmarshal(rec.Body.Bytes(), &svc); err != nil {
		t.Fatal(err)
	}
	if svc.ID != "2" {
		t.Errorf("duplicate slug must resolve to the first entry, got id %s", svc.ID)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/services/no-such-slug", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown slug: expected 404, got %d", rec.Code)
	}
}

func TestPostDetailRendersLinks(t *testing.T) {
	router, _ := newTestEnv(t, "")
	rec := doJSON(t, router, http.MethodGet, "/api/posts/1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp PostDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.ContentHTML, `<a href="https://www.worldbank.org/en/country/pakistan"`) {
		t.Error("seed post link must be rendered as an anchor")
	}
	if strings.Count(resp.ContentHTML, "<p>") < 2 {
		t.Errorf("seed post must render as multiple paragraphs: %q", resp.ContentHTML)
	}
	if strings.Contains(resp.ContentHTML, `\n`) {
		t.Error("rendered content must not contain literal backslash-n text")
	}
}

func TestSiteResponseHidesSecrets(t *testing.T) {
	router, st := newTestEnv(t, "")
	st.AddSubmission(context.Background(), models.ContactSubmission{Name: "Private", Email: "p@x.pk"})

	rec := doJSON(t, router, http.MethodGet, "/api/site", "", nil)
	body := rec.Body.String()
	if strings.Contains(body, "adminPassword") || strings.Contains(body, "admin123") {
		t.Error("public snapshot must not leak the admin password")
	}
	if strings.Contains(body, "submissions") || strings.Contains(body, "p@x.pk") {
		t.Error("public snapshot must not leak submissions")
	}
}

func TestExportEmptyDatasetIsBadRequest(t *testing.T) {
	router, _ := newTestEnv(t, "")
	token := loginToken(t, router, "admin123")

	rec := doJSON(t, router, http.MethodGet, "/api/admin/submissions/export?kind=waitlist", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty dataset: expected 400, got %d", rec.Code)
	}
}

func TestExportWaitlistCSV(t *testing.T) {
	router, _ := newTestEnv(t, "")
	token := loginToken(t, router, "admin123")
	doJSON(t, router, http.MethodPost, "/api/waitlist", "", SubscribeRequest{Email: "erp@x.pk"})

	rec := doJSON(t, router, http.MethodGet, "/api/admin/submissions/export?kind=waitlist", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "Retl_Waitlist_Dataset") {
		t.Error("export must use the panel's file naming")
	}
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != "ID,Name,Email,Phone,Service,Message,Date" {
		t.Errorf("unexpected header row: %q", lines[0])
	}
	if !strings.Contains(lines[1], "erp@x.pk") {
		t.Errorf("row missing submission: %q", lines[1])
	}
}

func TestExportInquiriesFilename(t *testing.T) {
	router, _ := newTestEnv(t, "")
	token := loginToken(t, router, "admin123")
	doJSON(t, router, http.MethodPost, "/api/contact", "", ContactRequest{Name: "A", Email: "a@x.pk"})

	rec := doJSON(t, router, http.MethodGet, "/api/admin/submissions/export?kind=inquiries", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "Retlcommerce_Inquiries") {
		t.Errorf("unexpected inquiries file naming: %q", rec.Header().Get("Content-Disposition"))
	}
}

func TestTaskStatusUpdate(t *testing.T) {
	router, st := newTestEnv(t, "")
	token := loginToken(t, router, "admin123")

	rec := doJSON(t, router, http.MethodPatch, "/api/admin/tasks/TSK-001/status", token, TaskStatusRequest{Status: models.TaskCompleted})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	for _, task := range st.Snapshot().Tasks {
		if task.ID == "TSK-001" && task.Status != models.TaskCompleted {
			t.Errorf("status not applied: %s", task.Status)
		}
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/admin/tasks/TSK-001/status", token, map[string]string{"status": "Nonsense"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid status: expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/admin/tasks/TSK-999/status", token, TaskStatusRequest{Status: models.TaskOnHold})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown task: expected 404, got %d", rec.Code)
	}
}

func TestMaintenanceModeGatesPublicContent(t *testing.T) {
	router, st := newTestEnv(t, "")
	token := loginToken(t, router, "admin123")

	config := st.Snapshot().Config
	config.MaintenanceMode = true
	rec := doJSON(t, router, http.MethodPut, "/api/admin/config", token, config)
	if rec.Code != http.StatusOK {
		t.Fatalf("config update failed: %d", rec.Code)
	}

	if rec := doJSON(t, router, http.MethodGet, "/api/site", "", nil); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("public content should 503 in maintenance, got %d", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodPost, "/api/contact", "", ContactRequest{Name: "A", Email: "a@x.pk"}); rec.Code != http.StatusCreated {
		t.Errorf("lead capture must stay open in maintenance, got %d", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodGet, "/api/admin/state", token, nil); rec.Code != http.StatusOK {
		t.Errorf("admin panel must stay open in maintenance, got %d", rec.Code)
	}
}

func TestRecoverFlow(t *testing.T) {
	router, _ := newTestEnv(t, "")

	rec := doJSON(t, router, http.MethodPost, "/api/admin/recover", "", RecoverRequest{RecoveryKey: "WRONG", NewPassword: "x"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong key: expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/admin/recover", "", RecoverRequest{RecoveryKey: "RETL2026", NewPassword: "fresh-pass"})
	if rec.Code != http.StatusOK {
		t.Fatalf("recover failed: %d", rec.Code)
	}
	loginToken(t, router, "fresh-pass")
}

func TestResetPreservesSession(t *testing.T) {
	router, st := newTestEnv(t, "")
	token := loginToken(t, router, "admin123")
	doJSON(t, router, http.MethodPut, "/api/admin/services", token, []models.Service{{ID: "x", Slug: "x", Title: "X"}})

	rec := doJSON(t, router, http.MethodPost, "/api/admin/reset", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("reset failed: %d", rec.Code)
	}
	state := st.Snapshot()
	if len(state.Services) != 8 {
		t.Errorf("reset must restore the seed catalog, got %d services", len(state.Services))
	}
	if !state.IsAuthenticated {
		t.Error("reset must preserve the session flag")
	}
}

func TestDeleteSubmissionEndpoint(t *testing.T) {
	router, st := newTestEnv(t, "")
	token := loginToken(t, router, "admin123")
	doJSON(t, router, http.MethodPost, "/api/contact", "", ContactRequest{Name: "A", Email: "a@x.pk"})
	sub := st.Snapshot().Submissions[0]

	rec := doJSON(t, router, http.MethodDelete, "/api/admin/submissions/"+sub.ID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d", rec.Code)
	}
	if len(st.Snapshot().Submissions) != 0 {
		t.Error("submission should be gone")
	}

	// Unknown id is a no-op, not an error.
	rec = doJSON(t, router, http.MethodDelete, "/api/admin/submissions/nope", token, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("unknown id delete: expected 200, got %d", rec.Code)
	}
}

func TestToggleThemeEndpoint(t *testing.T) {
	router, st := newTestEnv(t, "")
	token := loginToken(t, router, "admin123")

	initial := st.Snapshot().IsDarkMode
	doJSON(t, router, http.MethodPost, "/api/admin/theme/toggle", token, nil)
	doJSON(t, router, http.MethodPost, "/api/admin/theme/toggle", token, nil)
	if st.Snapshot().IsDarkMode != initial {
		t.Error("double toggle must restore the original theme")
	}
}
