package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eldercare-backend/internal/handlers"
	"eldercare-backend/internal/notify"
	"eldercare-backend/internal/routes"
	"eldercare-backend/internal/service"
	"eldercare-backend/internal/session"
	"eldercare-backend/internal/store"
	"eldercare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	st := store.NewMemoryStore()
	store.SeedDemoData(st)

	sessions := session.NewManager(st, session.NewMemoryBlobStore())
	sched := notify.NewScheduler(notify.NewLocalDispatcher(nil))
	t.Cleanup(sched.CancelAll)

	h := handlers.New(st, sessions, service.NewHealthService(st), service.NewReminderService(st, sched), sched)

	r := gin.New()
	routes.SetupRoutes(r, h, st)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.Response
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}

func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "anything",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected login payload: %v", resp.Data)
	}
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body gin.H
		code int
	}{
		{name: "seeded user", body: gin.H{"email": "john@example.com", "password": "whatever"}, code: http.StatusOK},
		{name: "unknown email", body: gin.H{"email": "nobody@example.com", "password": "x"}, code: http.StatusUnauthorized},
		{name: "missing email", body: gin.H{"password": "x"}, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", tt.body)
			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d; body %s", w.Code, tt.code, w.Body.String())
			}
			if resp.Success != (tt.code == http.StatusOK) {
				t.Errorf("success = %v for status %d", resp.Success, w.Code)
			}
		})
	}
}

func TestRegisterThenLogin(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Mary Jones",
		"email":    "mary@example.com",
		"password": "secret123",
		"role":     "elderly",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}

	// Duplicate registration is rejected.
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Mary Jones",
		"email":    "MARY@example.com",
		"password": "secret123",
		"role":     "elderly",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register returned %d", w.Code)
	}

	login(t, r, "mary@example.com")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/reminders", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/reminders", "garbage-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status = %d, want 401", w.Code)
	}
}

func TestReminderViews(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "john@example.com")

	for _, path := range []string{
		"/api/v1/reminders",
		"/api/v1/reminders/today",
		"/api/v1/reminders/upcoming",
		"/api/v1/reminders/missed",
	} {
		w, resp := doJSON(t, r, http.MethodGet, path, token, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, body %s", path, w.Code, w.Body.String())
			continue
		}
		if !resp.Success {
			t.Errorf("%s: success = false", path)
		}
	}
}

func TestCompleteReminderEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "john@example.com")

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/reminders/1/complete", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete returned %d: %s", w.Code, w.Body.String())
	}
	data, _ := resp.Data.(map[string]interface{})
	if done, _ := data["completed"].(bool); !done {
		t.Errorf("reminder not completed: %v", resp.Data)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/reminders/missing/complete", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown reminder: status = %d, want 404", w.Code)
	}
}

func TestCaregiverCannotCheckIn(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "rahul@example.com")

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/check-ins", token, gin.H{
		"mood_rating": 4,
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("caregiver check-in: status = %d, want 403; body %s", w.Code, w.Body.String())
	}
}

func TestNotificationTestEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "john@example.com")

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/notifications/test", token, gin.H{
		"title":   "Hydration",
		"seconds": 3600,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("schedule test returned %d: %s", w.Code, w.Body.String())
	}
	data, _ := resp.Data.(map[string]interface{})
	id, _ := data["id"].(string)
	if id == "" {
		t.Fatalf("no handle in response: %v", resp.Data)
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/notifications/"+id, token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("cancel returned %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/notifications/"+id, token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("double cancel returned %d, want 404", w.Code)
	}
}
