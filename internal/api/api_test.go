package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ankush0407/salon-backend/internal/api"
	"github.com/ankush0407/salon-backend/internal/auth"
	"github.com/ankush0407/salon-backend/internal/config"
	"github.com/ankush0407/salon-backend/internal/models"
	"github.com/ankush0407/salon-backend/internal/repository"
	"github.com/ankush0407/salon-backend/internal/rowstore"
	"github.com/ankush0407/salon-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type testEnv struct {
	router     *gin.Engine
	services   *service.Services
	staffToken string
	ownerToken string
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := repository.New(rowstore.NewMemory())
	tokens := auth.NewJWTManager("test-secret", time.Hour)

	cfg := &config.Config{}
	cfg.Auth.BcryptCost = 4
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	services := service.NewServices(repos, tokens, cfg, zerolog.Nop())
	router := api.NewRouter(services, tokens, cfg, zerolog.Nop())

	staffToken, err := tokens.Generate(&models.User{ID: "u-staff", Email: "staff@salon.test", Role: "STAFF"})
	if err != nil {
		t.Fatalf("Failed to generate staff token: %v", err)
	}
	ownerToken, err := tokens.Generate(&models.User{ID: "u-owner", Email: "owner@salon.test", Role: "OWNER"})
	if err != nil {
		t.Fatalf("Failed to generate owner token: %v", err)
	}

	return &testEnv{router: router, services: services, staffToken: staffToken, ownerToken: ownerToken}
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHealthEndpoint(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do("GET", "/", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if decode(t, w)["message"] != "Salon API is running" {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do("POST", "/api/auth/register", "", gin.H{
		"email": "pat@salon.test", "password": "pass1234", "role": "STAFF",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	w = env.do("POST", "/api/auth/login", "", gin.H{
		"email": "pat@salon.test", "password": "pass1234", "role": "STAFF",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["token"] == nil || body["token"] == "" {
		t.Error("Expected a token in the login response")
	}
	user := body["user"].(map[string]interface{})
	if user["name"] != "pat" {
		t.Errorf("Expected fallback name 'pat', got %v", user["name"])
	}

	// Wrong password and wrong role both come back as invalid credentials
	w = env.do("POST", "/api/auth/login", "", gin.H{
		"email": "pat@salon.test", "password": "nope", "role": "STAFF",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
	w = env.do("POST", "/api/auth/login", "", gin.H{
		"email": "pat@salon.test", "password": "pass1234", "role": "OWNER",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestAuthGate_MissingAndInvalidTokens(t *testing.T) {
	env := setupTestRouter(t)

	// No Authorization header
	w := env.do("GET", "/api/customers", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	// Garbage token
	w = env.do("GET", "/api/customers", "not-a-jwt", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", w.Code)
	}

	// Expired token
	expired := auth.NewJWTManager("test-secret", -time.Minute)
	tok, _ := expired.Generate(&models.User{ID: "u1", Email: "x@y.z", Role: "STAFF"})
	w = env.do("GET", "/api/customers", tok, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for expired token, got %d", w.Code)
	}
}

func TestCustomers_CRUD(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do("POST", "/api/customers", env.staffToken, gin.H{
		"name": "Asha", "email": "asha@example.com", "phone": "9876543210",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decode(t, w)
	id := created["id"].(string)
	if created["name"] != "Asha" {
		t.Errorf("Unexpected created customer: %v", created)
	}

	w = env.do("GET", "/api/customers", env.staffToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var list []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 || list[0]["id"] != id {
		t.Errorf("Unexpected customer list: %v", list)
	}

	w = env.do("PUT", "/api/customers/"+id, env.staffToken, gin.H{
		"name": "Asha R", "email": "asha.r@example.com", "phone": "111",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if decode(t, w)["name"] != "Asha R" {
		t.Errorf("Update not reflected: %s", w.Body.String())
	}

	w = env.do("PUT", "/api/customers/does-not-exist", env.staffToken, gin.H{"name": "X"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}

	w = env.do("DELETE", "/api/customers/"+id, env.staffToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	w = env.do("DELETE", "/api/customers/"+id, env.staffToken, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 on second delete, got %d", w.Code)
	}
}

func TestSubscriptionTypes_OwnerGate(t *testing.T) {
	env := setupTestRouter(t)

	// Staff can read
	w := env.do("GET", "/api/subscription-types", env.staffToken, nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	// Staff cannot write
	w = env.do("POST", "/api/subscription-types", env.staffToken, gin.H{"name": "pack", "visits": 10})
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", w.Code)
	}

	// Owner can, and numeric visits is accepted as text
	w = env.do("POST", "/api/subscription-types", env.ownerToken, gin.H{"name": "pack", "visits": 10})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decode(t, w)
	if created["visits"] != "10" {
		t.Errorf("Expected visits '10', got %v", created["visits"])
	}

	// Missing fields
	w = env.do("POST", "/api/subscription-types", env.ownerToken, gin.H{"name": "pack"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	// Owner delete, then 404 on the same id
	id := created["id"].(string)
	w = env.do("DELETE", "/api/subscription-types/"+id, env.ownerToken, nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	w = env.do("DELETE", "/api/subscription-types/"+id, env.ownerToken, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}

	// Staff cannot delete either
	w = env.do("DELETE", "/api/subscription-types/whatever", env.staffToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", w.Code)
	}
}

func TestSubscriptions_RedeemFlow(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do("POST", "/api/subscriptions", env.staffToken, gin.H{
		"customerId": "c1", "name": "2-visit pack", "totalVisits": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	sub := decode(t, w)
	id := sub["id"].(string)
	if sub["usedVisits"] != "0" || sub["visitDates"] != "" {
		t.Errorf("Unexpected new subscription: %v", sub)
	}

	// First redemption with a note
	w = env.do("POST", "/api/subscriptions/"+id+"/redeem", env.staffToken, gin.H{"note": "first session"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	// Second redemption without a body
	w = env.do("POST", "/api/subscriptions/"+id+"/redeem", env.staffToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	// Allowance exhausted
	w = env.do("POST", "/api/subscriptions/"+id+"/redeem", env.staffToken, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if decode(t, w)["message"] != "No visits remaining" {
		t.Errorf("Unexpected message: %s", w.Body.String())
	}

	// State via list
	w = env.do("GET", "/api/subscriptions/customer/c1", env.staffToken, nil)
	var subs []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &subs)
	if len(subs) != 1 {
		t.Fatalf("Expected 1 subscription, got %d", len(subs))
	}
	today := time.Now().Format("2006-01-02")
	if subs[0]["usedVisits"] != "2" {
		t.Errorf("Expected usedVisits '2', got %v", subs[0]["usedVisits"])
	}
	if subs[0]["visitDates"] != today+","+today {
		t.Errorf("Unexpected visitDates: %v", subs[0]["visitDates"])
	}
	if subs[0]["visitNotes"] != today+":first session||" {
		t.Errorf("Unexpected visitNotes: %v", subs[0]["visitNotes"])
	}

	// Redeeming an unknown subscription
	w = env.do("POST", "/api/subscriptions/nope/redeem", env.staffToken, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestSubscriptions_VisitEditAndDelete(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do("POST", "/api/subscriptions", env.staffToken, gin.H{
		"customerId": "c1", "name": "pack", "totalVisits": "10",
	})
	id := decode(t, w)["id"].(string)

	env.do("POST", "/api/subscriptions/"+id+"/redeem", env.staffToken, gin.H{"note": "first"})
	env.do("POST", "/api/subscriptions/"+id+"/redeem", env.staffToken, gin.H{"note": "second"})

	w = env.do("PUT", "/api/subscriptions/"+id+"/visit/1", env.staffToken, gin.H{"note": "rescheduled"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	// Out-of-range and malformed indices
	w = env.do("PUT", "/api/subscriptions/"+id+"/visit/5", env.staffToken, gin.H{"note": "x"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	w = env.do("DELETE", "/api/subscriptions/"+id+"/visit/abc", env.staffToken, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	w = env.do("DELETE", "/api/subscriptions/"+id+"/visit/0", env.staffToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	w = env.do("GET", "/api/subscriptions/customer/c1", env.staffToken, nil)
	var subs []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &subs)
	today := time.Now().Format("2006-01-02")
	if subs[0]["usedVisits"] != "1" {
		t.Errorf("Expected usedVisits '1', got %v", subs[0]["usedVisits"])
	}
	if subs[0]["visitNotes"] != today+":rescheduled" {
		t.Errorf("Unexpected visitNotes: %v", subs[0]["visitNotes"])
	}
}

func TestCORSPreflight(t *testing.T) {
	env := setupTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/api/customers", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Errorf("Expected allowed origin header, got %q", w.Header().Get("Access-Control-Allow-Origin"))
	}

	// Unlisted origins get no CORS headers
	req = httptest.NewRequest("OPTIONS", "/api/customers", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("Unlisted origin should not be allowed")
	}
}

func TestRequestIDEcho(t *testing.T) {
	env := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-Id", "req-123")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-Id") != "req-123" {
		t.Errorf("Expected request id echo, got %q", w.Header().Get("X-Request-Id"))
	}

	// One is generated when the client sends none
	w2 := env.do("GET", "/health", "", nil)
	if w2.Header().Get("X-Request-Id") == "" {
		t.Error("Expected a generated request id")
	}
}
