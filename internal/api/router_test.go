package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/workforcehq/employee-records/internal/core/domain"
	"github.com/workforcehq/employee-records/internal/core/service"
)

// In-memory repositories backing the full HTTP stack under test.

type memAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*domain.Admin
	nextID int
}

func (r *memAdminRepo) Create(_ context.Context, a *domain.Admin) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.admins[a.Email]; ok {
		return nil, domain.ErrAdminExists
	}
	r.nextID++
	created := *a
	created.ID = "admin-" + strconv.Itoa(r.nextID)
	r.admins[created.Email] = &created
	return &created, nil
}

func (r *memAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[email]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *memAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

type memEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]*domain.Employee
	nextID    int
}

func (r *memEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.employees {
		if existing.Email == e.Email {
			return nil, domain.ErrEmployeeExists
		}
	}
	r.nextID++
	created := *e
	created.ID = "emp-" + strconv.Itoa(r.nextID)
	r.employees[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *memEmployeeRepo) FindAll(_ context.Context) ([]*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *memEmployeeRepo) Update(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[e.ID]; !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	r.employees[e.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memEmployeeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

// The Echo instance is built once: the Prometheus request middleware registers
// its collectors on the default registry and a second registration panics.
var (
	routerOnce sync.Once
	testRouter *echo.Echo
)

func router() *echo.Echo {
	routerOnce.Do(func() {
		adminRepo := &memAdminRepo{admins: make(map[string]*domain.Admin)}
		employeeRepo := &memEmployeeRepo{employees: make(map[string]*domain.Employee)}

		testRouter = NewRouter(Services{
			Auth:     service.NewAuthService(adminRepo, "test-secret", time.Hour),
			Employee: service.NewEmployeeService(employeeRepo, nil, nil, zerolog.Nop()),
		}, nil, nil, zerolog.Nop())
	})
	return testRouter
}

func doRequest(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestAPI_RegisterAndLogin(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"s3cret"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	profile := decodeBody(t, rec)
	if profile["email"] != "alice@example.com" {
		t.Fatalf("unexpected profile: %v", profile)
	}
	if _, leaked := profile["password"]; leaked {
		t.Fatalf("password echoed back: %v", profile)
	}

	// Duplicate registration conflicts.
	rec = doRequest(t, http.MethodPost, "/api/auth/register",
		`{"name":"Alice2","email":"alice@example.com","password":"other"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", rec.Code)
	}

	// Missing fields rejected before the service runs.
	rec = doRequest(t, http.MethodPost, "/api/auth/register", `{"name":"NoEmail"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing fields: expected 400, got %d", rec.Code)
	}

	// Wrong password and unknown email are indistinguishable.
	wrongPass := doRequest(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"bad"}`, "")
	unknown := doRequest(t, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@example.com","password":"bad"}`, "")
	if wrongPass.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, unknown.Code)
	}
	if wrongPass.Body.String() != unknown.Body.String() {
		t.Fatalf("failure bodies differ: %q vs %q", wrongPass.Body.String(), unknown.Body.String())
	}

	rec = doRequest(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"s3cret"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	token, _ := decodeBody(t, rec)["token"].(string)
	if token == "" {
		t.Fatalf("expected token in login response")
	}

	// The protected route rejects missing and bogus tokens, accepts the real one.
	if rec := doRequest(t, http.MethodGet, "/api/auth/me", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("me without token: expected 401, got %d", rec.Code)
	}
	if rec := doRequest(t, http.MethodGet, "/api/auth/me", "", "forged"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("me with forged token: expected 401, got %d", rec.Code)
	}
	rec = doRequest(t, http.MethodGet, "/api/auth/me", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if me := decodeBody(t, rec); me["email"] != "alice@example.com" {
		t.Fatalf("unexpected me payload: %v", me)
	}
}

func TestAPI_EmployeeLifecycle(t *testing.T) {
	// Create with defaults.
	rec := doRequest(t, http.MethodPost, "/api/employees",
		`{"name":"Ann","email":"ann@x.com","role":"Developer","salary":50000}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	created := decodeBody(t, rec)
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("expected generated id: %v", created)
	}
	if created["department"] != "General" {
		t.Fatalf("expected department to default to General: %v", created)
	}
	if created["joining_date"] == "" || created["joining_date"] == nil {
		t.Fatalf("expected joining_date to be set: %v", created)
	}

	// GetById returns the identical record.
	rec = doRequest(t, http.MethodGet, "/api/employees/"+id, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	fetched := decodeBody(t, rec)
	for _, field := range []string{"id", "name", "email", "role", "department", "salary"} {
		if fetched[field] != created[field] {
			t.Fatalf("field %s differs: %v vs %v", field, fetched[field], created[field])
		}
	}

	// Partial update changes only the salary.
	rec = doRequest(t, http.MethodPut, "/api/employees/"+id, `{"salary":60000}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	updated := decodeBody(t, rec)
	if updated["salary"] != float64(60000) {
		t.Fatalf("expected salary 60000, got %v", updated["salary"])
	}
	if updated["name"] != created["name"] || updated["role"] != created["role"] {
		t.Fatalf("other fields changed: %v", updated)
	}

	// List contains the record.
	rec = doRequest(t, http.MethodGet, "/api/employees", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid list json: %v", err)
	}
	found := false
	for _, e := range list {
		if e["id"] == id {
			found = true
		}
	}
	if !found {
		t.Fatalf("created employee missing from list")
	}

	// Delete, then everything 404s.
	if rec := doRequest(t, http.MethodDelete, "/api/employees/"+id, "", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
	if rec := doRequest(t, http.MethodGet, "/api/employees/"+id, "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
	if rec := doRequest(t, http.MethodDelete, "/api/employees/"+id, "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", rec.Code)
	}
}

func TestAPI_EmployeeValidation(t *testing.T) {
	// Negative salary rejected.
	rec := doRequest(t, http.MethodPost, "/api/employees",
		`{"name":"Neg","email":"neg@x.com","salary":-1}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("negative salary: expected 400, got %d", rec.Code)
	}

	// Zero salary accepted.
	rec = doRequest(t, http.MethodPost, "/api/employees",
		`{"name":"Zero","email":"zero@x.com","salary":0}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("zero salary: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Unknown role never stored verbatim.
	rec = doRequest(t, http.MethodPost, "/api/employees",
		`{"name":"Buzz","email":"buzz@x.com","role":"Astronaut","salary":1}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown role: expected 400, got %d", rec.Code)
	}

	// Duplicate email conflicts.
	rec = doRequest(t, http.MethodPost, "/api/employees",
		`{"name":"Dup","email":"zero@x.com","salary":5}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate email: expected 400, got %d", rec.Code)
	}

	// Malformed payload.
	rec = doRequest(t, http.MethodPost, "/api/employees", `not-json`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed payload: expected 400, got %d", rec.Code)
	}
}

func TestAPI_Liveness(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
