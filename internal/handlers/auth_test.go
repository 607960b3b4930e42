package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/rkondo/realrent/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestAuthHandler_Register(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users \(username, password_hash\)`).
		WithArgs("charlie", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at", "updated_at"}).
			AddRow(3, "charlie", now, now))

	h := &AuthHandler{Users: repo.NewUserRepo(db), Secret: []byte("test"), ExpireHours: 24}

	rr := postJSON(t, h.Register, "/auth/register", map[string]string{
		"username": "charlie",
		"password": "secret123",
	})

	if rr.Code != http.StatusCreated {
		t.Errorf("Register status: got %d, want 201", rr.Code)
	}
	var out struct {
		Message string `json:"message"`
		User    struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.User.ID != 3 || out.User.Username != "charlie" {
		t.Errorf("unexpected user: %+v", out.User)
	}
	if bytes.Contains(rr.Body.Bytes(), []byte("password")) {
		t.Error("response must not contain password material")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := &AuthHandler{Users: repo.NewUserRepo(db), Secret: []byte("test"), ExpireHours: 24}

	tests := []struct {
		name      string
		username  string
		password  string
		wantField string
	}{
		{"empty username", "", "secret123", "username"},
		{"short username", "ab", "secret123", "username"},
		{"empty password", "charlie", "", "password"},
		{"short password", "charlie", "12345", "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, h.Register, "/auth/register", map[string]string{
				"username": tt.username,
				"password": tt.password,
			})
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status: got %d, want 400", rr.Code)
			}
			var out struct {
				Fields map[string]string `json:"fields"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if _, ok := out.Fields[tt.wantField]; !ok {
				t.Errorf("expected field %q in %+v", tt.wantField, out.Fields)
			}
		})
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no store access expected: %v", err)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users \(username, password_hash\)`).
		WithArgs("charlie", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	h := &AuthHandler{Users: repo.NewUserRepo(db), Secret: []byte("test"), ExpireHours: 24}

	rr := postJSON(t, h.Register, "/auth/register", map[string]string{
		"username": "charlie",
		"password": "secret123",
	})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	now := time.Now()
	mock.ExpectQuery(`SELECT id, username, password_hash`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}).
			AddRow(1, "alice", string(hash), now, now))

	h := &AuthHandler{Users: repo.NewUserRepo(db), Secret: []byte("test"), ExpireHours: 24}

	rr := postJSON(t, h.Login, "/auth/login", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Login status: got %d, want 200", rr.Code)
	}
	var out struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Token == "" {
		t.Error("expected a token")
	}
	if out.User.Username != "alice" {
		t.Errorf("unexpected user: %+v", out.User)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

// Unknown username and wrong password must be indistinguishable: same status,
// same body.
func TestAuthHandler_Login_OpaqueFailures(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.MinCost)
	now := time.Now()
	mock.ExpectQuery(`SELECT id, username, password_hash`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}).
			AddRow(1, "alice", string(hash), now, now))
	mock.ExpectQuery(`SELECT id, username, password_hash`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}))

	h := &AuthHandler{Users: repo.NewUserRepo(db), Secret: []byte("test"), ExpireHours: 24}

	wrongPass := postJSON(t, h.Login, "/auth/login", map[string]string{"username": "alice", "password": "wrongpass"})
	noUser := postJSON(t, h.Login, "/auth/login", map[string]string{"username": "nobody", "password": "whatever"})

	if wrongPass.Code != http.StatusUnauthorized || noUser.Code != http.StatusUnauthorized {
		t.Fatalf("statuses: got %d and %d, want 401 for both", wrongPass.Code, noUser.Code)
	}
	if wrongPass.Body.String() != noUser.Body.String() {
		t.Errorf("bodies differ: %q vs %q", wrongPass.Body.String(), noUser.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
