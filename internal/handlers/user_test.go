package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rkondo/realrent/internal/repo"
)

func TestUserHandler_ListUsers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, username, created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at", "updated_at"}).
			AddRow(2, "bob", now, now).
			AddRow(1, "alice", now.Add(-time.Hour), now.Add(-time.Hour)))

	h := &UserHandler{Repo: repo.NewUserRepo(db)}

	req := httptest.NewRequest("GET", "/api/users", nil)
	rr := httptest.NewRecorder()
	h.ListUsers(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("ListUsers status: got %d, want 200", rr.Code)
	}
	var out struct {
		Users []struct {
			Username string `json:"username"`
		} `json:"users"`
		Count int `json:"count"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Count != 2 || len(out.Users) != 2 || out.Users[0].Username != "bob" {
		t.Errorf("unexpected response: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUserHandler_ListUsers_StoreError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, created_at, updated_at`).
		WillReturnError(errors.New("connection refused"))

	h := &UserHandler{Repo: repo.NewUserRepo(db)}

	req := httptest.NewRequest("GET", "/api/users", nil)
	rr := httptest.NewRecorder()
	h.ListUsers(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rr.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUserHandler_GetUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, username, created_at, updated_at`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at", "updated_at"}).
			AddRow(1, "alice", now, now))

	h := &UserHandler{Repo: repo.NewUserRepo(db)}

	req := requestWithChiURLParams("GET", "/api/users/alice", nil, map[string]string{"username": "alice"})
	rr := httptest.NewRecorder()
	h.GetUser(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("GetUser status: got %d, want 200", rr.Code)
	}
	var out struct {
		User struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.User.ID != 1 || out.User.Username != "alice" {
		t.Errorf("unexpected user: %+v", out.User)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, created_at, updated_at`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at", "updated_at"}))

	h := &UserHandler{Repo: repo.NewUserRepo(db)}

	req := requestWithChiURLParams("GET", "/api/users/ghost", nil, map[string]string{"username": "ghost"})
	rr := httptest.NewRecorder()
	h.GetUser(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
