package handlers

import (
	"errors"
	"net/http"
	"testing"

	"todo_service/internal/models"
	"todo_service/internal/repository"
	"todo_service/internal/service"
)

func TestUserHandlers_Register(t *testing.T) {
	t.Run("success returns user, message and token", func(t *testing.T) {
		accounts := &mockAccounts{
			registerUser:  &models.User{ID: "u-1", Username: "u", Email: "a@b.co"},
			registerToken: "tok123",
		}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodPost, "/user/register", `{"username":"u","email":"a@b.co","password":"p"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		m := decodeBody(t, w)
		if m["token"] != "tok123" || m["message"] != "User created successfully" {
			t.Fatalf("unexpected body: %v", m)
		}
		user, ok := m["user"].(map[string]any)
		if !ok || user["id"] != "u-1" {
			t.Fatalf("unexpected user: %v", m["user"])
		}
		if _, leaked := user["password"]; leaked {
			t.Fatalf("password must never appear in responses")
		}
	})

	t.Run("duplicate email is 400", func(t *testing.T) {
		accounts := &mockAccounts{registerErr: repository.ErrEmailTaken}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodPost, "/user/register", `{"username":"u","email":"a@b.co","password":"p"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		m := decodeBody(t, w)
		if m["message"] != "Email already taken" {
			t.Fatalf("unexpected message: %v", m["message"])
		}
	})

	t.Run("duplicate username is 400", func(t *testing.T) {
		accounts := &mockAccounts{registerErr: repository.ErrUsernameTaken}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodPost, "/user/register", `{"username":"u","email":"a@b.co","password":"p"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		m := decodeBody(t, w)
		if m["message"] != "Username already taken" {
			t.Fatalf("unexpected message: %v", m["message"])
		}
	})

	t.Run("malformed email is 400", func(t *testing.T) {
		accounts := &mockAccounts{registerErr: service.ErrInvalidEmail}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodPost, "/user/register", `{"username":"u","email":"nope","password":"p"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		accounts := &mockAccounts{}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodPost, "/user/register", `{"username":"u"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestUserHandlers_Login(t *testing.T) {
	t.Run("success returns token and projection", func(t *testing.T) {
		accounts := &mockAccounts{
			loginUser:  &models.User{ID: "u-1", Username: "u", Email: "a@b.co", PasswordHash: "h"},
			loginToken: "tok123",
		}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodPost, "/user/login", `{"email":"a@b.co","password":"p"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		m := decodeBody(t, w)
		if m["token"] != "tok123" || m["message"] != "Logged in successfully" {
			t.Fatalf("unexpected body: %v", m)
		}
		user, ok := m["user"].(map[string]any)
		if !ok {
			t.Fatalf("expected user projection, got %v", m["user"])
		}
		if user["username"] != "u" || user["email"] != "a@b.co" || user["id"] != "u-1" {
			t.Fatalf("unexpected projection: %v", user)
		}
		if len(user) != 3 {
			t.Fatalf("projection must carry exactly username, email, id: %v", user)
		}
	})

	t.Run("bad credentials are 401 with one static message", func(t *testing.T) {
		accounts := &mockAccounts{loginErr: service.ErrInvalidCredentials}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodPost, "/user/login", `{"email":"a@b.co","password":"wrong"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		m := decodeBody(t, w)
		if m["message"] != "Invalid email or password" {
			t.Fatalf("unexpected message: %v", m["message"])
		}
	})

	t.Run("store failure is 500", func(t *testing.T) {
		accounts := &mockAccounts{loginErr: errors.New("db gone")}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodPost, "/user/login", `{"email":"a@b.co","password":"p"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestUserHandlers_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		accounts := &mockAccounts{}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodDelete, "/user/delete/u-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if accounts.lastID != "u-1" {
			t.Fatalf("expected delete by path id, got %q", accounts.lastID)
		}
		m := decodeBody(t, w)
		if m["message"] != "User deleted successfully" {
			t.Fatalf("unexpected message: %v", m["message"])
		}
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		accounts := &mockAccounts{deleteErr: service.ErrUserNotFound}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodDelete, "/user/delete/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		m := decodeBody(t, w)
		if m["message"] != "User not found" {
			t.Fatalf("unexpected message: %v", m["message"])
		}
	})
}

func TestUserHandlers_UpdateAccountDetails(t *testing.T) {
	t.Run("patches the named fields", func(t *testing.T) {
		accounts := &mockAccounts{detailsResp: &models.User{ID: "u-1", Username: "u2", Email: "a2@b.co"}}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodPost, "/user/update/account-details",
			`{"id":"u-1","data":{"username":"u2","email":"a2@b.co"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if accounts.lastID != "u-1" {
			t.Fatalf("unexpected id: %q", accounts.lastID)
		}
		if accounts.lastDetails.Username == nil || *accounts.lastDetails.Username != "u2" {
			t.Fatalf("expected username in patch, got %+v", accounts.lastDetails)
		}
		if accounts.lastDetails.Email == nil || *accounts.lastDetails.Email != "a2@b.co" {
			t.Fatalf("expected email in patch, got %+v", accounts.lastDetails)
		}
		m := decodeBody(t, w)
		if m["message"] != "User details updated successfully" {
			t.Fatalf("unexpected message: %v", m["message"])
		}
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		accounts := &mockAccounts{detailsErr: service.ErrUserNotFound}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodPost, "/user/update/account-details", `{"id":"missing","data":{}}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("email conflict is 400", func(t *testing.T) {
		accounts := &mockAccounts{detailsErr: repository.ErrEmailTaken}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodPost, "/user/update/account-details",
			`{"id":"u-1","data":{"email":"taken@b.co"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestUserHandlers_UpdatePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		accounts := &mockAccounts{passwordResp: &models.User{ID: "u-1", Username: "u", Email: "a@b.co"}}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodPost, "/user/update/password", `{"id":"u-1","password":"newpw"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if accounts.lastPassword != "newpw" {
			t.Fatalf("expected the new password to reach the service, got %q", accounts.lastPassword)
		}
		m := decodeBody(t, w)
		if m["message"] != "Password updated successfully" {
			t.Fatalf("unexpected message: %v", m["message"])
		}
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		accounts := &mockAccounts{passwordErr: service.ErrUserNotFound}
		r := newTestRouter(&service.Service{Accounts: accounts})

		w := performJSON(t, r, http.MethodPost, "/user/update/password", `{"id":"missing","password":"pw"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
