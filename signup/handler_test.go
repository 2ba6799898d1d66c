package signup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRegisterRequest(t *testing.T) {
	body := strings.NewReader(`{"name":"Alice","email":"a@b.com","password":"secret1","confirmPassword":"secret1"}`)

	req, err := decodeRegisterRequest(body)

	assert.NoError(t, err)
	assert.Equal(t, Draft{Name: "Alice", Email: "a@b.com", Password: "secret1", ConfirmPassword: "secret1"}, req.draft())
}

func TestSignupHandlerResponses(t *testing.T) {
	router := NewRouter(NewMemoryStore(), nil)

	tests := []struct {
		name, req    string
		wantCode     int
		wantTitle    string
		wantMsg      string
		wantRoute    string
		wantLocation string
	}{
		{
			name:     "bad json",
			req:      `invalid request`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "invalid request",
		},
		{
			name:      "missing fields",
			req:       `{"name":"Alice","email":"a@b.com","password":"secret1"}`,
			wantCode:  http.StatusUnprocessableEntity,
			wantTitle: "Error",
			wantMsg:   "Please fill in all fields",
		},
		{
			name:      "mismatch",
			req:       `{"name":"Alice","email":"a@b.com","password":"secret1","confirmPassword":"secret2"}`,
			wantCode:  http.StatusUnprocessableEntity,
			wantTitle: "Error",
			wantMsg:   "Passwords do not match",
		},
		{
			name:      "too short",
			req:       `{"name":"Alice","email":"a@b.com","password":"abc","confirmPassword":"abc"}`,
			wantCode:  http.StatusUnprocessableEntity,
			wantTitle: "Error",
			wantMsg:   "Password must be at least 6 characters",
		},
		{
			name:         "created",
			req:          `{"name":" Alice ","email":" a@b.com ","password":"secret1","confirmPassword":"secret1"}`,
			wantCode:     http.StatusCreated,
			wantTitle:    "Success",
			wantMsg:      "Account created successfully!",
			wantRoute:    RouteProfile,
			wantLocation: "/v1/users/a@b.com",
		},
		{
			name:      "duplicate",
			req:       `{"name":"Alice","email":"a@b.com","password":"secret1","confirmPassword":"secret1"}`,
			wantCode:  http.StatusConflict,
			wantTitle: "Error",
			wantMsg:   "An account with this email already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/v1/signup", strings.NewReader(tt.req))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			var res struct {
				Title   string `json:"title"`
				Message string `json:"message"`
				Route   string `json:"route"`
				Err     string `json:"error"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&res))

			msg := res.Err
			if tt.wantCode == http.StatusCreated {
				msg = res.Message
			}
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantTitle, res.Title)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.wantRoute, res.Route)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

func TestSignupHandlerStorageFailure(t *testing.T) {
	router := NewRouter(&storageSpy{existsErr: errors.New("connection reset")}, nil)
	body := `{"name":"Alice","email":"a@b.com","password":"secret1","confirmPassword":"secret1"}`

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/signup", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
	assert.Contains(t, w.Body.String(), "Failed to create account. Please try again.")
}

func TestPasswordStrengthHandler(t *testing.T) {
	router := NewRouter(NewMemoryStore(), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/signup/strength", strings.NewReader(`{"password":"abcdefg"}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"label":"Medium"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/signup/strength", strings.NewReader(`nope`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type pingStorage struct {
	storageSpy
	err error
}

func (p *pingStorage) Ping(context.Context) error { return p.err }

func TestHealthAndReady(t *testing.T) {
	tests := []struct {
		storage    Storage
		path       string
		wantCode   int
		wantStatus string
	}{
		{NewMemoryStore(), "/health", http.StatusOK, "ok"},
		{NewMemoryStore(), "/ready", http.StatusOK, "ready"},
		{&storageSpy{}, "/ready", http.StatusOK, "ready"},
		{&pingStorage{err: errors.New("down")}, "/ready", http.StatusServiceUnavailable, "not_ready"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		NewRouter(tt.storage, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

		var res map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
		assert.Equal(t, tt.wantCode, w.Code)
		assert.Equal(t, tt.wantStatus, res["status"])
	}
}
