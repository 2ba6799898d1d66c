package signup

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/julienschmidt/httprouter"
)

type signupResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Route   string `json:"route,omitempty"`
}

type errorResponse struct {
	Title string `json:"title,omitempty"`
	Err   string `json:"error"`
}

//NewRouter mounts the signup endpoints and the health probes.
func NewRouter(storage Storage, logger *slog.Logger) *httprouter.Router {
	router := httprouter.New()
	router.Handler(http.MethodPost, "/v1/signup", SignupHandler(storage, logger))
	router.Handler(http.MethodPost, "/v1/signup/strength", PasswordStrengthHandler())
	router.Handler(http.MethodGet, "/health", HealthHandler())
	router.Handler(http.MethodGet, "/ready", ReadyHandler(storage))
	return router
}

//SignupHandler runs one Form per request and acknowledges the success alert,
// so a created account answers with the route the screen moved to.
func SignupHandler(storage Storage, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		req, err := decodeRegisterRequest(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Err: "invalid request"})
			return
		}

		screen := NewScreen()
		form := NewForm(storage, screen, screen, logger)
		form.Fill(req.draft())

		err = form.Submit(r.Context())
		notice, _ := screen.Last()
		if err != nil {
			encodeError(err, notice, w)
			return
		}

		screen.Acknowledge()
		w.Header().Set("Location", "/v1/users/"+url.PathEscape(form.Draft().User().Email))
		writeJSON(w, http.StatusCreated, signupResponse{
			Title:   notice.Title,
			Message: notice.Message,
			Route:   screen.Route(),
		})
	})
}

func PasswordStrengthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		var req strengthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Err: "invalid request"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"label": PasswordStrength(req.Password)})
	})
}

func HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

//ReadyHandler pings the storage backend when it supports it.
func ReadyHandler(storage Storage) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := storage.(Pinger)
		if !ok {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":  "not_ready",
				"details": err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})
}

func encodeError(err error, n Notice, w http.ResponseWriter) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrDuplicateAccount), errors.Is(err, ErrSubmitInProgress):
		status = http.StatusConflict
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrPasswordMismatch), errors.Is(err, ErrPasswordTooShort):
		status = http.StatusUnprocessableEntity
	}

	msg := n.Message
	if msg == "" {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Title: n.Title, Err: msg})
}

func decodeRegisterRequest(body io.Reader) (registerRequest, error) {
	req := registerRequest{}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return registerRequest{}, err
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
