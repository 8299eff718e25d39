// Package http exposes the account, profile, entry and device endpoints
// consumed by the Daybook clients.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/lead4tomorrow/daybook/internal/common"
	"github.com/lead4tomorrow/daybook/internal/logging"
	"github.com/lead4tomorrow/daybook/internal/server/devices"
	"github.com/lead4tomorrow/daybook/internal/server/profiles"
	"github.com/lead4tomorrow/daybook/internal/server/shared/db"
)

type Server struct {
	logger logging.Logger
	repos  db.RepositoryManager
}

func NewServer(repos db.RepositoryManager, logger logging.Logger) *Server {
	return &Server{logger: logger, repos: repos}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/login", s.handleLogin)
	r.Post("/create_profile", s.handleCreateProfile)
	r.Get("/get_profile", s.handleGetProfile)
	r.Post("/update_profile", s.handleUpdateProfile)
	r.Post("/delete_profile", s.handleDeleteProfile)
	r.Delete("/delete_profile", s.handleDeleteProfile)
	r.Post("/delete_account", s.handleDeleteProfile)
	r.Get("/get_entry", s.handleGetEntry)
	r.Post("/register_device", s.handleRegisterDevice)

	return r
}

// Models

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileResponse struct {
	Phone    string `json:"phone"`
	Carrier  string `json:"carrier"`
	Method   string `json:"method"`
	Timezone string `json:"timezone"`
	Time     string `json:"time"`
}

type updateProfileRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Carrier  string `json:"carrier"`
	Method   string `json:"method"`
	Timezone string `json:"timezone"`
	Time     string `json:"time"`
}

type registerDeviceRequest struct {
	Email string `json:"email"`
	Token string `json:"device_token"`
}

// Handlers

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	profile, err := s.repos.Profiles().GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		s.logger.Error(r.Context(), "login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	if bcrypt.CompareHashAndPassword(profile.PasswordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"email": profile.Email})
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error(r.Context(), "password hashing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	profile := &profiles.Profile{
		Email:        req.Email,
		PasswordHash: hash,
		Carrier:      "att",
		Method:       "email",
		Timezone:     "-5",
		Time:         "09:00",
	}

	if _, err := s.repos.Profiles().Create(r.Context(), profile); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeError(w, http.StatusConflict, "an account with this email already exists")
			return
		}
		s.logger.Error(r.Context(), "profile creation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	profile, err := s.repos.Profiles().GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.logger.Error(r.Context(), "profile lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		Phone:    profile.Phone,
		Carrier:  profile.Carrier,
		Method:   profile.Method,
		Timezone: profile.Timezone,
		Time:     profile.Time,
	})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	profile := &profiles.Profile{
		Email:    req.Email,
		Phone:    req.Phone,
		Carrier:  req.Carrier,
		Method:   strings.ToLower(req.Method),
		Timezone: req.Timezone,
		Time:     req.Time,
	}

	if err := s.repos.Profiles().UpdatePrefs(r.Context(), profile); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.logger.Error(r.Context(), "profile update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// handleDeleteProfile serves every deletion variant the clients send:
// POST with a JSON body, POST with a form body, and DELETE with the email
// in the query string. /delete_account routes here as well.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	email := s.deletionEmail(r)
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := s.repos.Profiles().Delete(r.Context(), email); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.logger.Error(r.Context(), "profile deletion failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	if err := s.repos.Devices().DeleteByEmail(r.Context(), email); err != nil {
		s.logger.Warn(r.Context(), "device cleanup failed", "email", email, "error", err)
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) deletionEmail(r *http.Request) string {
	if email := r.URL.Query().Get("email"); email != "" {
		return email
	}

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return ""
		}
		return r.PostForm.Get("email")
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		return ""
	}
	return req.Email
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "invalid month")
		return
	}
	day, err := strconv.Atoi(r.URL.Query().Get("day"))
	if err != nil || day < 1 || day > 31 {
		writeError(w, http.StatusBadRequest, "invalid day")
		return
	}

	entry, err := s.repos.Entries().GetByDate(r.Context(), month, day)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "no entry for this date")
			return
		}
		s.logger.Error(r.Context(), "entry lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"theme": entry.Theme, "entry": entry.Body})
}

func (s *Server) handleRegisterDevice(w http.ResponseWriter, r *http.Request) {
	var req registerDeviceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Email == "" || req.Token == "" {
		writeError(w, http.StatusBadRequest, "email and device_token are required")
		return
	}

	device := &devices.Device{Email: req.Email, Token: req.Token}
	if _, err := s.repos.Devices().Register(r.Context(), device); err != nil {
		s.logger.Error(r.Context(), "device registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	w.WriteHeader(http.StatusOK)
}
