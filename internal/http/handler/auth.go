package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"authd/internal/auth"
	"authd/internal/mail"
	"authd/internal/user"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	Store  user.Store
	Tokens *auth.ResetTokens
	Mailer mail.Mailer

	// ClientURL is the base of reset links sent by mail.
	ClientURL string
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = normalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("password hash failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	u := user.User{Email: req.Email, PasswordHash: hash}
	if err := h.Store.Create(r.Context(), &u); err != nil {
		// Cause is not surfaced to the client beyond the generic conflict.
		if !errors.Is(err, user.ErrDuplicateEmail) {
			log.Error().Err(err).Str("email", req.Email).Msg("signup create failed")
		}
		writeError(w, http.StatusBadRequest, "User already exists")
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = normalizeEmail(req.Email)

	u, err := h.Store.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Email not registered")
			return
		}
		log.Error().Err(err).Msg("login lookup failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if !auth.ComparePassword(u.PasswordHash, req.Password) {
		writeMessage(w, http.StatusBadRequest, "Invalid password")
		return
	}

	writeMessage(w, http.StatusOK, "Login successful")
}

type forgotPasswordReq struct {
	Email string `json:"email"`
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = normalizeEmail(req.Email)

	u, err := h.Store.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Msg("forgot-password lookup failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	token, err := h.Tokens.Issue(u.Email, auth.ResetTokenTTL)
	if err != nil {
		log.Error().Err(err).Msg("reset token signing failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	resetLink := h.ClientURL + "/reset-password/" + token
	err = h.Mailer.Send(u.Email,
		"Password Reset Request",
		"Click here to reset your password: "+resetLink)
	if err != nil {
		log.Error().Err(err).Str("email", u.Email).Msg("reset email send failed")
		writeError(w, http.StatusInternalServerError, "Error sending email")
		return
	}

	writeMessage(w, http.StatusOK, "Password reset link sent to email")
}

type resetPasswordReq struct {
	NewPassword string `json:"newPassword"`
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	email, err := h.Tokens.Verify(token)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid or expired token")
		return
	}

	var req resetPasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.Store.FindByEmail(r.Context(), email); err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			log.Error().Err(err).Msg("reset-password lookup failed")
		}
		writeError(w, http.StatusBadRequest, "Invalid token or user not found")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("password hash failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if err := h.Store.UpdatePassword(r.Context(), email, hash); err != nil {
		log.Error().Err(err).Str("email", email).Msg("password update failed")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeMessage(w, http.StatusOK, "Password reset successful")
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
