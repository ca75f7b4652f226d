package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-stock-dashboard/internal/app"
	"github.com/MKhiriev/go-stock-dashboard/internal/devserver"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/utils"
	"github.com/MKhiriev/go-stock-dashboard/models"
)

type registerResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteDetail(w, app.MsgInvalidJSON, http.StatusUnprocessableEntity)
		return
	}

	user, err := h.backend.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	utils.WriteJSON(w, registerResponse{Success: true, Message: app.MsgUserRegistered, User: user}, http.StatusOK)
}

// login accepts the OAuth2 password form: username (the email) and password.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid login form")
		writeError(w, r, devserver.ErrInvalidUserData, "invalid login form")
		return
	}

	email, password := r.PostForm.Get("username"), r.PostForm.Get("password")
	if email == "" || password == "" {
		writeError(w, r, devserver.ErrInvalidUserData, "incomplete login form")
		return
	}

	token, err := h.backend.Login(r.Context(), email, password)
	if err != nil {
		writeError(w, r, err, "login failed")
		return
	}

	log.Debug().Int64("user_id", token.User.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, token, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	user, err := h.backend.Me(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "user lookup failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
