package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/worldmapx/worldmapx-be/internal/store"
	"github.com/worldmapx/worldmapx-be/internal/validation"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	store    store.UserProvider
	validate *validation.Validator
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store store.UserProvider, validate *validation.Validator) *UserHandler {
	return &UserHandler{store: store, validate: validate}
}

// RegisterPayload defines the structure for signup requests.
type RegisterPayload struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register handles new user creation. The password is hashed by the store
// and never returned.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Validate(payload); err != nil {
		var verrs *validation.Errors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"message": "Invalid user data",
				"errors":  verrs.Fields,
			})
			return
		}
		log.Error().Err(err).Msg("User payload validation failed unexpectedly")
		writeMessage(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	user, err := h.store.CreateUser(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			writeMessage(w, http.StatusConflict, "Username already in use")
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to create user")
		writeMessage(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Get handles retrieving a user by their ID.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, ok := h.store.GetUser(id)
	if !ok {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
