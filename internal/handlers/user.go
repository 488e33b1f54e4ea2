package handlers

import (
	"net/http"

	"github.com/assetledger/apiserver/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	userIDParam     = "userID"
	userNotFoundMsg = "User not found"
)

// UserHandler provides HTTP handlers for users.
type UserHandler struct {
	userService *services.UserService
	logger      *zap.Logger
}

// NewUserHandler constructs a handler with the provided service.
func NewUserHandler(userService *services.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// UserRouter registers user routes on the given router.
func UserRouter(r chi.Router, userService *services.UserService, logger *zap.Logger) {
	handler := NewUserHandler(userService, logger)

	r.Get("/", handler.ListUsers)
	r.Post("/", handler.CreateUser)
	r.Route("/{"+userIDParam+":[0-9]+}", func(r chi.Router) {
		r.Get("/", handler.GetUser)
		r.Patch("/", handler.UpdateUser)
		r.Delete("/", handler.DeleteUser)
	})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err, userNotFoundMsg, "failed to list users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, userIDParam)
	if !ok {
		writeError(w, http.StatusNotFound, userNotFoundMsg)
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err, userNotFoundMsg, "failed to fetch user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := parseUser(fields)
	if err != nil {
		writeServiceError(w, r, h.logger, err, userNotFoundMsg, "invalid user")
		return
	}

	created, err := h.userService.Create(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, h.logger, err, userNotFoundMsg, "failed to create user")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateUser replaces every field of the user; partial bodies are rejected.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := parseUser(fields)
	if err != nil {
		writeServiceError(w, r, h.logger, err, userNotFoundMsg, "invalid user")
		return
	}

	id, ok := parseID(r, userIDParam)
	if !ok {
		writeError(w, http.StatusNotFound, userNotFoundMsg)
		return
	}
	user.ID = id

	updated, err := h.userService.Update(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, h.logger, err, userNotFoundMsg, "failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, userIDParam)
	if !ok {
		writeError(w, http.StatusNotFound, userNotFoundMsg)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, h.logger, err, userNotFoundMsg, "failed to delete user")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted"})
}
