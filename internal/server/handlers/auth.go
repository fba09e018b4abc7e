package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"jobcart/internal/auth"
	"jobcart/internal/models"
	"jobcart/internal/server/storage"
	"jobcart/pkg/api"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	logger    *slog.Logger
	users     storage.UserStorage
	jwtConfig auth.Config
}

// NewAuthHandler creates a new handler for authentication routes
func NewAuthHandler(logger *slog.Logger, users storage.UserStorage, jwtConfig auth.Config) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		users:     users,
		jwtConfig: jwtConfig,
	}
}

// Register handles POST /register/
// Creates a new account; duplicate usernames and emails are rejected.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid register request", slog.String("username", req.Username), slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	if err := h.users.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, storage.ErrUserAlreadyExists):
			h.logger.WarnContext(ctx, "username already registered", slog.String("username", req.Username))
			sendError(h.logger, w, "username already registered", http.StatusBadRequest)
		case errors.Is(err, storage.ErrEmailAlreadyExists):
			h.logger.WarnContext(ctx, "email already registered", slog.String("username", req.Username))
			sendError(h.logger, w, "email already registered", http.StatusBadRequest)
		default:
			h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.InfoContext(ctx, "user registered",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	resp := api.UserResponse{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// Login handles POST /login/
// Accepts form-encoded credentials and returns a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(ctx, "failed to parse login form", slog.Any("error", err))
		sendError(h.logger, w, "invalid form body", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		sendError(h.logger, w, "username and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", username))
			sendError(h.logger, w, "incorrect username or password", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", username))
		sendError(h.logger, w, "incorrect username or password", http.StatusUnauthorized)
		return
	}

	token, _, err := auth.IssueToken(h.jwtConfig, user.ID, user.Username, user.Role)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	resp := api.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
