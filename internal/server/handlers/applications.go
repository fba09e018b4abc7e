package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"jobcart/internal/models"
	"jobcart/internal/server/storage"
	"jobcart/pkg/api"
)

// ApplicationsHandler handles the job application routes of the tracker
// service. Every route requires an authenticated user and operates only
// on that user's records.
type ApplicationsHandler struct {
	logger *slog.Logger
	apps   storage.ApplicationStorage
	users  storage.UserStorage
}

// NewApplicationsHandler creates a new handler for application routes
func NewApplicationsHandler(logger *slog.Logger, apps storage.ApplicationStorage, users storage.UserStorage) *ApplicationsHandler {
	return &ApplicationsHandler{
		logger: logger,
		apps:   apps,
		users:  users,
	}
}

// Create handles POST /applications/
// The id and application date are server-set; status defaults to "applied".
func (h *ApplicationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := GetUsername(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.ApplicationCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode application request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid application request", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	status := models.ApplicationStatus(req.Status)
	if status == "" {
		status = models.StatusApplied
	}

	app := &models.JobApplication{
		Owner:       username,
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		DateApplied: time.Now().Format("2006-01-02"),
		Status:      status,
		Notes:       req.Notes,
	}

	if err := h.apps.CreateApplication(ctx, app); err != nil {
		h.logger.ErrorContext(ctx, "failed to create application", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "application created",
		slog.String("username", username),
		slog.Int("application_id", app.ID))

	sendJSON(h.logger, w, toApplicationResponse(app), http.StatusCreated)
}

// List handles GET /applications/
// Returns only the caller's applications in insertion order.
func (h *ApplicationsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := GetUsername(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	apps, err := h.apps.ListByOwner(ctx, username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list applications", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, toApplicationResponse(app))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Stats handles GET /applications/stats/
// Aggregates the caller's applications by status.
func (h *ApplicationsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := GetUsername(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.users.GetUserByUsername(ctx, username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get user for stats", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	apps, err := h.apps.ListByOwner(ctx, username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list applications", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	breakdown := make(map[string]int)
	for _, app := range apps {
		breakdown[string(app.Status)]++
	}

	resp := api.StatsResponse{
		Username:          user.Username,
		FullName:          user.FullName,
		TotalApplications: len(apps),
		StatusBreakdown:   breakdown,
	}

	if len(apps) > 0 {
		recent := toApplicationResponse(apps[len(apps)-1])
		resp.MostRecentApplication = &recent
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// UpdateStatus handles PUT /applications/{id}?status=...
// Only the owner may change an application, and only its status field.
func (h *ApplicationsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := GetUsername(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		sendError(h.logger, w, "invalid application id", http.StatusBadRequest)
		return
	}

	status := models.ApplicationStatus(r.URL.Query().Get("status"))
	if !status.Valid() {
		sendError(h.logger, w, "invalid status value", http.StatusBadRequest)
		return
	}

	app, err := h.apps.UpdateStatus(ctx, id, username, status)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrApplicationNotFound):
			h.logger.WarnContext(ctx, "application not found", slog.Int("application_id", id))
			sendError(h.logger, w, "application not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrNotOwner):
			h.logger.WarnContext(ctx, "application owned by another user",
				slog.Int("application_id", id),
				slog.String("username", username))
			sendError(h.logger, w, "access denied", http.StatusForbidden)
		default:
			h.logger.ErrorContext(ctx, "failed to update application", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.InfoContext(ctx, "application status updated",
		slog.Int("application_id", id),
		slog.String("status", string(status)))

	sendJSON(h.logger, w, toApplicationResponse(app), http.StatusOK)
}

func toApplicationResponse(app *models.JobApplication) api.ApplicationResponse {
	return api.ApplicationResponse{
		ID:          app.ID,
		JobTitle:    app.JobTitle,
		Company:     app.Company,
		DateApplied: app.DateApplied,
		Status:      string(app.Status),
		Notes:       app.Notes,
	}
}
