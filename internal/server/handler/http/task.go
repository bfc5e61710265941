package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/taskwarden/internal/apperrors"
	"github.com/atinyakov/taskwarden/internal/middleware"
	"github.com/atinyakov/taskwarden/internal/models"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

// TaskService defines the interface for task operations required by the
// TaskHandler. Every operation is scoped to the authenticated user.
type TaskService interface {
	// List returns one page of the user's tasks ordered by due date,
	// optionally filtered by exact status.
	List(ctx context.Context, userID, status string, page, limit int) ([]models.Task, error)
	// Create inserts a new task owned by the user.
	Create(ctx context.Context, userID string, task models.Task) error
	// Update replaces the task with the given id if the user owns it.
	// Returns apperrors.ErrNotFound otherwise.
	Update(ctx context.Context, userID, id string, task models.Task) error
	// Delete removes the task with the given id if the user owns it.
	// Returns apperrors.ErrNotFound otherwise.
	Delete(ctx context.Context, userID, id string) error
	// DueSoon returns the user's tasks due within the next two days.
	DueSoon(ctx context.Context, userID string) ([]models.Task, error)
}

// TaskHandler handles HTTP requests for task CRUD, listing and
// upcoming-deadline notifications.
type TaskHandler struct {
	// TaskService performs the underlying task operations.
	TaskService TaskService
	// Log records handler-boundary failures; details are never sent to callers.
	Log *zap.Logger
}

// TaskRequest represents the JSON payload for creating or updating a task.
// Updates are a full replace; there are no partial-update semantics.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

// List handles GET /api/tasks requests.
// Query parameters: "status" (optional exact-match filter), "page"
// (1-based, default 1) and "limit" (page size, default 5). Non-numeric or
// non-positive page/limit values fall back to the defaults.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	status := r.URL.Query().Get("status")
	page := intQuery(r, "page", defaultPage)
	limit := intQuery(r, "limit", defaultLimit)

	tasks, err := h.TaskService.List(r.Context(), claims.UserID, status, page, limit)
	if err != nil {
		h.Log.Error("list tasks failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeTasks(w, tasks)
}

// Create handles POST /api/tasks requests.
// The body fields are stored as-is; any validation beyond JSON decoding is
// left to the database schema. Responds 201 with no body on success.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := h.TaskService.Create(r.Context(), claims.UserID, req.task()); err != nil {
		h.Log.Error("create task failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Update handles PUT /api/tasks/{id} requests as a full replace.
// A task id that does not exist and a task id owned by another user both
// respond 404, so ownership cannot be probed.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	err := h.TaskService.Update(r.Context(), claims.UserID, chi.URLParam(r, "id"), req.task())
	if errors.Is(err, apperrors.ErrNotFound) {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Log.Error("update task failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/tasks/{id} requests.
// Deletion is permanent; the 404 semantics match Update.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	err := h.TaskService.Delete(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if errors.Is(err, apperrors.ErrNotFound) {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Log.Error("delete task failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Notifications handles GET /api/notifications requests, returning every
// task of the caller due within the closed interval [today, today+2 days].
func (h *TaskHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	tasks, err := h.TaskService.DueSoon(r.Context(), claims.UserID)
	if err != nil {
		h.Log.Error("notifications failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeTasks(w, tasks)
}

func (req TaskRequest) task() models.Task {
	return models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
	}
}

// writeTasks encodes tasks as a JSON array, never null.
func writeTasks(w http.ResponseWriter, tasks []models.Task) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tasks)
}

// intQuery reads an integer query parameter, falling back to the default
// when the parameter is absent, non-numeric or non-positive.
func intQuery(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
