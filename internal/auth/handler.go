package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"

	"github.com/taskhive/taskhive/internal/platform/httpx"
	"github.com/taskhive/taskhive/jobs"
)

// JobEnqueuer pushes background tasks onto the job queue.
type JobEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Handler wires HTTP endpoints for registration and login.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	enqueuer  JobEnqueuer
	validator *validator.Validate
}

// NewHandler constructs a Handler instance. The enqueuer may be nil, in
// which case no welcome email is scheduled.
func NewHandler(logger *slog.Logger, service *Service, enqueuer JobEnqueuer) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		enqueuer:  enqueuer,
		validator: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	token, user, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	h.enqueueWelcome(r.Context(), user)

	httpx.JSON(w, http.StatusCreated, authResponse{Token: token, User: user.Profile()})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	token, user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, authResponse{Token: token, User: user.Profile()})
}

// enqueueWelcome schedules the welcome email. Delivery is best effort;
// registration never fails because the queue is down.
func (h *Handler) enqueueWelcome(ctx context.Context, user *User) {
	if h.enqueuer == nil {
		return
	}
	task, err := jobs.NewSendEmailTask(jobs.SendEmailPayload{
		To:      user.Email,
		Subject: "Welcome to Taskhive",
		Body:    "Hi " + user.Name + ", your account is ready.",
	})
	if err != nil {
		h.logger.Warn("build welcome email task", slog.Any("error", err))
		return
	}
	if _, err := h.enqueuer.EnqueueContext(ctx, task); err != nil {
		h.logger.Warn("enqueue welcome email", slog.Any("error", err))
	}
}
