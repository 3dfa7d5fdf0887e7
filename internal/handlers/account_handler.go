package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/prudhvinik1/accounts/internal/models"
	"github.com/prudhvinik1/accounts/internal/services"
	"github.com/prudhvinik1/accounts/internal/utils"
)

// AccountService is the slice of services.AccountService the handlers need.
type AccountService interface {
	Create(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByID(ctx context.Context, id string) (*models.Account, error)
}

type AccountHandler struct {
	accountService AccountService
	log            *slog.Logger
}

func NewAccountHandler(accountService AccountService, log *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		log:            log,
	}
}

// AccountRouter registers account routes on the given router.
func AccountRouter(r chi.Router, accountService AccountService, log *slog.Logger) {
	handler := NewAccountHandler(accountService, log)

	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.FindByEmail)
		r.Get("/{id}", handler.FindByID)
	})
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r, "handlers.accounts.Create")

	var req models.CreateAccountRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", utils.ErrAttr(err))
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.accountService.Create(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, log, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, account)
}

func (h *AccountHandler) FindByEmail(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r, "handlers.accounts.FindByEmail")

	account, err := h.accountService.FindByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		h.writeServiceError(w, r, log, err)
		return
	}
	writeAccount(w, r, account)
}

func (h *AccountHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r, "handlers.accounts.FindByID")

	account, err := h.accountService.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, log, err)
		return
	}
	writeAccount(w, r, account)
}

func (h *AccountHandler) requestLogger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

func (h *AccountHandler) writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, ValidationErrorResponse{
			Status: http.StatusUnprocessableEntity,
			Errors: validationErr.Errors,
		})
		return
	}

	log.Error("request failed", utils.ErrAttr(err))
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

func writeAccount(w http.ResponseWriter, r *http.Request, account *models.Account) {
	if account == nil {
		writeError(w, r, http.StatusNotFound, "account not found")
		return
	}
	render.JSON(w, r, account)
}
