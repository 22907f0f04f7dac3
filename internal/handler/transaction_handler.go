package handler

import (
	"errors"
	"net/http"

	"github.com/jfarje/usell-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type TransactionHandler struct {
	svc service.TransactionService
}

func NewTransactionHandler(svc service.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

type CreateTransactionRequest struct {
	StudentID uint64 `json:"student_id" validate:"required"`
	ID        uint64 `json:"id" validate:"required"`
}

func (h *TransactionHandler) Create(c echo.Context) error {
	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msgInvalidBody))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("validation_error", msgMissingFields))
	}
	if _, err := h.svc.Purchase(c.Request().Context(), req.StudentID, req.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("student_not_found", msgStudentNotFoundShort))
		case errors.Is(err, service.ErrPostNotAvailable):
			return c.JSON(http.StatusNotFound, NewErrorResponse("post_not_available", msgPostUnavailable))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
		}
	}
	return c.JSON(http.StatusCreated, NewMessageResponse(msgPurchaseDone))
}
