package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jfarje/usell-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type WishPostHandler struct {
	svc service.WishPostService
}

func NewWishPostHandler(svc service.WishPostService) *WishPostHandler {
	return &WishPostHandler{svc: svc}
}

type AddWishPostRequest struct {
	StudentID uint64 `json:"student_id" validate:"required"`
	PostID    uint64 `json:"post_id" validate:"required"`
}

func (h *WishPostHandler) Add(c echo.Context) error {
	var req AddWishPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msgInvalidBody))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("validation_error", msgMissingFields))
	}
	if _, err := h.svc.Add(c.Request().Context(), req.StudentID, req.PostID); err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("student_not_found", msgStudentNotFoundShort))
		case errors.Is(err, service.ErrPostNotAvailable):
			return c.JSON(http.StatusNotFound, NewErrorResponse("post_not_available", msgPostUnavailable))
		case errors.Is(err, service.ErrAlreadyWished):
			return c.JSON(http.StatusConflict, NewErrorResponse("already_wished", msgAlreadyWished))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
		}
	}
	return c.JSON(http.StatusCreated, NewMessageResponse(msgWishAdded))
}

func (h *WishPostHandler) ListByStudent(c echo.Context) error {
	studentID, err := strconv.ParseUint(c.Param("student_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msgInvalidID))
	}
	wishes, err := h.svc.ListByStudent(c.Request().Context(), studentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
	}
	views := make([]WishPostView, 0, len(wishes))
	for i := range wishes {
		views = append(views, toWishPostView(&wishes[i]))
	}
	return c.JSON(http.StatusOK, views)
}

func (h *WishPostHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msgInvalidID))
	}
	if err := h.svc.Remove(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrWishNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", msgWishNotFound))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
	}
	return c.JSON(http.StatusOK, NewMessageResponse(msgWishRemoved))
}
