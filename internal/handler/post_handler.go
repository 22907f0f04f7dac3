package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jfarje/usell-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type PostHandler struct {
	svc service.PostService
}

func NewPostHandler(svc service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

type PostListResponse struct {
	Posts []PostView `json:"posts"`
}

type PublishRequest struct {
	CategoryName string   `json:"category_name" validate:"required"`
	StudentID    uint64   `json:"student_id" validate:"required"`
	CareerNames  []string `json:"career_names" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Price        *float64 `json:"price" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	ImageURL     string   `json:"image_url" validate:"required"`
	Level        int      `json:"level" validate:"required"`
}

func (h *PostHandler) Publish(c echo.Context) error {
	var req PublishRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msgInvalidBody))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("validation_error", msgMissingFields))
	}
	_, err := h.svc.Publish(c.Request().Context(), service.PublishInput{
		CategoryName: req.CategoryName,
		StudentID:    req.StudentID,
		CareerNames:  req.CareerNames,
		Name:         req.Name,
		Price:        *req.Price,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Level:        req.Level,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("category_not_found", msgCategoryNotFound))
		case errors.Is(err, service.ErrStudentNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("student_not_found", msgStudentNotFoundShort))
		case errors.Is(err, service.ErrCareerNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("career_not_found", msgCareerNotFound))
		case errors.Is(err, service.ErrInvalidPrice):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid_price", msgNegativePrice))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
		}
	}
	return c.JSON(http.StatusCreated, NewMessageResponse(msgPostPublished))
}

func (h *PostHandler) GetSingle(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msgInvalidID))
	}
	post, err := h.svc.GetActive(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotAvailable) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("post_not_available", msgPostUnavailable))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
	}
	return c.JSON(http.StatusOK, toPostView(post))
}

func (h *PostHandler) ListAll(c echo.Context) error {
	posts, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
	}
	return c.JSON(http.StatusOK, PostListResponse{Posts: toPostViews(posts)})
}

// ActiveByStudent returns the student's own live listings as a bare array.
func (h *PostHandler) ActiveByStudent(c echo.Context) error {
	studentID, err := strconv.ParseUint(c.Param("student_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msgInvalidID))
	}
	posts, err := h.svc.ListActiveByStudent(c.Request().Context(), studentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
	}
	return c.JSON(http.StatusOK, toPostViews(posts))
}

func (h *PostHandler) ByCategory(c echo.Context) error {
	categoryID, err := strconv.ParseUint(c.Param("category_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msgInvalidID))
	}
	posts, err := h.svc.ListByCategory(c.Request().Context(), categoryID)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("category_not_found", msgCategoryMissing))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
	}
	return c.JSON(http.StatusOK, PostListResponse{Posts: toPostViews(posts)})
}

// Recent is the browse feed: everyone else's active posts, newest first.
func (h *PostHandler) Recent(c echo.Context) error {
	studentID, err := strconv.ParseUint(c.Param("student_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msgInvalidID))
	}
	posts, err := h.svc.ListRecent(c.Request().Context(), studentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
	}
	return c.JSON(http.StatusOK, toPostViews(posts))
}
