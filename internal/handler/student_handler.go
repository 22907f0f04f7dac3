package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jfarje/usell-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type StudentHandler struct {
	svc service.StudentService
}

func NewStudentHandler(svc service.StudentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

type StudentListResponse struct {
	Students []StudentView `json:"students"`
}

type RegisterRequest struct {
	ID              uint64  `json:"id" validate:"required"`
	Email           string  `json:"email" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	Level           int     `json:"level" validate:"required"`
	PhoneNumber     string  `json:"phone_number" validate:"required"`
	CareerName      string  `json:"career_name" validate:"required"`
	ProfileImageURL *string `json:"profile_image_url"`
}

func (h *StudentHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msgInvalidID))
	}
	student, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", msgStudentNotFound))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
	}
	return c.JSON(http.StatusOK, toStudentView(student))
}

func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
	}
	resp := StudentListResponse{Students: make([]StudentView, 0, len(students))}
	for i := range students {
		resp.Students = append(resp.Students, toStudentView(&students[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msgInvalidID))
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", msgStudentNotFound))
		case errors.Is(err, service.ErrHasDependents):
			return c.JSON(http.StatusConflict, NewErrorResponse("has_dependents", msgStudentHasActivity))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
		}
	}
	return c.JSON(http.StatusOK, NewMessageResponse(msgStudentDeleted))
}

func (h *StudentHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msgInvalidBody))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("validation_error", msgMissingFields))
	}
	_, err := h.svc.Register(c.Request().Context(), service.RegisterInput{
		ID:              req.ID,
		Email:           req.Email,
		Name:            req.Name,
		Level:           req.Level,
		PhoneNumber:     req.PhoneNumber,
		CareerName:      req.CareerName,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCareerNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("career_not_found", msgCareerNotFound))
		case errors.Is(err, service.ErrAlreadyRegistered):
			return c.JSON(http.StatusConflict, NewErrorResponse("already_registered", msgAlreadyRegistered))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
		}
	}
	return c.JSON(http.StatusCreated, NewMessageResponse(msgStudentRegistered))
}
