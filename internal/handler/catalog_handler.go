package handler

import (
	"net/http"

	"github.com/jfarje/usell-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// CareerListResponse keeps the original singular "career" key.
type CareerListResponse struct {
	Career []CareerView `json:"career"`
}

type CategoryListResponse struct {
	Categories []CategoryView `json:"categories"`
}

func (h *CatalogHandler) ListCareers(c echo.Context) error {
	careers, err := h.svc.ListCareers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
	}
	resp := CareerListResponse{Career: make([]CareerView, 0, len(careers))}
	for i := range careers {
		resp.Career = append(resp.Career, toCareerView(&careers[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.svc.ListCategories(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
	}
	resp := CategoryListResponse{Categories: make([]CategoryView, 0, len(categories))}
	for i := range categories {
		resp.Categories = append(resp.Categories, toCategoryView(&categories[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) CreateCareers(c echo.Context) error {
	if err := h.svc.SeedCareers(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
	}
	return c.JSON(http.StatusOK, NewMessageResponse(msgCareersCreated))
}

func (h *CatalogHandler) CreateCategories(c echo.Context) error {
	if err := h.svc.SeedCategories(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", msgInternalError))
	}
	return c.JSON(http.StatusOK, NewMessageResponse(msgCategoriesCreated))
}
