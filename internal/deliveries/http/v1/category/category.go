package category

import (
	"net/http"

	"github.com/karnaval/go-costume-catalog/internal/common"
	commonhttp "github.com/karnaval/go-costume-catalog/internal/common/http"
	"github.com/karnaval/go-costume-catalog/internal/common/validation"
	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/services"

	"github.com/labstack/echo/v4"
)

type categoryHandler struct {
	categorySvc services.CategoryService
}

// New category handler will initialize the categories/ resources endpoint.
// writeMiddlewares guard every route that changes the catalog.
func New(app *echo.Group, categorySvc services.CategoryService, writeMiddlewares ...echo.MiddlewareFunc) {
	handler := categoryHandler{
		categorySvc: categorySvc,
	}
	api := app.Group("/categories")
	api.GET("", handler.listCategories)
	api.GET("/:id", handler.getCategory)
	api.POST("", handler.createCategory, writeMiddlewares...)
	api.PUT("/:id", handler.updateCategory, writeMiddlewares...)
	api.DELETE("/:id", handler.deleteCategory, writeMiddlewares...)
}

// listCategories API list categories
// @Summary List categories with their active subcategories
// @Description Newest categories first (created_at desc). Both filters are optional.
// @Tags Categories
// @Accept  json
// @Produce  json
// @Param ageCategory query string false "children or adults"
// @Param activeOnly query bool false "only active categories"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.CategoryOut}
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/categories [get]
func (h *categoryHandler) listCategories(c echo.Context) error {
	req := new(models.ListCategoryRequest)
	if err := c.Bind(req); err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return commonhttp.HandleServiceError(c, common.NewValidationError(err))
	}

	res, err := h.categorySvc.List(c.Request().Context(), req.ToFilterOpts())
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	data := make([]models.CategoryOut, 0, len(res))
	for _, v := range res {
		data = append(data, *v.ToResponse())
	}

	return commonhttp.RestSuccessResponseListWithTotalRows(c, data, len(data))
}

// getCategory API get category
// @Summary Get a category with all of its subcategories
// @Tags Categories
// @Produce  json
// @Param id path int true "category id"
// @Success 200 {object} models.CategoryOut
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/categories/{id} [get]
func (h *categoryHandler) getCategory(c echo.Context) error {
	id, err := commonhttp.ParamID(c, "id")
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	res, err := h.categorySvc.Get(c.Request().Context(), id)
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	return commonhttp.RestSuccessResponse(c, http.StatusOK, res.ToResponse())
}

// createCategory API create category
// @Summary Create a category, optionally with its subcategories
// @Tags Categories
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string false "admin secret"
// @Param X-Idempotency-Key header string false "replays the first response for a repeated key"
// @Param body body models.CreateCategoryRequest true "body"
// @Success 201 {object} models.CategoryOut
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Failure 401 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/categories [post]
func (h *categoryHandler) createCategory(c echo.Context) error {
	req := new(models.CreateCategoryRequest)
	if err := c.Bind(req); err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	res, err := h.categorySvc.Create(c.Request().Context(), req.ToCreateCategoryIn())
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	return commonhttp.RestSuccessResponse(c, http.StatusCreated, res.ToResponse())
}

// updateCategory API update category
// @Summary Update the supplied fields of a category
// @Tags Categories
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string false "admin secret"
// @Param id path int true "category id"
// @Param body body models.UpdateCategoryRequest true "body"
// @Success 200 {object} models.CategoryOut
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/categories/{id} [put]
func (h *categoryHandler) updateCategory(c echo.Context) error {
	id, err := commonhttp.ParamID(c, "id")
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	req := new(models.UpdateCategoryRequest)
	if err := c.Bind(req); err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	res, err := h.categorySvc.Update(c.Request().Context(), id, req.ToUpdateCategoryIn())
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	return commonhttp.RestSuccessResponse(c, http.StatusOK, res.ToResponse())
}

// deleteCategory API delete category
// @Summary Delete a category with its subcategories and costumes
// @Tags Categories
// @Produce  json
// @Param X-Secret-Key header string false "admin secret"
// @Param id path int true "category id"
// @Success 200 {object} http.RestSuccessDeleteResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c echo.Context) error {
	id, err := commonhttp.ParamID(c, "id")
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	if err := h.categorySvc.Delete(c.Request().Context(), id); err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	return commonhttp.RestSuccessDeleteResponse(c)
}
