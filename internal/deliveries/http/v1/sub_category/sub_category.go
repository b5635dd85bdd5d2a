package sub_category

import (
	"net/http"

	"github.com/karnaval/go-costume-catalog/internal/common"
	commonhttp "github.com/karnaval/go-costume-catalog/internal/common/http"
	"github.com/karnaval/go-costume-catalog/internal/common/validation"
	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/services"

	"github.com/labstack/echo/v4"
)

type subCategoryHandler struct {
	subCategorySvc services.SubCategoryService
}

// New sub category handler will initialize the subcategories/ resources endpoint
func New(app *echo.Group, subCategorySvc services.SubCategoryService, writeMiddlewares ...echo.MiddlewareFunc) {
	handler := subCategoryHandler{
		subCategorySvc: subCategorySvc,
	}
	api := app.Group("/subcategories")
	api.GET("", handler.listSubCategories)
	api.GET("/:id", handler.getSubCategory)
	api.POST("", handler.createSubCategory, writeMiddlewares...)
	api.PUT("/:id", handler.updateSubCategory, writeMiddlewares...)
	api.DELETE("/:id", handler.deleteSubCategory, writeMiddlewares...)
}

// listSubCategories API list sub categories
// @Summary List subcategories
// @Tags SubCategories
// @Produce  json
// @Param categoryId query int false "parent category id"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.SubCategoryOut}
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/subcategories [get]
func (h *subCategoryHandler) listSubCategories(c echo.Context) error {
	req := new(models.ListSubCategoryRequest)
	if err := c.Bind(req); err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return commonhttp.HandleServiceError(c, common.NewValidationError(err))
	}

	res, err := h.subCategorySvc.List(c.Request().Context(), req.ToFilterOpts())
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	data := make([]models.SubCategoryOut, 0, len(res))
	for _, v := range res {
		data = append(data, *v.ToResponse())
	}

	return commonhttp.RestSuccessResponseListWithTotalRows(c, data, len(data))
}

// getSubCategory API get sub category
// @Summary Get a subcategory
// @Tags SubCategories
// @Produce  json
// @Param id path int true "subcategory id"
// @Success 200 {object} models.SubCategoryOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Router /v1/subcategories/{id} [get]
func (h *subCategoryHandler) getSubCategory(c echo.Context) error {
	id, err := commonhttp.ParamID(c, "id")
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	res, err := h.subCategorySvc.Get(c.Request().Context(), id)
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	return commonhttp.RestSuccessResponse(c, http.StatusOK, res.ToResponse())
}

// createSubCategory API create sub category
// @Summary Create a subcategory under an existing category
// @Tags SubCategories
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string false "admin secret"
// @Param X-Idempotency-Key header string false "replays the first response for a repeated key"
// @Param body body models.CreateSubCategoryRequest true "body"
// @Success 201 {object} models.SubCategoryOut
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/subcategories [post]
func (h *subCategoryHandler) createSubCategory(c echo.Context) error {
	req := new(models.CreateSubCategoryRequest)
	if err := c.Bind(req); err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	res, err := h.subCategorySvc.Create(c.Request().Context(), req.ToCreateSubCategoryIn())
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	return commonhttp.RestSuccessResponse(c, http.StatusCreated, res.ToResponse())
}

// updateSubCategory API update sub category
// @Summary Update the supplied fields of a subcategory
// @Description Moving a subcategory to another category moves its costumes too.
// @Tags SubCategories
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string false "admin secret"
// @Param id path int true "subcategory id"
// @Param body body models.UpdateSubCategoryRequest true "body"
// @Success 200 {object} models.SubCategoryOut
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Router /v1/subcategories/{id} [put]
func (h *subCategoryHandler) updateSubCategory(c echo.Context) error {
	id, err := commonhttp.ParamID(c, "id")
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	req := new(models.UpdateSubCategoryRequest)
	if err := c.Bind(req); err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	res, err := h.subCategorySvc.Update(c.Request().Context(), id, req.ToUpdateSubCategoryIn())
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	return commonhttp.RestSuccessResponse(c, http.StatusOK, res.ToResponse())
}

// deleteSubCategory API delete sub category
// @Summary Delete an empty subcategory
// @Tags SubCategories
// @Produce  json
// @Param X-Secret-Key header string false "admin secret"
// @Param id path int true "subcategory id"
// @Success 200 {object} http.RestSuccessDeleteResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel "costumes still reference the subcategory"
// @Router /v1/subcategories/{id} [delete]
func (h *subCategoryHandler) deleteSubCategory(c echo.Context) error {
	id, err := commonhttp.ParamID(c, "id")
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	if err := h.subCategorySvc.Delete(c.Request().Context(), id); err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	return commonhttp.RestSuccessDeleteResponse(c)
}
