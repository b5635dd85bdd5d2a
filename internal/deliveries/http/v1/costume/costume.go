package costume

import (
	"net/http"

	"github.com/karnaval/go-costume-catalog/internal/common"
	commonhttp "github.com/karnaval/go-costume-catalog/internal/common/http"
	"github.com/karnaval/go-costume-catalog/internal/common/validation"
	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/services"

	"github.com/labstack/echo/v4"
)

type costumeHandler struct {
	costumeSvc services.CostumeService
}

// New costume handler will initialize the costumes/ resources endpoint.
// /stats is registered before /:id so it is never read as an id.
func New(app *echo.Group, costumeSvc services.CostumeService, writeMiddlewares ...echo.MiddlewareFunc) {
	handler := costumeHandler{
		costumeSvc: costumeSvc,
	}
	api := app.Group("/costumes")
	api.GET("", handler.listCostumes)
	api.GET("/stats", handler.getStats)
	api.GET("/:id", handler.getCostume)
	api.POST("", handler.createCostume, writeMiddlewares...)
	api.PUT("/:id", handler.updateCostume, writeMiddlewares...)
	api.DELETE("/:id", handler.deleteCostume, writeMiddlewares...)
}

// listCostumes API list costumes
// @Summary List costumes, newest first
// @Description Every supplied filter must match.
// @Tags Costumes
// @Produce  json
// @Param categoryId query int false "category id"
// @Param subcategoryId query int false "subcategory id"
// @Param ageCategory query string false "children or adults"
// @Param activeOnly query bool false "only active costumes"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.CostumeOut}
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/costumes [get]
func (h *costumeHandler) listCostumes(c echo.Context) error {
	req := new(models.ListCostumeRequest)
	if err := c.Bind(req); err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return commonhttp.HandleServiceError(c, common.NewValidationError(err))
	}

	res, err := h.costumeSvc.List(c.Request().Context(), req.ToFilterOpts())
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	data := make([]models.CostumeOut, 0, len(res))
	for _, v := range res {
		data = append(data, *v.ToResponse())
	}

	return commonhttp.RestSuccessResponseListWithTotalRows(c, data, len(data))
}

// getStats API costume stats
// @Summary Costume counts per age category and the number of active categories
// @Tags Costumes
// @Produce  json
// @Success 200 {object} models.CostumeStats
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/costumes/stats [get]
func (h *costumeHandler) getStats(c echo.Context) error {
	res, err := h.costumeSvc.GetStats(c.Request().Context())
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	return commonhttp.RestSuccessResponse(c, http.StatusOK, res)
}

// getCostume API get costume
// @Summary Get a costume with its characteristics
// @Tags Costumes
// @Produce  json
// @Param id path int true "costume id"
// @Success 200 {object} models.CostumeOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Router /v1/costumes/{id} [get]
func (h *costumeHandler) getCostume(c echo.Context) error {
	id, err := commonhttp.ParamID(c, "id")
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	res, err := h.costumeSvc.Get(c.Request().Context(), id)
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	return commonhttp.RestSuccessResponse(c, http.StatusOK, res.ToResponse())
}

// createCostume API create costume
// @Summary Create a costume
// @Tags Costumes
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string false "admin secret"
// @Param X-Idempotency-Key header string false "replays the first response for a repeated key"
// @Param body body models.CreateCostumeRequest true "body"
// @Success 201 {object} models.CostumeOut
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorResponseModel
// @Router /v1/costumes [post]
func (h *costumeHandler) createCostume(c echo.Context) error {
	req := new(models.CreateCostumeRequest)
	if err := c.Bind(req); err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	res, err := h.costumeSvc.Create(c.Request().Context(), req.ToCreateCostumeIn())
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	return commonhttp.RestSuccessResponse(c, http.StatusCreated, res.ToResponse())
}

// updateCostume API update costume
// @Summary Update the supplied fields of a costume
// @Description A characteristics object replaces every stored characteristic.
// @Tags Costumes
// @Accept  json
// @Produce  json
// @Param X-Secret-Key header string false "admin secret"
// @Param id path int true "costume id"
// @Param body body models.UpdateCostumeRequest true "body"
// @Success 200 {object} models.CostumeOut
// @Failure 400 {object} http.RestErrorValidationResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Router /v1/costumes/{id} [put]
func (h *costumeHandler) updateCostume(c echo.Context) error {
	id, err := commonhttp.ParamID(c, "id")
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	req := new(models.UpdateCostumeRequest)
	if err := c.Bind(req); err != nil {
		return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
	}

	res, err := h.costumeSvc.Update(c.Request().Context(), id, req.ToUpdateCostumeIn())
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	return commonhttp.RestSuccessResponse(c, http.StatusOK, res.ToResponse())
}

// deleteCostume API delete costume
// @Summary Delete a costume and its characteristics
// @Tags Costumes
// @Produce  json
// @Param X-Secret-Key header string false "admin secret"
// @Param id path int true "costume id"
// @Success 200 {object} http.RestSuccessDeleteResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Router /v1/costumes/{id} [delete]
func (h *costumeHandler) deleteCostume(c echo.Context) error {
	id, err := commonhttp.ParamID(c, "id")
	if err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	if err := h.costumeSvc.Delete(c.Request().Context(), id); err != nil {
		return commonhttp.HandleServiceError(c, err)
	}

	return commonhttp.RestSuccessDeleteResponse(c)
}
