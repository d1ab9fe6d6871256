// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sales-dashboard/backend/internal/application/usecase/sale"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/dto"
)

// SaleController handles sale endpoints.
type SaleController struct {
	listUseCase   *sale.ListSalesUseCase
	createUseCase *sale.CreateSaleUseCase
	getUseCase    *sale.GetSaleUseCase
	updateUseCase *sale.UpdateSaleUseCase
	deleteUseCase *sale.DeleteSaleUseCase
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	listUseCase *sale.ListSalesUseCase,
	createUseCase *sale.CreateSaleUseCase,
	getUseCase *sale.GetSaleUseCase,
	updateUseCase *sale.UpdateSaleUseCase,
	deleteUseCase *sale.DeleteSaleUseCase,
) *SaleController {
	return &SaleController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /sales requests.
func (c *SaleController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output.Sales))
}

// Create handles POST /sales requests.
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.CreateSaleRequest
	bindErr := ctx.ShouldBindJSON(&req)
	input := sale.CreateSaleInput{
		Product:  req.Product,
		Category: req.Category,
		Amount:   req.Amount,
		Region:   req.Region,
		Date:     req.Date,
	}
	if bindErr != nil {
		c.handleBindingError(ctx, bindErr, sale.ValidateCreate(input))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// Get handles GET /sales/:id requests.
func (c *SaleController) Get(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), sale.GetSaleInput{ID: id})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// Update handles PUT and PATCH /sales/:id requests. Both apply a partial update.
func (c *SaleController) Update(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSaleRequest
	bindErr := ctx.ShouldBindJSON(&req)
	input := sale.UpdateSaleInput{
		ID:        id,
		Product:   req.Product,
		Category:  req.Category,
		Amount:    req.Amount,
		RegionSet: req.Region.Set,
		Region:    req.Region.Value,
		Date:      req.Date,
	}
	if bindErr != nil {
		c.handleBindingError(ctx, bindErr, sale.ValidateUpdate(input))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// Delete handles DELETE /sales/:id requests.
func (c *SaleController) Delete(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), sale.DeleteSaleInput{ID: id}); err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseID reads a positive integer id from the path, writing a 400 when it is not one.
func (c *SaleController) parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID format",
			Code:  string(domainerror.ErrCodeInvalidSaleID),
		})
		return 0, false
	}
	return uint(id), true
}

// handleBindingError answers a failed bind. Tag failures are reported together with
// the remaining field checks; anything else is a malformed body.
func (c *SaleController) handleBindingError(ctx *gin.Context, err error, checked []domainerror.FieldIssue) {
	bound, ok := dto.BindingIssues(err)
	if !ok {
		c.malformedBody(ctx, err)
		return
	}
	c.handleSaleError(ctx, domainerror.NewSaleValidationError(sale.MergeIssues(bound, checked)))
}

func (c *SaleController) malformedBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    string(domainerror.ErrCodeMalformedSaleBody),
		Details: err.Error(),
	})
}

// handleSaleError handles sale errors and returns appropriate HTTP responses.
func (c *SaleController) handleSaleError(ctx *gin.Context, err error) {
	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		ctx.JSON(c.getStatusCodeForSaleError(saleErr.Code), dto.ErrorResponse{
			Error:  saleErr.Message,
			Code:   string(saleErr.Code),
			Issues: dto.ToIssueResponses(saleErr.Issues),
		})
		return
	}

	_ = ctx.Error(err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSaleError maps sale error codes to HTTP status codes.
func (c *SaleController) getStatusCodeForSaleError(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeSaleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidSale,
		domainerror.ErrCodeInvalidSaleID,
		domainerror.ErrCodeMalformedSaleBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
