package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/sales-dashboard/backend/internal/application/uistate"
	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
	"github.com/sales-dashboard/backend/internal/domain/valueobject"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/view"
)

// DashboardController serves the dashboard page, its SSE stream and the criteria actions.
type DashboardController struct {
	store            *uistate.Store
	dataset          *dashboard.Dataset
	getViewUseCase   *dashboard.GetViewUseCase
	getDetailUseCase *dashboard.GetSaleDetailUseCase
	renderer         *view.Renderer
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	store *uistate.Store,
	dataset *dashboard.Dataset,
	getViewUseCase *dashboard.GetViewUseCase,
	getDetailUseCase *dashboard.GetSaleDetailUseCase,
	renderer *view.Renderer,
) *DashboardController {
	return &DashboardController{
		store:            store,
		dataset:          dataset,
		getViewUseCase:   getViewUseCase,
		getDetailUseCase: getDetailUseCase,
		renderer:         renderer,
	}
}

// Page handles GET / requests.
func (c *DashboardController) Page(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "dashboard", c.model())
}

// Stream handles GET /dashboard/stream requests.
// It patches the fragments on connect and again after every criteria or dataset change.
func (c *DashboardController) Stream(ctx *gin.Context) {
	sse := datastar.NewSSE(ctx.Writer, ctx.Request)

	updates := make(chan struct{}, 1)
	trigger := func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	}

	unsubscribeState := c.store.Subscribe(func(valueobject.Criteria) { trigger() })
	defer unsubscribeState()
	unsubscribeData := c.dataset.Subscribe(trigger)
	defer unsubscribeData()

	trigger()
	for {
		select {
		case <-ctx.Request.Context().Done():
			return
		case <-updates:
			if err := c.push(sse); err != nil {
				slog.Debug("Dashboard stream closed", "error", err)
				return
			}
		}
	}
}

// UpdateCriteria handles POST /dashboard/criteria requests with a partial criteria.
func (c *DashboardController) UpdateCriteria(ctx *gin.Context) {
	var patch valueobject.CriteriaPatch
	if err := datastar.ReadSignals(ctx.Request, &patch); err != nil {
		code := domainerror.ErrCodeInvalidCriteriaValue
		if errors.Is(err, domainerror.ErrInvalidDateFormat) {
			code = domainerror.ErrCodeInvalidDateFormat
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid criteria",
			Code:    string(code),
			Details: err.Error(),
		})
		return
	}

	if err := c.store.Apply(ctx.Request.Context(), patch); err != nil {
		c.handleDashboardError(ctx, err)
		return
	}
	c.respondCriteria(ctx)
}

// ResetCriteria handles POST /dashboard/criteria/reset requests.
func (c *DashboardController) ResetCriteria(ctx *gin.Context) {
	c.store.Reset(ctx.Request.Context())
	c.respondCriteria(ctx)
}

// Sort handles POST /dashboard/sort/:field requests the way a header click does.
func (c *DashboardController) Sort(ctx *gin.Context) {
	field := valueobject.SortField(ctx.Param("field"))
	if err := c.store.ToggleSort(ctx.Request.Context(), field); err != nil {
		c.handleDashboardError(ctx, err)
		return
	}
	c.respondCriteria(ctx)
}

// SelectChart handles POST /dashboard/chart/:kind requests.
func (c *DashboardController) SelectChart(ctx *gin.Context) {
	kind := valueobject.ChartKind(ctx.Param("kind"))
	if err := c.store.SetChartSelection(ctx.Request.Context(), kind); err != nil {
		c.handleDashboardError(ctx, err)
		return
	}
	c.respondCriteria(ctx)
}

// TogglePanel handles POST /dashboard/panel/toggle requests.
func (c *DashboardController) TogglePanel(ctx *gin.Context) {
	c.store.TogglePanel(ctx.Request.Context())
	c.respondCriteria(ctx)
}

// Detail handles GET /sales/:id requests.
func (c *DashboardController) Detail(ctx *gin.Context) {
	id, err := strconv.ParseUint(strings.TrimSpace(ctx.Param("id")), 10, 64)
	if err != nil || id == 0 {
		ctx.HTML(http.StatusBadRequest, "detail", view.NewDetailStateModel(view.DetailInvalidID))
		return
	}

	output, err := c.getDetailUseCase.Execute(ctx.Request.Context(), dashboard.GetSaleDetailInput{ID: uint(id)})
	if err != nil {
		var saleErr *domainerror.SaleError
		if errors.As(err, &saleErr) && saleErr.Code == domainerror.ErrCodeSaleNotFound {
			ctx.HTML(http.StatusNotFound, "detail", view.NewDetailStateModel(view.DetailNotFound))
			return
		}
		slog.Error("Failed to load sale detail", "id", id, "error", err)
		ctx.HTML(http.StatusBadGateway, "detail", view.NewDetailStateModel(view.DetailUnavailable))
		return
	}

	ctx.HTML(http.StatusOK, "detail", view.NewDetailModel(output.Sale))
}

func (c *DashboardController) model() view.DashboardModel {
	output := c.getViewUseCase.Execute(dashboard.GetViewInput{Criteria: c.store.Criteria()})
	return view.NewDashboardModel(output)
}

// push renders the live fragments and the current signals to one client.
func (c *DashboardController) push(sse *datastar.ServerSentEventGenerator) error {
	model := c.model()

	for _, name := range []string{view.FragmentSummary, view.FragmentChart, view.FragmentTable} {
		html, err := c.renderer.Render(name, model)
		if err != nil {
			return err
		}
		if err := sse.PatchElements(html); err != nil {
			return err
		}
	}

	return sse.PatchSignals([]byte(model.Signals))
}

// respondCriteria answers an action with the resulting signals.
func (c *DashboardController) respondCriteria(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, view.SignalsMap(c.store.Criteria()))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dshErr *domainerror.DashboardError
	if errors.As(err, &dshErr) {
		ctx.JSON(c.getStatusCodeForDashboardError(dshErr.Code), dto.ErrorResponse{
			Error: dshErr.Message,
			Code:  string(dshErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCriteriaValue, domainerror.ErrCodeInvalidDateFormat:
		return http.StatusBadRequest
	case domainerror.ErrCodeRecordServiceUnavailable,
		domainerror.ErrCodeUnexpectedStatus,
		domainerror.ErrCodeMalformedResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

