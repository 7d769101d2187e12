package controller

import (
	"github.com/cblythe8/Stock-Crypto-Tracker/model"
	"github.com/cblythe8/Stock-Crypto-Tracker/service"

	"github.com/gin-gonic/gin"
)

type ChartController struct {
	chartService service.ChartService
}

func NewChartController(cs service.ChartService) *ChartController {
	return &ChartController{
		chartService: cs,
	}
}

// RegisterRoutes sets up the route group for chart data.
func (ctrl *ChartController) RegisterRoutes(router *gin.RouterGroup) {
	chartGroup := router.Group("/charts")
	{
		chartGroup.POST("/compare", ctrl.Compare)
	}
}

// Compare returns one series per symbol for side-by-side charting.
// @Summary      Compare Symbols
// @Description  Fetches historical series for several symbols over one range. With normalize set, each series becomes percent change from its first data point.
// @Tags         Charts
// @Accept       json
// @Produce      json
// @Param        request  body      model.CompareRequest  true  "Symbols, range and normalize flag"
// @Success      200      {object}  model.Response{data=[]model.HistoricalSeries}
// @Failure      400      {object}  model.Response
// @Failure      404      {object}  model.Response
// @Failure      502      {object}  model.Response
// @Router       /charts/compare [post]
func (ctrl *ChartController) Compare(c *gin.Context) {
	var req model.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	rng, ok := model.ParseTimeRange(req.Range)
	if !ok {
		handleBadRequest(c, "Unknown range: "+req.Range)
		return
	}

	series, err := ctrl.chartService.Compare(c.Request.Context(), req.Symbols, rng, req.Normalize)
	if err != nil {
		handleError(c, "Failed to build comparison", err)
		return
	}

	handleSuccess(c, "Fetch Success", series)
}
