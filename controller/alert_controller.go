package controller

import (
	"github.com/cblythe8/Stock-Crypto-Tracker/model"
	"github.com/cblythe8/Stock-Crypto-Tracker/service"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	alertService service.AlertService
}

func NewAlertController(as service.AlertService) *AlertController {
	return &AlertController{
		alertService: as,
	}
}

// RegisterRoutes sets up the route group for alert evaluation.
func (ctrl *AlertController) RegisterRoutes(router *gin.RouterGroup) {
	alertGroup := router.Group("/alerts")
	{
		alertGroup.POST("/check", ctrl.CheckAlerts)
	}
}

// CheckAlerts evaluates the submitted alert rules against live prices.
// @Summary      Check Price Alerts
// @Description  Returns the alerts currently triggered, in input order. Lookups that fail are reported separately instead of aborting the evaluation.
// @Tags         Alerts
// @Accept       json
// @Produce      json
// @Param        request  body      model.CheckAlertsRequest  true  "Alerts to check"
// @Success      200      {object}  model.Response{data=model.AlertReport}
// @Failure      400      {object}  model.Response
// @Router       /alerts/check [post]
func (ctrl *AlertController) CheckAlerts(c *gin.Context) {
	var req model.CheckAlertsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	report, err := ctrl.alertService.CheckAlerts(c.Request.Context(), req.Alerts)
	if err != nil {
		handleError(c, "Failed to check alerts", err)
		return
	}

	handleSuccess(c, "Check Success", report)
}
