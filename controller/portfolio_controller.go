package controller

import (
	"github.com/cblythe8/Stock-Crypto-Tracker/model"
	"github.com/cblythe8/Stock-Crypto-Tracker/service"

	"github.com/gin-gonic/gin"
)

type PortfolioController struct {
	portfolioService service.PortfolioService
}

func NewPortfolioController(ps service.PortfolioService) *PortfolioController {
	return &PortfolioController{
		portfolioService: ps,
	}
}

// RegisterRoutes sets up the route group for portfolio valuation.
func (ctrl *PortfolioController) RegisterRoutes(router *gin.RouterGroup) {
	portfolioGroup := router.Group("/portfolio")
	{
		portfolioGroup.POST("/valuate", ctrl.Valuate)
	}
}

// Valuate values the submitted holdings at current prices.
// @Summary      Valuate Portfolio
// @Description  Computes per-holding and total value for the submitted holdings. Any failed lookup fails the whole valuation.
// @Tags         Portfolio
// @Accept       json
// @Produce      json
// @Param        request  body      model.ValuateRequest  true  "Holdings to value"
// @Success      200      {object}  model.Response{data=model.PortfolioReport}
// @Failure      400      {object}  model.Response
// @Failure      404      {object}  model.Response
// @Failure      502      {object}  model.Response
// @Router       /portfolio/valuate [post]
func (ctrl *PortfolioController) Valuate(c *gin.Context) {
	var req model.ValuateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	report, err := ctrl.portfolioService.Valuate(c.Request.Context(), req.Holdings)
	if err != nil {
		handleError(c, "Failed to valuate portfolio", err)
		return
	}

	handleSuccess(c, "Valuation Success", report)
}
