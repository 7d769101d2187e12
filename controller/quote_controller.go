package controller

import (
	"github.com/cblythe8/Stock-Crypto-Tracker/model"
	"github.com/cblythe8/Stock-Crypto-Tracker/service"

	"github.com/gin-gonic/gin"
)

type QuoteController struct {
	quoteService service.QuoteService
}

func NewQuoteController(qs service.QuoteService) *QuoteController {
	return &QuoteController{
		quoteService: qs,
	}
}

// RegisterRoutes sets up the route group for price retrieval.
func (ctrl *QuoteController) RegisterRoutes(router *gin.RouterGroup) {
	quoteGroup := router.Group("/quotes")
	{
		quoteGroup.GET("/current", ctrl.GetCurrentPrice)
		quoteGroup.GET("/history", ctrl.GetHistory)
	}
}

// GetCurrentPrice handles latest-price requests.
// @Summary      Get Current Price
// @Description  Fetches the latest price for a stock or crypto symbol from the market data provider.
// @Tags         Quotes
// @Produce      json
// @Param        symbol  query     string  true  "Symbol (e.g. AAPL, BTC-USD)"
// @Success      200     {object}  model.Response{data=model.Quote}
// @Failure      400     {object}  model.Response
// @Failure      404     {object}  model.Response
// @Failure      502     {object}  model.Response
// @Router       /quotes/current [get]
func (ctrl *QuoteController) GetCurrentPrice(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		handleBadRequest(c, "Symbol parameter is required")
		return
	}

	quote, err := ctrl.quoteService.GetCurrentPrice(c.Request.Context(), symbol)
	if err != nil {
		handleError(c, "Failed to get current price", err)
		return
	}

	handleSuccess(c, "Fetch Success", quote)
}

// historyPayload bundles a series with its headline numbers.
type historyPayload struct {
	Series  *model.HistoricalSeries `json:"series"`
	Summary *model.SeriesSummary    `json:"summary,omitempty"`
}

// GetHistory handles historical data requests.
// @Summary      Get Historical Prices
// @Description  Fetches daily closing prices over a named range (1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max).
// @Tags         Quotes
// @Produce      json
// @Param        symbol  query     string  true   "Symbol (e.g. AAPL, BTC-USD)"
// @Param        range   query     string  false  "Time range, defaults to 1mo"
// @Success      200     {object}  model.Response{data=historyPayload}
// @Failure      400     {object}  model.Response
// @Failure      404     {object}  model.Response
// @Failure      502     {object}  model.Response
// @Router       /quotes/history [get]
func (ctrl *QuoteController) GetHistory(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		handleBadRequest(c, "Symbol parameter is required")
		return
	}

	rng, ok := model.ParseTimeRange(c.Query("range"))
	if !ok {
		handleBadRequest(c, "Unknown range: "+c.Query("range"))
		return
	}

	series, err := ctrl.quoteService.GetHistory(c.Request.Context(), symbol, rng)
	if err != nil {
		handleError(c, "Failed to get history", err)
		return
	}

	handleSuccess(c, "Fetch Success", historyPayload{
		Series:  series,
		Summary: series.Summary(),
	})
}
