package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sales-insight-backend/internal/dto"
	"sales-insight-backend/internal/model"
	"sales-insight-backend/internal/service"
)

type SalesController struct {
	salesQueryService service.SalesQueryService
}

func NewSalesController(salesQueryService service.SalesQueryService) *SalesController {
	return &SalesController{
		salesQueryService: salesQueryService,
	}
}

func RegisterSalesRoutes(router *gin.Engine, controller *SalesController) {
	api := router.Group("/api")
	{
		api.GET("/data", controller.GetData)
		api.GET("/sales-reps", controller.GetSalesReps)
		api.GET("/summary", controller.GetSummary)
	}
	router.GET("/health", controller.GetHealth)
}

// GetData godoc
// @Summary      Get the whole sales document
// @Description  Returns the sales data file exactly as it was loaded at startup, including fields the service does not interpret.
// @Tags         sales
// @Produce      json
// @Success      200 {object} object "The loaded document"
// @Router       /api/data [get]
func (c *SalesController) GetData(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.salesQueryService.GetDocument())
}

// GetSalesReps godoc
// @Summary      List sales representatives
// @Description  Returns the salesReps array of the loaded document in file order. Empty when the document has none.
// @Tags         sales
// @Produce      json
// @Success      200 {object} dto.SalesRepsResponse
// @Router       /api/sales-reps [get]
func (c *SalesController) GetSalesReps(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SalesRepsResponse{SalesReps: c.salesQueryService.GetSalesReps()})
}

// GetSummary godoc
// @Summary      Get aggregate sales statistics
// @Description  Totals, status counts, regions and the top performer, computed from the loaded data on every call.
// @Tags         sales
// @Produce      json
// @Success      200 {object} dto.SalesSummaryResponse
// @Failure      422 {object} model.Response "No sales representatives to summarize"
// @Router       /api/summary [get]
func (c *SalesController) GetSummary(ctx *gin.Context) {
	summary, err := c.salesQueryService.GetSummary()
	if err != nil {
		if errors.Is(err, service.ErrEmptyInput) {
			ctx.JSON(http.StatusUnprocessableEntity, model.NewResponse(err.Error(), nil))
			return
		}
		log.Error().Err(err).Msg("Error computing sales summary")
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("Failed to compute sales summary", nil))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSalesSummaryResponse(summary))
}

// GetHealth godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} model.Response
// @Router       /health [get]
func (c *SalesController) GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, model.NewResponse("ok", c.salesQueryService.GetHealth()))
}
