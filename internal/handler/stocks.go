package handler

import (
	"net/http"

	"pharmastock/internal/dto"
	"pharmastock/internal/service"

	"github.com/gin-gonic/gin"
)

type StocksHandler struct{ svc service.StockService }

func NewStocksHandler(svc service.StockService) *StocksHandler { return &StocksHandler{svc: svc} }

// Create godoc
// @Summary      Add a stock lot
// @Description  The drug is referenced by drug_id, or by a name fragment plus unit_type.
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        body body     dto.CreateStockRequest true "lot"
// @Success      201  {object} dto.Envelope{data=dto.StockResponse}
// @Failure      400  {object} apierror.ValidationError
// @Failure      404  {object} apierror.APIError
// @Router       /stocks [post]
func (h *StocksHandler) Create(c *gin.Context) {
	var req dto.CreateStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	lot, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("stock created", lot))
}

// Get godoc
// @Summary      Get a stock lot
// @Tags         stocks
// @Produce      json
// @Param        stock_id path     string true "lot UUID"
// @Success      200      {object} dto.Envelope{data=dto.StockResponse}
// @Failure      400      {object} apierror.APIError
// @Failure      404      {object} apierror.APIError
// @Router       /stocks/{stock_id} [get]
func (h *StocksHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "stock_id")
	if !ok {
		return
	}
	lot, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("stock", lot))
}

// Sell godoc
// @Summary      Record a sale
// @Description  Subtracts quantity_sold from the lot. Fails with 400 when the lot holds less.
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        body body     dto.SellStockRequest true "sale"
// @Success      200  {object} dto.Envelope{data=dto.StockResponse}
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /stocks/update [patch]
func (h *StocksHandler) Sell(c *gin.Context) {
	var req dto.SellStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	lot, err := h.svc.Sell(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("stock updated", lot))
}

// SetAmount godoc
// @Summary      Correct a lot amount
// @Description  Overwrites the amount. Without stock_id the drug's oldest lot is used.
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        body body     dto.SetStockAmountRequest true "new amount"
// @Success      200  {object} dto.Envelope{data=dto.StockResponse}
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /stocks [patch]
func (h *StocksHandler) SetAmount(c *gin.Context) {
	var req dto.SetStockAmountRequest
	if !bindAndValidate(c, &req) {
		return
	}
	lot, err := h.svc.SetAmount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("stock amount set", lot))
}

// Delete godoc
// @Summary      Delete a stock lot
// @Tags         stocks
// @Produce      json
// @Param        stock_id path     string true "lot UUID"
// @Success      200      {object} dto.Envelope
// @Failure      400      {object} apierror.APIError
// @Failure      404      {object} apierror.APIError
// @Router       /stocks/{stock_id} [delete]
func (h *StocksHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "stock_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("stock deleted", nil))
}
