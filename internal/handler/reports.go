package handler

import (
	"fmt"
	"net/http"
	"time"

	"pharmastock/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler { return &ReportsHandler{svc: svc} }

// StockPDF godoc
// @Summary      Stock report
// @Description  PDF listing every drug with its lots and value.
// @Tags         reports
// @Produce      application/pdf
// @Success      200 {file} binary
// @Failure      500 {object} apierror.APIError
// @Router       /reports/stock.pdf [get]
func (h *ReportsHandler) StockPDF(c *gin.Context) {
	pdf, err := h.svc.StockReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("stock-report-%s.pdf", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
