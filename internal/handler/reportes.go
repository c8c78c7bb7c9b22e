package handler

import (
	"net/http"

	"github.com/21edclique/preciosMayorista/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Resumen godoc
// @Summary Resumen de precios por producto
// @Tags reportes
// @Produce json
// @Success 200 {array} dto.ResumenProducto
// @Router /v1/reportes/resumen [get]
func (h *ReportesHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) TopVariaciones(c *gin.Context) {
	resp, err := h.svc.TopVariaciones(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Pizarra is the public market board: no token required, cached in Redis.
func (h *ReportesHandler) Pizarra(c *gin.Context) {
	resp, err := h.svc.Pizarra(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
