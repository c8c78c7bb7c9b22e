package handler

import (
	"net/http"

	"github.com/21edclique/preciosMayorista/internal/apierror"
	"github.com/21edclique/preciosMayorista/internal/dto"
	"github.com/21edclique/preciosMayorista/internal/service"

	"github.com/gin-gonic/gin"
)

type ExportesHandler struct{ svc service.ExporteService }

func NewExportesHandler(svc service.ExporteService) *ExportesHandler {
	return &ExportesHandler{svc: svc}
}

// Crear godoc
// @Summary Encola la generación de un reporte descargable
// @Tags exportes
// @Accept json
// @Produce json
// @Param body body dto.CrearExporteRequest true "Parámetros del reporte"
// @Success 202 {object} dto.ExporteResponse
// @Router /v1/exportes [post]
func (h *ExportesHandler) Crear(c *gin.Context) {
	var req dto.CrearExporteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

func (h *ExportesHandler) Obtener(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Descargar streams a finished artifact. 404 until the worker completes it.
func (h *ExportesHandler) Descargar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if resp.Estado != service.ExporteEstadoCompletado || resp.Archivo == "" {
		c.JSON(http.StatusNotFound, apierror.New("el reporte aun no esta disponible"))
		return
	}
	c.FileAttachment(resp.Archivo, "reporte_"+resp.Fecha+"."+resp.Formato)
}
