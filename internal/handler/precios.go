package handler

import (
	"net/http"

	"github.com/21edclique/preciosMayorista/internal/apierror"
	"github.com/21edclique/preciosMayorista/internal/dto"
	"github.com/21edclique/preciosMayorista/internal/service"

	"github.com/gin-gonic/gin"
)

type PreciosHandler struct {
	svc      service.PrecioService
	reportes service.ReporteService
}

func NewPreciosHandler(svc service.PrecioService, reportes service.ReporteService) *PreciosHandler {
	return &PreciosHandler{svc: svc, reportes: reportes}
}

// Listar godoc
// @Summary Lista los precios registrados
// @Tags precios
// @Produce json
// @Param fecha query string false "Filtrar por día (YYYY-MM-DD)"
// @Success 200 {array} dto.PrecioResponse
// @Router /v1/precios [get]
func (h *PreciosHandler) Listar(c *gin.Context) {
	var filter dto.PrecioFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("filtro invalido"))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("fecha invalida, formato esperado YYYY-MM-DD"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PreciosHandler) Crear(c *gin.Context) {
	var req dto.CrearPrecioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.reportes.InvalidarPizarra(c.Request.Context())
	c.JSON(http.StatusCreated, resp)
}

func (h *PreciosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarPrecioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.reportes.InvalidarPizarra(c.Request.Context())
	c.JSON(http.StatusOK, resp)
}

func (h *PreciosHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	h.reportes.InvalidarPizarra(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Precio eliminado"})
}
