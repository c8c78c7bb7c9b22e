package handler

import (
	"net/http"

	"github.com/21edclique/preciosMayorista/internal/dto"
	"github.com/21edclique/preciosMayorista/internal/service"

	"github.com/gin-gonic/gin"
)

// PresentacionesHandler mirrors ProductosHandler: both catalogs share the
// same request shapes and lifecycle.
type PresentacionesHandler struct{ svc service.PresentacionService }

func NewPresentacionesHandler(svc service.PresentacionService) *PresentacionesHandler {
	return &PresentacionesHandler{svc: svc}
}

func (h *PresentacionesHandler) Listar(c *gin.Context) {
	soloActivos := c.Query("activos") == "true"
	resp, err := h.svc.Listar(c.Request.Context(), soloActivos)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PresentacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearCatalogoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PresentacionesHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarCatalogoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PresentacionesHandler) CambiarEstado(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.CambiarEstado(c.Request.Context(), id, *req.Activo); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Estado actualizado"})
}

func (h *PresentacionesHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Presentacion eliminada"})
}
