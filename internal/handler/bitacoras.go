package handler

import (
	"net/http"

	"github.com/21edclique/preciosMayorista/internal/apierror"
	"github.com/21edclique/preciosMayorista/internal/dto"
	"github.com/21edclique/preciosMayorista/internal/infra"
	"github.com/21edclique/preciosMayorista/internal/middleware"
	"github.com/21edclique/preciosMayorista/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type BitacorasHandler struct {
	svc         service.BitacoraService
	storagePath string
}

func NewBitacorasHandler(svc service.BitacoraService, storagePath string) *BitacorasHandler {
	return &BitacorasHandler{svc: svc, storagePath: storagePath}
}

func (h *BitacorasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BitacorasHandler) Obtener(c *gin.Context) {
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

func (h *BitacorasHandler) Crear(c *gin.Context) {
	var req dto.CrearBitacoraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Crear(c.Request.Context(), claims, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BitacorasHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarBitacoraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Actualizar(c.Request.Context(), claims, id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BitacorasHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Eliminar(c.Request.Context(), claims, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registro eliminado"})
}

// Resolver marks the entry "Resuelto". Open to any authenticated user and
// idempotent, so the UI can offer the button without ownership checks.
func (h *BitacorasHandler) Resolver(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Resolver(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Informe renders the full log as a PDF and streams it back.
func (h *BitacorasHandler) Informe(c *gin.Context) {
	entries, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	path, err := infra.GenerateInformeBitacoraPDF(entries, h.storagePath)
	if err != nil {
		log.Error().Err(err).Msg("bitacoras: informe PDF generation failed")
		c.JSON(http.StatusInternalServerError, apierror.New("no se pudo generar el informe"))
		return
	}
	c.FileAttachment(path, "informe_bitacora.pdf")
}
