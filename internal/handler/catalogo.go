package handler

import (
	"net/http"

	"github.com/21edclique/preciosMayorista/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogoHandler serves the fixed market layout lookups the bitácora form
// needs: naves and cámaras.
type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

func (h *CatalogoHandler) ListarNaves(c *gin.Context) {
	resp, err := h.svc.ListarNaves(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) ListarCamaras(c *gin.Context) {
	resp, err := h.svc.ListarCamaras(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
