package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/LenerGonzalez/Posys-sub003/internal/apierror"
	"github.com/LenerGonzalez/Posys-sub003/internal/dto"
	"github.com/LenerGonzalez/Posys-sub003/internal/infra"
	"github.com/LenerGonzalez/Posys-sub003/internal/middleware"
	"github.com/LenerGonzalez/Posys-sub003/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ArqueosHandler struct {
	svc           service.ArqueoService
	nombreNegocio string
}

func NewArqueosHandler(svc service.ArqueoService, nombreNegocio string) *ArqueosHandler {
	return &ArqueosHandler{svc: svc, nombreNegocio: nombreNegocio}
}

// Listar godoc
// @Summary Lista los arqueos, opcionalmente filtrados por fecha de creacion
// @Tags arqueos
// @Produce json
// @Security BearerAuth
// @Param desde query string false "AAAA-MM-DD"
// @Param hasta query string false "AAAA-MM-DD"
// @Success 200 {array} dto.ArqueoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/arqueos [get]
func (h *ArqueosHandler) Listar(c *gin.Context) {
	desde, hasta, ok := rangoQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), desde, hasta)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary Registra un nuevo arqueo
// @Tags arqueos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ArqueoRequest true "Datos del arqueo"
// @Success 201 {object} dto.ArqueoResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/arqueos [post]
func (h *ArqueosHandler) Crear(c *gin.Context) {
	var req dto.ArqueoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	actor := service.Actor{UID: claims.UserID, Nombre: claims.Nombre}

	resp, err := h.svc.Crear(c.Request.Context(), actor, req)
	if err != nil {
		h.responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obtener godoc
// @Summary Obtiene un arqueo por id
// @Tags arqueos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del arqueo"
// @Success 200 {object} dto.ArqueoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/arqueos/{id} [get]
func (h *ArqueosHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Arqueo no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary Sobrescribe un arqueo completo (sin parcheo parcial)
// @Tags arqueos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del arqueo"
// @Param body body dto.ArqueoRequest true "Datos del arqueo"
// @Success 200 {object} dto.ArqueoResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/arqueos/{id} [put]
func (h *ArqueosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ArqueoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		h.responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary Elimina un arqueo (requiere confirmacion explicita)
// @Tags arqueos
// @Security BearerAuth
// @Param id path string true "ID del arqueo"
// @Param confirm query bool true "Debe ser true"
// @Success 204
// @Failure 409 {object} apierror.APIError
// @Router /v1/arqueos/{id} [delete]
func (h *ArqueosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusConflict, apierror.New("Confirme la eliminación con confirm=true"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Exportar godoc
// @Summary Exporta la lista filtrada de arqueos a xlsx
// @Tags arqueos
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param desde query string false "AAAA-MM-DD"
// @Param hasta query string false "AAAA-MM-DD"
// @Success 200
// @Router /v1/arqueos/export [get]
func (h *ArqueosHandler) Exportar(c *gin.Context) {
	desde, hasta, ok := rangoQuery(c)
	if !ok {
		return
	}
	arqueos, err := h.svc.Listar(c.Request.Context(), desde, hasta)
	if err != nil {
		c.Error(err)
		return
	}
	buf, err := infra.GenerarXLSX(arqueos)
	if err != nil {
		c.Error(err)
		return
	}

	nombre := "arqueos_" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// Comprobante godoc
// @Summary Descarga el comprobante PDF de un arqueo
// @Tags arqueos
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "ID del arqueo"
// @Success 200
// @Failure 404 {object} apierror.APIError
// @Router /v1/arqueos/{id}/comprobante [get]
func (h *ArqueosHandler) Comprobante(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	arqueo, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Arqueo no encontrado"))
		return
	}
	buf, err := infra.GenerarComprobantePDF(arqueo, h.nombreNegocio)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="arqueo_`+arqueo.RangoDesde+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// responderError maps a validation failure to 422 with the field map and
// anything else to 400, matching the save-blocking behavior of the screen.
func (h *ArqueosHandler) responderError(c *gin.Context, err error) {
	var ev *service.ErrValidacion
	if errors.As(err, &ev) {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(ev.Fields))
		return
	}
	c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
}
