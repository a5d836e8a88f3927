package handler

import (
	"net/http"

	"github.com/LenerGonzalez/Posys-sub003/internal/apierror"
	"github.com/LenerGonzalez/Posys-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type KPIHandler struct{ svc service.KPIService }

func NewKPIHandler(svc service.KPIService) *KPIHandler { return &KPIHandler{svc: svc} }

// PorRango godoc
// @Summary KPIs informativos para un rango de fechas
// @Tags kpi
// @Produce json
// @Security BearerAuth
// @Param desde query string true "AAAA-MM-DD"
// @Param hasta query string true "AAAA-MM-DD"
// @Success 200 {object} dto.KPIResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/kpi [get]
func (h *KPIHandler) PorRango(c *gin.Context) {
	desde, hasta, ok := rangoQuery(c)
	if !ok {
		return
	}
	if desde == "" || hasta == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Indique desde y hasta"))
		return
	}
	// Aggregation failures degrade to zeros inside the service — the
	// response is always 200 for a well-formed range.
	c.JSON(http.StatusOK, h.svc.PorRango(c.Request.Context(), desde, hasta))
}
