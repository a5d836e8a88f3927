package handler

import (
	"net/http"

	"github.com/LenerGonzalez/Posys-sub003/internal/dto"
	"github.com/LenerGonzalez/Posys-sub003/internal/middleware"
	"github.com/LenerGonzalez/Posys-sub003/internal/model"
	"github.com/LenerGonzalez/Posys-sub003/internal/repository"

	"github.com/gin-gonic/gin"
)

// UsuariosHandler serves the read-only user directory. It talks to the
// repository directly — there is no business logic to interpose.
type UsuariosHandler struct{ repo repository.UsuarioRepository }

func NewUsuariosHandler(repo repository.UsuarioRepository) *UsuariosHandler {
	return &UsuariosHandler{repo: repo}
}

// Contadores godoc
// @Summary Lista los usuarios con rol contador para el selector de arqueo
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ContadoresResponse
// @Router /v1/usuarios/contadores [get]
func (h *UsuariosHandler) Contadores(c *gin.Context) {
	users, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	resp := dto.ContadoresResponse{
		Contadores: make([]dto.UsuarioResponse, 0),
		CallerID:   middleware.GetClaims(c).UserID,
	}
	for _, u := range users {
		if !u.TieneRol(model.RolContador) {
			continue
		}
		resp.Contadores = append(resp.Contadores, dto.UsuarioResponse{
			ID:       u.ID.String(),
			Username: u.Username,
			Nombre:   u.Nombre,
			Rol:      u.Rol,
			Roles:    u.Roles,
		})
	}
	c.JSON(http.StatusOK, resp)
}
