package service

import (
	"context"
	"time"

	"github.com/LenerGonzalez/Posys-sub003/internal/dto"
	"github.com/LenerGonzalez/Posys-sub003/internal/model"
	"github.com/LenerGonzalez/Posys-sub003/internal/money"
	"github.com/LenerGonzalez/Posys-sub003/internal/repository"

	"github.com/google/uuid"
)

// Actor identifies who is performing a save, taken from the JWT claims.
type Actor struct {
	UID    string
	Nombre string
}

// ErrValidacion blocks a save and carries per-field messages for the client.
type ErrValidacion struct {
	Fields map[string]string
}

func (e *ErrValidacion) Error() string { return "error de validacion" }

type ArqueoService interface {
	Crear(ctx context.Context, actor Actor, req dto.ArqueoRequest) (*dto.ArqueoResponse, error)
	Listar(ctx context.Context, desde, hasta string) ([]dto.ArqueoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ArqueoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ArqueoRequest) (*dto.ArqueoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type arqueoService struct {
	repo repository.ArqueoRepository
}

func NewArqueoService(repo repository.ArqueoRepository) ArqueoService {
	return &arqueoService{repo: repo}
}

// ── Crear ─────────────────────────────────────────────────────────────────────

func (s *arqueoService) Crear(ctx context.Context, actor Actor, req dto.ArqueoRequest) (*dto.ArqueoResponse, error) {
	if err := validarArqueo(req); err != nil {
		return nil, err
	}

	a := &model.Arqueo{
		CreatedByUID:  actor.UID,
		CreatedByName: actor.Nombre,
	}
	aplicarRequest(a, req)

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	resp := toResponse(a)
	return &resp, nil
}

// ── Listar ────────────────────────────────────────────────────────────────────

// Listar returns arqueos newest first. desde/hasta are ISO calendar dates;
// when both are present the filter spans start-of-day desde through
// end-of-day hasta on created_at. Anything less than both clears the filter.
func (s *arqueoService) Listar(ctx context.Context, desde, hasta string) ([]dto.ArqueoResponse, error) {
	filter := dto.ArqueoFilter{}
	if d, h, ok := parseRangoDias(desde, hasta); ok {
		filter.Desde = &d
		filter.Hasta = &h
	}

	arqueos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ArqueoResponse, 0, len(arqueos))
	for i := range arqueos {
		out = append(out, toResponse(&arqueos[i]))
	}
	return out, nil
}

// ── Obtener / Actualizar / Eliminar ──────────────────────────────────────────

func (s *arqueoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ArqueoResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(a)
	return &resp, nil
}

// Actualizar is a full-record overwrite: every editable field is replaced and
// both totals are recomputed from the incoming inputs.
func (s *arqueoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ArqueoRequest) (*dto.ArqueoResponse, error) {
	if err := validarArqueo(req); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	aplicarRequest(a, req)

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	resp := toResponse(a)
	return &resp, nil
}

func (s *arqueoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// validarArqueo enforces the save preconditions: a selected contador, a
// non-empty receiver, and a well-ordered date range. EntregadoPor stays
// optional — see the note on the DTO field.
func validarArqueo(req dto.ArqueoRequest) error {
	fields := make(map[string]string)

	if req.ContadorUID == "" || req.ContadorName == "" {
		fields["contador"] = "Debe seleccionar un contador"
	}
	if req.RecibidoPor == "" {
		fields["recibido_por"] = "Indique quién recibe el efectivo"
	}

	desde, errD := time.Parse("2006-01-02", req.RangoDesde)
	hasta, errH := time.Parse("2006-01-02", req.RangoHasta)
	switch {
	case errD != nil || errH != nil:
		fields["rango"] = "Fechas del rango inválidas"
	case desde.After(hasta):
		fields["rango"] = "La fecha inicial no puede ser posterior a la final"
	}

	if len(fields) > 0 {
		return &ErrValidacion{Fields: fields}
	}
	return nil
}

// aplicarRequest copies the request onto the record, coercing every money
// input and recomputing both derived totals. Stored totals therefore always
// match the stored inputs — they can never be entered independently.
func aplicarRequest(a *model.Arqueo, req dto.ArqueoRequest) {
	a.ContadorUID = req.ContadorUID
	a.ContadorName = req.ContadorName
	a.EntregadoPor = req.EntregadoPor
	a.RecibidoPor = req.RecibidoPor
	a.RangoDesde = req.RangoDesde
	a.RangoHasta = req.RangoHasta
	a.Comentario = req.Comentario

	a.VentasCash = money.Round2(money.Parse(req.VentasCash))
	a.Abonos = money.Round2(money.Parse(req.Abonos))
	a.IngresosExtra = money.Round2(money.Parse(req.IngresosExtra))
	a.Debitos = money.Round2(money.Parse(req.Debitos))

	a.SubTotal = money.Round2(a.VentasCash.Add(a.Abonos).Add(a.IngresosExtra))
	a.TotalEntregado = money.Round2(a.SubTotal.Sub(a.Debitos))
}

// parseRangoDias converts two ISO dates into [start of desde, end of hasta]
// timestamps. Returns ok=false unless both parse — a half-set filter behaves
// as no filter, same as clearing it.
func parseRangoDias(desde, hasta string) (time.Time, time.Time, bool) {
	d, errD := time.ParseInLocation("2006-01-02", desde, time.Local)
	h, errH := time.ParseInLocation("2006-01-02", hasta, time.Local)
	if errD != nil || errH != nil {
		return time.Time{}, time.Time{}, false
	}
	return d, h.Add(24*time.Hour - time.Nanosecond), true
}

func toResponse(a *model.Arqueo) dto.ArqueoResponse {
	return dto.ArqueoResponse{
		ID:             a.ID.String(),
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		CreatedByUID:   a.CreatedByUID,
		CreatedByName:  a.CreatedByName,
		ContadorUID:    a.ContadorUID,
		ContadorName:   a.ContadorName,
		EntregadoPor:   a.EntregadoPor,
		RecibidoPor:    a.RecibidoPor,
		RangoDesde:     a.RangoDesde,
		RangoHasta:     a.RangoHasta,
		VentasCash:     money.Round2(a.VentasCash),
		Abonos:         money.Round2(a.Abonos),
		IngresosExtra:  money.Round2(a.IngresosExtra),
		Debitos:        money.Round2(a.Debitos),
		SubTotal:       money.Round2(a.SubTotal),
		TotalEntregado: money.Round2(a.TotalEntregado),
		Comentario:     a.Comentario,
	}
}
