package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/LenerGonzalez/Posys-sub003/internal/dto"
	"github.com/LenerGonzalez/Posys-sub003/internal/model"
	"github.com/LenerGonzalez/Posys-sub003/internal/money"
	"github.com/LenerGonzalez/Posys-sub003/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Measurement-unit aliases. Comparison is case-insensitive on the trimmed
// unit; anything outside both sets counts in neither bucket.
var (
	aliasLibras = map[string]bool{
		"lb": true, "lbs": true, "libra": true, "libras": true,
	}
	aliasUnidades = map[string]bool{
		"unidad": true, "unidades": true, "ud": true, "uds": true,
		"pieza": true, "piezas": true,
	}
)

// FilaVenta is one expanded sales line: either a legacy flattened sale or a
// line item carrying its parent's date and settlement type.
type FilaVenta struct {
	Fecha    string
	Producto string
	Cantidad decimal.Decimal
	Unidad   string
	Monto    decimal.Decimal
	TipoPago string
}

type KPIService interface {
	// PorRango aggregates the KPIs for the inclusive [desde, hasta] range of
	// ISO calendar dates. Failures are logged and degrade to zeros — the rest
	// of the screen keeps working.
	PorRango(ctx context.Context, desde, hasta string) dto.KPIResponse
}

type kpiService struct {
	ventas   repository.VentaRepository
	cartera  repository.CarteraRepository
	rdb      *redis.Client
	cacheTTL time.Duration
}

// NewKPIService builds the aggregation service. rdb may be nil, in which case
// every call recomputes.
func NewKPIService(ventas repository.VentaRepository, cartera repository.CarteraRepository, rdb *redis.Client, cacheTTL time.Duration) KPIService {
	return &kpiService{ventas: ventas, cartera: cartera, rdb: rdb, cacheTTL: cacheTTL}
}

func (s *kpiService) PorRango(ctx context.Context, desde, hasta string) dto.KPIResponse {
	cacheKey := fmt.Sprintf("kpi:%s:%s", desde, hasta)

	// Cache keys are per-range, so a slow computation for one range can never
	// overwrite the entry for another.
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached dto.KPIResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached
			}
		}
	}

	ventas, err := s.ventas.ListByRango(ctx, desde, hasta)
	if err != nil {
		log.Error().Err(err).Str("desde", desde).Str("hasta", hasta).Msg("kpi: fetch ventas failed")
		return zeroKPI(desde, hasta)
	}
	movs, err := s.cartera.ListMovimientos(ctx)
	if err != nil {
		log.Error().Err(err).Str("desde", desde).Str("hasta", hasta).Msg("kpi: fetch movimientos failed")
		return zeroKPI(desde, hasta)
	}

	resp := Aggregate(desde, hasta, ExpandirVentas(ventas), movs)

	if s.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, raw, s.cacheTTL).Err(); err != nil {
				log.Debug().Err(err).Str("key", cacheKey).Msg("kpi: cache write failed")
			}
		}
	}
	return resp
}

// ExpandirVentas flattens every Venta into synthetic rows. A document with
// line items yields one row per item, each inheriting the parent's fecha and
// tipo_pago; a legacy flattened document yields a single row.
func ExpandirVentas(ventas []model.Venta) []FilaVenta {
	var filas []FilaVenta
	for _, v := range ventas {
		tipo := normalizarTipoPago(v.TipoPago)
		if len(v.Items) > 0 {
			for _, it := range v.Items {
				filas = append(filas, FilaVenta{
					Fecha:    v.Fecha,
					Producto: it.Producto,
					Cantidad: it.Cantidad,
					Unidad:   it.Unidad,
					Monto:    montoLinea(it.PrecioUnitario, it.Cantidad, it.Descuento, it.Total),
					TipoPago: tipo,
				})
			}
			continue
		}
		filas = append(filas, FilaVenta{
			Fecha:    v.Fecha,
			Producto: v.Producto,
			Cantidad: v.Cantidad,
			Unidad:   v.Unidad,
			Monto:    montoLinea(v.PrecioUnitario, v.Cantidad, v.Descuento, v.Total),
			TipoPago: tipo,
		})
	}
	return filas
}

// Aggregate is the single pure aggregation over a range and the two source
// collections. Every KPI consumer calls this with its own range.
func Aggregate(desde, hasta string, filas []FilaVenta, movs []model.MovimientoCartera) dto.KPIResponse {
	ventasCash := decimal.Zero
	lbsCash := decimal.Zero
	unidadesCash := decimal.Zero
	lbsCredito := decimal.Zero
	unidadesCredito := decimal.Zero

	for _, f := range filas {
		if !fechaEnRango(f.Fecha, desde, hasta) {
			continue
		}
		unidad := strings.ToLower(strings.TrimSpace(f.Unidad))
		switch f.TipoPago {
		case model.TipoPagoCredito:
			if aliasLibras[unidad] {
				lbsCredito = lbsCredito.Add(f.Cantidad)
			} else if aliasUnidades[unidad] {
				unidadesCredito = unidadesCredito.Add(f.Cantidad)
			}
		default: // CONTADO
			ventasCash = ventasCash.Add(f.Monto)
			if aliasLibras[unidad] {
				lbsCash = lbsCash.Add(f.Cantidad)
			} else if aliasUnidades[unidad] {
				unidadesCash = unidadesCash.Add(f.Cantidad)
			}
		}
	}

	abonos := decimal.Zero
	for _, m := range movs {
		if m.Tipo != model.TipoAbono {
			continue
		}
		if !fechaEnRango(m.FechaResuelta(), desde, hasta) {
			continue
		}
		abonos = abonos.Add(m.Monto.Abs())
	}

	return dto.KPIResponse{
		RangoDesde:      desde,
		RangoHasta:      hasta,
		VentasCash:      money.Round2(ventasCash),
		Abonos:          money.Round2(abonos),
		Recaudado:       money.Round2(ventasCash.Add(abonos)),
		LbsCash:         money.Round3(lbsCash),
		UnidadesCash:    money.Round3(unidadesCash),
		LbsCredito:      money.Round3(lbsCredito),
		UnidadesCredito: money.Round3(unidadesCredito),
	}
}

// montoLinea computes a line's amount: the explicit final total wins when
// present, otherwise max(0, precio * cantidad - descuento).
func montoLinea(precio, cantidad, descuento decimal.Decimal, total *decimal.Decimal) decimal.Decimal {
	if total != nil {
		return *total
	}
	m := precio.Mul(cantidad).Sub(descuento)
	if m.IsNegative() {
		return decimal.Zero
	}
	return m
}

func normalizarTipoPago(t string) string {
	t = strings.ToUpper(strings.TrimSpace(t))
	if t == "" {
		return model.TipoPagoContado
	}
	return t
}

// fechaEnRango compares ISO dates lexicographically — valid because the
// format is fixed-width year-month-day.
func fechaEnRango(fecha, desde, hasta string) bool {
	return fecha >= desde && fecha <= hasta
}

func zeroKPI(desde, hasta string) dto.KPIResponse {
	return dto.KPIResponse{
		RangoDesde:      desde,
		RangoHasta:      hasta,
		VentasCash:      decimal.Zero,
		Abonos:          decimal.Zero,
		Recaudado:       decimal.Zero,
		LbsCash:         decimal.Zero,
		UnidadesCash:    decimal.Zero,
		LbsCredito:      decimal.Zero,
		UnidadesCredito: decimal.Zero,
	}
}
