//go:build integration

package e2e

// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered:
//   - login → create arqueo → list → detail → delete
//   - validation blocks a save and writes nothing
//   - KPI aggregation over seeded ventas + movimientos
//   - xlsx export returns a spreadsheet attachment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LenerGonzalez/Posys-sub003/internal/config"
	"github.com/LenerGonzalez/Posys-sub003/internal/infra"
	"github.com/LenerGonzalez/Posys-sub003/internal/model"
	"github.com/LenerGonzalez/Posys-sub003/internal/router"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // contador JWT
	db     *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("posys_test"),
		tcPostgres.WithUsername("posys"),
		tcPostgres.WithPassword("posys"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		KPICacheTTL:        1,
		NombreNegocio:      "Posys Test",
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed a contador user
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Usuario{
		Username:     "contador@e2e.test",
		Nombre:       "Contador E2E",
		PasswordHash: string(hash),
		Rol:          model.RolContador,
		Roles:        []string{model.RolContador},
		Activo:       true,
	}).Error)

	r := router.New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "contador@e2e.test", "password": "secreto"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken, db: db}
}

func arqueoBody() map[string]any {
	return map[string]any{
		"contador_uid":    "uid-e2e",
		"contador_nombre": "Contador E2E",
		"entregado_por":   "Pedro",
		"recibido_por":    "Juana",
		"rango_desde":     "2026-08-01",
		"rango_hasta":     "2026-08-15",
		"ventas_cash":     "100,50",
		"abonos":          "20",
		"ingresos_extra":  "4.75",
		"debitos":         "10",
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_ArqueoLifecycle(t *testing.T) {
	env := setupTestEnv(t)

	// Create
	createResp := do(t, env.server, "POST", "/v1/arqueos", jsonBody(t, arqueoBody()), env.token)
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	var creado struct {
		ID             string `json:"id"`
		SubTotal       string `json:"sub_total"`
		TotalEntregado string `json:"total_entregado"`
	}
	decodeJSON(t, createResp, &creado)
	assert.Equal(t, "125.25", creado.SubTotal)
	assert.Equal(t, "115.25", creado.TotalEntregado)

	// List contains it
	listResp := do(t, env.server, "GET", "/v1/arqueos", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var lista []map[string]any
	decodeJSON(t, listResp, &lista)
	require.Len(t, lista, 1)

	// Detail
	detResp := do(t, env.server, "GET", "/v1/arqueos/"+creado.ID, nil, env.token)
	require.Equal(t, http.StatusOK, detResp.StatusCode)
	detResp.Body.Close()

	// Delete requires confirmation
	noConfirm := do(t, env.server, "DELETE", "/v1/arqueos/"+creado.ID, nil, env.token)
	require.Equal(t, http.StatusConflict, noConfirm.StatusCode)
	noConfirm.Body.Close()

	delResp := do(t, env.server, "DELETE", "/v1/arqueos/"+creado.ID+"?confirm=true", nil, env.token)
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)
	delResp.Body.Close()

	// Gone from the list
	listResp2 := do(t, env.server, "GET", "/v1/arqueos", nil, env.token)
	var lista2 []map[string]any
	decodeJSON(t, listResp2, &lista2)
	assert.Empty(t, lista2)
}

func TestE2E_ValidacionBloqueaGuardado(t *testing.T) {
	env := setupTestEnv(t)

	body := arqueoBody()
	body["rango_desde"] = "2026-08-20"
	body["rango_hasta"] = "2026-08-10"

	resp := do(t, env.server, "POST", "/v1/arqueos", jsonBody(t, body), env.token)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	listResp := do(t, env.server, "GET", "/v1/arqueos", nil, env.token)
	var lista []map[string]any
	decodeJSON(t, listResp, &lista)
	assert.Empty(t, lista, "nothing written on validation failure")
}

func TestE2E_KPIs(t *testing.T) {
	env := setupTestEnv(t)

	total50 := decimal.RequireFromString("50")
	total30 := decimal.RequireFromString("30")
	total25 := decimal.RequireFromString("25")
	require.NoError(t, env.db.Create(&model.Venta{
		Fecha: "2026-08-10", TipoPago: "CONTADO", Unidad: "lb",
		Cantidad: decimal.RequireFromString("10"), Total: &total50,
	}).Error)
	require.NoError(t, env.db.Create(&model.Venta{
		Fecha: "2026-08-11", TipoPago: "CONTADO", Unidad: "unidad",
		Cantidad: decimal.RequireFromString("3"), Total: &total30,
	}).Error)
	require.NoError(t, env.db.Create(&model.Venta{
		Fecha: "2026-08-12", TipoPago: "CREDITO", Unidad: "lb",
		Cantidad: decimal.RequireFromString("5"), Total: &total25,
	}).Error)
	fecha := "2026-08-12"
	require.NoError(t, env.db.Create(&model.MovimientoCartera{
		Tipo: model.TipoAbono, Monto: decimal.RequireFromString("20"), Fecha: &fecha,
	}).Error)

	resp := do(t, env.server, "GET", "/v1/kpi?desde=2026-08-01&hasta=2026-08-31", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var kpi struct {
		VentasCash   string `json:"ventas_cash"`
		Recaudado    string `json:"recaudado"`
		LbsCash      string `json:"lbs_cash"`
		UnidadesCash string `json:"unidades_cash"`
		LbsCredito   string `json:"lbs_credito"`
	}
	decodeJSON(t, resp, &kpi)
	assert.Equal(t, "80", kpi.VentasCash)
	assert.Equal(t, "100", kpi.Recaudado)
	assert.Equal(t, "10", kpi.LbsCash)
	assert.Equal(t, "3", kpi.UnidadesCash)
	assert.Equal(t, "5", kpi.LbsCredito)
}

func TestE2E_ExportXLSX(t *testing.T) {
	env := setupTestEnv(t)

	createResp := do(t, env.server, "POST", "/v1/arqueos", jsonBody(t, arqueoBody()), env.token)
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	createResp.Body.Close()

	resp := do(t, env.server, "GET", "/v1/arqueos/export", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Contains(t, resp.Header.Get("Content-Disposition"), "arqueos_")
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))

	buf := make([]byte, 4)
	_, err := resp.Body.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x50, 0x4B, 0x03, 0x04}, buf, "xlsx is a zip archive")
}
