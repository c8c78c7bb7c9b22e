//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// These tests:
//   T-E2E-1: Daily price cycle (login → producto → presentación → precio → pizarra)
//   T-E2E-2: Bitácora edit window and idempotent resolve
//   T-E2E-3: Role enforcement (digitador cannot correct prices or delete entries)
//   T-E2E-4: Async export lifecycle (pendiente → procesando → completado → download)

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/21edclique/preciosMayorista/internal/config"
	"github.com/21edclique/preciosMayorista/internal/infra"
	"github.com/21edclique/preciosMayorista/internal/model"
	"github.com/21edclique/preciosMayorista/internal/repository"
	"github.com/21edclique/preciosMayorista/internal/router"
	"github.com/21edclique/preciosMayorista/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
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
	token  string // admin JWT
	naveID string
}

func (e *testEnv) login(t *testing.T, usuario, password string) string {
	t.Helper()
	resp := do(t, e.server, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"usuario": usuario, "password": password}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Token string `json:"token"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	// Start Postgres container
	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("precios_test"),
		tcPostgres.WithUsername("precios"),
		tcPostgres.WithPassword("precios"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Start Redis container
	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               5001,
		Env:                "test",
		JWTSecret:          "e2e-secret-key-not-for-production",
		JWTExpirationHours: 8,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
		ExportStoragePath:  t.TempDir(),
		ExportTTLHours:     1,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	require.NoError(t, infra.RunMigrations(db))

	// Seed admin user
	hash, err := bcrypt.GenerateFromPassword([]byte("mayorista2026"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := model.Usuario{
		Nombres:      "Admin E2E",
		Username:     "admin.e2e",
		PasswordHash: string(hash),
		RolID:        model.RolAdministrador,
		Activo:       true,
	}
	require.NoError(t, db.Create(&admin).Error)

	// Seed one nave for the bitácora form
	nave := model.Nave{Nombre: "Nave E2E", Sector: 1, Productos: "Papas y tubérculos"}
	require.NoError(t, db.Create(&nave).Error)

	// Background workers, same wiring as cmd/server
	dispatcher := worker.NewDispatcher(rdb)
	pool := worker.NewPool(rdb)
	pool.Register("exporte", worker.NewExportWorker(
		repository.NewPrecioRepository(db), rdb, dispatcher, cfg.ExportStoragePath))
	workerCtx, cancelWorkers := context.WithCancel(ctx)
	t.Cleanup(cancelWorkers)
	pool.Start(workerCtx, cfg.WorkerPoolSize)

	smtpCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	r := router.New(cfg, db, rdb, smtpCB, dispatcher)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	env := &testEnv{server: srv, naveID: nave.ID.String()}
	env.token = env.login(t, "admin.e2e", "mayorista2026")
	return env
}

// createDigitador provisions a second non-admin user and returns its JWT.
func createDigitador(t *testing.T, env *testEnv) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/usuarios",
		jsonBody(t, map[string]any{
			"nombres":  "Digitador E2E",
			"usuario":  "digitador.e2e",
			"password": "digitador2026",
			"id_rol":   2,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	return env.login(t, "digitador.e2e", "digitador2026")
}

// ── Tests ────────────────────────────────────────────────────────────────────

// T-E2E-1: Daily price cycle ending on the public pizarra.
func TestE2E_CicloDePrecios(t *testing.T) {
	env := setupTestEnv(t)
	hoy := time.Now().Format("2006-01-02")

	// 1. Create producto
	prodResp := do(t, env.server, "POST", "/v1/productos",
		jsonBody(t, map[string]any{"nombre": "Papa Chola"}), env.token)
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var prod struct {
		ID string `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)

	// 2. Create presentación
	presResp := do(t, env.server, "POST", "/v1/presentaciones",
		jsonBody(t, map[string]any{"nombre": "Quintal"}), env.token)
	require.Equal(t, http.StatusCreated, presResp.StatusCode)
	var pres struct {
		ID string `json:"id"`
	}
	decodeJSON(t, presResp, &pres)

	// 3. Record today's price
	precioResp := do(t, env.server, "POST", "/v1/precios",
		jsonBody(t, map[string]any{
			"producto_id":     prod.ID,
			"id_presentacion": pres.ID,
			"fecha":           hoy,
			"peso":            "45.35",
			"precio":          "18.50",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, precioResp.StatusCode)
	var precio struct {
		ID             string `json:"id"`
		ProductoNombre string `json:"producto_nombre"`
	}
	decodeJSON(t, precioResp, &precio)
	assert.Equal(t, "Papa Chola", precio.ProductoNombre)

	// 4. List by exact day
	listResp := do(t, env.server, "GET", "/v1/precios?fecha="+hoy, nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var rows []map[string]any
	decodeJSON(t, listResp, &rows)
	require.Len(t, rows, 1)

	// 5. Public pizarra classifies the product without a token
	pizResp := do(t, env.server, "GET", "/v1/pizarra", nil, "")
	require.Equal(t, http.StatusOK, pizResp.StatusCode)
	var pizarra []struct {
		Nombre    string `json:"nombre"`
		Categoria string `json:"categoria"`
	}
	decodeJSON(t, pizResp, &pizarra)
	require.Len(t, pizarra, 1)
	assert.Equal(t, "Papa Chola", pizarra[0].Nombre)
	assert.Equal(t, "Papas", pizarra[0].Categoria)
}

// T-E2E-2: Bitácora edit window and idempotent resolve.
func TestE2E_BitacoraEdicionYResolucion(t *testing.T) {
	env := setupTestEnv(t)
	ahora := time.Now()

	entrada := map[string]any{
		"fecha":       ahora.Format("2006-01-02"),
		"hora":        ahora.Format("15:04:05"),
		"id_nave_per": env.naveID,
		"camara":      "Cámara 2",
		"turno":       1,
		"novedad":     "Puerta de la cámara 2 quedó sin seguro",
		"resultado":   "Pendiente",
		"referencia":  "Guardia de turno",
	}

	crearResp := do(t, env.server, "POST", "/v1/bitacoras", jsonBody(t, entrada), env.token)
	require.Equal(t, http.StatusCreated, crearResp.StatusCode)
	var bit struct {
		ID string `json:"id_bitacora"`
	}
	decodeJSON(t, crearResp, &bit)

	// Author edits inside the window
	entrada["novedad"] = "Puerta de la cámara 2 quedó sin seguro, se notificó a mantenimiento"
	editResp := do(t, env.server, "PUT", "/v1/bitacoras/"+bit.ID, jsonBody(t, entrada), env.token)
	require.Equal(t, http.StatusOK, editResp.StatusCode)
	editResp.Body.Close()

	// Resolve twice, second call is a no-op
	for i := 0; i < 2; i++ {
		resResp := do(t, env.server, "PATCH", "/v1/bitacoras/"+bit.ID+"/resolver", nil, env.token)
		require.Equal(t, http.StatusOK, resResp.StatusCode)
		var resuelto struct {
			Resultado string `json:"resultado"`
		}
		decodeJSON(t, resResp, &resuelto)
		assert.Equal(t, "Resuelto", resuelto.Resultado)
	}
}

// T-E2E-3: Role enforcement for non-admin users.
func TestE2E_PermisosDigitador(t *testing.T) {
	env := setupTestEnv(t)
	digToken := createDigitador(t, env)
	hoy := time.Now().Format("2006-01-02")

	// Admin provisions catálogo
	prodResp := do(t, env.server, "POST", "/v1/productos",
		jsonBody(t, map[string]any{"nombre": "Tomate Riñón"}), env.token)
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var prod struct {
		ID string `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)

	presResp := do(t, env.server, "POST", "/v1/presentaciones",
		jsonBody(t, map[string]any{"nombre": "Caja"}), env.token)
	require.Equal(t, http.StatusCreated, presResp.StatusCode)
	var pres struct {
		ID string `json:"id"`
	}
	decodeJSON(t, presResp, &pres)

	// Digitador records a price (allowed)
	precioResp := do(t, env.server, "POST", "/v1/precios",
		jsonBody(t, map[string]any{
			"producto_id":     prod.ID,
			"id_presentacion": pres.ID,
			"fecha":           hoy,
			"peso":            "20.00",
			"precio":          "12.00",
		}),
		digToken,
	)
	require.Equal(t, http.StatusCreated, precioResp.StatusCode)
	var precio struct {
		ID string `json:"id"`
	}
	decodeJSON(t, precioResp, &precio)

	// Digitador cannot correct it
	corrResp := do(t, env.server, "PUT", "/v1/precios/"+precio.ID,
		jsonBody(t, map[string]any{
			"id_presentacion": pres.ID,
			"peso":            "20.00",
			"precio":          "13.00",
		}),
		digToken,
	)
	assert.Equal(t, http.StatusForbidden, corrResp.StatusCode)
	corrResp.Body.Close()

	// Digitador cannot create productos either
	nuevoProd := do(t, env.server, "POST", "/v1/productos",
		jsonBody(t, map[string]any{"nombre": "Cebolla Paiteña"}), digToken)
	assert.Equal(t, http.StatusForbidden, nuevoProd.StatusCode)
	nuevoProd.Body.Close()

	// Another author's bitácora entry is off limits
	ahora := time.Now()
	entrada := map[string]any{
		"fecha":       ahora.Format("2006-01-02"),
		"hora":        ahora.Format("15:04:05"),
		"id_nave_per": env.naveID,
		"camara":      "Cámara 1",
		"turno":       2,
		"novedad":     "Fuga de agua junto a la nave",
		"resultado":   "Pendiente",
		"referencia":  "Supervisor",
	}
	crearResp := do(t, env.server, "POST", "/v1/bitacoras", jsonBody(t, entrada), env.token)
	require.Equal(t, http.StatusCreated, crearResp.StatusCode)
	var bit struct {
		ID string `json:"id_bitacora"`
	}
	decodeJSON(t, crearResp, &bit)

	editResp := do(t, env.server, "PUT", "/v1/bitacoras/"+bit.ID, jsonBody(t, entrada), digToken)
	assert.Equal(t, http.StatusForbidden, editResp.StatusCode)
	editResp.Body.Close()

	delResp := do(t, env.server, "DELETE", "/v1/bitacoras/"+bit.ID, nil, digToken)
	assert.Equal(t, http.StatusForbidden, delResp.StatusCode)
	delResp.Body.Close()

	delAdmin := do(t, env.server, "DELETE", "/v1/bitacoras/"+bit.ID, nil, env.token)
	assert.Equal(t, http.StatusOK, delAdmin.StatusCode)
	delAdmin.Body.Close()
}

// T-E2E-4: Async export lifecycle ending in a downloadable PDF.
func TestE2E_ExporteAsincrono(t *testing.T) {
	env := setupTestEnv(t)
	hoy := time.Now().Format("2006-01-02")

	crearResp := do(t, env.server, "POST", "/v1/exportes",
		jsonBody(t, map[string]any{"fecha": hoy, "formato": "pdf"}), env.token)
	require.Equal(t, http.StatusAccepted, crearResp.StatusCode)
	var exp struct {
		ID     string `json:"id"`
		Estado string `json:"estado"`
	}
	decodeJSON(t, crearResp, &exp)
	assert.Equal(t, "pendiente", exp.Estado)

	// Poll until the worker finishes
	deadline := time.Now().Add(15 * time.Second)
	estado := exp.Estado
	for estado != "completado" {
		require.True(t, time.Now().Before(deadline), "export did not finish, last state %q", estado)
		time.Sleep(250 * time.Millisecond)

		pollResp := do(t, env.server, "GET", "/v1/exportes/"+exp.ID, nil, env.token)
		require.Equal(t, http.StatusOK, pollResp.StatusCode)
		var poll struct {
			Estado string `json:"estado"`
			Error  string `json:"error"`
		}
		decodeJSON(t, pollResp, &poll)
		if poll.Estado == "fallido" {
			t.Fatalf("export failed: %s", poll.Error)
		}
		estado = poll.Estado
	}

	dlResp := do(t, env.server, "GET", "/v1/exportes/"+exp.ID+"/descargar", nil, env.token)
	require.Equal(t, http.StatusOK, dlResp.StatusCode)
	defer dlResp.Body.Close()
	assert.Contains(t, dlResp.Header.Get("Content-Disposition"), fmt.Sprintf("reporte_%s.pdf", hoy))
}
