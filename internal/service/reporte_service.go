package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/21edclique/preciosMayorista/internal/dto"
	"github.com/21edclique/preciosMayorista/internal/model"
	"github.com/21edclique/preciosMayorista/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	pizarraCacheKey = "pizarra:resumen"
	pizarraCacheTTL = 5 * time.Minute
)

// categoriaRegla is one row of the keyword classifier. Order matters: the
// first rule whose keyword appears in the lowercased product name wins.
type categoriaRegla struct {
	categoria string
	keywords  []string
}

var categoriaReglas = []categoriaRegla{
	{"Papas", []string{"papa"}},
	{"Tomates", []string{"tomate"}},
	{"Cebollas", []string{"cebolla"}},
	{"Frutas", []string{"manzana", "naranja", "banano", "limon", "mora", "frutilla", "pera", "uva", "sandia", "melon", "piña", "mango", "aguacate"}},
	{"Hortalizas", []string{"lechuga", "col", "brocoli", "coliflor", "zanahoria", "pimiento", "pepino", "acelga", "espinaca", "apio", "remolacha"}},
	{"Granos", []string{"frejol", "arveja", "haba", "maiz", "choclo", "lenteja", "chocho"}},
}

// CategoriaOtros is the fallback bucket when no keyword matches.
const CategoriaOtros = "Otros"

// ClasificarCategoria buckets a product by substring match against the
// keyword table, first match wins.
func ClasificarCategoria(nombre string) string {
	lower := strings.ToLower(nombre)
	for _, regla := range categoriaReglas {
		for _, kw := range regla.keywords {
			if strings.Contains(lower, kw) {
				return regla.categoria
			}
		}
	}
	return CategoriaOtros
}

// ReporteService derives read-only views from the recorded prices: the
// per-product summary, the top movers, the dashboard cards and the public
// pizarra board.
type ReporteService interface {
	Resumen(ctx context.Context) ([]dto.ResumenProducto, error)
	TopVariaciones(ctx context.Context) ([]dto.ResumenProducto, error)
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	// Pizarra is the unauthenticated market board. It is served from Redis
	// when a fresh copy exists.
	Pizarra(ctx context.Context) ([]dto.ResumenProducto, error)
	InvalidarPizarra(ctx context.Context)
}

type reporteService struct {
	precios        repository.PrecioRepository
	productos      repository.ProductoRepository
	presentaciones repository.PresentacionRepository
	cache          *redis.Client
}

func NewReporteService(
	precios repository.PrecioRepository,
	productos repository.ProductoRepository,
	presentaciones repository.PresentacionRepository,
	cache *redis.Client,
) ReporteService {
	return &reporteService{
		precios:        precios,
		productos:      productos,
		presentaciones: presentaciones,
		cache:          cache,
	}
}

// Resumen computes, per product, the most recent price and the immediately
// preceding one. Products without any recorded price are omitted.
func (s *reporteService) Resumen(ctx context.Context) ([]dto.ResumenProducto, error) {
	rows, err := s.precios.List(ctx)
	if err != nil {
		return nil, err
	}
	return construirResumen(rows), nil
}

// construirResumen relies on List ordering newest first: the first row seen
// for a product is its latest price, the second its previous one.
func construirResumen(rows []model.PrecioDiario) []dto.ResumenProducto {
	type acumulado struct {
		resumen  dto.ResumenProducto
		anterior bool
	}
	porProducto := make(map[string]*acumulado)
	orden := make([]string, 0)

	for i := range rows {
		p := &rows[i]
		id := p.ProductoID.String()
		acc, visto := porProducto[id]
		if !visto {
			porProducto[id] = &acumulado{resumen: dto.ResumenProducto{
				ProductoID:   id,
				Nombre:       p.Producto.Nombre,
				Categoria:    ClasificarCategoria(p.Producto.Nombre),
				PrecioActual: p.Precio,
				FechaActual:  p.Fecha.Format(fechaLayout),
			}}
			orden = append(orden, id)
			continue
		}
		if !acc.anterior {
			acc.resumen.PrecioAnterior = p.Precio
			acc.resumen.VariacionPct = variacionPct(acc.resumen.PrecioActual, p.Precio)
			acc.anterior = true
		}
	}

	resumen := make([]dto.ResumenProducto, 0, len(orden))
	for _, id := range orden {
		acc := porProducto[id]
		if !acc.anterior {
			// A single recorded price compares against itself: 0% variation.
			acc.resumen.PrecioAnterior = acc.resumen.PrecioActual
		}
		resumen = append(resumen, acc.resumen)
	}
	return resumen
}

// variacionPct is (actual - anterior) / anterior * 100, defined as zero when
// there is no previous price to compare against.
func variacionPct(actual, anterior decimal.Decimal) float64 {
	if anterior.IsZero() {
		return 0
	}
	pct, _ := actual.Sub(anterior).Div(anterior).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// TopVariaciones returns the five products with the largest absolute price
// movement, biggest swing first.
func (s *reporteService) TopVariaciones(ctx context.Context) ([]dto.ResumenProducto, error) {
	resumen, err := s.Resumen(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(resumen, func(i, j int) bool {
		return abs(resumen[i].VariacionPct) > abs(resumen[j].VariacionPct)
	})
	if len(resumen) > 5 {
		resumen = resumen[:5]
	}
	return resumen, nil
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func (s *reporteService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	productos, err := s.productos.List(ctx, true)
	if err != nil {
		return nil, err
	}
	presentaciones, err := s.presentaciones.List(ctx, true)
	if err != nil {
		return nil, err
	}
	rows, err := s.precios.List(ctx)
	if err != nil {
		return nil, err
	}

	promedio := decimal.Zero
	if len(rows) > 0 {
		suma := decimal.Zero
		for i := range rows {
			suma = suma.Add(rows[i].Precio)
		}
		promedio = suma.Div(decimal.NewFromInt(int64(len(rows)))).Round(2)
	}

	// The dashboard card shows the five most recent records.
	ultimos := rows
	if len(ultimos) > 5 {
		ultimos = ultimos[:5]
	}
	ultimosResp := make([]dto.PrecioResponse, len(ultimos))
	for i := range ultimos {
		ultimosResp[i] = MapPrecio(&ultimos[i])
	}

	return &dto.DashboardResponse{
		TotalProductos:      len(productos),
		TotalPresentaciones: len(presentaciones),
		PrecioPromedio:      promedio,
		UltimosPrecios:      ultimosResp,
	}, nil
}

func (s *reporteService) Pizarra(ctx context.Context) ([]dto.ResumenProducto, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, pizarraCacheKey).Bytes()
		if err == nil {
			var resumen []dto.ResumenProducto
			if err := json.Unmarshal(cached, &resumen); err == nil {
				return resumen, nil
			}
		} else if err != redis.Nil {
			log.Warn().Err(err).Msg("lectura de cache de pizarra fallida")
		}
	}

	resumen, err := s.Resumen(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		payload, err := json.Marshal(resumen)
		if err == nil {
			if err := s.cache.Set(ctx, pizarraCacheKey, payload, pizarraCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("escritura de cache de pizarra fallida")
			}
		}
	}
	return resumen, nil
}

// InvalidarPizarra drops the cached board. Called after every price write so
// the public view never lags a mutation by more than one request.
func (s *reporteService) InvalidarPizarra(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, pizarraCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("invalidacion de cache de pizarra fallida")
	}
}
