package service

import (
	"context"
	"testing"

	"github.com/21edclique/preciosMayorista/internal/dto"
	"github.com/21edclique/preciosMayorista/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ProductoRepository stub ────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
	// precios counts referencing price rows per product id
	precios map[uuid.UUID]int64
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos: make(map[uuid.UUID]*model.Producto),
		precios:   make(map[uuid.UUID]int64),
	}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context, soloActivos bool) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if soloActivos && !p.Activo {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if _, ok := r.productos[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) CambiarEstado(_ context.Context, id uuid.UUID, activo bool) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = activo
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.productos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) CountPrecios(_ context.Context, id uuid.UUID) (int64, error) {
	return r.precios[id], nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestProducto_CrearYListarSoloActivos(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)

	activo := true
	inactivo := false
	_, err := svc.Crear(context.Background(), dto.CrearCatalogoRequest{Nombre: "Papa Chola", Activo: &activo})
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), dto.CrearCatalogoRequest{Nombre: "Mashua", Activo: &inactivo})
	require.NoError(t, err)

	todos, err := svc.Listar(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	activos, err := svc.Listar(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, activos, 1)
	assert.Equal(t, "Papa Chola", activos[0].Nombre)
}

func TestProducto_EliminarConPreciosQuedaRestringido(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)

	p := &model.Producto{ID: uuid.New(), Nombre: "Papa Chola", Activo: true}
	repo.productos[p.ID] = p
	repo.precios[p.ID] = 3

	err := svc.Eliminar(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrReferenciado)
	// The row is still there; deactivation is the way out.
	_, err = repo.FindByID(context.Background(), p.ID)
	assert.NoError(t, err)
}

func TestProducto_EliminarSinPrecios(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)

	p := &model.Producto{ID: uuid.New(), Nombre: "Oca", Activo: true}
	repo.productos[p.ID] = p

	require.NoError(t, svc.Eliminar(context.Background(), p.ID))
	_, err := repo.FindByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProducto_CambiarEstado(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)

	p := &model.Producto{ID: uuid.New(), Nombre: "Papa Chola", Activo: true}
	repo.productos[p.ID] = p

	require.NoError(t, svc.CambiarEstado(context.Background(), p.ID, false))
	assert.False(t, repo.productos[p.ID].Activo)

	require.NoError(t, svc.CambiarEstado(context.Background(), p.ID, true))
	assert.True(t, repo.productos[p.ID].Activo)
}

func TestProducto_NoExiste(t *testing.T) {
	svc := NewProductoService(newStubProductoRepo())

	_, err := svc.Actualizar(context.Background(), uuid.New(), dto.ActualizarCatalogoRequest{Nombre: "X"})
	assert.ErrorIs(t, err, ErrNoEncontrado)
}
