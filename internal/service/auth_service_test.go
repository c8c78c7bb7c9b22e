package service

import (
	"context"
	"testing"

	"github.com/21edclique/preciosMayorista/internal/config"
	"github.com/21edclique/preciosMayorista/internal/dto"
	"github.com/21edclique/preciosMayorista/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── In-memory UsuarioRepository stub ─────────────────────────────────────────

type stubUsuarioRepo struct {
	users map[string]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if _, ok := r.users[u.Username]; ok {
		return gorm.ErrDuplicatedKey
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.Username] = u
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	u, ok := r.users[username]
	if !ok || !u.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.users[u.Username] = u
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id uuid.UUID) error {
	for username, u := range r.users {
		if u.ID == id {
			delete(r.users, username)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── In-memory RolRepository stub ─────────────────────────────────────────────

type stubRolRepo struct {
	roles  []model.Rol
	nextID uint
}

func (r *stubRolRepo) Create(_ context.Context, rol *model.Rol) error {
	r.nextID++
	rol.ID = r.nextID
	r.roles = append(r.roles, *rol)
	return nil
}

func (r *stubRolRepo) List(_ context.Context) ([]model.Rol, error) { return r.roles, nil }

func (r *stubRolRepo) FindByID(_ context.Context, id uint) (*model.Rol, error) {
	for i := range r.roles {
		if r.roles[i].ID == id {
			return &r.roles[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Helpers ──────────────────────────────────────────────────────────────────

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTestAuthSvc(users *stubUsuarioRepo) AuthService {
	cfg := &config.Config{JWTSecret: testSecret, JWTExpirationHours: 8}
	return NewAuthService(users, &stubRolRepo{}, cfg)
}

func seedUsuario(t *testing.T, repo *stubUsuarioRepo, username, password string, rolID uint, activo bool) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{
		ID: uuid.New(), Nombres: "Usuario de Prueba", Username: username,
		PasswordHash: string(hash), RolID: rolID, Activo: activo,
	}
	repo.users[username] = u
	return u
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	repo := newStubUsuarioRepo()
	user := seedUsuario(t, repo, "jtipan", "segura123", model.RolAdministrador, true)
	svc := newTestAuthSvc(repo)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "jtipan", Password: "segura123"})
	require.NoError(t, err)
	assert.Equal(t, "Login exitoso", resp.Message)
	assert.Equal(t, user.ID.String(), resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	// The token must carry the numeric role id the middleware compares.
	parsed, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.EqualValues(t, model.RolAdministrador, claims["rol_id"])
	assert.Equal(t, "jtipan", claims["username"])
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "jtipan", "segura123", 2, true)
	svc := newTestAuthSvc(repo)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "jtipan", Password: "otra"})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLogin_UsuarioDesconocidoMismoError(t *testing.T) {
	svc := newTestAuthSvc(newStubUsuarioRepo())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "nadie", Password: "x"})
	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "exempleado", "segura123", 2, false)
	svc := newTestAuthSvc(repo)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "exempleado", Password: "segura123"})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

// ── CrearUsuario ─────────────────────────────────────────────────────────────

func TestCrearUsuario_HasheaElPassword(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := newTestAuthSvc(repo)

	resp, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombres: "Maria Quispe", Usuario: "mquispe", Password: "clave-larga", RolID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "mquispe", resp.Usuario)

	stored := repo.users["mquispe"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-larga", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-larga")))
}

func TestCrearUsuario_Duplicado(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "mquispe", "x12345678", 2, true)
	svc := newTestAuthSvc(repo)

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombres: "Otra Maria", Usuario: "mquispe", Password: "clave-larga", RolID: 2,
	})
	assert.ErrorIs(t, err, ErrUsuarioDuplicado)
}

// ── ActualizarUsuario ────────────────────────────────────────────────────────

func TestActualizarUsuario_Parcial(t *testing.T) {
	repo := newStubUsuarioRepo()
	user := seedUsuario(t, repo, "jtipan", "segura123", 2, true)
	svc := newTestAuthSvc(repo)

	resp, err := svc.ActualizarUsuario(context.Background(), user.ID, dto.ActualizarUsuarioRequest{
		Nombres: "Juan Tipán",
	})
	require.NoError(t, err)
	assert.Equal(t, "Juan Tipán", resp.Nombres)
	// Untouched fields survive.
	assert.Equal(t, "jtipan", resp.Usuario)
	assert.EqualValues(t, 2, resp.RolID)
}

func TestActualizarUsuario_RehashDePassword(t *testing.T) {
	repo := newStubUsuarioRepo()
	user := seedUsuario(t, repo, "jtipan", "segura123", 2, true)
	hashAnterior := user.PasswordHash
	svc := newTestAuthSvc(repo)

	_, err := svc.ActualizarUsuario(context.Background(), user.ID, dto.ActualizarUsuarioRequest{
		Password: "nueva-clave",
	})
	require.NoError(t, err)
	assert.NotEqual(t, hashAnterior, repo.users["jtipan"].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users["jtipan"].PasswordHash), []byte("nueva-clave")))
}
