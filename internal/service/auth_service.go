package service

import (
	"context"
	"errors"
	"time"

	"github.com/21edclique/preciosMayorista/internal/config"
	"github.com/21edclique/preciosMayorista/internal/dto"
	"github.com/21edclique/preciosMayorista/internal/model"
	"github.com/21edclique/preciosMayorista/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	EliminarUsuario(ctx context.Context, id uuid.UUID) error
	ListarRoles(ctx context.Context) ([]dto.RolResponse, error)
	CrearRol(ctx context.Context, req dto.CrearRolRequest) (*dto.RolResponse, error)
}

type authService struct {
	usuarios repository.UsuarioRepository
	roles    repository.RolRepository
	cfg      *config.Config
}

func NewAuthService(usuarios repository.UsuarioRepository, roles repository.RolRepository, cfg *config.Config) AuthService {
	return &authService{usuarios: usuarios, roles: roles, cfg: cfg}
}

func mapUsuario(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:        u.ID.String(),
		Nombres:   u.Nombres,
		Usuario:   u.Username,
		RolID:     u.RolID,
		NombreRol: u.Rol.NombreRol,
		Activo:    u.Activo,
	}
}

// Login verifies a claimed credential against the stored bcrypt hash.
// Unknown user and wrong password yield the same error on purpose.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.usuarios.FindByUsername(ctx, req.Usuario)
	if err != nil {
		return nil, ErrCredencialesInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Login exitoso",
		Token:   token,
		User: dto.UsuarioResponse{
			ID:      user.ID.String(),
			Nombres: user.Nombres,
			Usuario: user.Username,
			RolID:   user.RolID,
			Activo:  user.Activo,
		},
	}, nil
}

// CrearUsuario relies on the usernames unique index as the single source of
// truth; a check-then-insert would race under concurrent signups.
func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Nombres:      req.Nombres,
		Username:     req.Usuario,
		PasswordHash: string(hash),
		RolID:        req.RolID,
		Activo:       true,
	}
	if err := s.usuarios.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsuarioDuplicado
		}
		return nil, err
	}
	resp := mapUsuario(user)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.usuarios.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = mapUsuario(&users[i])
	}
	return resp, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNoEncontrado
	}
	if req.Nombres != "" {
		user.Nombres = req.Nombres
	}
	if req.Usuario != "" {
		user.Username = req.Usuario
	}
	if req.RolID != 0 {
		user.RolID = req.RolID
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.usuarios.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsuarioDuplicado
		}
		return nil, err
	}
	resp := mapUsuario(user)
	return &resp, nil
}

func (s *authService) EliminarUsuario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.usuarios.FindByID(ctx, id); err != nil {
		return ErrNoEncontrado
	}
	return s.usuarios.Delete(ctx, id)
}

func (s *authService) ListarRoles(ctx context.Context) ([]dto.RolResponse, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RolResponse, len(roles))
	for i, r := range roles {
		resp[i] = dto.RolResponse{ID: r.ID, NombreRol: r.NombreRol}
	}
	return resp, nil
}

func (s *authService) CrearRol(ctx context.Context, req dto.CrearRolRequest) (*dto.RolResponse, error) {
	rol := &model.Rol{NombreRol: req.NombreRol}
	if err := s.roles.Create(ctx, rol); err != nil {
		return nil, err
	}
	return &dto.RolResponse{ID: rol.ID, NombreRol: rol.NombreRol}, nil
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"rol_id":   user.RolID,
		"exp":      now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
