// Package auth registra usuarios y emite tokens de acceso.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
	"github.com/scalimentos/inventario-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// UseCase registro y login de usuarios.
type UseCase struct {
	usuarios   repository.UsuarioRepository
	secret     string
	issuer     string
	expMinutes int
}

func New(usuarios repository.UsuarioRepository, secret, issuer string, expMinutes int) *UseCase {
	return &UseCase{usuarios: usuarios, secret: secret, issuer: issuer, expMinutes: expMinutes}
}

// Register da de alta un usuario con la contraseña hasheada.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.Usuario, error) {
	existente, err := uc.usuarios.ObtenerPorEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailEnUso
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Rol:          in.Rol,
		Telefono:     in.Telefono,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarios.Crear(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifica las credenciales y emite un token con el rol del usuario.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarios.ObtenerPorEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredenciales
	}

	token, err := jwt.Generate(uc.secret, u.ID, u.Rol, uc.issuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, UserID: u.ID, Nombre: u.Nombre, Rol: u.Rol}, nil
}

// ObtenerUsuario devuelve un usuario por ID.
func (uc *UseCase) ObtenerUsuario(ctx context.Context, id string) (*entity.Usuario, error) {
	u, err := uc.usuarios.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNoEncontrado
	}
	return u, nil
}

// ListarUsuarios devuelve usuarios paginados.
func (uc *UseCase) ListarUsuarios(ctx context.Context, limit, offset int) ([]*entity.Usuario, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return uc.usuarios.Listar(limit, offset)
}
