package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y gestión de roles.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste con rol cliente.
// Devuelve ErrCedulaAlreadyExists o ErrEmailAlreadyExists si ya hay un usuario
// con esa cédula o ese email.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByCedula(in.Cedula)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCedulaAlreadyExists
	}
	existing, err = uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Cedula:       in.Cedula,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Phone:        in.Phone,
		Roles:        []string{entity.RoleCliente},
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// UpdateRoles reemplaza el conjunto de roles de un usuario. Solo un admin llega
// hasta aquí (el middleware filtra), pero la regla fuerte vive en el dominio:
// nadie cambia sus propios roles, ni siquiera un admin.
func (uc *AuthUseCase) UpdateRoles(actorID, targetUserID string, roles []string) (*dto.UserResponse, error) {
	if actorID == targetUserID {
		return nil, domain.ErrSelfRoleChange
	}
	user, err := uc.userRepo.GetByID(targetUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.userRepo.UpdateRoles(targetUserID, roles); err != nil {
		return nil, err
	}
	user.Roles = roles
	user.UpdatedAt = time.Now()
	return ToUserResponse(user), nil
}

// ToUserResponse mapea la entidad al DTO de salida (sin hash de password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Cedula:    u.Cedula,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Roles:     u.Roles,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
