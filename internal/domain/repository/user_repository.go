package repository

import "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByCedula(cedula string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateRoles(userID string, roles []string) error
	List(limit, offset int) ([]*entity.User, error)
	// ListByRole se usa para resolver destinatarios de notificaciones (admins).
	ListByRole(role string) ([]*entity.User, error)
}
