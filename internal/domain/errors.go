package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrCedulaAlreadyExists  = errors.New("la cédula ya está registrada")
	ErrRUCAlreadyExists     = errors.New("el RUC ya está registrado en otra empresa")
	ErrReportAlreadyExists  = errors.New("la fumigación ya tiene un reporte registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrInvalidStatus        = errors.New("estado de la fumigación no permite esta operación")
	ErrRejectionMsgRequired = errors.New("el rechazo requiere un motivo")
	ErrSelfRoleChange       = errors.New("un usuario no puede modificar sus propios roles")
)
