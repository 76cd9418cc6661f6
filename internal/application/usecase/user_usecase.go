package usecase

import (
	"context"

	"github.com/samber/lo"

	"github.com/tu-usuario/tienda-api/internal/application/auth"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo admin): listado, cambio de rol
// y eliminación.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return lo.Map(users, func(u *entity.User, _ int) dto.UserResponse {
		return *auth.ToUserResponse(u)
	}), nil
}

// UpdateRole cambia el rol de un usuario. Un admin no puede degradarse a sí
// mismo (evita dejar el sistema sin administradores por accidente).
func (uc *UserUseCase) UpdateRole(ctx context.Context, actorID, userID, role string) (*dto.UserResponse, error) {
	switch role {
	case entity.RoleAdmin, entity.RoleVendedor, entity.RoleCliente:
	default:
		return nil, domain.ErrInvalidInput
	}
	if actorID == userID && role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.repo.UpdateRole(userID, role); err != nil {
		return nil, err
	}
	user.Role = role
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. Un admin no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(userID)
}
