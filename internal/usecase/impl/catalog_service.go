package impl

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/usecase"

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	roleRepo     repository.RoleRepository
	categoryRepo repository.CategoryRepository
}

type CatalogServiceParams struct {
	fx.In

	RoleRepo     repository.RoleRepository
	CategoryRepo repository.CategoryRepository
}

func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		roleRepo:     params.RoleRepo,
		categoryRepo: params.CategoryRepo,
	}
}

func (srv *catalogService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.roleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
