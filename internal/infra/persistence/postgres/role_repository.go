package postgres

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (repo *roleRepository) FindByID(ctx context.Context, id entity.RoleID) (*entity.Role, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Where("id = ?", int64(id)).First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by id")
	}

	return toRoleDomain(&roleM), nil
}

func (repo *roleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	var roleModels []*model.RoleModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Order("id").Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toRoleDomain(roleM))
	}

	return roles, nil
}

// Upsert keys on id and overwrites the name.
func (repo *roleRepository) Upsert(ctx context.Context, roles []entity.Role) error {
	if len(roles) == 0 {
		return nil
	}

	roleModels := make([]model.RoleModel, 0, len(roles))
	for _, role := range roles {
		roleModels = append(roleModels, model.RoleModel{ID: int64(role.ID), Name: role.Name})
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&roleModels).Error

	return errors.Wrap(err, "failed to upsert roles")
}

func toRoleDomain(data *model.RoleModel) *entity.Role {
	return &entity.Role{ID: entity.RoleID(data.ID), Name: data.Name}
}
