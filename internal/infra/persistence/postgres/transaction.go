// Package postgres implements the repositories on GORM. Production runs on
// PostgreSQL with optional read replicas; tests run the same code on SQLite.
package postgres

import (
	"context"

	"shop/internal/domain/repository"
	"shop/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) NewRoleRepository() repository.RoleRepository {
	return NewRoleRepository(f.tx)
}

func (f *gormRepositoryFactory) NewCategoryRepository() repository.CategoryRepository {
	return NewCategoryRepository(f.tx)
}

func (f *gormRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. It commits only when fn returns nil and
// rolls back on error or panic; the panic is re-raised after the rollback.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback().Error; rbErr != nil && err != nil {
			err = errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}
	}()

	if err = fn(&gormRepositoryFactory{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	committed = true

	return nil
}
