package repository

import "context"

// TransactionManager runs a unit of work atomically. Repositories obtained
// from the factory passed to fn share the transaction; fn returning an error
// rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewRoleRepository() RoleRepository
	NewCategoryRepository() CategoryRepository
	NewProductRepository() ProductRepository
}
