package interfaces

import (
	"context"
	"resource_management/internal/domain/entities"
)

// IDemandRepository abstracts Demand persistence.
//
// The store assigns Sno on insert. Writes whose AccountID no longer
// resolves fail with ErrReferencedAccountMissing and persist nothing.

type IDemandRepository interface {
	List(ctx context.Context) ([]entities.Demand, error)
	GetByID(ctx context.Context, id string) (entities.Demand, error)
	ListByAccountID(ctx context.Context, accountID string) ([]entities.Demand, error)
	CountByAccountID(ctx context.Context, accountID string) (int, error)
	Create(ctx context.Context, d entities.Demand) (entities.Demand, error)
	// CreateBatch writes all demands as one unit where the store allows it
	// and returns them, Sno assigned, in input order.
	CreateBatch(ctx context.Context, ds []entities.Demand) ([]entities.Demand, error)
	Update(ctx context.Context, d entities.Demand) (entities.Demand, error)
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query string) ([]entities.Demand, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}
