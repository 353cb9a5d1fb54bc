package interfaces

import (
	"context"
	"resource_management/internal/domain/entities"
)

// IAccountRepository abstracts Account persistence (PostgreSQL or DynamoDB).
//
// Lookups return a zero Account (ID == "") when the row does not exist;
// errors are reserved for store failures and the sentinel errors below.

type IAccountRepository interface {
	List(ctx context.Context) ([]entities.Account, error)
	GetByID(ctx context.Context, id string) (entities.Account, error)
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	// Update replaces every column of an existing Account.
	Update(ctx context.Context, a entities.Account) (entities.Account, error)
	// Delete reports false when the Account did not exist. It returns
	// ErrAccountStillReferenced when the store refuses because Demands
	// still point at the Account.
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query string) ([]entities.Account, error)
	CountByOpportunityStatus(ctx context.Context) (map[string]int, error)
}
