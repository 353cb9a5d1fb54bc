package usecase

import (
	"context"
	"fmt"

	"resource_management/internal/domain/entities"
	"resource_management/internal/usecase/interfaces"
)

// IDashboardUseCase exposes the read-only aggregation and search views.

type IDashboardUseCase interface {
	Stats(ctx context.Context) (entities.DashboardStats, error)
	Search(ctx context.Context, query, entity string) (entities.SearchResult, error)
}

type DashboardUseCase struct {
	accountRepo interfaces.IAccountRepository
	demandRepo  interfaces.IDemandRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(accountRepo interfaces.IAccountRepository, demandRepo interfaces.IDemandRepository) *DashboardUseCase {
	return &DashboardUseCase{accountRepo: accountRepo, demandRepo: demandRepo}
}

// Stats derives the totals from the grouped counts: every row belongs to
// exactly one status group, the empty status included.
func (u *DashboardUseCase) Stats(ctx context.Context) (entities.DashboardStats, error) {
	accountsByStatus, err := u.accountRepo.CountByOpportunityStatus(ctx)
	if err != nil {
		return entities.DashboardStats{}, fmt.Errorf("count accounts by status: %w", err)
	}
	demandsByStatus, err := u.demandRepo.CountByStatus(ctx)
	if err != nil {
		return entities.DashboardStats{}, fmt.Errorf("count demands by status: %w", err)
	}

	if accountsByStatus == nil {
		accountsByStatus = map[string]int{}
	}
	if demandsByStatus == nil {
		demandsByStatus = map[string]int{}
	}

	return entities.DashboardStats{
		TotalAccounts:    sumCounts(accountsByStatus),
		TotalDemands:     sumCounts(demandsByStatus),
		AccountsByStatus: accountsByStatus,
		DemandsByStatus:  demandsByStatus,
	}, nil
}

// Search matches query as a case-sensitive substring. Accounts match on
// client, project, vertical or opportunity_status; Demands on role,
// project, location or status.
func (u *DashboardUseCase) Search(ctx context.Context, query, entity string) (entities.SearchResult, error) {
	switch entity {
	case entities.SearchEntityAccounts:
		accounts, err := u.accountRepo.Search(ctx, query)
		if err != nil {
			return entities.SearchResult{}, fmt.Errorf("search accounts: %w", err)
		}
		return entities.SearchResult{Entity: entity, Accounts: accounts}, nil
	case entities.SearchEntityDemands:
		demands, err := u.demandRepo.Search(ctx, query)
		if err != nil {
			return entities.SearchResult{}, fmt.Errorf("search demands: %w", err)
		}
		return entities.SearchResult{Entity: entity, Demands: demands}, nil
	default:
		return entities.SearchResult{}, fmt.Errorf("%w: got %q", ErrInvalidSearchEntity, entity)
	}
}

func sumCounts(m map[string]int) int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}
