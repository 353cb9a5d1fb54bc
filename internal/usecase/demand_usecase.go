package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resource_management/internal/domain/entities"
	"resource_management/internal/usecase/interfaces"

	"github.com/golang-sql/civil"
	"go.uber.org/zap"
)

// IDemandUseCase exposes Demand operations.
//
// Every write that sets account_id checks the Account exists first; the
// store re-checks at write time so a concurrent Account delete cannot
// leave an orphan.

type IDemandUseCase interface {
	List(ctx context.Context) ([]entities.Demand, error)
	GetByID(ctx context.Context, id string) (entities.Demand, error)
	ListByAccount(ctx context.Context, accountID string) ([]entities.Demand, error)
	Create(ctx context.Context, in entities.DemandInput, actor string) (entities.Demand, error)
	Update(ctx context.Context, id string, patch entities.DemandPatch, actor string) (entities.Demand, error)
	Delete(ctx context.Context, id string) error
	Clone(ctx context.Context, id string, count int, actor string) ([]entities.Demand, error)
}

type DemandUseCase struct {
	repo        interfaces.IDemandRepository
	accountRepo interfaces.IAccountRepository
	logger      *zap.Logger
	now         func() time.Time
}

var _ IDemandUseCase = (*DemandUseCase)(nil)

func NewDemandUseCase(repo interfaces.IDemandRepository, accountRepo interfaces.IAccountRepository, logger *zap.Logger) *DemandUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DemandUseCase{
		repo:        repo,
		accountRepo: accountRepo,
		logger:      logger.Named("demand"),
		now:         time.Now,
	}
}

func (u *DemandUseCase) List(ctx context.Context) ([]entities.Demand, error) {
	demands, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list demands: %w", err)
	}
	return demands, nil
}

func (u *DemandUseCase) GetByID(ctx context.Context, id string) (entities.Demand, error) {
	id, err := normalizeID(id)
	if err != nil {
		return entities.Demand{}, err
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Demand{}, fmt.Errorf("get demand: %w", err)
	}
	if d.ID == "" {
		return entities.Demand{}, ErrDemandNotFound
	}
	return d, nil
}

func (u *DemandUseCase) ListByAccount(ctx context.Context, accountID string) ([]entities.Demand, error) {
	accountID, err := normalizeID(accountID)
	if err != nil {
		return nil, err
	}

	exists, err := u.accountExists(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrAccountNotFound
	}

	demands, err := u.repo.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list demands by account: %w", err)
	}
	return demands, nil
}

func (u *DemandUseCase) Create(ctx context.Context, in entities.DemandInput, actor string) (entities.Demand, error) {
	actor, err := normalizeActor(actor)
	if err != nil {
		return entities.Demand{}, err
	}

	exists, err := u.accountExists(ctx, in.AccountID)
	if err != nil {
		return entities.Demand{}, err
	}
	if !exists {
		u.logger.Info("create refused: unknown account", zap.String("account_id", in.AccountID))
		return entities.Demand{}, ErrReferencedAccountNotFound
	}

	originalStart, err := parseOptionalDate("original_start_date", in.OriginalStartDate)
	if err != nil {
		return entities.Demand{}, err
	}
	allocationEnd, err := parseOptionalDate("allocation_end_date", in.AllocationEndDate)
	if err != nil {
		return entities.Demand{}, err
	}

	now := u.now()
	today := civil.DateOf(now)
	d := entities.Demand{
		ID:                   newEntityID(demandIDPrefix, now),
		AccountID:            in.AccountID,
		Project:              in.Project,
		Role:                 in.Role,
		RoleCode:             in.RoleCode,
		Location:             in.Location,
		Revised:              in.Revised,
		OriginalStartDate:    originalStart,
		AllocationEndDate:    allocationEnd,
		AllocationPercentage: in.AllocationPercentage,
		Probability:          in.Probability,
		Status:               in.Status,
		ResourceMapped:       in.ResourceMapped,
		Comment:              in.Comment,
		StartMonth:           in.StartMonth,
		LastUpdatedBy:        actor,
		UpdatedOn:            today,
		AddedBy:              actor,
		AddedOn:              today,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		if errors.Is(err, interfaces.ErrReferencedAccountMissing) {
			return entities.Demand{}, ErrReferencedAccountNotFound
		}
		u.logger.Error("create failed", zap.String("demand_id", d.ID), zap.Error(err))
		return entities.Demand{}, fmt.Errorf("create demand: %w", err)
	}
	u.logger.Info("demand created",
		zap.String("demand_id", created.ID),
		zap.Int64("sno", created.Sno),
		zap.String("account_id", created.AccountID),
		zap.String("actor", actor),
	)
	return created, nil
}

func (u *DemandUseCase) Update(ctx context.Context, id string, patch entities.DemandPatch, actor string) (entities.Demand, error) {
	id, err := normalizeID(id)
	if err != nil {
		return entities.Demand{}, err
	}
	actor, err = normalizeActor(actor)
	if err != nil {
		return entities.Demand{}, err
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Demand{}, fmt.Errorf("get demand: %w", err)
	}
	if current.ID == "" {
		return entities.Demand{}, ErrDemandNotFound
	}

	if patch.AccountID != nil {
		exists, err := u.accountExists(ctx, *patch.AccountID)
		if err != nil {
			return entities.Demand{}, err
		}
		if !exists {
			u.logger.Info("update refused: unknown account",
				zap.String("demand_id", id),
				zap.String("account_id", *patch.AccountID),
			)
			return entities.Demand{}, ErrReferencedAccountNotFound
		}
	}

	if err := applyDemandPatch(&current, patch); err != nil {
		return entities.Demand{}, err
	}
	current.LastUpdatedBy = actor
	current.UpdatedOn = civil.DateOf(u.now())

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, interfaces.ErrReferencedAccountMissing) {
			return entities.Demand{}, ErrReferencedAccountNotFound
		}
		u.logger.Error("update failed", zap.String("demand_id", id), zap.Error(err))
		return entities.Demand{}, fmt.Errorf("update demand: %w", err)
	}
	if updated.ID == "" {
		return entities.Demand{}, ErrDemandNotFound
	}
	u.logger.Info("demand updated", zap.String("demand_id", id), zap.String("actor", actor))
	return updated, nil
}

func (u *DemandUseCase) Delete(ctx context.Context, id string) error {
	id, err := normalizeID(id)
	if err != nil {
		return err
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		u.logger.Error("delete failed", zap.String("demand_id", id), zap.Error(err))
		return fmt.Errorf("delete demand: %w", err)
	}
	if !deleted {
		return ErrDemandNotFound
	}
	u.logger.Info("demand deleted", zap.String("demand_id", id))
	return nil
}

// Clone copies the source Demand count times. Only the id and the audit
// fields differ from the source. The [1,10] bound lives in the HTTP layer;
// here any positive count is honoured.
func (u *DemandUseCase) Clone(ctx context.Context, id string, count int, actor string) ([]entities.Demand, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	actor, err = normalizeActor(actor)
	if err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCloneCount, count)
	}

	source, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get demand: %w", err)
	}
	if source.ID == "" {
		return nil, ErrDemandNotFound
	}

	now := u.now()
	today := civil.DateOf(now)
	clones := make([]entities.Demand, 0, count)
	for i := 0; i < count; i++ {
		c := source
		c.Sno = 0
		c.ID = newCloneID(now, i)
		c.LastUpdatedBy = actor
		c.UpdatedOn = today
		c.AddedBy = actor
		c.AddedOn = today
		clones = append(clones, c)
	}

	created, err := u.repo.CreateBatch(ctx, clones)
	if err != nil {
		if errors.Is(err, interfaces.ErrReferencedAccountMissing) {
			return nil, ErrReferencedAccountNotFound
		}
		u.logger.Error("clone failed", zap.String("demand_id", id), zap.Int("count", count), zap.Error(err))
		return nil, fmt.Errorf("clone demand: %w", err)
	}
	u.logger.Info("demand cloned",
		zap.String("demand_id", id),
		zap.Int("count", len(created)),
		zap.String("actor", actor),
	)
	return created, nil
}

func (u *DemandUseCase) accountExists(ctx context.Context, accountID string) (bool, error) {
	if accountID == "" {
		return false, nil
	}
	a, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return false, fmt.Errorf("get account: %w", err)
	}
	return a.ID != "", nil
}

func applyDemandPatch(d *entities.Demand, p entities.DemandPatch) error {
	if err := patchDate(&d.OriginalStartDate, "original_start_date", p.OriginalStartDate); err != nil {
		return err
	}
	if err := patchDate(&d.AllocationEndDate, "allocation_end_date", p.AllocationEndDate); err != nil {
		return err
	}

	patchString(&d.AccountID, p.AccountID)
	patchString(&d.Project, p.Project)
	patchString(&d.Role, p.Role)
	patchString(&d.RoleCode, p.RoleCode)
	patchString(&d.Location, p.Location)
	patchOptionalString(&d.Revised, p.Revised)
	patchInt(&d.AllocationPercentage, p.AllocationPercentage)
	patchInt(&d.Probability, p.Probability)
	patchString(&d.Status, p.Status)
	patchOptionalString(&d.ResourceMapped, p.ResourceMapped)
	patchOptionalString(&d.Comment, p.Comment)
	patchString(&d.StartMonth, p.StartMonth)
	return nil
}
