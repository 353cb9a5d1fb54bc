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

// IAccountUseCase exposes Account operations.
//
//   - Create/Update stamp the audit fields with the acting identity and today.
//   - Update is sparse: only non-nil patch fields change.
//   - Delete is refused while any Demand references the Account.

type IAccountUseCase interface {
	List(ctx context.Context) ([]entities.Account, error)
	GetByID(ctx context.Context, id string) (entities.Account, error)
	Create(ctx context.Context, in entities.AccountInput, actor string) (entities.Account, error)
	Update(ctx context.Context, id string, patch entities.AccountPatch, actor string) (entities.Account, error)
	Delete(ctx context.Context, id string) error
}

type AccountUseCase struct {
	repo       interfaces.IAccountRepository
	demandRepo interfaces.IDemandRepository
	logger     *zap.Logger
	now        func() time.Time
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(repo interfaces.IAccountRepository, demandRepo interfaces.IDemandRepository, logger *zap.Logger) *AccountUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountUseCase{
		repo:       repo,
		demandRepo: demandRepo,
		logger:     logger.Named("account"),
		now:        time.Now,
	}
}

func (u *AccountUseCase) List(ctx context.Context) ([]entities.Account, error) {
	accounts, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (u *AccountUseCase) GetByID(ctx context.Context, id string) (entities.Account, error) {
	id, err := normalizeID(id)
	if err != nil {
		return entities.Account{}, err
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Account{}, fmt.Errorf("get account: %w", err)
	}
	if a.ID == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	return a, nil
}

func (u *AccountUseCase) Create(ctx context.Context, in entities.AccountInput, actor string) (entities.Account, error) {
	actor, err := normalizeActor(actor)
	if err != nil {
		return entities.Account{}, err
	}
	if !entities.IsAllowedAccountProbability(in.Probability) {
		return entities.Account{}, fmt.Errorf("%w: got %d", ErrInvalidProbability, in.Probability)
	}

	revisedStart, err := parseOptionalDate("revised_start_date", in.RevisedStartDate)
	if err != nil {
		return entities.Account{}, err
	}
	plannedStart, err := parseOptionalDate("planned_start_date", in.PlannedStartDate)
	if err != nil {
		return entities.Account{}, err
	}
	plannedEnd, err := parseOptionalDate("planned_end_date", in.PlannedEndDate)
	if err != nil {
		return entities.Account{}, err
	}

	now := u.now()
	today := civil.DateOf(now)
	a := entities.Account{
		ID:                newEntityID(accountIDPrefix, now),
		Client:            in.Client,
		Project:           in.Project,
		Vertical:          in.Vertical,
		Geo:               in.Geo,
		StartMonth:        in.StartMonth,
		RevisedStartDate:  revisedStart,
		PlannedStartDate:  plannedStart,
		PlannedEndDate:    plannedEnd,
		Probability:       in.Probability,
		OpportunityStatus: in.OpportunityStatus,
		SowStatus:         in.SowStatus,
		ProjectStatus:     in.ProjectStatus,
		ClientPartner:     in.ClientPartner,
		ProposalAnchor:    in.ProposalAnchor,
		DeliveryPartner:   in.DeliveryPartner,
		Comment:           in.Comment,
		LastUpdatedBy:     actor,
		UpdatedOn:         today,
		AddedBy:           actor,
		AddedOn:           today,
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		u.logger.Error("create failed", zap.String("account_id", a.ID), zap.Error(err))
		return entities.Account{}, fmt.Errorf("create account: %w", err)
	}
	u.logger.Info("account created", zap.String("account_id", created.ID), zap.String("actor", actor))
	return created, nil
}

func (u *AccountUseCase) Update(ctx context.Context, id string, patch entities.AccountPatch, actor string) (entities.Account, error) {
	id, err := normalizeID(id)
	if err != nil {
		return entities.Account{}, err
	}
	actor, err = normalizeActor(actor)
	if err != nil {
		return entities.Account{}, err
	}
	if patch.Probability != nil && !entities.IsAllowedAccountProbability(*patch.Probability) {
		return entities.Account{}, fmt.Errorf("%w: got %d", ErrInvalidProbability, *patch.Probability)
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Account{}, fmt.Errorf("get account: %w", err)
	}
	if current.ID == "" {
		return entities.Account{}, ErrAccountNotFound
	}

	if err := applyAccountPatch(&current, patch); err != nil {
		return entities.Account{}, err
	}
	current.LastUpdatedBy = actor
	current.UpdatedOn = civil.DateOf(u.now())

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		u.logger.Error("update failed", zap.String("account_id", id), zap.Error(err))
		return entities.Account{}, fmt.Errorf("update account: %w", err)
	}
	if updated.ID == "" {
		// removed between read and write
		return entities.Account{}, ErrAccountNotFound
	}
	u.logger.Info("account updated", zap.String("account_id", id), zap.String("actor", actor))
	return updated, nil
}

func (u *AccountUseCase) Delete(ctx context.Context, id string) error {
	id, err := normalizeID(id)
	if err != nil {
		return err
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	if current.ID == "" {
		return ErrAccountNotFound
	}

	linked, err := u.demandRepo.CountByAccountID(ctx, id)
	if err != nil {
		return fmt.Errorf("count linked demands: %w", err)
	}
	if linked > 0 {
		u.logger.Info("delete refused", zap.String("account_id", id), zap.Int("linked_demands", linked))
		return fmt.Errorf("%w (%d)", ErrAccountHasDemands, linked)
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrAccountStillReferenced) {
			return ErrAccountHasDemands
		}
		u.logger.Error("delete failed", zap.String("account_id", id), zap.Error(err))
		return fmt.Errorf("delete account: %w", err)
	}
	if !deleted {
		return ErrAccountNotFound
	}
	u.logger.Info("account deleted", zap.String("account_id", id))
	return nil
}

func applyAccountPatch(a *entities.Account, p entities.AccountPatch) error {
	if err := patchDate(&a.RevisedStartDate, "revised_start_date", p.RevisedStartDate); err != nil {
		return err
	}
	if err := patchDate(&a.PlannedStartDate, "planned_start_date", p.PlannedStartDate); err != nil {
		return err
	}
	if err := patchDate(&a.PlannedEndDate, "planned_end_date", p.PlannedEndDate); err != nil {
		return err
	}

	patchString(&a.Client, p.Client)
	patchString(&a.Project, p.Project)
	patchString(&a.Vertical, p.Vertical)
	patchString(&a.Geo, p.Geo)
	patchString(&a.StartMonth, p.StartMonth)
	patchInt(&a.Probability, p.Probability)
	patchString(&a.OpportunityStatus, p.OpportunityStatus)
	patchString(&a.SowStatus, p.SowStatus)
	patchString(&a.ProjectStatus, p.ProjectStatus)
	patchString(&a.ClientPartner, p.ClientPartner)
	patchString(&a.ProposalAnchor, p.ProposalAnchor)
	patchString(&a.DeliveryPartner, p.DeliveryPartner)
	patchOptionalString(&a.Comment, p.Comment)
	return nil
}
