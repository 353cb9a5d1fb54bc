package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"resource_management/internal/domain/entities"
	"resource_management/internal/usecase/interfaces"
	mock_interfaces "resource_management/internal/usecase/interfaces/mocks"

	"github.com/golang-sql/civil"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validAccountInput() entities.AccountInput {
	return entities.AccountInput{
		Client:            "Acme",
		Project:           "Platform Rebuild",
		Vertical:          "Retail",
		Geo:               "EMEA",
		StartMonth:        "2026-11",
		PlannedStartDate:  strPtr("2026-11-01"),
		PlannedEndDate:    strPtr("2027-04-30"),
		Probability:       75,
		OpportunityStatus: "Open",
		SowStatus:         "Draft",
		ProjectStatus:     "Not Started",
		ClientPartner:     "Jordan",
		ProposalAnchor:    "Sam",
		DeliveryPartner:   "Riley",
	}
}

func existingAccount() entities.Account {
	planned := civil.Date{Year: 2026, Month: time.November, Day: 1}
	return entities.Account{
		ID:                "ACC-20260101000000-abcd1234",
		Client:            "Acme",
		Project:           "Platform Rebuild",
		Vertical:          "Retail",
		Geo:               "EMEA",
		StartMonth:        "2026-11",
		PlannedStartDate:  &planned,
		Probability:       90,
		OpportunityStatus: "Open",
		SowStatus:         "Signed",
		ProjectStatus:     "Active",
		ClientPartner:     "Jordan",
		ProposalAnchor:    "Sam",
		DeliveryPartner:   "Riley",
		LastUpdatedBy:     "creator@example.com",
		UpdatedOn:         civil.Date{Year: 2026, Month: time.January, Day: 1},
		AddedBy:           "creator@example.com",
		AddedOn:           civil.Date{Year: 2026, Month: time.January, Day: 1},
	}
}

func newTestAccountUseCase(repo *mock_interfaces.MockIAccountRepository, demandRepo *mock_interfaces.MockIDemandRepository) *AccountUseCase {
	uc := NewAccountUseCase(repo, demandRepo, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestAccountUseCase_Create(t *testing.T) {
	t.Run("missing actor", func(t *testing.T) {
		uc := newTestAccountUseCase(nil, nil)
		_, err := uc.Create(context.Background(), validAccountInput(), "  ")
		if !errors.Is(err, ErrMissingActor) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrMissingActor, got %v", err)
		}
	})

	t.Run("probability outside allowed set", func(t *testing.T) {
		uc := newTestAccountUseCase(nil, nil)
		in := validAccountInput()
		in.Probability = 80
		_, err := uc.Create(context.Background(), in, "system@example.com")
		if !errors.Is(err, ErrInvalidProbability) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrInvalidProbability, got %v", err)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		uc := newTestAccountUseCase(nil, nil)
		in := validAccountInput()
		in.RevisedStartDate = strPtr("01/11/2026")
		_, err := uc.Create(context.Background(), in, "system@example.com")
		if !errors.Is(err, ErrInvalidDate) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
		if !strings.Contains(err.Error(), "revised_start_date") {
			t.Fatalf("expected field name in error, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := newTestAccountUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Account{}, errors.New("db"))

		_, err := uc.Create(context.Background(), validAccountInput(), "system@example.com")
		if err == nil || !strings.Contains(err.Error(), "db") {
			t.Fatalf("expected db error, got %v", err)
		}
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) || errors.Is(err, ErrConstraintViolation) {
			t.Fatalf("storage failure must not look like a business error: %v", err)
		}
	})

	t.Run("success stamps audit fields and unique ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := newTestAccountUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Account{})).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) { return a, nil },
		).Times(2)

		today := civil.DateOf(fixedNow)
		seen := map[string]bool{}
		for i := 0; i < 2; i++ {
			res, err := uc.Create(context.Background(), validAccountInput(), "system@example.com")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(res.ID, "ACC-20261015093000-") {
				t.Fatalf("unexpected id: %s", res.ID)
			}
			if seen[res.ID] {
				t.Fatalf("duplicate id %s", res.ID)
			}
			seen[res.ID] = true
			if res.AddedOn != today || res.UpdatedOn != today {
				t.Fatalf("expected audit dates %s, got added=%s updated=%s", today, res.AddedOn, res.UpdatedOn)
			}
			if res.AddedBy != "system@example.com" || res.LastUpdatedBy != "system@example.com" {
				t.Fatalf("unexpected audit actors: %+v", res)
			}
			if res.PlannedStartDate == nil || res.PlannedStartDate.String() != "2026-11-01" {
				t.Fatalf("expected planned start date, got %v", res.PlannedStartDate)
			}
			if res.RevisedStartDate != nil {
				t.Fatalf("expected no revised start date, got %v", res.RevisedStartDate)
			}
		}
	})
}

func TestAccountUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := newTestAccountUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := newTestAccountUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ACC-1").Return(entities.Account{}, nil)

		_, err := uc.GetByID(context.Background(), "ACC-1")
		if !errors.Is(err, ErrAccountNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := newTestAccountUseCase(repo, nil)

		acc := existingAccount()
		repo.EXPECT().GetByID(gomock.Any(), acc.ID).Return(acc, nil)

		res, err := uc.GetByID(context.Background(), " "+acc.ID+" ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != acc.ID {
			t.Fatalf("expected %s got %s", acc.ID, res.ID)
		}
	})
}

func TestAccountUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := newTestAccountUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ACC-missing").Return(entities.Account{}, nil)

		_, err := uc.Update(context.Background(), "ACC-missing", entities.AccountPatch{Comment: entities.OptionalOf("x")}, "system@example.com")
		if !errors.Is(err, ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("comment only leaves every other field untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := newTestAccountUseCase(repo, nil)

		before := existingAccount()
		repo.EXPECT().GetByID(gomock.Any(), before.ID).Return(before, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) { return a, nil },
		)

		res, err := uc.Update(context.Background(), before.ID, entities.AccountPatch{Comment: entities.OptionalOf("x")}, "editor@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := before
		expected.Comment = strPtr("x")
		expected.LastUpdatedBy = "editor@example.com"
		expected.UpdatedOn = civil.DateOf(fixedNow)

		if res.Comment == nil || *res.Comment != "x" {
			t.Fatalf("expected comment x, got %v", res.Comment)
		}
		res.Comment, expected.Comment = nil, nil
		if res.PlannedStartDate == nil || *res.PlannedStartDate != *before.PlannedStartDate {
			t.Fatalf("planned start date changed: %v", res.PlannedStartDate)
		}
		res.PlannedStartDate, expected.PlannedStartDate = nil, nil
		if res != expected {
			t.Fatalf("unexpected update result\n got: %+v\nwant: %+v", res, expected)
		}
		if res.AddedBy != before.AddedBy || res.AddedOn != before.AddedOn {
			t.Fatalf("creation audit fields must not change")
		}
	})

	t.Run("dates are parsed and empty string clears", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := newTestAccountUseCase(repo, nil)

		before := existingAccount()
		repo.EXPECT().GetByID(gomock.Any(), before.ID).Return(before, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) { return a, nil },
		)

		patch := entities.AccountPatch{
			PlannedStartDate: entities.OptionalOf(""),
			PlannedEndDate:   entities.OptionalOf("2027-01-31"),
			Probability:      intPtr(100),
		}
		res, err := uc.Update(context.Background(), before.ID, patch, "editor@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PlannedStartDate != nil {
			t.Fatalf("expected planned start date cleared, got %v", res.PlannedStartDate)
		}
		if res.PlannedEndDate == nil || res.PlannedEndDate.String() != "2027-01-31" {
			t.Fatalf("expected planned end date 2027-01-31, got %v", res.PlannedEndDate)
		}
		if res.Probability != 100 {
			t.Fatalf("expected probability 100, got %d", res.Probability)
		}
	})

	t.Run("null clears comment and date while absent keeps them", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := newTestAccountUseCase(repo, nil)

		before := existingAccount()
		before.Comment = strPtr("keep")
		repo.EXPECT().GetByID(gomock.Any(), before.ID).Return(before, nil).Times(2)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) { return a, nil },
		).Times(2)

		kept, err := uc.Update(context.Background(), before.ID, entities.AccountPatch{}, "editor@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kept.Comment == nil || *kept.Comment != "keep" {
			t.Fatalf("expected comment kept, got %v", kept.Comment)
		}
		if kept.PlannedStartDate == nil {
			t.Fatalf("expected planned start date kept")
		}

		patch := entities.AccountPatch{
			Comment:          entities.OptionalNull[string](),
			PlannedStartDate: entities.OptionalNull[string](),
		}
		cleared, err := uc.Update(context.Background(), before.ID, patch, "editor@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cleared.Comment != nil {
			t.Fatalf("expected comment cleared, got %q", *cleared.Comment)
		}
		if cleared.PlannedStartDate != nil {
			t.Fatalf("expected planned start date cleared, got %v", cleared.PlannedStartDate)
		}
		if cleared.Client != before.Client || cleared.Probability != before.Probability {
			t.Fatalf("untouched fields changed: %+v", cleared)
		}
	})

	t.Run("invalid probability rejected before reading", func(t *testing.T) {
		uc := newTestAccountUseCase(nil, nil)
		_, err := uc.Update(context.Background(), "ACC-1", entities.AccountPatch{Probability: intPtr(10)}, "system@example.com")
		if !errors.Is(err, ErrInvalidProbability) {
			t.Fatalf("expected ErrInvalidProbability, got %v", err)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := newTestAccountUseCase(repo, nil)

		before := existingAccount()
		repo.EXPECT().GetByID(gomock.Any(), before.ID).Return(before, nil)

		_, err := uc.Update(context.Background(), before.ID, entities.AccountPatch{PlannedEndDate: entities.OptionalOf("2027-13-01")}, "system@example.com")
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("row vanished before write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := newTestAccountUseCase(repo, nil)

		before := existingAccount()
		repo.EXPECT().GetByID(gomock.Any(), before.ID).Return(before, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Account{}, nil)

		_, err := uc.Update(context.Background(), before.ID, entities.AccountPatch{}, "system@example.com")
		if !errors.Is(err, ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestAccountUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		demandRepo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := newTestAccountUseCase(repo, demandRepo)

		repo.EXPECT().GetByID(gomock.Any(), "ACC-1").Return(entities.Account{}, nil)

		err := uc.Delete(context.Background(), "ACC-1")
		if !errors.Is(err, ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("refused while demands are linked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		demandRepo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := newTestAccountUseCase(repo, demandRepo)

		acc := existingAccount()
		repo.EXPECT().GetByID(gomock.Any(), acc.ID).Return(acc, nil)
		demandRepo.EXPECT().CountByAccountID(gomock.Any(), acc.ID).Return(2, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		err := uc.Delete(context.Background(), acc.ID)
		if !errors.Is(err, ErrAccountHasDemands) || !errors.Is(err, ErrConstraintViolation) {
			t.Fatalf("expected ErrAccountHasDemands, got %v", err)
		}
	})

	t.Run("store detects a demand added concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		demandRepo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := newTestAccountUseCase(repo, demandRepo)

		acc := existingAccount()
		repo.EXPECT().GetByID(gomock.Any(), acc.ID).Return(acc, nil)
		demandRepo.EXPECT().CountByAccountID(gomock.Any(), acc.ID).Return(0, nil)
		repo.EXPECT().Delete(gomock.Any(), acc.ID).Return(false, interfaces.ErrAccountStillReferenced)

		err := uc.Delete(context.Background(), acc.ID)
		if !errors.Is(err, ErrAccountHasDemands) {
			t.Fatalf("expected ErrAccountHasDemands, got %v", err)
		}
	})

	t.Run("count error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		demandRepo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := newTestAccountUseCase(repo, demandRepo)

		acc := existingAccount()
		repo.EXPECT().GetByID(gomock.Any(), acc.ID).Return(acc, nil)
		demandRepo.EXPECT().CountByAccountID(gomock.Any(), acc.ID).Return(0, errors.New("db"))

		err := uc.Delete(context.Background(), acc.ID)
		if err == nil || !strings.Contains(err.Error(), "db") {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		demandRepo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := newTestAccountUseCase(repo, demandRepo)

		acc := existingAccount()
		repo.EXPECT().GetByID(gomock.Any(), acc.ID).Return(acc, nil)
		demandRepo.EXPECT().CountByAccountID(gomock.Any(), acc.ID).Return(0, nil)
		repo.EXPECT().Delete(gomock.Any(), acc.ID).Return(true, nil)

		if err := uc.Delete(context.Background(), acc.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
