//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"resource_management/internal/domain/entities"
	"resource_management/internal/usecase/interfaces"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repoFactory func(t *testing.T) (interfaces.IAccountRepository, interfaces.IDemandRepository)

func backends() map[string]repoFactory {
	return map[string]repoFactory{
		"postgres": func(t *testing.T) (interfaces.IAccountRepository, interfaces.IDemandRepository) {
			pg := getTestPostgres(t)
			return NewAccountPostgresRepository(pg.DB.Pool), NewDemandPostgresRepository(pg.DB.Pool)
		},
		"dynamodb": func(t *testing.T) (interfaces.IAccountRepository, interfaces.IDemandRepository) {
			dyn, cfg := getTestDynamo(t)
			return NewAccountDynamoRepository(dyn.Client, cfg.AccountsTable),
				NewDemandDynamoRepository(dyn.Client, cfg.DemandsTable, cfg.AccountsTable, cfg.CountersTable)
		},
	}
}

var auditDay = civil.Date{Year: 2026, Month: time.October, Day: 15}

func sampleAccount(id, client, status string) entities.Account {
	start := civil.Date{Year: 2026, Month: time.November, Day: 1}
	return entities.Account{
		ID:                id,
		Client:            client,
		Project:           "Rebuild",
		Vertical:          "Retail",
		Geo:               "EMEA",
		StartMonth:        "2026-11",
		PlannedStartDate:  &start,
		Probability:       75,
		OpportunityStatus: status,
		ClientPartner:     "Jordan",
		ProposalAnchor:    "Sam",
		DeliveryPartner:   "Riley",
		LastUpdatedBy:     "system@example.com",
		UpdatedOn:         auditDay,
		AddedBy:           "system@example.com",
		AddedOn:           auditDay,
	}
}

func sampleDemand(id, accountID, role, status string) entities.Demand {
	comment := "note"
	return entities.Demand{
		ID:                   id,
		AccountID:            accountID,
		Project:              "Rebuild",
		Role:                 role,
		RoleCode:             "RC",
		Location:             "Lisbon",
		AllocationPercentage: 100,
		Probability:          60,
		Status:               status,
		Comment:              &comment,
		StartMonth:           "2026-11",
		LastUpdatedBy:        "system@example.com",
		UpdatedOn:            auditDay,
		AddedBy:              "system@example.com",
		AddedOn:              auditDay,
	}
}

func TestRepositories_Integration(t *testing.T) {
	for name, factory := range backends() {
		factory := factory
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("account crud", func(t *testing.T) {
				accounts, _ := factory(t)

				a := sampleAccount("ACC-1", "Acme", "Open")
				_, err := accounts.Create(ctx, a)
				require.NoError(t, err)

				got, err := accounts.GetByID(ctx, "ACC-1")
				require.NoError(t, err)
				assert.Equal(t, a, got)

				missing, err := accounts.GetByID(ctx, "ACC-missing")
				require.NoError(t, err)
				assert.Empty(t, missing.ID)

				a.Client = "Acme Corp"
				a.PlannedStartDate = nil
				updated, err := accounts.Update(ctx, a)
				require.NoError(t, err)
				assert.Equal(t, "Acme Corp", updated.Client)
				assert.Nil(t, updated.PlannedStartDate)

				ghost, err := accounts.Update(ctx, sampleAccount("ACC-ghost", "x", "Open"))
				require.NoError(t, err)
				assert.Empty(t, ghost.ID)

				deleted, err := accounts.Delete(ctx, "ACC-1")
				require.NoError(t, err)
				assert.True(t, deleted)

				deleted, err = accounts.Delete(ctx, "ACC-1")
				require.NoError(t, err)
				assert.False(t, deleted)
			})

			t.Run("referential integrity", func(t *testing.T) {
				accounts, demands := factory(t)

				_, err := accounts.Create(ctx, sampleAccount("ACC-1", "Acme", "Open"))
				require.NoError(t, err)

				_, err = demands.Create(ctx, sampleDemand("DEM-orphan", "ACC-missing", "Engineer", "Open"))
				require.ErrorIs(t, err, interfaces.ErrReferencedAccountMissing)
				orphan, err := demands.GetByID(ctx, "DEM-orphan")
				require.NoError(t, err)
				assert.Empty(t, orphan.ID)

				d, err := demands.Create(ctx, sampleDemand("DEM-1", "ACC-1", "Engineer", "Open"))
				require.NoError(t, err)
				assert.Positive(t, d.Sno)

				_, err = accounts.Delete(ctx, "ACC-1")
				require.ErrorIs(t, err, interfaces.ErrAccountStillReferenced)
				still, err := accounts.GetByID(ctx, "ACC-1")
				require.NoError(t, err)
				assert.Equal(t, "ACC-1", still.ID)

				d.AccountID = "ACC-missing"
				_, err = demands.Update(ctx, d)
				require.ErrorIs(t, err, interfaces.ErrReferencedAccountMissing)
				unchanged, err := demands.GetByID(ctx, "DEM-1")
				require.NoError(t, err)
				assert.Equal(t, "ACC-1", unchanged.AccountID)

				n, err := demands.CountByAccountID(ctx, "ACC-1")
				require.NoError(t, err)
				assert.Equal(t, 1, n)

				removed, err := demands.Delete(ctx, "DEM-1")
				require.NoError(t, err)
				assert.True(t, removed)

				deleted, err := accounts.Delete(ctx, "ACC-1")
				require.NoError(t, err)
				assert.True(t, deleted)
			})

			t.Run("batch create assigns increasing sno", func(t *testing.T) {
				accounts, demands := factory(t)

				_, err := accounts.Create(ctx, sampleAccount("ACC-1", "Acme", "Open"))
				require.NoError(t, err)

				batch := make([]entities.Demand, 3)
				for i := range batch {
					batch[i] = sampleDemand(fmt.Sprintf("DEM-CLONE-%d", i), "ACC-1", "Engineer", "Open")
				}
				created, err := demands.CreateBatch(ctx, batch)
				require.NoError(t, err)
				require.Len(t, created, 3)
				assert.Less(t, created[0].Sno, created[1].Sno)
				assert.Less(t, created[1].Sno, created[2].Sno)

				listed, err := demands.ListByAccountID(ctx, "ACC-1")
				require.NoError(t, err)
				assert.Len(t, listed, 3)

				_, err = demands.CreateBatch(ctx, []entities.Demand{
					sampleDemand("DEM-ok", "ACC-1", "Engineer", "Open"),
					sampleDemand("DEM-bad", "ACC-missing", "Engineer", "Open"),
				})
				require.ErrorIs(t, err, interfaces.ErrReferencedAccountMissing)
				partial, err := demands.GetByID(ctx, "DEM-ok")
				require.NoError(t, err)
				assert.Empty(t, partial.ID)
			})

			t.Run("search and stats", func(t *testing.T) {
				accounts, demands := factory(t)

				stats, err := accounts.CountByOpportunityStatus(ctx)
				require.NoError(t, err)
				assert.Empty(t, stats)

				_, err = accounts.Create(ctx, sampleAccount("ACC-1", "Acme", "Open"))
				require.NoError(t, err)
				_, err = accounts.Create(ctx, sampleAccount("ACC-2", "Globex", "Won"))
				require.NoError(t, err)

				for i, role := range []string{"Engineer", "Designer", "Senior engineer"} {
					_, err := demands.Create(ctx, sampleDemand(fmt.Sprintf("DEM-%d", i), "ACC-1", role, "Open"))
					require.NoError(t, err)
				}

				hits, err := demands.Search(ctx, "eng")
				require.NoError(t, err)
				require.Len(t, hits, 1)
				assert.Equal(t, "Senior engineer", hits[0].Role)

				all, err := demands.Search(ctx, "")
				require.NoError(t, err)
				assert.Len(t, all, 3)

				accHits, err := accounts.Search(ctx, "Glob")
				require.NoError(t, err)
				require.Len(t, accHits, 1)
				assert.Equal(t, "ACC-2", accHits[0].ID)

				byStatus, err := accounts.CountByOpportunityStatus(ctx)
				require.NoError(t, err)
				assert.Equal(t, map[string]int{"Open": 1, "Won": 1}, byStatus)

				demandStats, err := demands.CountByStatus(ctx)
				require.NoError(t, err)
				assert.Equal(t, map[string]int{"Open": 3}, demandStats)
			})
		})
	}
}
