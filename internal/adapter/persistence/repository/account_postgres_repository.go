package repository

import (
	"context"
	"errors"
	"fmt"

	"resource_management/internal/domain/entities"
	"resource_management/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `id, client, project, vertical, geo, start_month,
	revised_start_date, planned_start_date, planned_end_date, probability,
	opportunity_status, sow_status, project_status, client_partner,
	proposal_anchor, delivery_partner, comment,
	last_updated_by, updated_on, added_by, added_on`

// AccountPostgresRepository persists Accounts in the accounts table.
// Rows come back ordered by added_on, then id.
type AccountPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IAccountRepository = (*AccountPostgresRepository)(nil)

func NewAccountPostgresRepository(pool *pgxpool.Pool) *AccountPostgresRepository {
	return &AccountPostgresRepository{pool: pool}
}

func (r *AccountPostgresRepository) List(ctx context.Context) ([]entities.Account, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY added_on, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return collectAccounts(rows)
}

func (r *AccountPostgresRepository) GetByID(ctx context.Context, id string) (entities.Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Account{}, nil
		}
		return entities.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return a, nil
}

func (r *AccountPostgresRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		accountArgs(a)...,
	)
	if err != nil {
		return entities.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}
	return a, nil
}

func (r *AccountPostgresRepository) Update(ctx context.Context, a entities.Account) (entities.Account, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE accounts SET
			client = $2, project = $3, vertical = $4, geo = $5, start_month = $6,
			revised_start_date = $7, planned_start_date = $8, planned_end_date = $9,
			probability = $10, opportunity_status = $11, sow_status = $12,
			project_status = $13, client_partner = $14, proposal_anchor = $15,
			delivery_partner = $16, comment = $17,
			last_updated_by = $18, updated_on = $19, added_by = $20, added_on = $21
		WHERE id = $1
		RETURNING `+accountColumns,
		accountArgs(a)...,
	)
	updated, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Account{}, nil
		}
		return entities.Account{}, fmt.Errorf("failed to update account: %w", err)
	}
	return updated, nil
}

func (r *AccountPostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, interfaces.ErrAccountStillReferenced
		}
		return false, fmt.Errorf("failed to delete account: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AccountPostgresRepository) Search(ctx context.Context, query string) ([]entities.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE strpos(client, $1) > 0
		   OR strpos(project, $1) > 0
		   OR strpos(vertical, $1) > 0
		   OR strpos(opportunity_status, $1) > 0
		ORDER BY added_on, id`,
		query,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	return collectAccounts(rows)
}

func (r *AccountPostgresRepository) CountByOpportunityStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT opportunity_status, COUNT(*) FROM accounts GROUP BY opportunity_status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts by status: %w", err)
	}
	return collectCounts(rows)
}

func accountArgs(a entities.Account) []any {
	return []any{
		a.ID, a.Client, a.Project, a.Vertical, a.Geo, a.StartMonth,
		toPgDate(a.RevisedStartDate), toPgDate(a.PlannedStartDate), toPgDate(a.PlannedEndDate),
		a.Probability, a.OpportunityStatus, a.SowStatus, a.ProjectStatus,
		a.ClientPartner, a.ProposalAnchor, a.DeliveryPartner, a.Comment,
		a.LastUpdatedBy, toPgAuditDate(a.UpdatedOn), a.AddedBy, toPgAuditDate(a.AddedOn),
	}
}

func scanAccount(row pgx.Row) (entities.Account, error) {
	var a entities.Account
	var revisedStart, plannedStart, plannedEnd, updatedOn, addedOn pgtype.Date
	err := row.Scan(
		&a.ID, &a.Client, &a.Project, &a.Vertical, &a.Geo, &a.StartMonth,
		&revisedStart, &plannedStart, &plannedEnd,
		&a.Probability, &a.OpportunityStatus, &a.SowStatus, &a.ProjectStatus,
		&a.ClientPartner, &a.ProposalAnchor, &a.DeliveryPartner, &a.Comment,
		&a.LastUpdatedBy, &updatedOn, &a.AddedBy, &addedOn,
	)
	if err != nil {
		return entities.Account{}, err
	}
	a.RevisedStartDate = fromPgDate(revisedStart)
	a.PlannedStartDate = fromPgDate(plannedStart)
	a.PlannedEndDate = fromPgDate(plannedEnd)
	a.UpdatedOn = fromPgAuditDate(updatedOn)
	a.AddedOn = fromPgAuditDate(addedOn)
	return a, nil
}

func collectAccounts(rows pgx.Rows) ([]entities.Account, error) {
	defer rows.Close()

	accounts := []entities.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

func collectCounts(rows pgx.Rows) (map[string]int, error) {
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate counts: %w", err)
	}
	return counts, nil
}
