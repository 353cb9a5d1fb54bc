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

const demandColumns = `sno, id, account_id, project, role, role_code, location,
	revised, original_start_date, allocation_end_date, allocation_percentage,
	probability, status, resource_mapped, comment, start_month,
	last_updated_by, updated_on, added_by, added_on`

const insertDemandSQL = `
	INSERT INTO demands (id, account_id, project, role, role_code, location,
		revised, original_start_date, allocation_end_date, allocation_percentage,
		probability, status, resource_mapped, comment, start_month,
		last_updated_by, updated_on, added_by, added_on)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	RETURNING sno`

// DemandPostgresRepository persists Demands in the demands table. The
// foreign key on account_id (ON DELETE RESTRICT) guards both directions.
type DemandPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IDemandRepository = (*DemandPostgresRepository)(nil)

func NewDemandPostgresRepository(pool *pgxpool.Pool) *DemandPostgresRepository {
	return &DemandPostgresRepository{pool: pool}
}

func (r *DemandPostgresRepository) List(ctx context.Context) ([]entities.Demand, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+demandColumns+` FROM demands ORDER BY sno`)
	if err != nil {
		return nil, fmt.Errorf("failed to list demands: %w", err)
	}
	return collectDemands(rows)
}

func (r *DemandPostgresRepository) GetByID(ctx context.Context, id string) (entities.Demand, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+demandColumns+` FROM demands WHERE id = $1`, id)
	d, err := scanDemand(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Demand{}, nil
		}
		return entities.Demand{}, fmt.Errorf("failed to get demand: %w", err)
	}
	return d, nil
}

func (r *DemandPostgresRepository) ListByAccountID(ctx context.Context, accountID string) ([]entities.Demand, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+demandColumns+` FROM demands WHERE account_id = $1 ORDER BY sno`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list demands by account: %w", err)
	}
	return collectDemands(rows)
}

func (r *DemandPostgresRepository) CountByAccountID(ctx context.Context, accountID string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM demands WHERE account_id = $1`, accountID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count demands by account: %w", err)
	}
	return n, nil
}

func (r *DemandPostgresRepository) Create(ctx context.Context, d entities.Demand) (entities.Demand, error) {
	if err := r.pool.QueryRow(ctx, insertDemandSQL, demandInsertArgs(d)...).Scan(&d.Sno); err != nil {
		if isForeignKeyViolation(err) {
			return entities.Demand{}, interfaces.ErrReferencedAccountMissing
		}
		return entities.Demand{}, fmt.Errorf("failed to insert demand: %w", err)
	}
	return d, nil
}

// CreateBatch inserts every demand in one transaction; any failure leaves
// the table untouched.
func (r *DemandPostgresRepository) CreateBatch(ctx context.Context, ds []entities.Demand) ([]entities.Demand, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	created := make([]entities.Demand, 0, len(ds))
	for _, d := range ds {
		if err := tx.QueryRow(ctx, insertDemandSQL, demandInsertArgs(d)...).Scan(&d.Sno); err != nil {
			if isForeignKeyViolation(err) {
				return nil, interfaces.ErrReferencedAccountMissing
			}
			return nil, fmt.Errorf("failed to insert demand %s: %w", d.ID, err)
		}
		created = append(created, d)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return created, nil
}

func (r *DemandPostgresRepository) Update(ctx context.Context, d entities.Demand) (entities.Demand, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE demands SET
			account_id = $2, project = $3, role = $4, role_code = $5, location = $6,
			revised = $7, original_start_date = $8, allocation_end_date = $9,
			allocation_percentage = $10, probability = $11, status = $12,
			resource_mapped = $13, comment = $14, start_month = $15,
			last_updated_by = $16, updated_on = $17, added_by = $18, added_on = $19
		WHERE id = $1
		RETURNING `+demandColumns,
		demandInsertArgs(d)...,
	)
	updated, err := scanDemand(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Demand{}, nil
		}
		if isForeignKeyViolation(err) {
			return entities.Demand{}, interfaces.ErrReferencedAccountMissing
		}
		return entities.Demand{}, fmt.Errorf("failed to update demand: %w", err)
	}
	return updated, nil
}

func (r *DemandPostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM demands WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete demand: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *DemandPostgresRepository) Search(ctx context.Context, query string) ([]entities.Demand, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+demandColumns+` FROM demands
		WHERE strpos(role, $1) > 0
		   OR strpos(project, $1) > 0
		   OR strpos(location, $1) > 0
		   OR strpos(status, $1) > 0
		ORDER BY sno`,
		query,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search demands: %w", err)
	}
	return collectDemands(rows)
}

func (r *DemandPostgresRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM demands GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count demands by status: %w", err)
	}
	return collectCounts(rows)
}

// demandInsertArgs lists every column but sno, in insertDemandSQL order.
func demandInsertArgs(d entities.Demand) []any {
	return []any{
		d.ID, d.AccountID, d.Project, d.Role, d.RoleCode, d.Location,
		d.Revised, toPgDate(d.OriginalStartDate), toPgDate(d.AllocationEndDate),
		d.AllocationPercentage, d.Probability, d.Status, d.ResourceMapped, d.Comment,
		d.StartMonth, d.LastUpdatedBy, toPgAuditDate(d.UpdatedOn), d.AddedBy, toPgAuditDate(d.AddedOn),
	}
}

func scanDemand(row pgx.Row) (entities.Demand, error) {
	var d entities.Demand
	var originalStart, allocationEnd, updatedOn, addedOn pgtype.Date
	err := row.Scan(
		&d.Sno, &d.ID, &d.AccountID, &d.Project, &d.Role, &d.RoleCode, &d.Location,
		&d.Revised, &originalStart, &allocationEnd, &d.AllocationPercentage,
		&d.Probability, &d.Status, &d.ResourceMapped, &d.Comment, &d.StartMonth,
		&d.LastUpdatedBy, &updatedOn, &d.AddedBy, &addedOn,
	)
	if err != nil {
		return entities.Demand{}, err
	}
	d.OriginalStartDate = fromPgDate(originalStart)
	d.AllocationEndDate = fromPgDate(allocationEnd)
	d.UpdatedOn = fromPgAuditDate(updatedOn)
	d.AddedOn = fromPgAuditDate(addedOn)
	return d, nil
}

func collectDemands(rows pgx.Rows) ([]entities.Demand, error) {
	defer rows.Close()

	demands := []entities.Demand{}
	for rows.Next() {
		d, err := scanDemand(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan demand: %w", err)
		}
		demands = append(demands, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate demands: %w", err)
	}
	return demands, nil
}
