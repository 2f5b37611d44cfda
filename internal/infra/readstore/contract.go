package readstore

import (
	"context"

	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/infra"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/pkg/errs"
	"rental-contracts/internal/pkg/pgconv"
	"rental-contracts/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const dialectPostgres = "postgres"

type ContractViewQueries interface {
	GetContractDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetContractDetailRow, error)
	ListContractItemDetails(ctx context.Context, db sqlc.DBTX, contractID uuid.UUID) ([]sqlc.ListContractItemDetailsRow, error)
}

type ContractReadStore struct {
	queries ContractViewQueries
	db      sqlc.DBTX
}

func NewContractReadStore(queries ContractViewQueries, db sqlc.DBTX) *ContractReadStore {
	return &ContractReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ContractReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ContractView, error) {
	row, err := r.queries.GetContractDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("contract not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find contract by ID", err)
	}

	itemRows, err := r.queries.ListContractItemDetails(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contract items", err)
	}

	view, err := rowToContractView(row, itemRows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode contract", err)
	}
	return view, nil
}

func rowToContractView(row sqlc.GetContractDetailRow, itemRows []sqlc.ListContractItemDetailsRow) (*queries.ContractView, error) {
	total, err := pgconv.DecimalFromNumeric(row.TotalValue)
	if err != nil {
		return nil, err
	}

	items := make([]queries.ContractItemView, len(itemRows))
	for i, ir := range itemRows {
		rate, err := pgconv.DecimalFromNumeric(ir.DailyRate)
		if err != nil {
			return nil, err
		}
		sub, err := pgconv.DecimalFromNumeric(ir.Subtotal)
		if err != nil {
			return nil, err
		}
		items[i] = queries.ContractItemView{
			ID:            ir.ID,
			EquipmentID:   ir.EquipmentID,
			EquipmentName: ir.EquipmentName,
			Quantity:      int(ir.Quantity),
			DailyRate:     rate,
			Subtotal:      sub,
			Notes:         pgconv.StringPtrFromPgtype(ir.Notes),
		}
	}

	return &queries.ContractView{
		ID:                 row.ID,
		Number:             row.ContractNumber,
		CustomerID:         row.CustomerID,
		CustomerName:       row.CustomerName,
		CreatedByID:        row.CreatedBy,
		CreatedByName:      row.CreatedByName,
		ApprovedByID:       pgconv.UUIDPtrFromPgtype(row.ApprovedBy),
		ApprovedByName:     pgconv.StringPtrFromPgtype(row.ApprovedByName),
		StartDate:          pgconv.DateFromPgtype(row.StartDate),
		EndDate:            pgconv.DateFromPgtype(row.EndDate),
		Status:             row.Status,
		TotalValue:         total,
		TotalDays:          int(row.TotalDays),
		Notes:              pgconv.StringPtrFromPgtype(row.Notes),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		Items:              items,
		ApprovedAt:         pgconv.TimePtrFromPgtype(row.ApprovedAt),
		ActivatedAt:        pgconv.TimePtrFromPgtype(row.ActivatedAt),
		FinishedAt:         pgconv.TimePtrFromPgtype(row.FinishedAt),
		CancelledAt:        pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// List runs the filtered page query and a matching count query.
func (r *ContractReadStore) List(ctx context.Context, filter queries.ContractFilter) ([]*queries.ContractListItem, int, error) {
	countSQL, countArgs, err := BuildContractCountQuery(filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build contract count query", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count contracts", err)
	}
	if total == 0 {
		return []*queries.ContractListItem{}, 0, nil
	}

	listSQL, listArgs, err := BuildContractListQuery(filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build contract list query", err)
	}
	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list contracts", err)
	}
	defer rows.Close()

	items := make([]*queries.ContractListItem, 0, filter.PageSize)
	for rows.Next() {
		var (
			item       queries.ContractListItem
			startDate  pgtype.Date
			endDate    pgtype.Date
			totalValue pgtype.Numeric
			totalDays  int32
			itemsCount int64
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID,
			&item.Number,
			&item.CustomerID,
			&item.CustomerName,
			&startDate,
			&endDate,
			&item.Status,
			&totalValue,
			&totalDays,
			&itemsCount,
			&createdAt,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan contract row", err)
		}
		value, err := pgconv.DecimalFromNumeric(totalValue)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to decode contract total", err)
		}
		item.StartDate = pgconv.DateFromPgtype(startDate)
		item.EndDate = pgconv.DateFromPgtype(endDate)
		item.TotalValue = value
		item.TotalDays = int(totalDays)
		item.ItemsCount = int(itemsCount)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate contract rows", err)
	}

	return items, int(total), nil
}

func BuildContractListQuery(filter queries.ContractFilter) (string, []any, error) {
	if filter.Page < 1 || filter.Page > queries.MaxPage {
		return "", nil, errs.Wrap(queries.ErrInvalidPage, "build contract list query")
	}
	if filter.PageSize < 1 || filter.PageSize > queries.MaxPageSize {
		return "", nil, errs.Wrap(queries.ErrInvalidPageSize, "build contract list query")
	}
	limit := uint(filter.PageSize)  // #nosec G115 -- checked above
	offset := uint(filter.Offset()) // #nosec G115 -- checked above

	stmt := contractBaseQuery(filter).
		Select(
			goqu.I("c.id"),
			goqu.I("c.contract_number"),
			goqu.I("c.customer_id"),
			goqu.I("p.name"),
			goqu.I("c.start_date"),
			goqu.I("c.end_date"),
			goqu.I("c.status"),
			goqu.I("c.total_value"),
			goqu.I("c.total_days"),
			goqu.L("(SELECT COUNT(*) FROM contract_items ci WHERE ci.contract_id = c.id)").As("items_count"),
			goqu.I("c.created_at"),
		).
		Order(goqu.I("c.created_at").Desc(), goqu.I("c.id").Desc()).
		Limit(limit).
		Offset(offset)

	query, args, err := stmt.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, errs.Wrap(err, "build contract list query")
	}
	return query, args, nil
}

func BuildContractCountQuery(filter queries.ContractFilter) (string, []any, error) {
	stmt := contractBaseQuery(filter).Select(goqu.COUNT(goqu.Star()))
	query, args, err := stmt.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, errs.Wrap(err, "build contract count query")
	}
	return query, args, nil
}

func contractBaseQuery(filter queries.ContractFilter) *goqu.SelectDataset {
	where := []exp.Expression{goqu.I("c.deleted_at").IsNull()}

	if filter.Status != nil {
		where = append(where, goqu.I("c.status").Eq(*filter.Status))
	}
	if filter.CustomerID != nil {
		where = append(where, goqu.I("c.customer_id").Eq(filter.CustomerID.String()))
	}
	if filter.StartDateFrom != nil {
		where = append(where, goqu.I("c.start_date").Gte(filter.StartDateFrom.Format(contract.DateLayout)))
	}
	if filter.StartDateTo != nil {
		where = append(where, goqu.I("c.start_date").Lte(filter.StartDateTo.Format(contract.DateLayout)))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		where = append(where, goqu.Or(
			goqu.I("c.contract_number").ILike(pattern),
			goqu.I("p.name").ILike(pattern),
		))
	}

	return goqu.Dialect(dialectPostgres).
		From(goqu.T("contracts").As("c")).
		InnerJoin(goqu.T("persons").As("p"), goqu.On(goqu.I("p.id").Eq(goqu.I("c.customer_id")))).
		Where(where...)
}
