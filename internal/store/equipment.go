package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/assetledger/apiserver/types"
)

const equipmentColumns = `id, id_no, maker_model_type, category, condition, deployment,
		       quantity, location, date_received, description`

// EquipmentRepository handles persistence for equipment records.
type EquipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) List(ctx context.Context) ([]types.Equipment, error) {
	const query = `SELECT ` + equipmentColumns + `
		FROM equipment
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, classify("list equipment", err)
	}
	defer rows.Close()

	items := make([]types.Equipment, 0)
	for rows.Next() {
		item, err := scanEquipment(rows)
		if err != nil {
			return nil, classify("scan equipment", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list equipment", err)
	}
	return items, nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int) (types.Equipment, error) {
	const query = `SELECT ` + equipmentColumns + `
		FROM equipment
		WHERE id = $1`
	item, err := scanEquipment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Equipment{}, ErrNotFound
		}
		return types.Equipment{}, classify("get equipment", err)
	}
	return item, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, item types.Equipment) (types.Equipment, error) {
	const query = `
		INSERT INTO equipment (
			id_no, maker_model_type, category, condition, deployment,
			quantity, location, date_received, description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		item.IDNo,
		item.MakerModelType,
		item.Category,
		item.Condition,
		item.Deployment,
		item.Quantity,
		item.Location,
		item.DateReceived,
		nullString(item.Description),
	).Scan(&item.ID); err != nil {
		return types.Equipment{}, classify("create equipment", err)
	}
	return item, nil
}

func (r *EquipmentRepository) Update(ctx context.Context, item types.Equipment) (types.Equipment, error) {
	const query = `
		UPDATE equipment
		SET id_no = $1,
			maker_model_type = $2,
			category = $3,
			condition = $4,
			deployment = $5,
			quantity = $6,
			location = $7,
			date_received = $8,
			description = $9
		WHERE id = $10`
	result, err := r.db.ExecContext(
		ctx,
		query,
		item.IDNo,
		item.MakerModelType,
		item.Category,
		item.Condition,
		item.Deployment,
		item.Quantity,
		item.Location,
		item.DateReceived,
		nullString(item.Description),
		item.ID,
	)
	if err != nil {
		return types.Equipment{}, classify("update equipment", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Equipment{}, classify("update equipment", err)
	}
	if affected == 0 {
		return types.Equipment{}, ErrNotFound
	}
	return item, nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM equipment WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return classify("delete equipment", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return classify("delete equipment", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanEquipment(row scannable) (types.Equipment, error) {
	var item types.Equipment
	var description sql.NullString
	if err := row.Scan(
		&item.ID,
		&item.IDNo,
		&item.MakerModelType,
		&item.Category,
		&item.Condition,
		&item.Deployment,
		&item.Quantity,
		&item.Location,
		&item.DateReceived,
		&description,
	); err != nil {
		return types.Equipment{}, err
	}
	if description.Valid {
		item.Description = &description.String
	}
	return item, nil
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
