package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/assetledger/apiserver/types"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var equipmentRowColumns = []string{
	"id", "id_no", "maker_model_type", "category", "condition", "deployment",
	"quantity", "location", "date_received", "description",
}

func newEquipmentRepo(t *testing.T) (*EquipmentRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return NewEquipmentRepository(conn), mock
}

func sampleEquipment() types.Equipment {
	return types.Equipment{
		IDNo:           "EQ-001",
		MakerModelType: "Dell Latitude 5420 Laptop",
		Category:       "IT",
		Condition:      "Good",
		Deployment:     "Field office",
		Quantity:       3,
		Location:       "Warehouse A",
		DateReceived:   "2024-03-01",
	}
}

func TestEquipmentRepositoryCreateWithoutDescription(t *testing.T) {
	repo, mock := newEquipmentRepo(t)
	item := sampleEquipment()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO equipment")).
		WithArgs("EQ-001", "Dell Latitude 5420 Laptop", "IT", "Good", "Field office", 3, "Warehouse A", "2024-03-01", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.Create(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Nil(t, created.Description)
}

func TestEquipmentRepositoryCreateDuplicateIDNo(t *testing.T) {
	repo, mock := newEquipmentRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO equipment")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "equipment_id_no_key"})

	_, err := repo.Create(context.Background(), sampleEquipment())

	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "id_no", dup.Field)
}

func TestEquipmentRepositoryGetByID(t *testing.T) {
	repo, mock := newEquipmentRepo(t)

	rows := sqlmock.NewRows(equipmentRowColumns).
		AddRow(7, "EQ-001", "Dell Latitude", "IT", "Good", "Field office", 3, "Warehouse A", "2024-03-01", "spare unit")
	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment")).WithArgs(7).WillReturnRows(rows)

	item, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "EQ-001", item.IDNo)
	assert.Equal(t, 3, item.Quantity)
	require.NotNil(t, item.Description)
	assert.Equal(t, "spare unit", *item.Description)
}

func TestEquipmentRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock := newEquipmentRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(equipmentRowColumns))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEquipmentRepositoryListNullDescription(t *testing.T) {
	repo, mock := newEquipmentRepo(t)

	rows := sqlmock.NewRows(equipmentRowColumns).
		AddRow(1, "EQ-001", "Dell", "IT", "Good", "HQ", 1, "A", "2024", nil).
		AddRow(2, "EQ-002", "HP", "IT", "Fair", "HQ", 2, "B", "2024", "note")
	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment")).WillReturnRows(rows)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Nil(t, items[0].Description)
	require.NotNil(t, items[1].Description)
	assert.Equal(t, "note", *items[1].Description)
}

func TestEquipmentRepositoryUpdate(t *testing.T) {
	repo, mock := newEquipmentRepo(t)
	item := sampleEquipment()
	item.ID = 7
	desc := "repaired"
	item.Description = &desc

	mock.ExpectExec(regexp.QuoteMeta("UPDATE equipment")).
		WithArgs("EQ-001", "Dell Latitude 5420 Laptop", "IT", "Good", "Field office", 3, "Warehouse A", "2024-03-01", "repaired", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.Update(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, item, updated)
}

func TestEquipmentRepositoryUpdateNotFound(t *testing.T) {
	repo, mock := newEquipmentRepo(t)
	item := sampleEquipment()
	item.ID = 404

	mock.ExpectExec(regexp.QuoteMeta("UPDATE equipment")).WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), item)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEquipmentRepositoryDeleteNotFound(t *testing.T) {
	repo, mock := newEquipmentRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM equipment WHERE id = $1")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 5), ErrNotFound)
}
