package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entity "moteka/internal/domain"
)

func newMock(t *testing.T) (sqlmock.Sqlmock, OrderRepository, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	repo := NewOrderRepository(db)
	return mock, repo, func() { db.Close() }
}

func TestChangeStatusCommitsUpdateAndHistoryTogether(t *testing.T) {
	mock, repo, closeDB := newMock(t)
	defer closeDB()

	now := time.Now().UTC()
	note := "entregada"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE work_orders").
		WithArgs("FINALIZADA", sqlmock.AnyArg(), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_status_history").
		WithArgs(int64(5), "FINALIZADA", note).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ChangeStatus(5, entity.StatusDone, &now, &note)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangeStatusRollsBackWhenHistoryInsertFails(t *testing.T) {
	mock, repo, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE work_orders").
		WithArgs("EN_REPARACION", nil, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_status_history").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.ChangeStatus(5, entity.StatusInRepair, nil, nil)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangeStatusRollsBackWhenUpdateFails(t *testing.T) {
	mock, repo, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE work_orders").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.ChangeStatus(5, entity.StatusInRepair, nil, nil)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDReturnsNilWhenMissing(t *testing.T) {
	mock, repo, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	order, err := repo.GetByID(404)
	assert.NoError(t, err)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithInitialHistory(t *testing.T) {
	mock, repo, closeDB := newMock(t)
	defer closeDB()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO work_orders").
		WithArgs(int64(1), int64(2), nil, "EN_ESPERA", nil).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "status", "intake_at", "created_at", "updated_at"}).
			AddRow(int64(10), "EN_ESPERA", now, now, now))
	mock.ExpectExec("INSERT INTO order_status_history").
		WithArgs(int64(10), "EN_ESPERA", "Orden creada").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	order := &entity.WorkOrder{ClientID: 1, MotorcycleID: 2, Status: entity.StatusWaiting}
	err := repo.CreateWithInitialHistory(order, "Orden creada")
	require.NoError(t, err)
	assert.Equal(t, int64(10), order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePayment(t *testing.T) {
	mock, repo, closeDB := newMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(int64(3), "EFECTIVO", 1500.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "paid_at"}).AddRow(int64(9), now))

	p := &entity.Payment{OrderID: 3, Method: entity.PaymentCash, Amount: 1500}
	err := repo.CreatePayment(p)
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
