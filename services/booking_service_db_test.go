package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestBookSpotInsertsWhenClear(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE spot_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "spot_id", "user_id"}))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	b := booking(0, "2026-09-10", "2026-09-15")
	b.UserID = 3
	require.NoError(t, BookSpot(db, &b))
	assert.Equal(t, uint(5), b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookSpotRejectsExistingOverlap(t *testing.T) {
	db, mock := newMockDB(t)

	existing := booking(7, "2026-09-12", "2026-09-18")
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE spot_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "spot_id", "user_id", "start_date", "end_date"}).
			AddRow(existing.ID, existing.SpotID, existing.UserID, existing.StartDate, existing.EndDate))
	mock.ExpectRollback()

	b := booking(0, "2026-09-10", "2026-09-15")
	err := BookSpot(db, &b)
	require.Error(t, err)
	assert.True(t, IsConflictError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookSpotMapsSerializationAbortToConflict(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE spot_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "spot_id", "user_id"}))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnError(&pgconn.PgError{Code: "40001", Message: "could not serialize access"})
	mock.ExpectRollback()

	b := booking(0, "2026-09-10", "2026-09-15")
	err := BookSpot(db, &b)
	require.Error(t, err)
	assert.True(t, IsConflictError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRescheduleBookingMapsSerializationAbortToConflict(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "bookings" WHERE spot_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "spot_id", "user_id"}))
	mock.ExpectExec(`UPDATE "bookings"`).
		WillReturnError(&pgconn.PgError{Code: "40001", Message: "could not serialize access"})
	mock.ExpectRollback()

	b := booking(9, "2026-09-10", "2026-09-15")
	err := RescheduleBooking(db, &b, day("2026-09-20"), day("2026-09-25"))
	require.Error(t, err)
	assert.True(t, IsConflictError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
