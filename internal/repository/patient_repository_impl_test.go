package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func patientRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"patient_id", "name", "appointment_date", "appointment_time", "doctor_status"}).
		AddRow(1, "Ravi Kumar", "05-JAN-24", "09:00:00", "Pending").
		AddRow(2, "Sita Devi", "05-JAN-24", "10:15:00", "Completed")
}

func TestPatientFindByIDReturnsNilOnMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE patient_id = `).
		WithArgs(int64(99), 1).
		WillReturnRows(sqlmock.NewRows([]string{"patient_id"}))

	patient, err := repo.FindByID(context.Background(), db, 99)
	require.NoError(t, err)
	assert.Nil(t, patient)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientFindAllOrdersByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectQuery(`SELECT \* FROM "patients" ORDER BY patient_id ASC`).
		WillReturnRows(patientRows())

	patients, err := repo.FindAll(context.Background(), db)
	require.NoError(t, err)
	assert.Len(t, patients, 2)
	assert.Equal(t, "Ravi Kumar", patients[0].Name)
}

func TestPatientFindByStatusLowersBothSides(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE LOWER\(doctor_status\) = LOWER\(\$1\) ORDER BY patient_id ASC`).
		WithArgs("PENDING").
		WillReturnRows(patientRows())

	patients, err := repo.FindByDoctorStatus(context.Background(), db, "PENDING")
	require.NoError(t, err)
	assert.Len(t, patients, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientFilterNormalizesDatesInSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectQuery(`TO_DATE\(p\.appointment_date, 'DD-MON-YY'\) = TO_DATE\(\$\d, 'YYYY-MM-DD'\)[\s\S]*ORDER BY p\.appointment_time ASC`).
		WillReturnRows(patientRows())

	patients, err := repo.FilterByDateStatusDoctor(context.Background(), db, "2024-01-05", "all", "", 0)
	require.NoError(t, err)
	assert.Len(t, patients, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientFullDetailsMissingPatient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectQuery(`LEFT JOIN LATERAL`).
		WillReturnRows(sqlmock.NewRows([]string{"patient_id"}))

	row, err := repo.FullDetails(context.Background(), db, 404)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestPatientFullDetailsJoinsBookingAndWard(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	rows := sqlmock.NewRows([]string{
		"patient_id", "name", "doctor_status",
		"booking_id", "bed_id", "bed_status",
		"ward_id", "ward_name",
	}).AddRow(1, "Ravi Kumar", "Pending", 10, 4, "Occupied", 3, "General")

	mock.ExpectQuery(`LEFT JOIN LATERAL`).WillReturnRows(rows)

	row, err := repo.FullDetails(context.Background(), db, 1)
	require.NoError(t, err)
	require.NotNil(t, row)
	require.NotNil(t, row.BookingID)
	assert.Equal(t, int64(10), *row.BookingID)
	require.NotNil(t, row.BedStatus)
	assert.Equal(t, "Occupied", *row.BedStatus)
	require.NotNil(t, row.WardName)
	assert.Equal(t, "General", *row.WardName)
}

func TestPatientDeleteReportsRowsAffected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "patients" WHERE patient_id = `).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.Delete(context.Background(), db, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}
