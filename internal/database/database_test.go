package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/gearshop/internal/config"
)

func newMock(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	return wrapMock(t)(sqlmock.New())
}

// wrapMock adapts the results of sqlmock.New; sqlmock's option type is
// unexported, so options must be passed to sqlmock.New at the call site.
func wrapMock(t *testing.T) func(*sql.DB, sqlmock.Sqlmock, error) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	return func(sqlDB *sql.DB, mock sqlmock.Sqlmock, err error) (*DB, sqlmock.Sqlmock) {
		require.NoError(t, err)
		t.Cleanup(func() { sqlDB.Close() })
		return Wrap(sqlDB), mock
	}
}

func TestSetupSchemaCreatesAllTables(t *testing.T) {
	db, mock := newMock(t)

	for _, table := range Tables {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, db.SetupSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetupSchemaReportsFailingTable(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS cart_items").WillReturnError(errors.New("boom"))

	err := db.SetupSchema(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart_items")
}

func TestDropSchemaChildrenFirst(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec("DROP TABLE IF EXISTS orders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DROP TABLE IF EXISTS purchases").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DROP TABLE IF EXISTS cart_items").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DROP TABLE IF EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, db.DropSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxCommits(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cart_items").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := db.WithTx(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec("DELETE FROM cart_items")
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db, mock := newMock(t)
	sentinel := errors.New("insert failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.WithTx(context.Background(), func(tx *sql.Tx) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck(t *testing.T) {
	db, mock := wrapMock(t)(sqlmock.New(sqlmock.MonitorPingsOption(true)))

	mock.ExpectPing()
	require.NoError(t, db.HealthCheck(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	require.Error(t, db.HealthCheck(context.Background()))
}

func TestNormalizeDSNEnablesParseTime(t *testing.T) {
	for _, dsn := range []string{
		"gearshop:secret@tcp(127.0.0.1:3306)/gearshop",
		"gearshop:secret@tcp(127.0.0.1:3306)/gearshop?parseTime=false",
		"gearshop:secret@tcp(127.0.0.1:3306)/gearshop?parseTime=true",
	} {
		out, err := normalizeDSN(dsn)
		require.NoError(t, err, dsn)

		parsed, err := mysql.ParseDSN(out)
		require.NoError(t, err)
		assert.True(t, parsed.ParseTime, dsn)
		assert.Equal(t, "gearshop", parsed.DBName)
		assert.Equal(t, "127.0.0.1:3306", parsed.Addr)
		assert.Equal(t, "secret", parsed.Passwd)
	}
}

func TestNewConnectionRejectsMalformedDSN(t *testing.T) {
	_, err := NewConnection(&config.DBConfig{DSN: "not a dsn"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database dsn")
}
