package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadpulse/leadpulse/internal/database/schema"
)

func TestInitializeDatabase(t *testing.T) {
	t.Run("creates tables and seeds dimensions", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		for range schema.TableDefinitions {
			mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
		}

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM lead_sources").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		for range seedSources {
			mock.ExpectExec("INSERT INTO lead_sources").
				WillReturnResult(sqlmock.NewResult(1, 1))
		}

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM landing_pages").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("INSERT INTO landing_pages").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err = InitializeDatabase(db)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips seeding when dimensions exist", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		for range schema.TableDefinitions {
			mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM lead_sources").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM landing_pages").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err = InitializeDatabase(db)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("table creation failure propagates", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE").WillReturnError(errors.New("permission denied"))

		err = InitializeDatabase(db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create table")
	})
}
