package snapshot

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)

	payload := []byte(`[{"id":"1"}]`)
	mock.ExpectQuery("SELECT data FROM snapshots").
		WithArgs(KeyAppointments).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(payload))

	got, err := store.Load(context.Background(), KeyAppointments)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadMissingKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)

	mock.ExpectQuery("SELECT data FROM snapshots").
		WithArgs(KeyFinances).
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, err = store.Load(context.Background(), KeyFinances)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestPostgresStore_SaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)

	payload := []byte(`[]`)
	mock.ExpectExec("INSERT INTO snapshots").
		WithArgs(KeyUsers, payload).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Save(context.Background(), KeyUsers, payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_InitSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS snapshots").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.InitSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
