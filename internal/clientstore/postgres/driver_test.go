package postgres

import (
	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.Contains(t, names, "1_client_store.up.sql")
	assert.Contains(t, names, "1_client_store.down.sql")
}

func TestQueriesUseDollarPlaceholders(t *testing.T) {
	sql, vals, err := psql.Select("value").
		From(tableEntries).
		Where(squirrel.Eq{"scope": "s", "key": "k"}).
		ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM client_store_entries WHERE key = $1 AND scope = $2", sql)
	assert.Equal(t, []interface{}{"k", "s"}, vals)

	sql, _, err = psql.Delete(tableEntries).Where(squirrel.Lt{"updated_at": time.Now()}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM client_store_entries WHERE updated_at < $1", sql)
}

func TestCloseWithoutInitialize(t *testing.T) {
	driver := New("postgres://localhost/cortex")
	assert.NotPanics(t, driver.Close)
}
