package inmem

import (
	"context"
	"github.com/cortex-platform/console/internal/clientstore"
	"github.com/hashicorp/go-memdb"
	"time"
)

const tableEntries = "entries"

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tableEntries: {
			Name: tableEntries,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "Scope"},
							&memdb.StringFieldIndex{Field: "Key"},
						},
					},
				},
			},
		},
	},
}

// Driver represents the in-memory client store driver built using hashicorp/go-memdb
type Driver struct {
	db  *memdb.MemDB
	now func() time.Time
}

var _ clientstore.Driver = (*Driver)(nil)

// New creates a new empty in-memory client store driver
func New() (*Driver, error) {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return nil, err
	}
	return &Driver{db: db, now: time.Now}, nil
}

// Initialize is a no-op as the database is created by New
func (driver *Driver) Initialize(_ context.Context) error {
	return nil
}

// Get retrieves the value stored under key inside scope
func (driver *Driver) Get(_ context.Context, scope, key string) (string, bool, error) {
	txn := driver.db.Txn(false)
	obj, err := txn.First(tableEntries, "id", scope, key)
	if err != nil {
		return "", false, err
	}
	if obj == nil {
		return "", false, nil
	}
	return obj.(*clientstore.Entry).Value, true, nil
}

// Set stores value under key inside scope
func (driver *Driver) Set(_ context.Context, scope, key, value string) error {
	entry := &clientstore.Entry{
		Scope:     scope,
		Key:       key,
		Value:     value,
		UpdatedAt: driver.now().UnixNano(),
	}

	txn := driver.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert(tableEntries, entry); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// Remove deletes the value stored under key inside scope
func (driver *Driver) Remove(_ context.Context, scope, key string) error {
	txn := driver.db.Txn(true)
	defer txn.Abort()
	if _, err := txn.DeleteAll(tableEntries, "id", scope, key); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// RemoveExpired deletes every entry that was last written before the given time
func (driver *Driver) RemoveExpired(_ context.Context, before time.Time) (int, error) {
	txn := driver.db.Txn(true)
	defer txn.Abort()

	// memdb encodes integers as varints which do not sort by value, so a full scan is required
	it, err := txn.Get(tableEntries, "id")
	if err != nil {
		return 0, err
	}

	limit := before.UnixNano()
	var stale []*clientstore.Entry
	for obj := it.Next(); obj != nil; obj = it.Next() {
		entry := obj.(*clientstore.Entry)
		if entry.UpdatedAt < limit {
			stale = append(stale, entry)
		}
	}
	for _, entry := range stale {
		if err := txn.Delete(tableEntries, entry); err != nil {
			return 0, err
		}
	}

	txn.Commit()
	return len(stale), nil
}

// Close drops all stored entries
func (driver *Driver) Close() {
	driver.db, _ = memdb.NewMemDB(dbSchema)
}
