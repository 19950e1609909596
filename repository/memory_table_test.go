package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestMemoryTableInsertStampsRow(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	store := NewMemoryStore(fixedClock(now))
	ctx := context.Background()

	room, err := store.Rooms.Insert(ctx, models.Room{PropertyID: "p1", RoomNumber: "101"})
	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, now.UnixMilli(), room.CreatedAt)
	assert.Equal(t, now.UnixMilli(), room.UpdatedAt)

	got, err := store.Rooms.Get(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, room, got)
}

func TestMemoryTableReadsAreCopies(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	rt, err := store.RoomTypes.Insert(ctx, models.RoomType{PropertyID: "p1", Name: "Deluxe", Amenities: []string{"wifi"}})
	require.NoError(t, err)

	got, err := store.RoomTypes.Get(ctx, rt.ID)
	require.NoError(t, err)
	got.Amenities[0] = "changed"
	got.Name = "changed"

	again, err := store.RoomTypes.Get(ctx, rt.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deluxe", again.Name)
	assert.Equal(t, "wifi", again.Amenities[0])
}

func TestMemoryTablePatch(t *testing.T) {
	current := time.UnixMilli(1_000)
	store := NewMemoryStore(func() time.Time { return current })
	ctx := context.Background()

	room, err := store.Rooms.Insert(ctx, models.Room{PropertyID: "p1", RoomNumber: "101"})
	require.NoError(t, err)

	current = time.UnixMilli(5_000)
	patched, err := store.Rooms.Patch(ctx, room.ID, func(r *models.Room) error {
		r.RoomNumber = "102"
		r.ID = "ignored"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, room.ID, patched.ID)
	assert.Equal(t, "102", patched.RoomNumber)
	assert.Equal(t, int64(1_000), patched.CreatedAt)
	assert.Equal(t, int64(5_000), patched.UpdatedAt)

	boom := errors.New("boom")
	_, err = store.Rooms.Patch(ctx, room.ID, func(r *models.Room) error {
		r.RoomNumber = "999"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := store.Rooms.Get(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "102", got.RoomNumber)

	_, err = store.Rooms.Patch(ctx, "missing", func(*models.Room) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryTableDelete(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	room, err := store.Rooms.Insert(ctx, models.Room{PropertyID: "p1"})
	require.NoError(t, err)

	require.NoError(t, store.Rooms.Delete(ctx, room.ID))
	assert.ErrorIs(t, store.Rooms.Delete(ctx, room.ID), ErrNotFound)

	found, err := Find(ctx, store.Rooms, room.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryTableScan(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	var ids []string
	for i, prop := range []string{"a", "b", "a", "a", "b"} {
		room, err := store.Rooms.Insert(ctx, models.Room{PropertyID: prop, Floor: i})
		require.NoError(t, err)
		ids = append(ids, room.ID)
	}

	asc, err := store.Rooms.Scan(ctx, Query[models.Room]{Index: ByProperty, Value: "a", Order: Asc})
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, []string{ids[0], ids[2], ids[3]}, roomIDs(asc))

	desc, err := store.Rooms.Scan(ctx, Query[models.Room]{Index: ByProperty, Value: "a", Order: Desc, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{ids[3], ids[2]}, roomIDs(desc))

	after, err := store.Rooms.Scan(ctx, Query[models.Room]{Index: ByProperty, Value: "a", Order: Desc, After: ids[2]})
	require.NoError(t, err)
	assert.Equal(t, []string{ids[0]}, roomIDs(after))

	filtered, err := store.Rooms.Scan(ctx, Query[models.Room]{
		Order:  Asc,
		After:  ids[0],
		Filter: func(r models.Room) bool { return r.Floor%2 == 0 },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{ids[2], ids[4]}, roomIDs(filtered))

	_, err = store.Rooms.Scan(ctx, Query[models.Room]{Index: "nope"})
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	ok, err := Exists(ctx, store.Rooms, Query[models.Room]{Index: ByProperty, Value: "p1"})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.Rooms.Insert(ctx, models.Room{PropertyID: "p1"})
	require.NoError(t, err)

	ok, err = Exists(ctx, store.Rooms, Query[models.Room]{Index: ByProperty, Value: "p1"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryTableHonoursCancelledContext(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Rooms.Insert(ctx, models.Room{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStoreRunsWithoutTransactions(t *testing.T) {
	store := NewMemoryStore(nil)
	assert.False(t, store.SupportsTransactions())

	called := false
	err := store.RunInTransaction(context.Background(), func(s *Store) error {
		called = true
		assert.Same(t, store, s)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func roomIDs(rows []models.Room) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}
