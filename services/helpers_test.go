package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"backoffice/dto"
	"backoffice/errors"
	"backoffice/repository"
	"backoffice/response"

	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	t     *testing.T
	ctx   context.Context
	clock *testClock
	store *repository.Store
	svc   *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := newTestClock()
	store := repository.NewMemoryStore(clock.Now)
	svc := NewService(ServiceOptions{
		Store:  store,
		Locker: NewMemoryLocker(),
		Clock:  clock.Now,
	})
	return &fixture{t: t, ctx: context.Background(), clock: clock, store: store, svc: svc}
}

// created asserts a successful create and returns the new id.
func created(t *testing.T, res response.Result[response.Empty]) string {
	t.Helper()
	require.True(t, res.Success, "unexpected failure: %s %s", res.Code, res.Message)
	require.NotEmpty(t, res.ID)
	return res.ID
}

func succeeded[T any](t *testing.T, res response.Result[T]) T {
	t.Helper()
	require.True(t, res.Success, "unexpected failure: %s %s", res.Code, res.Message)
	return res.Data
}

func failed[T any](t *testing.T, res response.Result[T], code errors.ErrorCode) string {
	t.Helper()
	require.False(t, res.Success)
	require.Equal(t, code, res.Code, res.Message)
	require.NotEmpty(t, res.Message)
	return res.Message
}

func (f *fixture) property(name string) string {
	return created(f.t, f.svc.CreateProperty(f.ctx, dto.CreatePropertyRequest{Name: name}))
}

func (f *fixture) roomType(propertyID, name string) string {
	return created(f.t, f.svc.CreateRoomType(f.ctx, dto.CreateRoomTypeRequest{
		PropertyID:   propertyID,
		Name:         name,
		MaxOccupancy: 2,
		BaseRate:     100,
	}))
}

func (f *fixture) room(propertyID, roomTypeID, number string) string {
	return created(f.t, f.svc.CreateRoom(f.ctx, dto.CreateRoomRequest{
		PropertyID: propertyID,
		RoomTypeID: roomTypeID,
		RoomNumber: number,
	}))
}

func (f *fixture) staff(propertyID, name string) string {
	return created(f.t, f.svc.CreateStaff(f.ctx, dto.CreateStaffRequest{PropertyID: propertyID, Name: name}))
}

func (f *fixture) guest(propertyID, first, last string) string {
	return created(f.t, f.svc.CreateGuest(f.ctx, dto.CreateGuestRequest{PropertyID: propertyID, FirstName: first, LastName: last}))
}

func (f *fixture) item(propertyID, sku string, qty, reorder float64) string {
	return created(f.t, f.svc.CreateInventoryItem(f.ctx, dto.CreateInventoryItemRequest{
		PropertyID:      propertyID,
		SKU:             sku,
		Name:            "Item " + sku,
		Unit:            "pcs",
		CurrentQuantity: qty,
		ReorderPoint:    reorder,
		UnitCost:        1,
	}))
}

func (f *fixture) task(propertyID, roomID string) string {
	return created(f.t, f.svc.CreateHousekeepingTask(f.ctx, dto.CreateHousekeepingTaskRequest{
		PropertyID: propertyID,
		RoomID:     roomID,
		TaskType:   "cleaning",
	}))
}

// failingTable fails every call with err.
type failingTable[T any] struct {
	repository.Table[T]
	err error
}

func (f failingTable[T]) Get(context.Context, string) (T, error) {
	var zero T
	return zero, f.err
}

func (f failingTable[T]) Insert(context.Context, T) (T, error) {
	var zero T
	return zero, f.err
}

func (f failingTable[T]) Patch(context.Context, string, func(*T) error) (T, error) {
	var zero T
	return zero, f.err
}

func (f failingTable[T]) Delete(context.Context, string) error {
	return f.err
}

func (f failingTable[T]) Scan(context.Context, repository.Query[T]) ([]T, error) {
	return nil, f.err
}

func ptr[T any](v T) *T { return &v }
