package services

import (
	"context"
	"fmt"
	"testing"

	"backoffice/dto"
	"backoffice/errors"
	"backoffice/models"
	"backoffice/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectIDs(page dto.Page[dto.RoomView]) []string {
	ids := make([]string, 0, len(page.Items))
	for _, v := range page.Items {
		ids = append(ids, v.Room.ID)
	}
	return ids
}

func TestPagesConcatenateToFullListing(t *testing.T) {
	for _, order := range []string{"asc", "desc"} {
		t.Run(order, func(t *testing.T) {
			f := newFixture(t)
			p := f.property("A")
			rt := f.roomType(p, "Double")
			for i := 1; i <= 5; i++ {
				f.room(p, rt, fmt.Sprintf("10%d", i))
			}

			full := succeeded(t, f.svc.ListRooms(f.ctx, p, dto.PageRequest{Order: order, Limit: 50}))
			require.Len(t, full.Items, 5)
			assert.True(t, full.IsDone)
			assert.Empty(t, full.NextCursor)

			var got []string
			cursor := ""
			sizes := []int{}
			for {
				page := succeeded(t, f.svc.ListRooms(f.ctx, p, dto.PageRequest{Order: order, Limit: 2, Cursor: cursor}))
				sizes = append(sizes, len(page.Items))
				got = append(got, collectIDs(page)...)
				if page.IsDone {
					assert.Empty(t, page.NextCursor)
					break
				}
				require.NotEmpty(t, page.NextCursor)
				cursor = page.NextCursor
			}
			assert.Equal(t, []int{2, 2, 1}, sizes)
			assert.Equal(t, collectIDs(full), got)
		})
	}
}

func TestDefaultOrderIsNewestFirst(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	rt := f.roomType(p, "Double")
	first := f.room(p, rt, "101")
	last := f.room(p, rt, "102")

	page := succeeded(t, f.svc.ListRooms(f.ctx, p, dto.PageRequest{}))
	assert.Equal(t, []string{last, first}, collectIDs(page))
}

func TestCursorErrors(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	rt := f.roomType(p, "Double")
	for i := 1; i <= 3; i++ {
		f.room(p, rt, fmt.Sprintf("10%d", i))
	}

	res := f.svc.ListRooms(f.ctx, p, dto.PageRequest{Cursor: "not a cursor"})
	assert.Equal(t, "invalid cursor", failed(t, res, errors.ErrCodeValidation))

	page := succeeded(t, f.svc.ListRooms(f.ctx, p, dto.PageRequest{Order: "asc", Limit: 1}))
	require.NotEmpty(t, page.NextCursor)
	res = f.svc.ListRooms(f.ctx, p, dto.PageRequest{Order: "desc", Cursor: page.NextCursor})
	assert.Equal(t, "cursor was issued for asc order", failed(t, res, errors.ErrCodeValidation))

	res = f.svc.ListRooms(f.ctx, p, dto.PageRequest{Order: "sideways"})
	failed(t, res, errors.ErrCodeValidation)
}

func TestListForUnknownScopeIsEmpty(t *testing.T) {
	f := newFixture(t)

	page := succeeded(t, f.svc.ListRooms(f.ctx, "nowhere", dto.PageRequest{}))
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.True(t, page.IsDone)
}

func TestPageSizeIsCapped(t *testing.T) {
	clock := newTestClock()
	store := repository.NewMemoryStore(clock.Now)
	svc := NewService(ServiceOptions{Store: store, Clock: clock.Now, DefaultPageSize: 2, MaxPageSize: 3})
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := store.Properties.Insert(ctx, models.Property{Name: fmt.Sprintf("P%d", i)})
		require.NoError(t, err)
	}

	page := succeeded(t, svc.ListProperties(ctx, dto.PageRequest{}))
	assert.Len(t, page.Items, 2)
	page = succeeded(t, svc.ListProperties(ctx, dto.PageRequest{Limit: 50}))
	assert.Len(t, page.Items, 3)
	assert.False(t, page.IsDone)
}

func TestCursorRoundTrip(t *testing.T) {
	c := encodeCursor("0190a1b2-0000-7000-8000-000000000001", repository.Desc)
	after, err := decodeCursor(c, repository.Desc)
	require.NoError(t, err)
	assert.Equal(t, "0190a1b2-0000-7000-8000-000000000001", after)
}

func TestFuzzyMatch(t *testing.T) {
	words := []string{"harbor", "view", "suites"}

	assert.True(t, fuzzyMatch([]string{"harbour"}, words))
	assert.True(t, fuzzyMatch([]string{"harb", "sutes"}, words))
	assert.False(t, fuzzyMatch([]string{"harbour", "garden"}, words))
	assert.False(t, fuzzyMatch([]string{"vew"}, words))
	assert.False(t, fuzzyMatch([]string{"harbor"}, nil))
	assert.Equal(t, 2, typoAllowance("reception"))
}
