package services

import (
	stderrors "errors"
	"testing"

	"backoffice/dto"
	"backoffice/errors"
	"backoffice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePropertyRejectsDuplicateName(t *testing.T) {
	f := newFixture(t)
	f.property("Harbor View")

	res := f.svc.CreateProperty(f.ctx, dto.CreatePropertyRequest{Name: "  Harbor View "})
	msg := failed(t, res, errors.ErrCodeConflict)
	assert.Contains(t, msg, "name")
}

func TestCreatePropertyRejectsBlankName(t *testing.T) {
	f := newFixture(t)

	res := f.svc.CreateProperty(f.ctx, dto.CreatePropertyRequest{Name: "   "})
	assert.Equal(t, "name is required", failed(t, res, errors.ErrCodeValidation))
}

func TestCreatePropertyRejectsBadEmail(t *testing.T) {
	f := newFixture(t)

	res := f.svc.CreateProperty(f.ctx, dto.CreatePropertyRequest{Name: "Harbor", Email: "nope"})
	assert.Contains(t, failed(t, res, errors.ErrCodeValidation), "email")
}

func TestUpdatePropertyMayKeepItsOwnName(t *testing.T) {
	f := newFixture(t)
	id := f.property("Harbor View")
	other := f.property("Hill Lodge")

	res := f.svc.UpdateProperty(f.ctx, id, dto.UpdatePropertyRequest{Name: ptr("Harbor View"), Phone: ptr("555")})
	assert.True(t, res.Success, res.Message)
	assert.Empty(t, res.ID)

	res = f.svc.UpdateProperty(f.ctx, other, dto.UpdatePropertyRequest{Name: ptr("Harbor View")})
	failed(t, res, errors.ErrCodeConflict)

	got := succeeded(t, f.svc.GetProperty(f.ctx, id))
	require.NotNil(t, got)
	assert.Equal(t, "555", got.Phone)
}

func TestUpdatePropertyKeepsFalseFlag(t *testing.T) {
	f := newFixture(t)
	id := f.property("Harbor View")

	require.True(t, f.svc.UpdateProperty(f.ctx, id, dto.UpdatePropertyRequest{IsActive: ptr(false)}).Success)

	got := succeeded(t, f.svc.GetProperty(f.ctx, id))
	require.NotNil(t, got)
	assert.False(t, got.IsActive)
}

func TestUpdateMissingPropertyIsNotFound(t *testing.T) {
	f := newFixture(t)

	res := f.svc.UpdateProperty(f.ctx, "missing", dto.UpdatePropertyRequest{Name: ptr("x")})
	assert.Equal(t, "property not found", failed(t, res, errors.ErrCodeNotFound))
}

func TestGetMissingPropertyReturnsNil(t *testing.T) {
	f := newFixture(t)

	res := f.svc.GetProperty(f.ctx, "missing")
	assert.True(t, res.Success)
	assert.Nil(t, res.Data)
}

func TestDeletePropertyRefusedWhileScopedRowsExist(t *testing.T) {
	f := newFixture(t)
	id := f.property("Harbor View")
	rt := f.roomType(id, "Double")

	msg := failed(t, f.svc.DeleteProperty(f.ctx, id), errors.ErrCodeReference)
	assert.Contains(t, msg, "room types")

	require.True(t, f.svc.DeleteRoomType(f.ctx, rt).Success)
	assert.True(t, f.svc.DeleteProperty(f.ctx, id).Success)

	got := succeeded(t, f.svc.GetProperty(f.ctx, id))
	assert.Nil(t, got)
}

func TestStorageFailureReturnsGenericMessage(t *testing.T) {
	f := newFixture(t)
	f.store.Properties = failingTable[models.Property]{
		Table: f.store.Properties,
		err:   stderrors.New("connection refused to 10.0.0.3:5432"),
	}

	res := f.svc.CreateProperty(f.ctx, dto.CreatePropertyRequest{Name: "Harbor View"})
	msg := failed(t, res, errors.ErrCodeDBError)
	assert.Equal(t, errors.GenericFailureMessage, msg)
	assert.NotContains(t, msg, "10.0.0.3")

	get := f.svc.GetProperty(f.ctx, "any")
	assert.Equal(t, errors.GenericFailureMessage, failed(t, get, errors.ErrCodeDBError))
}

func TestListPropertiesSearchFoldsAccents(t *testing.T) {
	f := newFixture(t)
	f.property("Café Riverside")
	f.property("Mountain Inn")

	page := succeeded(t, f.svc.ListProperties(f.ctx, dto.PageRequest{Search: "CAFE"}))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Café Riverside", page.Items[0].Name)
	assert.True(t, page.IsDone)
}

func TestListPropertiesSearchToleratesTypos(t *testing.T) {
	f := newFixture(t)
	f.property("Seaside Resort")
	f.property("Mountain Inn")

	page := succeeded(t, f.svc.ListProperties(f.ctx, dto.PageRequest{Search: "seasde"}))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Seaside Resort", page.Items[0].Name)

	page = succeeded(t, f.svc.ListProperties(f.ctx, dto.PageRequest{Search: "montain inn"}))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Mountain Inn", page.Items[0].Name)

	// Short words get no typo allowance.
	page = succeeded(t, f.svc.ListProperties(f.ctx, dto.PageRequest{Search: "inm"}))
	assert.Empty(t, page.Items)
}
