package controllers

import (
	"github.com/gin-gonic/gin"
)

// CreateProperty godoc
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePropertyRequest  true  "Property"
// @Success      201   {object}  response.Result[response.Empty]
// @Failure      400   {object}  response.Result[response.Empty]
// @Failure      409   {object}  response.Result[response.Empty]
// @Router       /properties [post]
func (ctl *Controller) CreateProperty(c *gin.Context) {
	create(c, ctl.svc.CreateProperty)
}

// UpdateProperty godoc
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Property id"
// @Param        body  body      dto.UpdatePropertyRequest  true  "Changed fields"
// @Success      200   {object}  response.Result[response.Empty]
// @Failure      404   {object}  response.Result[response.Empty]
// @Router       /properties/{id} [put]
func (ctl *Controller) UpdateProperty(c *gin.Context) {
	update(c, ctl.svc.UpdateProperty)
}

// DeleteProperty godoc
// @Summary      Delete a property
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  response.Result[response.Empty]
// @Failure      422  {object}  response.Result[response.Empty]
// @Router       /properties/{id} [delete]
func (ctl *Controller) DeleteProperty(c *gin.Context) {
	byID(c, ctl.svc.DeleteProperty)
}

// GetProperty godoc
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  response.Result[models.Property]
// @Router       /properties/{id} [get]
func (ctl *Controller) GetProperty(c *gin.Context) {
	byID(c, ctl.svc.GetProperty)
}

// ListProperties godoc
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Param        limit   query     int     false  "Page size"
// @Param        cursor  query     string  false  "nextCursor of the previous page"
// @Param        order   query     string  false  "asc or desc"
// @Param        search  query     string  false  "Accent-insensitive name filter"
// @Success      200     {object}  response.Result[dto.Page[models.Property]]
// @Router       /properties [get]
func (ctl *Controller) ListProperties(c *gin.Context) {
	listAll(c, ctl.svc.ListProperties)
}

func (ctl *Controller) CreateRoomType(c *gin.Context) {
	create(c, ctl.svc.CreateRoomType)
}

func (ctl *Controller) UpdateRoomType(c *gin.Context) {
	update(c, ctl.svc.UpdateRoomType)
}

func (ctl *Controller) DeleteRoomType(c *gin.Context) {
	byID(c, ctl.svc.DeleteRoomType)
}

func (ctl *Controller) GetRoomType(c *gin.Context) {
	byID(c, ctl.svc.GetRoomType)
}

func (ctl *Controller) ListRoomTypes(c *gin.Context) {
	list(c, ctl.svc.ListRoomTypes)
}

// CreateRoom godoc
// @Summary      Create a room
// @Description  Room numbers are unique within a property.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateRoomRequest  true  "Room"
// @Success      201   {object}  response.Result[response.Empty]
// @Failure      409   {object}  response.Result[response.Empty]
// @Failure      422   {object}  response.Result[response.Empty]
// @Router       /rooms [post]
func (ctl *Controller) CreateRoom(c *gin.Context) {
	create(c, ctl.svc.CreateRoom)
}

func (ctl *Controller) UpdateRoom(c *gin.Context) {
	update(c, ctl.svc.UpdateRoom)
}

func (ctl *Controller) DeleteRoom(c *gin.Context) {
	byID(c, ctl.svc.DeleteRoom)
}

// GetRoom godoc
// @Summary      Get a room with its room type
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  response.Result[dto.RoomView]
// @Router       /rooms/{id} [get]
func (ctl *Controller) GetRoom(c *gin.Context) {
	byID(c, ctl.svc.GetRoom)
}

// ListRooms godoc
// @Summary      List the rooms of a property
// @Tags         rooms
// @Produce      json
// @Param        id      path      string  true   "Property id"
// @Param        limit   query     int     false  "Page size"
// @Param        cursor  query     string  false  "nextCursor of the previous page"
// @Param        order   query     string  false  "asc or desc"
// @Success      200     {object}  response.Result[dto.Page[dto.RoomView]]
// @Router       /properties/{id}/rooms [get]
func (ctl *Controller) ListRooms(c *gin.Context) {
	list(c, ctl.svc.ListRooms)
}

func (ctl *Controller) CreateRatePlan(c *gin.Context) {
	create(c, ctl.svc.CreateRatePlan)
}

func (ctl *Controller) UpdateRatePlan(c *gin.Context) {
	update(c, ctl.svc.UpdateRatePlan)
}

func (ctl *Controller) DeleteRatePlan(c *gin.Context) {
	byID(c, ctl.svc.DeleteRatePlan)
}

func (ctl *Controller) GetRatePlan(c *gin.Context) {
	byID(c, ctl.svc.GetRatePlan)
}

func (ctl *Controller) ListRatePlans(c *gin.Context) {
	list(c, ctl.svc.ListRatePlans)
}
