package controllers

import (
	"github.com/gin-gonic/gin"
)

func (ctl *Controller) CreateGuest(c *gin.Context) {
	create(c, ctl.svc.CreateGuest)
}

func (ctl *Controller) UpdateGuest(c *gin.Context) {
	update(c, ctl.svc.UpdateGuest)
}

func (ctl *Controller) DeleteGuest(c *gin.Context) {
	byID(c, ctl.svc.DeleteGuest)
}

func (ctl *Controller) GetGuest(c *gin.Context) {
	byID(c, ctl.svc.GetGuest)
}

func (ctl *Controller) ListGuests(c *gin.Context) {
	list(c, ctl.svc.ListGuests)
}

// CreateReservation godoc
// @Summary      Create a reservation
// @Description  checkOut must be after checkIn; guest and room must belong to the property.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateReservationRequest  true  "Reservation"
// @Success      201   {object}  response.Result[response.Empty]
// @Failure      409   {object}  response.Result[response.Empty]
// @Failure      422   {object}  response.Result[response.Empty]
// @Router       /reservations [post]
func (ctl *Controller) CreateReservation(c *gin.Context) {
	create(c, ctl.svc.CreateReservation)
}

func (ctl *Controller) UpdateReservation(c *gin.Context) {
	update(c, ctl.svc.UpdateReservation)
}

func (ctl *Controller) DeleteReservation(c *gin.Context) {
	byID(c, ctl.svc.DeleteReservation)
}

func (ctl *Controller) GetReservation(c *gin.Context) {
	byID(c, ctl.svc.GetReservation)
}

func (ctl *Controller) ListReservations(c *gin.Context) {
	list(c, ctl.svc.ListReservations)
}
