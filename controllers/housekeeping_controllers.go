package controllers

import (
	"github.com/gin-gonic/gin"
)

func (ctl *Controller) CreateStaff(c *gin.Context) {
	create(c, ctl.svc.CreateStaff)
}

func (ctl *Controller) UpdateStaff(c *gin.Context) {
	update(c, ctl.svc.UpdateStaff)
}

func (ctl *Controller) DeleteStaff(c *gin.Context) {
	byID(c, ctl.svc.DeleteStaff)
}

func (ctl *Controller) GetStaff(c *gin.Context) {
	byID(c, ctl.svc.GetStaff)
}

func (ctl *Controller) ListStaff(c *gin.Context) {
	list(c, ctl.svc.ListStaff)
}

// CreateHousekeepingTask godoc
// @Summary      Create a housekeeping task
// @Tags         housekeeping
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateHousekeepingTaskRequest  true  "Task"
// @Success      201   {object}  response.Result[response.Empty]
// @Failure      422   {object}  response.Result[response.Empty]
// @Router       /housekeeping-tasks [post]
func (ctl *Controller) CreateHousekeepingTask(c *gin.Context) {
	create(c, ctl.svc.CreateHousekeepingTask)
}

// UpdateHousekeepingTask godoc
// @Summary      Update a housekeeping task
// @Description  Status changes follow pending -> in-progress -> completed|skipped. Completing derives the duration.
// @Tags         housekeeping
// @Accept       json
// @Produce      json
// @Param        id    path      string                             true  "Task id"
// @Param        body  body      dto.UpdateHousekeepingTaskRequest  true  "Changed fields"
// @Success      200   {object}  response.Result[response.Empty]
// @Failure      409   {object}  response.Result[response.Empty]
// @Router       /housekeeping-tasks/{id} [put]
func (ctl *Controller) UpdateHousekeepingTask(c *gin.Context) {
	update(c, ctl.svc.UpdateHousekeepingTask)
}

func (ctl *Controller) DeleteHousekeepingTask(c *gin.Context) {
	byID(c, ctl.svc.DeleteHousekeepingTask)
}

func (ctl *Controller) GetHousekeepingTask(c *gin.Context) {
	byID(c, ctl.svc.GetHousekeepingTask)
}

func (ctl *Controller) ListHousekeepingTasks(c *gin.Context) {
	list(c, ctl.svc.ListHousekeepingTasks)
}

func (ctl *Controller) StartHousekeepingTask(c *gin.Context) {
	byID(c, ctl.svc.StartHousekeepingTask)
}

func (ctl *Controller) CompleteHousekeepingTask(c *gin.Context) {
	byID(c, ctl.svc.CompleteHousekeepingTask)
}

func (ctl *Controller) SkipHousekeepingTask(c *gin.Context) {
	byID(c, ctl.svc.SkipHousekeepingTask)
}

func (ctl *Controller) ReopenHousekeepingTask(c *gin.Context) {
	byID(c, ctl.svc.ReopenHousekeepingTask)
}
