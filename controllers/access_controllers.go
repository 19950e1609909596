package controllers

import (
	"github.com/gin-gonic/gin"
)

func (ctl *Controller) CreateUser(c *gin.Context) {
	create(c, ctl.svc.CreateUser)
}

func (ctl *Controller) UpdateUser(c *gin.Context) {
	update(c, ctl.svc.UpdateUser)
}

func (ctl *Controller) DeleteUser(c *gin.Context) {
	byID(c, ctl.svc.DeleteUser)
}

func (ctl *Controller) GetUser(c *gin.Context) {
	byID(c, ctl.svc.GetUser)
}

func (ctl *Controller) ListUsers(c *gin.Context) {
	listAll(c, ctl.svc.ListUsers)
}

func (ctl *Controller) CreateRole(c *gin.Context) {
	create(c, ctl.svc.CreateRole)
}

func (ctl *Controller) UpdateRole(c *gin.Context) {
	update(c, ctl.svc.UpdateRole)
}

func (ctl *Controller) DeleteRole(c *gin.Context) {
	byID(c, ctl.svc.DeleteRole)
}

func (ctl *Controller) GetRole(c *gin.Context) {
	byID(c, ctl.svc.GetRole)
}

func (ctl *Controller) ListRoles(c *gin.Context) {
	listAll(c, ctl.svc.ListRoles)
}

func (ctl *Controller) CreateUserRole(c *gin.Context) {
	create(c, ctl.svc.CreateUserRole)
}

func (ctl *Controller) UpdateUserRole(c *gin.Context) {
	update(c, ctl.svc.UpdateUserRole)
}

func (ctl *Controller) DeleteUserRole(c *gin.Context) {
	byID(c, ctl.svc.DeleteUserRole)
}

func (ctl *Controller) GetUserRole(c *gin.Context) {
	byID(c, ctl.svc.GetUserRole)
}

func (ctl *Controller) ListUserRoles(c *gin.Context) {
	list(c, ctl.svc.ListUserRoles)
}
