package controllers

import (
	"context"
	"net/http"

	"backoffice/dto"
	"backoffice/response"
	"backoffice/services"
	"backoffice/validator"

	"github.com/gin-gonic/gin"
)

// Controller exposes the back-office service over HTTP. Handlers only bind
// input and map the result envelope onto a status code.
type Controller struct {
	svc *services.Service
}

func NewController(svc *services.Service) *Controller {
	return &Controller{svc: svc}
}

func create[R any](c *gin.Context, fn func(context.Context, R) response.Result[response.Empty]) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		badInput(c, err)
		return
	}
	response.Write(c, http.StatusCreated, fn(c.Request.Context(), req))
}

func update[R any](c *gin.Context, fn func(context.Context, string, R) response.Result[response.Empty]) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		badInput(c, err)
		return
	}
	response.Write(c, http.StatusOK, fn(c.Request.Context(), c.Param("id"), req))
}

// byID serves GET, DELETE and the task shorthands.
func byID[T any](c *gin.Context, fn func(context.Context, string) response.Result[T]) {
	response.Write(c, http.StatusOK, fn(c.Request.Context(), c.Param("id")))
}

// list serves a collection scoped by the :id path parameter.
func list[T any](c *gin.Context, fn func(context.Context, string, dto.PageRequest) response.Result[dto.Page[T]]) {
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	response.Write(c, http.StatusOK, fn(c.Request.Context(), c.Param("id"), req))
}

func listAll[T any](c *gin.Context, fn func(context.Context, dto.PageRequest) response.Result[dto.Page[T]]) {
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	response.Write(c, http.StatusOK, fn(c.Request.Context(), req))
}

func pageRequest(c *gin.Context) (dto.PageRequest, bool) {
	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badInput(c, err)
		return req, false
	}
	return req, true
}

func badInput(c *gin.Context, err error) {
	response.Write(c, http.StatusOK, response.Fail[response.Empty](validator.Translate(err)))
}
