package controllers

import (
	"net/http"

	"backoffice/response"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) CreateFnbMenuItem(c *gin.Context) {
	create(c, ctl.svc.CreateFnbMenuItem)
}

func (ctl *Controller) UpdateFnbMenuItem(c *gin.Context) {
	update(c, ctl.svc.UpdateFnbMenuItem)
}

func (ctl *Controller) DeleteFnbMenuItem(c *gin.Context) {
	byID(c, ctl.svc.DeleteFnbMenuItem)
}

func (ctl *Controller) GetFnbMenuItem(c *gin.Context) {
	byID(c, ctl.svc.GetFnbMenuItem)
}

func (ctl *Controller) ListFnbMenuItems(c *gin.Context) {
	list(c, ctl.svc.ListFnbMenuItems)
}

func (ctl *Controller) CreateRecipe(c *gin.Context) {
	create(c, ctl.svc.CreateRecipe)
}

func (ctl *Controller) UpdateRecipe(c *gin.Context) {
	update(c, ctl.svc.UpdateRecipe)
}

// DeleteRecipe godoc
// @Summary      Delete a recipe and its lines
// @Tags         fnb
// @Produce      json
// @Param        id   path      string  true  "Recipe id"
// @Success      200  {object}  response.Result[response.Empty]
// @Failure      500  {object}  response.Result[response.Empty]
// @Router       /recipes/{id} [delete]
func (ctl *Controller) DeleteRecipe(c *gin.Context) {
	byID(c, ctl.svc.DeleteRecipe)
}

func (ctl *Controller) GetRecipe(c *gin.Context) {
	byID(c, ctl.svc.GetRecipe)
}

// ListRecipes lists the recipes of the menu item in :id.
func (ctl *Controller) ListRecipes(c *gin.Context) {
	list(c, ctl.svc.ListRecipes)
}

func (ctl *Controller) CreateRecipeLine(c *gin.Context) {
	create(c, ctl.svc.CreateRecipeLine)
}

func (ctl *Controller) UpdateRecipeLine(c *gin.Context) {
	update(c, ctl.svc.UpdateRecipeLine)
}

func (ctl *Controller) DeleteRecipeLine(c *gin.Context) {
	byID(c, ctl.svc.DeleteRecipeLine)
}

func (ctl *Controller) GetRecipeLine(c *gin.Context) {
	byID(c, ctl.svc.GetRecipeLine)
}

// ListRecipeLines lists the lines of the recipe in :id.
func (ctl *Controller) ListRecipeLines(c *gin.Context) {
	list(c, ctl.svc.ListRecipeLines)
}

// RepairRecipeLines godoc
// @Summary      Remove recipe lines whose recipe no longer exists
// @Tags         maintenance
// @Produce      json
// @Success      200  {object}  response.Result[dto.RepairReport]
// @Router       /maintenance/recipe-lines/repair [post]
func (ctl *Controller) RepairRecipeLines(c *gin.Context) {
	response.Write(c, http.StatusOK, ctl.svc.RepairOrphanRecipeLines(c.Request.Context()))
}
