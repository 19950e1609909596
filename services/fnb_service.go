package services

import (
	"context"
	stderrors "errors"

	"backoffice/commands"
	"backoffice/dto"
	"backoffice/errors"
	"backoffice/models"
	"backoffice/repository"
	"backoffice/response"
	"backoffice/validator"
)

func (s *Service) CreateFnbMenuItem(ctx context.Context, req dto.CreateFnbMenuItemRequest) response.Result[response.Empty] {
	return write(s, ctx, "createFnbMenuItem", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		item := models.FnbMenuItem{
			PropertyID:  text(req.PropertyID),
			Name:        text(req.Name),
			Category:    text(req.Category),
			Price:       req.Price,
			Cost:        req.Cost,
			IsAvailable: boolOr(req.IsAvailable, true),
		}
		if err := validator.Required("name", item.Name); err != nil {
			return "", err
		}
		if _, err := s.requireProperty(ctx, item.PropertyID); err != nil {
			return "", err
		}
		var id string
		err := s.withLock(ctx, scope("fnb_menu_items", item.PropertyID), func() error {
			if err := s.checkMenuItemUnique(ctx, item, ""); err != nil {
				return err
			}
			created, err := s.store.FnbMenuItems.Insert(ctx, item)
			id = created.ID
			return err
		})
		return id, err
	})
}

func applyMenuItemUpdate(item *models.FnbMenuItem, req dto.UpdateFnbMenuItemRequest) {
	if req.Name != nil {
		item.Name = *textPtr(req.Name)
	}
	if req.Category != nil {
		item.Category = *textPtr(req.Category)
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Cost != nil {
		item.Cost = *req.Cost
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
}

func (s *Service) UpdateFnbMenuItem(ctx context.Context, id string, req dto.UpdateFnbMenuItemRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateFnbMenuItem", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.FnbMenuItems, id, kindMenuItem)
		if err != nil {
			return "", err
		}
		merged := current
		applyMenuItemUpdate(&merged, req)
		if err := validator.Required("name", merged.Name); err != nil {
			return "", err
		}
		return "", s.withLock(ctx, scope("fnb_menu_items", current.PropertyID), func() error {
			if err := s.checkMenuItemUnique(ctx, merged, current.ID); err != nil {
				return err
			}
			_, err := s.store.FnbMenuItems.Patch(ctx, current.ID, func(item *models.FnbMenuItem) error {
				applyMenuItemUpdate(item, req)
				return nil
			})
			return err
		})
	})
}

// DeleteFnbMenuItem refuses while the item still has a recipe.
func (s *Service) DeleteFnbMenuItem(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteFnbMenuItem", func(ctx context.Context) (string, error) {
		item, err := load(ctx, s.store.FnbMenuItems, id, kindMenuItem)
		if err != nil {
			return "", err
		}
		if err := s.refuseIfReferenced(ctx, kindMenuItem, item.ID); err != nil {
			return "", err
		}
		return "", s.store.FnbMenuItems.Delete(ctx, item.ID)
	})
}

func (s *Service) GetFnbMenuItem(ctx context.Context, id string) response.Result[*models.FnbMenuItem] {
	return read(s, ctx, "getFnbMenuItem", func(ctx context.Context) (*models.FnbMenuItem, error) {
		return repository.Find(ctx, s.store.FnbMenuItems, text(id))
	})
}

func (s *Service) ListFnbMenuItems(ctx context.Context, propertyID string, req dto.PageRequest) response.Result[dto.Page[models.FnbMenuItem]] {
	return read(s, ctx, "listFnbMenuItems", func(ctx context.Context) (dto.Page[models.FnbMenuItem], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[models.FnbMenuItem]{}, err
		}
		filter := searchFilter(q.term, func(m models.FnbMenuItem) []string { return []string{m.Name, m.Category} })
		return paginate[models.FnbMenuItem](ctx, s.store.FnbMenuItems, repository.ByProperty, text(propertyID), q, filter, identity[models.FnbMenuItem])
	})
}

func (s *Service) CreateRecipe(ctx context.Context, req dto.CreateRecipeRequest) response.Result[response.Empty] {
	return write(s, ctx, "createRecipe", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		recipe := models.Recipe{
			MenuItemID:   text(req.MenuItemID),
			Name:         text(req.Name),
			Instructions: req.Instructions,
			Yield:        req.Yield,
		}
		if err := validator.Required("name", recipe.Name); err != nil {
			return "", err
		}
		if _, err := requireRow(ctx, s.store.FnbMenuItems, recipe.MenuItemID, "menu item"); err != nil {
			return "", err
		}
		var id string
		err := s.withLock(ctx, scope("recipes", recipe.MenuItemID), func() error {
			if err := s.checkRecipeUnique(ctx, recipe, ""); err != nil {
				return err
			}
			created, err := s.store.Recipes.Insert(ctx, recipe)
			id = created.ID
			return err
		})
		return id, err
	})
}

// UpdateRecipe edits the recipe body. The menu item cannot change.
func (s *Service) UpdateRecipe(ctx context.Context, id string, req dto.UpdateRecipeRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateRecipe", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.Recipes, id, "recipe")
		if err != nil {
			return "", err
		}
		if req.Name != nil {
			if err := validator.Required("name", *req.Name); err != nil {
				return "", err
			}
		}
		_, err = s.store.Recipes.Patch(ctx, current.ID, func(r *models.Recipe) error {
			if req.Name != nil {
				r.Name = *textPtr(req.Name)
			}
			if req.Instructions != nil {
				r.Instructions = *req.Instructions
			}
			if req.Yield != nil {
				r.Yield = *req.Yield
			}
			return nil
		})
		return "", err
	})
}

// DeleteRecipe removes the recipe together with its lines, lines first. On a
// store without transactions an interrupted run leaves the recipe in place
// and reports a partial failure; the delete can be retried.
func (s *Service) DeleteRecipe(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteRecipe", func(ctx context.Context) (string, error) {
		recipe, err := load(ctx, s.store.Recipes, id, "recipe")
		if err != nil {
			return "", err
		}
		err = s.store.RunInTransaction(ctx, func(st *repository.Store) error {
			lines, err := st.RecipeLines.Scan(ctx, repository.Query[models.RecipeLine]{
				Index: repository.ByRecipe,
				Value: recipe.ID,
				Order: repository.Asc,
			})
			if err != nil {
				return err
			}
			batch := commands.NewBatch()
			for _, line := range lines {
				batch.Add(commands.NewDeleteCommand(st.RecipeLines, line.ID))
			}
			batch.Add(commands.NewDeleteCommand(st.Recipes, recipe.ID))
			return batch.Execute(ctx)
		})
		var partial *commands.PartialFailure
		if stderrors.As(err, &partial) && partial.Completed > 0 && !s.store.SupportsTransactions() {
			return "", errors.NewAppError(errors.ErrCodeDBError,
				"recipe was only partially deleted; retry the delete", err)
		}
		return "", err
	})
}

func (s *Service) GetRecipe(ctx context.Context, id string) response.Result[*dto.RecipeView] {
	return read(s, ctx, "getRecipe", func(ctx context.Context) (*dto.RecipeView, error) {
		recipe, err := repository.Find(ctx, s.store.Recipes, text(id))
		if err != nil || recipe == nil {
			return nil, err
		}
		view := s.recipeView(ctx, *recipe)
		return &view, nil
	})
}

// ListRecipes pages through recipes of one menu item (at most one row).
func (s *Service) ListRecipes(ctx context.Context, menuItemID string, req dto.PageRequest) response.Result[dto.Page[dto.RecipeView]] {
	return read(s, ctx, "listRecipes", func(ctx context.Context) (dto.Page[dto.RecipeView], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[dto.RecipeView]{}, err
		}
		return paginate[models.Recipe](ctx, s.store.Recipes, repository.ByMenuItem, text(menuItemID), q, nil,
			func(r models.Recipe) dto.RecipeView { return s.recipeView(ctx, r) })
	})
}

// recipeProperty finds the property that owns a recipe through its menu item.
func (s *Service) recipeProperty(ctx context.Context, recipeID string) (string, error) {
	recipe, err := requireRow(ctx, s.store.Recipes, recipeID, "recipe")
	if err != nil {
		return "", err
	}
	item, err := requireRow(ctx, s.store.FnbMenuItems, recipe.MenuItemID, "menu item")
	if err != nil {
		return "", err
	}
	return item.PropertyID, nil
}

func (s *Service) CreateRecipeLine(ctx context.Context, req dto.CreateRecipeLineRequest) response.Result[response.Empty] {
	return write(s, ctx, "createRecipeLine", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		line := models.RecipeLine{
			RecipeID:        text(req.RecipeID),
			InventoryItemID: text(req.InventoryItemID),
			Quantity:        req.Quantity,
			Unit:            text(req.Unit),
		}
		propertyID, err := s.recipeProperty(ctx, line.RecipeID)
		if err != nil {
			return "", err
		}
		if _, err := s.requireInventoryItem(ctx, line.InventoryItemID, propertyID); err != nil {
			return "", err
		}
		created, err := s.store.RecipeLines.Insert(ctx, line)
		return created.ID, err
	})
}

func applyRecipeLineUpdate(line *models.RecipeLine, req dto.UpdateRecipeLineRequest) {
	if req.InventoryItemID != nil {
		line.InventoryItemID = *textPtr(req.InventoryItemID)
	}
	if req.Quantity != nil {
		line.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		line.Unit = *textPtr(req.Unit)
	}
}

func (s *Service) UpdateRecipeLine(ctx context.Context, id string, req dto.UpdateRecipeLineRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateRecipeLine", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.RecipeLines, id, "recipe line")
		if err != nil {
			return "", err
		}
		merged := current
		applyRecipeLineUpdate(&merged, req)
		if merged.InventoryItemID != current.InventoryItemID {
			propertyID, err := s.recipeProperty(ctx, current.RecipeID)
			if err != nil {
				return "", err
			}
			if _, err := s.requireInventoryItem(ctx, merged.InventoryItemID, propertyID); err != nil {
				return "", err
			}
		}
		_, err = s.store.RecipeLines.Patch(ctx, current.ID, func(line *models.RecipeLine) error {
			applyRecipeLineUpdate(line, req)
			return nil
		})
		return "", err
	})
}

func (s *Service) DeleteRecipeLine(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteRecipeLine", func(ctx context.Context) (string, error) {
		line, err := load(ctx, s.store.RecipeLines, id, "recipe line")
		if err != nil {
			return "", err
		}
		return "", s.store.RecipeLines.Delete(ctx, line.ID)
	})
}

func (s *Service) GetRecipeLine(ctx context.Context, id string) response.Result[*dto.RecipeLineView] {
	return read(s, ctx, "getRecipeLine", func(ctx context.Context) (*dto.RecipeLineView, error) {
		line, err := repository.Find(ctx, s.store.RecipeLines, text(id))
		if err != nil || line == nil {
			return nil, err
		}
		view := s.recipeLineView(ctx, *line)
		return &view, nil
	})
}

func (s *Service) ListRecipeLines(ctx context.Context, recipeID string, req dto.PageRequest) response.Result[dto.Page[dto.RecipeLineView]] {
	return read(s, ctx, "listRecipeLines", func(ctx context.Context) (dto.Page[dto.RecipeLineView], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[dto.RecipeLineView]{}, err
		}
		return paginate[models.RecipeLine](ctx, s.store.RecipeLines, repository.ByRecipe, text(recipeID), q, nil,
			func(line models.RecipeLine) dto.RecipeLineView { return s.recipeLineView(ctx, line) })
	})
}

// RepairOrphanRecipeLines deletes recipe lines whose recipe no longer exists,
// left behind by an interrupted recipe delete.
func (s *Service) RepairOrphanRecipeLines(ctx context.Context) response.Result[dto.RepairReport] {
	return read(s, ctx, "repairOrphanRecipeLines", func(ctx context.Context) (dto.RepairReport, error) {
		report := dto.RepairReport{Removed: []string{}}
		lines, err := s.store.RecipeLines.Scan(ctx, repository.Query[models.RecipeLine]{Order: repository.Asc})
		if err != nil {
			return report, err
		}
		report.Scanned = len(lines)
		known := map[string]bool{}
		batch := commands.NewBatch()
		var orphans []string
		for _, line := range lines {
			alive, seen := known[line.RecipeID]
			if !seen {
				recipe, err := repository.Find(ctx, s.store.Recipes, line.RecipeID)
				if err != nil {
					return report, err
				}
				alive = recipe != nil
				known[line.RecipeID] = alive
			}
			if !alive {
				batch.Add(commands.NewDeleteCommand(s.store.RecipeLines, line.ID))
				orphans = append(orphans, line.ID)
			}
		}
		err = batch.Execute(ctx)
		var partial *commands.PartialFailure
		if stderrors.As(err, &partial) {
			report.Removed = append(report.Removed, orphans[:partial.Completed]...)
			return report, err
		}
		report.Removed = append(report.Removed, orphans...)
		if len(orphans) > 0 {
			s.logger.Info("removed %d orphaned recipe lines", len(orphans))
		}
		return report, err
	})
}
