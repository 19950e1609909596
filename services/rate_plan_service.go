package services

import (
	"context"

	"backoffice/dto"
	"backoffice/models"
	"backoffice/repository"
	"backoffice/response"
	"backoffice/validator"
)

// Rate plans are only deduplicated by (property, room type, name) among
// active plans. Two differently named plans with overlapping windows are
// both accepted.

func (s *Service) CreateRatePlan(ctx context.Context, req dto.CreateRatePlanRequest) response.Result[response.Empty] {
	return write(s, ctx, "createRatePlan", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		plan := models.RatePlan{
			PropertyID:      text(req.PropertyID),
			RoomTypeID:      text(req.RoomTypeID),
			Name:            text(req.Name),
			Description:     req.Description,
			BaseRate:        req.BaseRate,
			DiscountPercent: req.DiscountPercent,
			ValidFrom:       *req.ValidFrom,
			ValidTo:         req.ValidTo,
			IsActive:        boolOr(req.IsActive, true),
		}
		if err := validator.Required("name", plan.Name); err != nil {
			return "", err
		}
		if err := validator.ValidateRateWindow(plan.ValidFrom, plan.ValidTo); err != nil {
			return "", err
		}
		if _, err := s.requireProperty(ctx, plan.PropertyID); err != nil {
			return "", err
		}
		if _, err := s.requireRoomType(ctx, plan.RoomTypeID, plan.PropertyID); err != nil {
			return "", err
		}
		var id string
		err := s.withLock(ctx, scope("rate_plans", plan.RoomTypeID), func() error {
			if err := s.checkRatePlanUnique(ctx, plan, ""); err != nil {
				return err
			}
			created, err := s.store.RatePlans.Insert(ctx, plan)
			id = created.ID
			return err
		})
		return id, err
	})
}

func applyRatePlanUpdate(p *models.RatePlan, req dto.UpdateRatePlanRequest) {
	if req.RoomTypeID != nil {
		p.RoomTypeID = *textPtr(req.RoomTypeID)
	}
	if req.Name != nil {
		p.Name = *textPtr(req.Name)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.BaseRate != nil {
		p.BaseRate = *req.BaseRate
	}
	if req.DiscountPercent != nil {
		p.DiscountPercent = *req.DiscountPercent
	}
	if req.ValidFrom != nil {
		p.ValidFrom = *req.ValidFrom
	}
	if req.ValidTo != nil {
		p.ValidTo = *req.ValidTo
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

// UpdateRatePlan validates the window and uniqueness on the merged plan, so
// moving only validTo before the stored validFrom is rejected too.
func (s *Service) UpdateRatePlan(ctx context.Context, id string, req dto.UpdateRatePlanRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateRatePlan", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.RatePlans, id, "rate plan")
		if err != nil {
			return "", err
		}
		merged := current
		applyRatePlanUpdate(&merged, req)
		if err := validator.Required("name", merged.Name); err != nil {
			return "", err
		}
		if err := validator.ValidateRateWindow(merged.ValidFrom, merged.ValidTo); err != nil {
			return "", err
		}
		if merged.RoomTypeID != current.RoomTypeID {
			if _, err := s.requireRoomType(ctx, merged.RoomTypeID, current.PropertyID); err != nil {
				return "", err
			}
		}
		return "", s.withLock(ctx, scope("rate_plans", merged.RoomTypeID), func() error {
			if err := s.checkRatePlanUnique(ctx, merged, current.ID); err != nil {
				return err
			}
			_, err := s.store.RatePlans.Patch(ctx, current.ID, func(p *models.RatePlan) error {
				applyRatePlanUpdate(p, req)
				return validator.ValidateRateWindow(p.ValidFrom, p.ValidTo)
			})
			return err
		})
	})
}

func (s *Service) DeleteRatePlan(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteRatePlan", func(ctx context.Context) (string, error) {
		plan, err := load(ctx, s.store.RatePlans, id, "rate plan")
		if err != nil {
			return "", err
		}
		return "", s.store.RatePlans.Delete(ctx, plan.ID)
	})
}

func (s *Service) GetRatePlan(ctx context.Context, id string) response.Result[*dto.RatePlanView] {
	return read(s, ctx, "getRatePlan", func(ctx context.Context) (*dto.RatePlanView, error) {
		plan, err := repository.Find(ctx, s.store.RatePlans, text(id))
		if err != nil || plan == nil {
			return nil, err
		}
		view := s.ratePlanView(ctx, *plan)
		return &view, nil
	})
}

func (s *Service) ListRatePlans(ctx context.Context, propertyID string, req dto.PageRequest) response.Result[dto.Page[dto.RatePlanView]] {
	return read(s, ctx, "listRatePlans", func(ctx context.Context) (dto.Page[dto.RatePlanView], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[dto.RatePlanView]{}, err
		}
		return paginate[models.RatePlan](ctx, s.store.RatePlans, repository.ByProperty, text(propertyID), q, nil,
			func(p models.RatePlan) dto.RatePlanView { return s.ratePlanView(ctx, p) })
	})
}
