package services

import (
	"context"

	"backoffice/dto"
	"backoffice/models"
	"backoffice/repository"
	"backoffice/response"
	"backoffice/validator"
)

// scope names a lock for one uniqueness scope.
func scope(table, key string) string {
	return table + ":" + key
}

func (s *Service) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) response.Result[response.Empty] {
	return write(s, ctx, "createProperty", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		p := models.Property{
			Name:     text(req.Name),
			Address:  text(req.Address),
			Phone:    text(req.Phone),
			Email:    text(req.Email),
			Timezone: text(req.Timezone),
			IsActive: boolOr(req.IsActive, true),
		}
		if err := validator.Required("name", p.Name); err != nil {
			return "", err
		}
		var id string
		err := s.withLock(ctx, scope("properties", "*"), func() error {
			if err := s.checkPropertyUnique(ctx, p, ""); err != nil {
				return err
			}
			created, err := s.store.Properties.Insert(ctx, p)
			id = created.ID
			return err
		})
		return id, err
	})
}

func applyPropertyUpdate(p *models.Property, req dto.UpdatePropertyRequest) {
	if req.Name != nil {
		p.Name = *textPtr(req.Name)
	}
	if req.Address != nil {
		p.Address = *textPtr(req.Address)
	}
	if req.Phone != nil {
		p.Phone = *textPtr(req.Phone)
	}
	if req.Email != nil {
		p.Email = *textPtr(req.Email)
	}
	if req.Timezone != nil {
		p.Timezone = *textPtr(req.Timezone)
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

func (s *Service) UpdateProperty(ctx context.Context, id string, req dto.UpdatePropertyRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateProperty", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.Properties, id, kindProperty)
		if err != nil {
			return "", err
		}
		merged := current
		applyPropertyUpdate(&merged, req)
		if err := validator.Required("name", merged.Name); err != nil {
			return "", err
		}
		return "", s.withLock(ctx, scope("properties", "*"), func() error {
			if err := s.checkPropertyUnique(ctx, merged, current.ID); err != nil {
				return err
			}
			_, err := s.store.Properties.Patch(ctx, current.ID, func(p *models.Property) error {
				applyPropertyUpdate(p, req)
				return nil
			})
			return err
		})
	})
}

// DeleteProperty refuses while any row is still scoped to the property.
func (s *Service) DeleteProperty(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteProperty", func(ctx context.Context) (string, error) {
		p, err := load(ctx, s.store.Properties, id, kindProperty)
		if err != nil {
			return "", err
		}
		if err := s.refuseIfReferenced(ctx, kindProperty, p.ID); err != nil {
			return "", err
		}
		return "", s.store.Properties.Delete(ctx, p.ID)
	})
}

func (s *Service) GetProperty(ctx context.Context, id string) response.Result[*models.Property] {
	return read(s, ctx, "getProperty", func(ctx context.Context) (*models.Property, error) {
		return repository.Find(ctx, s.store.Properties, text(id))
	})
}

func (s *Service) ListProperties(ctx context.Context, req dto.PageRequest) response.Result[dto.Page[models.Property]] {
	return read(s, ctx, "listProperties", func(ctx context.Context) (dto.Page[models.Property], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[models.Property]{}, err
		}
		filter := searchFilter(q.term, func(p models.Property) []string { return []string{p.Name, p.Address} })
		return paginate[models.Property](ctx, s.store.Properties, "", "", q, filter, identity[models.Property])
	})
}
