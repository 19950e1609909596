package services

import (
	"context"

	"backoffice/constants"
	"backoffice/dto"
	"backoffice/models"
	"backoffice/repository"
	"backoffice/response"
	"backoffice/validator"
)

func (s *Service) CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest) response.Result[response.Empty] {
	return write(s, ctx, "createRoomType", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		rt := models.RoomType{
			PropertyID:   text(req.PropertyID),
			Name:         text(req.Name),
			Description:  req.Description,
			MaxOccupancy: req.MaxOccupancy,
			BaseRate:     req.BaseRate,
			Amenities:    req.Amenities,
			IsActive:     boolOr(req.IsActive, true),
		}
		if err := validator.Required("name", rt.Name); err != nil {
			return "", err
		}
		if _, err := s.requireProperty(ctx, rt.PropertyID); err != nil {
			return "", err
		}
		var id string
		err := s.withLock(ctx, scope("room_types", rt.PropertyID), func() error {
			if err := s.checkRoomTypeUnique(ctx, rt, ""); err != nil {
				return err
			}
			created, err := s.store.RoomTypes.Insert(ctx, rt)
			id = created.ID
			return err
		})
		return id, err
	})
}

func applyRoomTypeUpdate(rt *models.RoomType, req dto.UpdateRoomTypeRequest) {
	if req.Name != nil {
		rt.Name = *textPtr(req.Name)
	}
	if req.Description != nil {
		rt.Description = *req.Description
	}
	if req.MaxOccupancy != nil {
		rt.MaxOccupancy = *req.MaxOccupancy
	}
	if req.BaseRate != nil {
		rt.BaseRate = *req.BaseRate
	}
	if req.Amenities != nil {
		rt.Amenities = req.Amenities
	}
	if req.IsActive != nil {
		rt.IsActive = *req.IsActive
	}
}

func (s *Service) UpdateRoomType(ctx context.Context, id string, req dto.UpdateRoomTypeRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateRoomType", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.RoomTypes, id, kindRoomType)
		if err != nil {
			return "", err
		}
		merged := current
		applyRoomTypeUpdate(&merged, req)
		if err := validator.Required("name", merged.Name); err != nil {
			return "", err
		}
		return "", s.withLock(ctx, scope("room_types", current.PropertyID), func() error {
			if err := s.checkRoomTypeUnique(ctx, merged, current.ID); err != nil {
				return err
			}
			_, err := s.store.RoomTypes.Patch(ctx, current.ID, func(rt *models.RoomType) error {
				applyRoomTypeUpdate(rt, req)
				return nil
			})
			return err
		})
	})
}

func (s *Service) DeleteRoomType(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteRoomType", func(ctx context.Context) (string, error) {
		rt, err := load(ctx, s.store.RoomTypes, id, kindRoomType)
		if err != nil {
			return "", err
		}
		if err := s.refuseIfReferenced(ctx, kindRoomType, rt.ID); err != nil {
			return "", err
		}
		return "", s.store.RoomTypes.Delete(ctx, rt.ID)
	})
}

func (s *Service) GetRoomType(ctx context.Context, id string) response.Result[*models.RoomType] {
	return read(s, ctx, "getRoomType", func(ctx context.Context) (*models.RoomType, error) {
		return repository.Find(ctx, s.store.RoomTypes, text(id))
	})
}

func (s *Service) ListRoomTypes(ctx context.Context, propertyID string, req dto.PageRequest) response.Result[dto.Page[models.RoomType]] {
	return read(s, ctx, "listRoomTypes", func(ctx context.Context) (dto.Page[models.RoomType], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[models.RoomType]{}, err
		}
		return paginate[models.RoomType](ctx, s.store.RoomTypes, repository.ByProperty, text(propertyID), q, nil, identity[models.RoomType])
	})
}

func (s *Service) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) response.Result[response.Empty] {
	return write(s, ctx, "createRoom", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		room := models.Room{
			PropertyID: text(req.PropertyID),
			RoomTypeID: text(req.RoomTypeID),
			RoomNumber: text(req.RoomNumber),
			Floor:      req.Floor,
			Status:     req.Status,
			Notes:      req.Notes,
		}
		if room.Status == "" {
			room.Status = constants.RoomStatusAvailable
		}
		if err := validator.Required("roomNumber", room.RoomNumber); err != nil {
			return "", err
		}
		if _, err := s.requireProperty(ctx, room.PropertyID); err != nil {
			return "", err
		}
		if _, err := s.requireRoomType(ctx, room.RoomTypeID, room.PropertyID); err != nil {
			return "", err
		}
		var id string
		err := s.withLock(ctx, scope("rooms", room.PropertyID), func() error {
			if err := s.checkRoomUnique(ctx, room, ""); err != nil {
				return err
			}
			created, err := s.store.Rooms.Insert(ctx, room)
			id = created.ID
			return err
		})
		return id, err
	})
}

func applyRoomUpdate(r *models.Room, req dto.UpdateRoomRequest) {
	if req.RoomTypeID != nil {
		r.RoomTypeID = *textPtr(req.RoomTypeID)
	}
	if req.RoomNumber != nil {
		r.RoomNumber = *textPtr(req.RoomNumber)
	}
	if req.Floor != nil {
		r.Floor = *req.Floor
	}
	if req.Status != nil {
		r.Status = *req.Status
	}
	if req.Notes != nil {
		r.Notes = *req.Notes
	}
}

func (s *Service) UpdateRoom(ctx context.Context, id string, req dto.UpdateRoomRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateRoom", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.Rooms, id, kindRoom)
		if err != nil {
			return "", err
		}
		merged := current
		applyRoomUpdate(&merged, req)
		if err := validator.Required("roomNumber", merged.RoomNumber); err != nil {
			return "", err
		}
		if merged.RoomTypeID != current.RoomTypeID {
			if _, err := s.requireRoomType(ctx, merged.RoomTypeID, current.PropertyID); err != nil {
				return "", err
			}
		}
		return "", s.withLock(ctx, scope("rooms", current.PropertyID), func() error {
			if err := s.checkRoomUnique(ctx, merged, current.ID); err != nil {
				return err
			}
			_, err := s.store.Rooms.Patch(ctx, current.ID, func(r *models.Room) error {
				applyRoomUpdate(r, req)
				return nil
			})
			return err
		})
	})
}

// DeleteRoom refuses while active reservations or housekeeping tasks point at
// the room.
func (s *Service) DeleteRoom(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteRoom", func(ctx context.Context) (string, error) {
		room, err := load(ctx, s.store.Rooms, id, kindRoom)
		if err != nil {
			return "", err
		}
		if err := s.refuseIfReferenced(ctx, kindRoom, room.ID); err != nil {
			return "", err
		}
		return "", s.store.Rooms.Delete(ctx, room.ID)
	})
}

func (s *Service) GetRoom(ctx context.Context, id string) response.Result[*dto.RoomView] {
	return read(s, ctx, "getRoom", func(ctx context.Context) (*dto.RoomView, error) {
		room, err := repository.Find(ctx, s.store.Rooms, text(id))
		if err != nil || room == nil {
			return nil, err
		}
		view := s.roomView(ctx, *room)
		return &view, nil
	})
}

// ListRooms pages through a property's rooms. Search matches room number and
// notes.
func (s *Service) ListRooms(ctx context.Context, propertyID string, req dto.PageRequest) response.Result[dto.Page[dto.RoomView]] {
	return read(s, ctx, "listRooms", func(ctx context.Context) (dto.Page[dto.RoomView], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[dto.RoomView]{}, err
		}
		filter := searchFilter(q.term, func(r models.Room) []string { return []string{r.RoomNumber, r.Notes} })
		return paginate[models.Room](ctx, s.store.Rooms, repository.ByProperty, text(propertyID), q, filter,
			func(r models.Room) dto.RoomView { return s.roomView(ctx, r) })
	})
}
