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

func (s *Service) CreateGuest(ctx context.Context, req dto.CreateGuestRequest) response.Result[response.Empty] {
	return write(s, ctx, "createGuest", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		if err := validator.ValidateAttributes("preferences", req.Preferences); err != nil {
			return "", err
		}
		g := models.Guest{
			PropertyID:    text(req.PropertyID),
			FirstName:     text(req.FirstName),
			LastName:      text(req.LastName),
			Email:         text(req.Email),
			Phone:         text(req.Phone),
			Address:       req.Address,
			LoyaltyNumber: text(req.LoyaltyNumber),
			Preferences:   models.NewAttributes(),
		}
		if req.Preferences != nil {
			g.Preferences = *req.Preferences
		}
		if err := validator.Required("firstName", g.FirstName); err != nil {
			return "", err
		}
		if _, err := s.requireProperty(ctx, g.PropertyID); err != nil {
			return "", err
		}
		var id string
		err := s.withLock(ctx, scope("guests", g.PropertyID), func() error {
			if err := s.checkGuestUnique(ctx, g, ""); err != nil {
				return err
			}
			created, err := s.store.Guests.Insert(ctx, g)
			id = created.ID
			return err
		})
		return id, err
	})
}

func applyGuestUpdate(g *models.Guest, req dto.UpdateGuestRequest) {
	if req.FirstName != nil {
		g.FirstName = *textPtr(req.FirstName)
	}
	if req.LastName != nil {
		g.LastName = *textPtr(req.LastName)
	}
	if req.Email != nil {
		g.Email = *textPtr(req.Email)
	}
	if req.Phone != nil {
		g.Phone = *textPtr(req.Phone)
	}
	if req.Address != nil {
		g.Address = *req.Address
	}
	if req.LoyaltyNumber != nil {
		g.LoyaltyNumber = *textPtr(req.LoyaltyNumber)
	}
	if req.Preferences != nil {
		g.Preferences = *req.Preferences
	}
}

func (s *Service) UpdateGuest(ctx context.Context, id string, req dto.UpdateGuestRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateGuest", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		if err := validator.ValidateAttributes("preferences", req.Preferences); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.Guests, id, kindGuest)
		if err != nil {
			return "", err
		}
		merged := current
		applyGuestUpdate(&merged, req)
		if err := validator.Required("firstName", merged.FirstName); err != nil {
			return "", err
		}
		return "", s.withLock(ctx, scope("guests", current.PropertyID), func() error {
			if err := s.checkGuestUnique(ctx, merged, current.ID); err != nil {
				return err
			}
			_, err := s.store.Guests.Patch(ctx, current.ID, func(g *models.Guest) error {
				applyGuestUpdate(g, req)
				return nil
			})
			return err
		})
	})
}

// DeleteGuest refuses while any reservation, in any status, references the
// guest.
func (s *Service) DeleteGuest(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteGuest", func(ctx context.Context) (string, error) {
		g, err := load(ctx, s.store.Guests, id, kindGuest)
		if err != nil {
			return "", err
		}
		if err := s.refuseIfReferenced(ctx, kindGuest, g.ID); err != nil {
			return "", err
		}
		return "", s.store.Guests.Delete(ctx, g.ID)
	})
}

func (s *Service) GetGuest(ctx context.Context, id string) response.Result[*models.Guest] {
	return read(s, ctx, "getGuest", func(ctx context.Context) (*models.Guest, error) {
		return repository.Find(ctx, s.store.Guests, text(id))
	})
}

// ListGuests: search matches names, email, phone and loyalty number.
func (s *Service) ListGuests(ctx context.Context, propertyID string, req dto.PageRequest) response.Result[dto.Page[models.Guest]] {
	return read(s, ctx, "listGuests", func(ctx context.Context) (dto.Page[models.Guest], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[models.Guest]{}, err
		}
		filter := searchFilter(q.term, func(g models.Guest) []string {
			return []string{g.FullName(), g.Email, g.Phone, g.LoyaltyNumber}
		})
		return paginate[models.Guest](ctx, s.store.Guests, repository.ByProperty, text(propertyID), q, filter, identity[models.Guest])
	})
}

func (s *Service) CreateReservation(ctx context.Context, req dto.CreateReservationRequest) response.Result[response.Empty] {
	return write(s, ctx, "createReservation", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		r := models.Reservation{
			PropertyID:  text(req.PropertyID),
			GuestID:     text(req.GuestID),
			RoomID:      text(req.RoomID),
			CheckIn:     req.CheckIn,
			CheckOut:    req.CheckOut,
			Adults:      req.Adults,
			Children:    req.Children,
			Status:      req.Status,
			TotalAmount: req.TotalAmount,
			Notes:       req.Notes,
		}
		if r.Status == "" {
			r.Status = constants.ReservationStatusPending
		}
		if err := validator.ValidateStayWindow(r.CheckIn, r.CheckOut); err != nil {
			return "", err
		}
		if _, err := s.requireProperty(ctx, r.PropertyID); err != nil {
			return "", err
		}
		if _, err := s.requireGuest(ctx, r.GuestID, r.PropertyID); err != nil {
			return "", err
		}
		if _, err := s.requireRoom(ctx, r.RoomID, r.PropertyID); err != nil {
			return "", err
		}
		created, err := s.store.Reservations.Insert(ctx, r)
		return created.ID, err
	})
}

func applyReservationUpdate(r *models.Reservation, req dto.UpdateReservationRequest) {
	if req.GuestID != nil {
		r.GuestID = *textPtr(req.GuestID)
	}
	if req.RoomID != nil {
		r.RoomID = *textPtr(req.RoomID)
	}
	if req.CheckIn != nil {
		r.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		r.CheckOut = *req.CheckOut
	}
	if req.Adults != nil {
		r.Adults = *req.Adults
	}
	if req.Children != nil {
		r.Children = *req.Children
	}
	if req.Status != nil {
		r.Status = *req.Status
	}
	if req.TotalAmount != nil {
		r.TotalAmount = *req.TotalAmount
	}
	if req.Notes != nil {
		r.Notes = *req.Notes
	}
}

func (s *Service) UpdateReservation(ctx context.Context, id string, req dto.UpdateReservationRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateReservation", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.Reservations, id, "reservation")
		if err != nil {
			return "", err
		}
		merged := current
		applyReservationUpdate(&merged, req)
		if err := validator.ValidateStayWindow(merged.CheckIn, merged.CheckOut); err != nil {
			return "", err
		}
		if merged.GuestID != current.GuestID {
			if _, err := s.requireGuest(ctx, merged.GuestID, current.PropertyID); err != nil {
				return "", err
			}
		}
		if merged.RoomID != current.RoomID {
			if _, err := s.requireRoom(ctx, merged.RoomID, current.PropertyID); err != nil {
				return "", err
			}
		}
		_, err = s.store.Reservations.Patch(ctx, current.ID, func(r *models.Reservation) error {
			applyReservationUpdate(r, req)
			return validator.ValidateStayWindow(r.CheckIn, r.CheckOut)
		})
		return "", err
	})
}

func (s *Service) DeleteReservation(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteReservation", func(ctx context.Context) (string, error) {
		r, err := load(ctx, s.store.Reservations, id, "reservation")
		if err != nil {
			return "", err
		}
		return "", s.store.Reservations.Delete(ctx, r.ID)
	})
}

func (s *Service) GetReservation(ctx context.Context, id string) response.Result[*dto.ReservationView] {
	return read(s, ctx, "getReservation", func(ctx context.Context) (*dto.ReservationView, error) {
		r, err := repository.Find(ctx, s.store.Reservations, text(id))
		if err != nil || r == nil {
			return nil, err
		}
		view := s.reservationView(ctx, *r)
		return &view, nil
	})
}

func (s *Service) ListReservations(ctx context.Context, propertyID string, req dto.PageRequest) response.Result[dto.Page[dto.ReservationView]] {
	return read(s, ctx, "listReservations", func(ctx context.Context) (dto.Page[dto.ReservationView], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[dto.ReservationView]{}, err
		}
		return paginate[models.Reservation](ctx, s.store.Reservations, repository.ByProperty, text(propertyID), q, nil,
			func(r models.Reservation) dto.ReservationView { return s.reservationView(ctx, r) })
	})
}
