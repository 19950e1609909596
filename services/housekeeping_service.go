package services

import (
	"context"

	"backoffice/builders"
	"backoffice/constants"
	"backoffice/dto"
	"backoffice/models"
	"backoffice/repository"
	"backoffice/response"
	"backoffice/validator"
)

func (s *Service) CreateStaff(ctx context.Context, req dto.CreateStaffRequest) response.Result[response.Empty] {
	return write(s, ctx, "createStaff", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		st := models.Staff{
			PropertyID: text(req.PropertyID),
			Name:       text(req.Name),
			Email:      text(req.Email),
			Position:   text(req.Position),
			IsActive:   boolOr(req.IsActive, true),
		}
		if err := validator.Required("name", st.Name); err != nil {
			return "", err
		}
		if _, err := s.requireProperty(ctx, st.PropertyID); err != nil {
			return "", err
		}
		created, err := s.store.Staff.Insert(ctx, st)
		return created.ID, err
	})
}

func applyStaffUpdate(st *models.Staff, req dto.UpdateStaffRequest) {
	if req.Name != nil {
		st.Name = *textPtr(req.Name)
	}
	if req.Email != nil {
		st.Email = *textPtr(req.Email)
	}
	if req.Position != nil {
		st.Position = *textPtr(req.Position)
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}
}

func (s *Service) UpdateStaff(ctx context.Context, id string, req dto.UpdateStaffRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateStaff", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.Staff, id, kindStaff)
		if err != nil {
			return "", err
		}
		merged := current
		applyStaffUpdate(&merged, req)
		if err := validator.Required("name", merged.Name); err != nil {
			return "", err
		}
		_, err = s.store.Staff.Patch(ctx, current.ID, func(st *models.Staff) error {
			applyStaffUpdate(st, req)
			return nil
		})
		return "", err
	})
}

// DeleteStaff refuses while the staff member holds pending or in-progress
// tasks.
func (s *Service) DeleteStaff(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteStaff", func(ctx context.Context) (string, error) {
		st, err := load(ctx, s.store.Staff, id, kindStaff)
		if err != nil {
			return "", err
		}
		if err := s.refuseIfReferenced(ctx, kindStaff, st.ID); err != nil {
			return "", err
		}
		return "", s.store.Staff.Delete(ctx, st.ID)
	})
}

func (s *Service) GetStaff(ctx context.Context, id string) response.Result[*models.Staff] {
	return read(s, ctx, "getStaff", func(ctx context.Context) (*models.Staff, error) {
		return repository.Find(ctx, s.store.Staff, text(id))
	})
}

func (s *Service) ListStaff(ctx context.Context, propertyID string, req dto.PageRequest) response.Result[dto.Page[models.Staff]] {
	return read(s, ctx, "listStaff", func(ctx context.Context) (dto.Page[models.Staff], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[models.Staff]{}, err
		}
		filter := searchFilter(q.term, func(st models.Staff) []string { return []string{st.Name, st.Email, st.Position} })
		return paginate[models.Staff](ctx, s.store.Staff, repository.ByProperty, text(propertyID), q, filter, identity[models.Staff])
	})
}

// CreateHousekeepingTask accepts any initial status and derives timestamps
// as if the task had just entered it.
func (s *Service) CreateHousekeepingTask(ctx context.Context, req dto.CreateHousekeepingTaskRequest) response.Result[response.Empty] {
	return write(s, ctx, "createHousekeepingTask", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		if err := validator.ValidateAttributes("checklist", req.Checklist); err != nil {
			return "", err
		}
		propertyID := text(req.PropertyID)
		roomID := text(req.RoomID)
		staffID := optionalID(req.AssignedStaffID)
		if _, err := s.requireProperty(ctx, propertyID); err != nil {
			return "", err
		}
		if _, err := s.requireRoom(ctx, roomID, propertyID); err != nil {
			return "", err
		}
		if staffID != nil {
			if _, err := s.requireStaff(ctx, *staffID, propertyID); err != nil {
				return "", err
			}
		}

		now := s.now()
		scheduled := req.ScheduledAt
		if scheduled == 0 {
			scheduled = now
		}
		task := builders.NewHousekeepingTaskBuilder().
			ForRoom(propertyID, roomID).
			AssignedTo(staffID, text(req.AssignedBy)).
			WithType(req.TaskType).
			WithPriority(req.Priority).
			ScheduledAt(scheduled).
			WithEstimate(req.EstimatedDuration).
			WithNotes(req.Notes).
			WithChecklist(req.Checklist).
			Build()

		change := taskChange{StartedAt: req.StartedAt, CompletedAt: req.CompletedAt, ActualDuration: req.ActualDuration}
		if req.Status != "" {
			change.Status = &req.Status
		}
		if err := applyTaskLifecycle(&task, "", change, now); err != nil {
			return "", err
		}
		created, err := s.store.HousekeepingTasks.Insert(ctx, task)
		return created.ID, err
	})
}

// applyTaskFields applies the non-lifecycle fields of an update.
func applyTaskFields(t *models.HousekeepingTask, req dto.UpdateHousekeepingTaskRequest) {
	if req.RoomID != nil {
		t.RoomID = *textPtr(req.RoomID)
	}
	if req.AssignedStaffID != nil {
		t.AssignedStaffID = optionalID(*req.AssignedStaffID)
	}
	if req.AssignedBy != nil {
		t.AssignedBy = *textPtr(req.AssignedBy)
	}
	if req.TaskType != nil {
		t.TaskType = *req.TaskType
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.ScheduledAt != nil {
		t.ScheduledAt = *req.ScheduledAt
	}
	if req.EstimatedDuration != nil {
		t.EstimatedDuration = intPtr(*req.EstimatedDuration)
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}
	if req.Checklist != nil {
		t.Checklist = *req.Checklist
	}
}

// UpdateHousekeepingTask applies the transition rules against the persisted
// status inside the store's atomic patch.
func (s *Service) UpdateHousekeepingTask(ctx context.Context, id string, req dto.UpdateHousekeepingTaskRequest) response.Result[response.Empty] {
	return s.updateTask(ctx, "updateHousekeepingTask", id, req)
}

func (s *Service) StartHousekeepingTask(ctx context.Context, id string) response.Result[response.Empty] {
	status := constants.TaskStatusInProgress
	return s.updateTask(ctx, "startHousekeepingTask", id, dto.UpdateHousekeepingTaskRequest{Status: &status})
}

func (s *Service) CompleteHousekeepingTask(ctx context.Context, id string) response.Result[response.Empty] {
	status := constants.TaskStatusCompleted
	return s.updateTask(ctx, "completeHousekeepingTask", id, dto.UpdateHousekeepingTaskRequest{Status: &status})
}

func (s *Service) SkipHousekeepingTask(ctx context.Context, id string) response.Result[response.Empty] {
	status := constants.TaskStatusSkipped
	return s.updateTask(ctx, "skipHousekeepingTask", id, dto.UpdateHousekeepingTaskRequest{Status: &status})
}

func (s *Service) updateTask(ctx context.Context, op, id string, req dto.UpdateHousekeepingTaskRequest) response.Result[response.Empty] {
	return write(s, ctx, op, func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		if err := validator.ValidateAttributes("checklist", req.Checklist); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.HousekeepingTasks, id, "housekeeping task")
		if err != nil {
			return "", err
		}
		merged := current
		applyTaskFields(&merged, req)
		if merged.RoomID != current.RoomID {
			if _, err := s.requireRoom(ctx, merged.RoomID, current.PropertyID); err != nil {
				return "", err
			}
		}
		if merged.AssignedStaffID != nil && (current.AssignedStaffID == nil || *merged.AssignedStaffID != *current.AssignedStaffID) {
			if _, err := s.requireStaff(ctx, *merged.AssignedStaffID, current.PropertyID); err != nil {
				return "", err
			}
		}
		change := taskChange{
			Status:         req.Status,
			StartedAt:      req.StartedAt,
			CompletedAt:    req.CompletedAt,
			ActualDuration: req.ActualDuration,
		}
		_, err = s.store.HousekeepingTasks.Patch(ctx, current.ID, func(t *models.HousekeepingTask) error {
			prev := t.Status
			applyTaskFields(t, req)
			return applyTaskLifecycle(t, prev, change, s.now())
		})
		return "", err
	})
}

// ReopenHousekeepingTask returns a completed or skipped task to pending and
// clears its start, completion and duration.
func (s *Service) ReopenHousekeepingTask(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "reopenHousekeepingTask", func(ctx context.Context) (string, error) {
		current, err := load(ctx, s.store.HousekeepingTasks, id, "housekeeping task")
		if err != nil {
			return "", err
		}
		_, err = s.store.HousekeepingTasks.Patch(ctx, current.ID, reopenTask)
		return "", err
	})
}

// DeleteHousekeepingTask is refused while the task is in progress or
// completed.
func (s *Service) DeleteHousekeepingTask(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteHousekeepingTask", func(ctx context.Context) (string, error) {
		task, err := load(ctx, s.store.HousekeepingTasks, id, "housekeeping task")
		if err != nil {
			return "", err
		}
		if err := taskDeletable(task.Status); err != nil {
			return "", err
		}
		return "", s.store.HousekeepingTasks.Delete(ctx, task.ID)
	})
}

func (s *Service) GetHousekeepingTask(ctx context.Context, id string) response.Result[*dto.HousekeepingTaskView] {
	return read(s, ctx, "getHousekeepingTask", func(ctx context.Context) (*dto.HousekeepingTaskView, error) {
		task, err := repository.Find(ctx, s.store.HousekeepingTasks, text(id))
		if err != nil || task == nil {
			return nil, err
		}
		view := s.housekeepingTaskView(ctx, *task)
		return &view, nil
	})
}

func (s *Service) ListHousekeepingTasks(ctx context.Context, propertyID string, req dto.PageRequest) response.Result[dto.Page[dto.HousekeepingTaskView]] {
	return read(s, ctx, "listHousekeepingTasks", func(ctx context.Context) (dto.Page[dto.HousekeepingTaskView], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[dto.HousekeepingTaskView]{}, err
		}
		return paginate[models.HousekeepingTask](ctx, s.store.HousekeepingTasks, repository.ByProperty, text(propertyID), q, nil,
			func(t models.HousekeepingTask) dto.HousekeepingTaskView { return s.housekeepingTaskView(ctx, t) })
	})
}
