package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"backoffice/constants"
	"backoffice/errors"
	"backoffice/metrics"
	"backoffice/repository"
	"backoffice/response"
	"backoffice/services/logger"
)

// Service runs every back-office operation against an injected store. Each
// exported method returns a response.Result and never panics or leaks a raw
// storage error.
type Service struct {
	store    *repository.Store
	logger   logger.Logger
	locker   Locker
	clock    func() time.Time
	metrics  *metrics.Metrics
	pageSize int
	maxPage  int

	dependents map[string][]dependent
}

type ServiceOptions struct {
	Store   *repository.Store
	Logger  logger.Logger
	Locker  Locker
	Clock   func() time.Time
	Metrics *metrics.Metrics
	// DefaultPageSize and MaxPageSize bound list limits.
	DefaultPageSize int
	MaxPageSize     int
}

func NewService(opts ServiceOptions) *Service {
	s := &Service{
		store:    opts.Store,
		logger:   opts.Logger,
		locker:   opts.Locker,
		clock:    opts.Clock,
		metrics:  opts.Metrics,
		pageSize: opts.DefaultPageSize,
		maxPage:  opts.MaxPageSize,

		dependents: buildDependents(opts.Store),
	}
	if s.logger == nil {
		s.logger = logger.NewNop()
	}
	if s.locker == nil {
		s.locker = NoopLocker{}
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.maxPage <= 0 {
		s.maxPage = constants.MaxPageSize
	}
	if s.pageSize <= 0 || s.pageSize > s.maxPage {
		s.pageSize = min(constants.DefaultPageSize, s.maxPage)
	}
	return s
}

func (s *Service) now() int64 {
	return s.clock().UnixMilli()
}

// guard is the operation boundary: it recovers panics, normalizes errors to
// AppError, logs failures and records metrics.
func (s *Service) guard(ctx context.Context, op string, fn func(ctx context.Context) error) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("%s: panic: %v\n%s", op, r, debug.Stack())
			err = errors.Storage(fmt.Errorf("panic: %v", r))
		}
		outcome := metrics.OutcomeSuccess
		if err != nil {
			if errors.HasCode(err, errors.ErrCodeDBError) {
				outcome = metrics.OutcomeFailed
			} else {
				outcome = metrics.OutcomeRejected
			}
		}
		s.metrics.ObserveOperation(op, outcome, time.Since(start))
	}()

	err = normalize(fn(ctx))
	if err == nil {
		return nil
	}
	if appErr := errors.GetAppError(err); appErr.Code == errors.ErrCodeDBError {
		s.logger.Error("%s: %v", op, appErr.Err)
	} else {
		s.logger.Debug("%s rejected: %s", op, appErr.Message)
	}
	return err
}

func normalize(err error) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}
	if stderrors.Is(err, repository.ErrNotFound) {
		return errors.NotFound("record not found")
	}
	return errors.Storage(err)
}

// write runs a command and reports the created id (if any).
func write(s *Service, ctx context.Context, op string, fn func(ctx context.Context) (string, error)) response.Result[response.Empty] {
	var id string
	err := s.guard(ctx, op, func(ctx context.Context) error {
		var err error
		id, err = fn(ctx)
		return err
	})
	if err != nil {
		return response.Fail[response.Empty](err)
	}
	return response.Done(id, doneMessage(op))
}

// read runs a query and wraps its data.
func read[T any](s *Service, ctx context.Context, op string, fn func(ctx context.Context) (T, error)) response.Result[T] {
	var data T
	err := s.guard(ctx, op, func(ctx context.Context) error {
		var err error
		data, err = fn(ctx)
		return err
	})
	if err != nil {
		return response.Fail[T](err)
	}
	return response.OK(data)
}

func doneMessage(op string) string {
	switch {
	case strings.HasPrefix(op, "create"):
		return "created"
	case strings.HasPrefix(op, "delete"):
		return "deleted"
	default:
		return "updated"
	}
}

// text trims a caller-supplied string.
func text(s string) string {
	return strings.TrimSpace(s)
}

func textPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// optionalID turns an empty id into nil.
func optionalID(id string) *string {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return &id
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
