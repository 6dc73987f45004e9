package employee

import (
	"context"
	"errors"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) (List, error)
	Find(ctx context.Context, id int32) (Employee, error)
	Create(ctx context.Context, p Patch) (int32, error)
	Update(ctx context.Context, id int32, p Patch) (int64, error)
	Delete(ctx context.Context, id int32) (int64, error)
}

// Service defines the business logic for employee operations
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a new employee service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "employee_service"),
	}
}

func (s *Service) List(ctx context.Context) (List, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list employees", "error", err)
		return List{}, err
	}

	if employees == nil {
		employees = []Employee{}
	}

	return List{Results: employees}, nil
}

func (s *Service) Find(ctx context.Context, id int32) (Employee, error) {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("failed to get employee", "id", id, "error", err)
		}
		return Employee{}, err
	}
	return e, nil
}

// Create inserts a new employee. Any identifier in p is discarded.
func (s *Service) Create(ctx context.Context, p Patch) (int32, error) {
	p.ID = nil

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		s.log.Warn("failed to create employee", "error", err)
		return 0, err
	}

	s.log.Debug("employee created", "id", id)
	return id, nil
}

// Update applies p to the employee with the given id. The path identifier
// wins over any identifier carried in p.
func (s *Service) Update(ctx context.Context, id int32, p Patch) (int64, error) {
	p.ID = nil

	affected, err := s.repo.Update(ctx, id, p)
	if err != nil {
		s.log.Warn("failed to update employee", "id", id, "error", err)
		return 0, err
	}

	if affected == 0 {
		s.log.Debug("update matched no employee", "id", id)
	}
	return affected, nil
}

func (s *Service) Delete(ctx context.Context, id int32) (int64, error) {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete employee", "id", id, "error", err)
		return 0, err
	}
	return affected, nil
}
