package employee

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Employee), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int32) (Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Employee), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, p Patch) (int32, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int32, p Patch) (int64, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int32) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func ptr[T any](v T) *T { return &v }

func TestService_List(t *testing.T) {
	t.Run("wraps rows", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		rows := []Employee{{ID: 1, FName: "A", LName: "B", Age: 30, Title: "Eng"}}
		repo.On("List", mock.Anything).Return(rows, nil)

		list, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, rows, list.Results)
		repo.AssertExpectations(t)
	})

	t.Run("empty table is an empty slice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())
		repo.On("List", mock.Anything).Return(nil, nil)

		list, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, list.Results)
		assert.Empty(t, list.Results)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())
		repo.On("List", mock.Anything).Return(nil, fmt.Errorf("%w: connection refused", ErrPersistence))

		_, err := svc.List(context.Background())
		assert.ErrorIs(t, err, ErrPersistence)
	})
}

func TestService_Find(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	want := Employee{ID: 7, FName: "A", LName: "B", Age: 30, Title: "Eng"}
	repo.On("Get", mock.Anything, int32(7)).Return(want, nil)
	repo.On("Get", mock.Anything, int32(8)).Return(Employee{}, ErrNotFound)

	got, err := svc.Find(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.Find(context.Background(), 8)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_DiscardsClientID(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(p Patch) bool {
		return p.ID == nil && p.FName != nil && *p.FName == "A"
	})).Return(int32(12), nil)

	id, err := svc.Create(context.Background(), Patch{ID: ptr(int32(99)), FName: ptr("A")})
	require.NoError(t, err)
	assert.Equal(t, int32(12), id)
	repo.AssertExpectations(t)
}

func TestService_Create_Error(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	repo.On("Insert", mock.Anything, mock.Anything).
		Return(int32(0), fmt.Errorf("%w: null value in column \"title\"", ErrValidation))

	_, err := svc.Create(context.Background(), Patch{FName: ptr("A")})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "title")
}

func TestService_Update(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		repoErr  error
		wantErr  error
	}{
		{name: "one row", affected: 1},
		{name: "no such employee is not an error", affected: 0},
		{name: "storage failure", repoErr: ErrPersistence, wantErr: ErrPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := NewService(repo, slog.Default())

			repo.On("Update", mock.Anything, int32(3), mock.MatchedBy(func(p Patch) bool {
				return p.ID == nil && p.Age != nil && *p.Age == 31
			})).Return(tt.affected, tt.repoErr)

			affected, err := svc.Update(context.Background(), 3, Patch{ID: ptr(int32(4)), Age: ptr(int32(31))})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.affected, affected)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Delete(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	repo.On("Delete", mock.Anything, int32(1)).Return(int64(1), nil)
	repo.On("Delete", mock.Anything, int32(2)).Return(int64(0), nil)
	repo.On("Delete", mock.Anything, int32(3)).Return(int64(0), errors.New("boom"))

	n, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = svc.Delete(context.Background(), 2)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.Delete(context.Background(), 3)
	assert.Error(t, err)
}
