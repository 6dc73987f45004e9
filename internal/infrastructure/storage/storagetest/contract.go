// Package storagetest holds the behaviour every employee.Repository must
// share, run by each backend's tests.
package storagetest

import (
	"context"
	"sync"
	"testing"

	"employees/internal/domain/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty repository for one subtest.
type Factory func(t *testing.T) employee.Repository

func ptr[T any](v T) *T { return &v }

func fullPatch() employee.Patch {
	return employee.Patch{FName: ptr("A"), LName: ptr("B"), Age: ptr(int32(30)), Title: ptr("Eng")}
}

// RunRepositoryContract exercises r against the employee store contract.
func RunRepositoryContract(t *testing.T, newRepo Factory) {
	ctx := context.Background()

	t.Run("insert then get", func(t *testing.T) {
		repo := newRepo(t)

		id, err := repo.Insert(ctx, fullPatch())
		require.NoError(t, err)
		assert.Positive(t, id)

		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, employee.Employee{ID: id, FName: "A", LName: "B", Age: 30, Title: "Eng"}, got)
	})

	t.Run("insert ignores client identifier", func(t *testing.T) {
		repo := newRepo(t)

		p := fullPatch()
		p.ID = ptr(int32(424242))
		id, err := repo.Insert(ctx, p)
		require.NoError(t, err)
		assert.NotEqual(t, int32(424242), id)

		_, err = repo.Get(ctx, 424242)
		assert.ErrorIs(t, err, employee.ErrNotFound)
	})

	t.Run("insert with missing field persists nothing", func(t *testing.T) {
		repo := newRepo(t)

		before, err := repo.List(ctx)
		require.NoError(t, err)

		p := fullPatch()
		p.Title = nil
		_, err = repo.Insert(ctx, p)
		assert.ErrorIs(t, err, employee.ErrValidation)

		_, err = repo.Insert(ctx, employee.Patch{})
		assert.ErrorIs(t, err, employee.ErrValidation)

		after, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("get missing", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Get(ctx, 999999)
		assert.ErrorIs(t, err, employee.ErrNotFound)
	})

	t.Run("list", func(t *testing.T) {
		repo := newRepo(t)

		empty, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, empty)

		first, err := repo.Insert(ctx, fullPatch())
		require.NoError(t, err)
		second, err := repo.Insert(ctx, employee.Patch{FName: ptr("C"), LName: ptr("D"), Age: ptr(int32(40)), Title: ptr("Ops")})
		require.NoError(t, err)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		ids := make([]int32, 0, len(all))
		for _, e := range all {
			ids = append(ids, e.ID)
		}
		assert.ElementsMatch(t, []int32{first, second}, ids)
	})

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		repo := newRepo(t)

		id, err := repo.Insert(ctx, fullPatch())
		require.NoError(t, err)
		before, err := repo.Get(ctx, id)
		require.NoError(t, err)

		u := employee.Patch{Age: ptr(int32(31)), Title: ptr("Lead")}
		affected, err := repo.Update(ctx, id, u)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		after, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, u.Apply(before), after)
	})

	t.Run("update never moves the identifier", func(t *testing.T) {
		repo := newRepo(t)

		id, err := repo.Insert(ctx, fullPatch())
		require.NoError(t, err)

		_, err = repo.Update(ctx, id, employee.Patch{ID: ptr(id + 100), FName: ptr("Z")})
		require.NoError(t, err)

		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Z", got.FName)
	})

	t.Run("update missing affects nothing", func(t *testing.T) {
		repo := newRepo(t)

		affected, err := repo.Update(ctx, 999999, employee.Patch{Age: ptr(int32(1))})
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("update with no fields", func(t *testing.T) {
		repo := newRepo(t)

		id, err := repo.Insert(ctx, fullPatch())
		require.NoError(t, err)

		_, err = repo.Update(ctx, id, employee.Patch{ID: ptr(id)})
		assert.ErrorIs(t, err, employee.ErrValidation)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newRepo(t)

		id, err := repo.Insert(ctx, fullPatch())
		require.NoError(t, err)

		affected, err := repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		_, err = repo.Get(ctx, id)
		assert.ErrorIs(t, err, employee.ErrNotFound)

		affected, err = repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("concurrent updates", func(t *testing.T) {
		repo := newRepo(t)

		id, err := repo.Insert(ctx, fullPatch())
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(age int32) {
				defer wg.Done()
				_, err := repo.Update(ctx, id, employee.Patch{Age: ptr(age)})
				errs <- err
			}(int32(20 + i))
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			assert.NoError(t, err)
		}

		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Age, int32(20))
		assert.Less(t, got.Age, int32(28))
		assert.Equal(t, "A", got.FName)
	})
}
