package employee_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"employee-manager/internal/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickingClock hands out strictly increasing timestamps.
type tickingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newTickingClock() *tickingClock {
	return &tickingClock{
		now:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		step: time.Second,
	}
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}

func newTestRepo(t *testing.T) (employee.Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.json")
	repo := employee.NewRepositoryWithClock(employee.NewJSONStorage(path), newTickingClock().Now)
	return repo, path
}

func TestRepository_Create(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	t.Run("assigns id and timestamps", func(t *testing.T) {
		created, err := repo.Create(ctx, validCreatePayload())

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.NotEmpty(t, created.CreatedAt)
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
		assert.Nil(t, created.DeletedAt)
	})

	t.Run("derives name from first and last name", func(t *testing.T) {
		created, err := repo.Create(ctx, validCreatePayload())

		require.NoError(t, err)
		assert.Equal(t, "John Doe", created.Name)
	})

	t.Run("applies defaults for absent fields", func(t *testing.T) {
		created, err := repo.Create(ctx, validCreatePayload())

		require.NoError(t, err)
		assert.Equal(t, "other", created.Gender)
		assert.Equal(t, "single", created.MaritalStatus)
		assert.Equal(t, "american", created.Nationality)
	})

	t.Run("persists the full collection to disk", func(t *testing.T) {
		_, err := os.Stat(path)
		require.NoError(t, err)

		// A fresh repository over the same file sees everything.
		reloaded := employee.NewRepository(employee.NewJSONStorage(path))
		all, err := reloaded.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, validCreatePayload())
	require.NoError(t, err)

	t.Run("finds existing record", func(t *testing.T) {
		found, err := repo.FindByID(ctx, created.ID)

		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("unknown id returns nil without error", func(t *testing.T) {
		found, err := repo.FindByID(ctx, "nope")

		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("soft-deleted record still resolvable at repository level", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.IsDeleted())
	})
}

func TestRepository_Update(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, validCreatePayload())
	require.NoError(t, err)

	t.Run("merges supplied fields and keeps the rest", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, map[string]any{
			"position": "Staff Engineer",
			"salary":   "90000",
		})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Staff Engineer", updated.JobTitle)
		assert.Equal(t, 90000.0, updated.Salary)
		// Untouched fields retain their prior values.
		assert.Equal(t, "John Doe", updated.Name)
		assert.Equal(t, created.Email, updated.Email)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("updatedAt strictly increases", func(t *testing.T) {
		before, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, map[string]any{"address": "456 Oak Ave"})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Greater(t, updated.UpdatedAt, before.UpdatedAt)
	})

	t.Run("lone first_name keeps the stored name", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, map[string]any{"first_name": "Jane"})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "John Doe", updated.Name)
	})

	t.Run("lone last_name keeps the stored name", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, map[string]any{"last_name": "Smith"})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "John Doe", updated.Name)
	})

	t.Run("both name halves re-derive the name", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, map[string]any{
			"first_name": "Jane",
			"last_name":  "Smith",
		})

		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", updated.Name)
	})

	t.Run("direct name value replaces the stored name", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, map[string]any{"name": "Alex Morgan"})

		require.NoError(t, err)
		assert.Equal(t, "Alex Morgan", updated.Name)
	})

	t.Run("camelCase aliases update the same fields", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, map[string]any{"jobTitle": "Principal Engineer"})

		require.NoError(t, err)
		assert.Equal(t, "Principal Engineer", updated.JobTitle)
	})

	t.Run("snake_case wins when both spellings present", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, map[string]any{
			"hire_date": "2021-02-02",
			"hireDate":  "2022-03-03",
		})

		require.NoError(t, err)
		assert.Equal(t, "2021-02-02", updated.HireDate)
	})

	t.Run("explicit null clears the profile photo", func(t *testing.T) {
		path := "avatars/abc.jpg"
		updated, err := repo.Update(ctx, created.ID, map[string]any{"profile_photo": path})
		require.NoError(t, err)
		require.NotNil(t, updated.ProfilePhoto)
		assert.Equal(t, path, *updated.ProfilePhoto)

		updated, err = repo.Update(ctx, created.ID, map[string]any{"profile_photo": nil})
		require.NoError(t, err)
		assert.Nil(t, updated.ProfilePhoto)
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		updated, err := repo.Update(ctx, "nope", map[string]any{"address": "x"})

		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, validCreatePayload())
	require.NoError(t, err)

	t.Run("sets deletedAt and refreshes updatedAt", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		require.NotNil(t, found.DeletedAt)
		assert.Equal(t, *found.DeletedAt, found.UpdatedAt)
	})

	t.Run("unknown id returns false", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestJSONStorage_MissingFileIsEmptyCollection(t *testing.T) {
	storage := employee.NewJSONStorage(filepath.Join(t.TempDir(), "does-not-exist.json"))

	employees, err := storage.Load()

	require.NoError(t, err)
	assert.Empty(t, employees)
}
