package employee

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, data map[string]any) (Employee, error)
	// FindByID scans the full collection including soft-deleted records;
	// callers decide whether a deleted record counts as found.
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, id string, data map[string]any) (*Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
	All(ctx context.Context) ([]Employee, error)
}

type repository struct {
	storage Storage
	mu      sync.Mutex
	now     func() time.Time
}

func NewRepository(storage Storage) Repository {
	return NewRepositoryWithClock(storage, time.Now)
}

// NewRepositoryWithClock lets tests pin the timestamp source.
func NewRepositoryWithClock(storage Storage, now func() time.Time) Repository {
	return &repository{storage: storage, now: now}
}

func (r *repository) Create(ctx context.Context, data map[string]any) (Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employees, err := r.storage.Load()
	if err != nil {
		return Employee{}, err
	}

	e := newEmployee(data)
	e.ID = uuid.NewString()
	now := r.timestamp()
	e.CreatedAt = now
	e.UpdatedAt = now

	employees = append(employees, e)
	if err := r.storage.SaveAll(employees); err != nil {
		return Employee{}, err
	}

	return e, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employees, err := r.storage.Load()
	if err != nil {
		return nil, err
	}

	for i := range employees {
		if employees[i].ID == id {
			e := employees[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *repository) Update(ctx context.Context, id string, data map[string]any) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employees, err := r.storage.Load()
	if err != nil {
		return nil, err
	}

	for i := range employees {
		if employees[i].ID != id {
			continue
		}

		updated := applyUpdate(employees[i], data)
		updated.UpdatedAt = r.timestamp()
		employees[i] = updated

		if err := r.storage.SaveAll(employees); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employees, err := r.storage.Load()
	if err != nil {
		return false, err
	}

	for i := range employees {
		if employees[i].ID != id {
			continue
		}

		now := r.timestamp()
		employees[i].DeletedAt = &now
		employees[i].UpdatedAt = now

		if err := r.storage.SaveAll(employees); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (r *repository) All(ctx context.Context) ([]Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.storage.Load()
}

func (r *repository) timestamp() string {
	return r.now().UTC().Format(time.RFC3339Nano)
}
