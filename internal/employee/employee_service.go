package employee

import (
	"context"
	"net/http"
	"time"

	"employee-manager/internal/events"
	"employee-manager/internal/shared/apperror"
	"employee-manager/internal/shared/contextutil"
	"employee-manager/internal/shared/filestore"

	employeeerrors "employee-manager/internal/employee/errors"

	"go.uber.org/zap"
)

const avatarsDir = "avatars"

type Service interface {
	List(ctx context.Context, params QueryParams) (ListResponse, error)
	Create(ctx context.Context, input map[string]any) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, input map[string]any) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	UploadPhoto(ctx context.Context, id string, upload *PhotoUpload) (EmployeeResponse, error)
	DeletePhoto(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	repo      Repository
	validator *Validator
	files     filestore.FileStore
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	validator *Validator,
	files filestore.FileStore,
	publisher EventPublisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{
		repo:      repo,
		validator: validator,
		files:     files,
		publisher: publisher,
		logger:    l,
	}
}

func (s *service) List(ctx context.Context, params QueryParams) (ListResponse, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		s.log(ctx).Error("list employees load failed", zap.Error(err))
		return ListResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "Failed to load employees", http.StatusInternalServerError)
	}

	result := Query(all, params)
	return ListResponse{
		Items:    mapToListResponse(result.Items),
		Total:    result.Total,
		Page:     result.Page,
		PerPage:  result.PerPage,
		LastPage: result.LastPage,
	}, nil
}

func (s *service) Create(ctx context.Context, input map[string]any) (EmployeeResponse, error) {
	log := s.log(ctx)
	log.Debug("create employee requested")

	if errs := s.validator.ValidateCreate(input); errs != nil {
		log.Debug("create employee validation failed", zap.Strings("fields", errs.Fields))
		return EmployeeResponse{}, errs
	}

	if err := s.resolvePhoto(input); err != nil {
		log.Error("create employee store photo failed", zap.Error(err))
		return EmployeeResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "Failed to store profile photo", http.StatusInternalServerError)
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "Failed to create employee", http.StatusInternalServerError)
	}

	s.publish(ctx, events.EmployeeCreated, created.ID)
	log.Info("create employee success", zap.String("employee_id", created.ID))

	return mapToResponse(created), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	found, err := s.findActive(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*found), nil
}

func (s *service) Update(ctx context.Context, id string, input map[string]any) (EmployeeResponse, error) {
	log := s.log(ctx)
	log.Debug("update employee requested", zap.String("employee_id", id))

	existing, err := s.findActive(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if errs := s.validator.ValidateUpdate(input, existing); errs != nil {
		log.Debug("update employee validation failed",
			zap.String("employee_id", id),
			zap.Strings("fields", errs.Fields),
		)
		return EmployeeResponse{}, errs
	}

	if err := s.resolvePhoto(input); err != nil {
		log.Error("update employee store photo failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, employeeerrors.ErrUpdateFailed
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		log.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, employeeerrors.ErrUpdateFailed
	}
	if updated == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	s.publish(ctx, events.EmployeeUpdated, id)
	log.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := s.log(ctx)

	// A record that is already soft-deleted is not a valid delete target.
	if _, err := s.findActive(ctx, id); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error("delete employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return apperror.Wrap(err, apperror.CodeInternalError, "Failed to delete employee", http.StatusInternalServerError)
	}
	if !deleted {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.publish(ctx, events.EmployeeDeleted, id)
	log.Info("delete employee success", zap.String("employee_id", id))

	return nil
}

func (s *service) UploadPhoto(ctx context.Context, id string, upload *PhotoUpload) (EmployeeResponse, error) {
	if _, err := s.findActive(ctx, id); err != nil {
		return EmployeeResponse{}, err
	}

	if upload == nil {
		errs := apperror.NewValidationError()
		errs.Add("profile_photo", "Profile photo is required")
		return EmployeeResponse{}, errs
	}

	return s.Update(ctx, id, map[string]any{"profile_photo": upload})
}

func (s *service) DeletePhoto(ctx context.Context, id string) (EmployeeResponse, error) {
	return s.Update(ctx, id, map[string]any{"profile_photo": nil})
}

// log returns the request-scoped logger when the middleware attached one,
// otherwise the logger the service was built with.
func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

// findActive resolves an id to a record that is present and not soft-deleted.
func (s *service) findActive(ctx context.Context, id string) (*Employee, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log(ctx).Error("find employee failed", zap.String("employee_id", id), zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "Failed to load employee", http.StatusInternalServerError)
	}
	if found == nil || found.IsDeleted() {
		return nil, employeeerrors.ErrEmployeeNotFound
	}
	return found, nil
}

// resolvePhoto stores a pending upload and replaces it in the payload with
// the resulting relative path, so persistence only ever sees path strings.
func (s *service) resolvePhoto(input map[string]any) error {
	upload, _, ok := pendingUpload(input)
	if !ok {
		return nil
	}

	path, err := s.files.Store(upload.Data, upload.Ext, avatarsDir)
	if err != nil {
		return err
	}

	delete(input, "profile_photo")
	delete(input, "profilePhoto")
	input["profilePhoto"] = path
	return nil
}

// publish is fire-and-forget: a broker hiccup must not fail the request.
func (s *service) publish(ctx context.Context, eventType, employeeID string) {
	event := events.EmployeeLifecycleEvent{
		EventType:  eventType,
		RequestID:  contextutil.GetRequestID(ctx),
		EmployeeID: employeeID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishLifecycle(ctx, event); err != nil {
		s.log(ctx).Error("publish lifecycle event failed",
			zap.String("event_type", eventType),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
	}
}
