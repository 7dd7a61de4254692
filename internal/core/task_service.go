package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/catalog"
	"github.com/ojharitesh/Launch-Navigator/internal/db"
	"github.com/ojharitesh/Launch-Navigator/internal/deadline"
	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// Custom errors for the TaskService
var (
	ErrTaskNotFound     = errors.New("catalog task not found")
	ErrUserTaskNotFound = errors.New("user task not found")
)

// Catalog sources reported by ListCatalog.
const (
	SourceDatabase = "database"
	SourceSeed     = "seed"
)

// taskService implements the TaskService interface.
type taskService struct {
	catalogRepo     db.CatalogRepository
	userTaskRepo    db.UserTaskRepository
	profileRepo     db.ProfileRepository
	licenseRepo     db.LicenseRepository
	inspectionRepo  db.InspectionRepository
	activityService ActivityService
	windowDays      int
	logger          *zap.Logger
}

// NewTaskService creates a new TaskService instance. windowDays is the
// due-soon window used for dashboard deadline counts.
func NewTaskService(
	cr db.CatalogRepository,
	utr db.UserTaskRepository,
	pr db.ProfileRepository,
	lr db.LicenseRepository,
	ir db.InspectionRepository,
	as ActivityService,
	windowDays int,
	logger *zap.Logger,
) TaskService {
	if windowDays <= 0 {
		windowDays = deadline.DefaultWindowDays
	}
	return &taskService{
		catalogRepo:     cr,
		userTaskRepo:    utr,
		profileRepo:     pr,
		licenseRepo:     lr,
		inspectionRepo:  ir,
		activityService: as,
		windowDays:      windowDays,
		logger:          logger,
	}
}

// loadCatalog returns the persisted catalog, falling back to the built-in
// seed catalog only when the persisted one is empty. The two are never
// merged.
func (s *taskService) loadCatalog(ctx context.Context) (*CatalogResult, error) {
	if s.catalogRepo == nil {
		return nil, errors.New("taskService: catalogRepo not initialized")
	}
	tasks, err := s.catalogRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog tasks: %w", err)
	}
	if len(tasks) > 0 {
		return &CatalogResult{Tasks: tasks, Source: SourceDatabase}, nil
	}
	seeded := make([]models.CatalogTask, len(catalog.SeedTasks))
	copy(seeded, catalog.SeedTasks)
	return &CatalogResult{Tasks: seeded, Source: SourceSeed}, nil
}

// ListCatalog returns catalog tasks matching the given state and business
// type, ordered by display order.
func (s *taskService) ListCatalog(ctx context.Context, state, businessType string) (*CatalogResult, error) {
	result, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	result.Tasks = catalog.Filter(result.Tasks, state, businessType)
	return result, nil
}

// SeedCatalog persists the built-in catalog, overwriting tasks that share an
// ID with a seed task.
func (s *taskService) SeedCatalog(ctx context.Context) (int, error) {
	if s.catalogRepo == nil {
		return 0, errors.New("taskService: catalogRepo not initialized")
	}
	if err := s.catalogRepo.UpsertAll(ctx, catalog.SeedTasks); err != nil {
		return 0, fmt.Errorf("failed to seed catalog: %w", err)
	}
	return len(catalog.SeedTasks), nil
}

// AssignFromProfile assigns every catalog task matching the user's profile.
// Tasks already assigned keep their completion state.
func (s *taskService) AssignFromProfile(ctx context.Context, userID string) ([]*models.UserTask, int, error) {
	if s.profileRepo == nil {
		return nil, 0, errors.New("taskService: profileRepo not initialized")
	}
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, 0, fmt.Errorf("%w: user '%s'", ErrProfileNotFound, userID)
		}
		return nil, 0, fmt.Errorf("failed to get profile for user '%s': %w", userID, err)
	}

	result, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, 0, err
	}
	matched := catalog.Filter(result.Tasks, profile.State, profile.BusinessType)

	taskIDs := make([]string, 0, len(matched))
	for _, t := range matched {
		taskIDs = append(taskIDs, t.ID)
	}
	return s.assign(ctx, userID, taskIDs, result.Tasks)
}

// AssignTasks assigns the given catalog task IDs to the user. Unknown IDs
// yield ErrTaskNotFound.
func (s *taskService) AssignTasks(ctx context.Context, userID string, taskIDs []string) ([]*models.UserTask, int, error) {
	result, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, 0, err
	}
	known := make(map[string]struct{}, len(result.Tasks))
	for _, t := range result.Tasks {
		known[t.ID] = struct{}{}
	}
	for _, id := range taskIDs {
		if _, ok := known[id]; !ok {
			return nil, 0, fmt.Errorf("%w: '%s'", ErrTaskNotFound, id)
		}
	}
	return s.assign(ctx, userID, taskIDs, result.Tasks)
}

// assign materializes user-task records for the given catalog task IDs and
// returns the user's full joined task list plus how many records were newly
// created.
func (s *taskService) assign(ctx context.Context, userID string, taskIDs []string, catalogTasks []models.CatalogTask) ([]*models.UserTask, int, error) {
	if s.userTaskRepo == nil {
		return nil, 0, errors.New("taskService: userTaskRepo not initialized")
	}

	created := 0
	now := time.Now().UTC()
	for _, taskID := range taskIDs {
		userTask := &models.UserTask{
			UserID:    userID,
			TaskID:    taskID,
			Completed: false,
			CreatedAt: now,
		}
		inserted, err := s.userTaskRepo.InsertIfAbsent(ctx, userTask)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to assign task '%s' to user '%s': %w", taskID, userID, err)
		}
		if inserted {
			created++
		}
	}

	if created > 0 {
		s.recordActivity(ctx, models.ActivityLog{
			UserID:     userID,
			Action:     "TASKS_ASSIGN",
			TargetType: "USER_TASK",
			TargetID:   userID,
			Details:    map[string]interface{}{"assigned": created},
		})
	}

	userTasks, err := s.userTaskRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks for user '%s': %w", userID, err)
	}
	joinCatalog(userTasks, catalogTasks)
	sortByCatalogOrder(userTasks)
	return userTasks, created, nil
}

// ListUserTasks returns the user's tasks joined with their catalog entries,
// ordered by catalog order, plus a progress summary.
func (s *taskService) ListUserTasks(ctx context.Context, userID string) ([]*models.UserTask, models.Progress, error) {
	if s.userTaskRepo == nil {
		return nil, models.Progress{}, errors.New("taskService: userTaskRepo not initialized")
	}

	userTasks, err := s.userTaskRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, models.Progress{}, fmt.Errorf("failed to list tasks for user '%s': %w", userID, err)
	}

	result, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, models.Progress{}, err
	}
	joinCatalog(userTasks, result.Tasks)
	sortByCatalogOrder(userTasks)

	return userTasks, progressOf(userTasks), nil
}

// ToggleTask sets the completion state of one of the user's tasks. Acting on
// a record owned by another user behaves as if the record did not exist.
func (s *taskService) ToggleTask(ctx context.Context, userID, userTaskID string, completed bool) (*models.UserTask, error) {
	if s.userTaskRepo == nil {
		return nil, errors.New("taskService: userTaskRepo not initialized")
	}

	userTask, err := s.userTaskRepo.GetByID(ctx, userTaskID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrUserTaskNotFound, userTaskID)
		}
		return nil, fmt.Errorf("failed to get user task '%s': %w", userTaskID, err)
	}
	if userTask.UserID != userID {
		return nil, fmt.Errorf("%w: '%s'", ErrUserTaskNotFound, userTaskID)
	}

	var completedAt *time.Time
	if completed {
		now := time.Now().UTC()
		completedAt = &now
	}
	if err := s.userTaskRepo.SetCompletion(ctx, userTaskID, completed, completedAt); err != nil {
		return nil, fmt.Errorf("failed to update completion of user task '%s': %w", userTaskID, err)
	}
	userTask.Completed = completed
	userTask.CompletedAt = completedAt

	s.recordActivity(ctx, models.ActivityLog{
		UserID:     userID,
		Action:     "TASK_TOGGLE",
		TargetType: "USER_TASK",
		TargetID:   userTaskID,
		Details:    map[string]interface{}{"completed": completed},
	})

	if result, catErr := s.loadCatalog(ctx); catErr == nil {
		joinCatalog([]*models.UserTask{userTask}, result.Tasks)
	}
	return userTask, nil
}

// DashboardStats aggregates task progress and compliance deadlines for the
// user's dashboard.
func (s *taskService) DashboardStats(ctx context.Context, userID string) (*models.DashboardStats, error) {
	if s.userTaskRepo == nil || s.licenseRepo == nil || s.inspectionRepo == nil {
		return nil, errors.New("taskService: component not initialized")
	}

	userTasks, err := s.userTaskRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for user '%s': %w", userID, err)
	}
	licenses, err := s.licenseRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses for user '%s': %w", userID, err)
	}
	inspections, err := s.inspectionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections for user '%s': %w", userID, err)
	}

	stats := &models.DashboardStats{TotalTasks: len(userTasks)}
	for _, ut := range userTasks {
		if ut.Completed {
			stats.CompletedTasks++
		}
	}

	now := time.Now()
	for _, l := range licenses {
		if deadline.IsWithinDays(l.ExpirationDate, now, s.windowDays) {
			stats.UpcomingDeadlines++
		}
		if deadline.DaysUntil(l.ExpirationDate, now) < 0 {
			stats.ComplianceAlerts++
		}
	}
	for _, ins := range inspections {
		if ins.NextInspectionEstimate == nil {
			continue
		}
		if deadline.IsWithinDays(*ins.NextInspectionEstimate, now, s.windowDays) {
			stats.UpcomingDeadlines++
		}
		if deadline.DaysUntil(*ins.NextInspectionEstimate, now) < 0 {
			stats.ComplianceAlerts++
		}
	}
	return stats, nil
}

func (s *taskService) recordActivity(ctx context.Context, entry models.ActivityLog) {
	if s.activityService == nil {
		return
	}
	entry.Timestamp = time.Now().UTC()
	if err := s.activityService.Record(ctx, entry); err != nil && s.logger != nil {
		s.logger.Warn("failed to record activity",
			zap.String("action", entry.Action),
			zap.String("userID", entry.UserID),
			zap.Error(err))
	}
}

// joinCatalog attaches the matching catalog entry to each user task.
func joinCatalog(userTasks []*models.UserTask, catalogTasks []models.CatalogTask) {
	byID := make(map[string]*models.CatalogTask, len(catalogTasks))
	for i := range catalogTasks {
		byID[catalogTasks[i].ID] = &catalogTasks[i]
	}
	for _, ut := range userTasks {
		ut.Task = byID[ut.TaskID]
	}
}

// sortByCatalogOrder orders user tasks by their catalog display order.
// Tasks whose catalog entry is missing sort last.
func sortByCatalogOrder(userTasks []*models.UserTask) {
	sort.SliceStable(userTasks, func(i, j int) bool {
		a, b := userTasks[i].Task, userTasks[j].Task
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Order < b.Order
		}
	})
}

// progressOf computes the completion summary. The percentage is zero when no
// tasks are assigned, otherwise rounded half up.
func progressOf(userTasks []*models.UserTask) models.Progress {
	p := models.Progress{TotalCount: len(userTasks)}
	for _, ut := range userTasks {
		if ut.Completed {
			p.CompletedCount++
		}
	}
	if p.TotalCount > 0 {
		p.Percentage = int(math.Floor(float64(p.CompletedCount)*100/float64(p.TotalCount) + 0.5))
	}
	return p
}
