package db

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// MemoryStore is an in-memory implementation of every repository interface,
// used for unit testing service logic without a running Firestore emulator.
// The zero value is not usable; construct it with NewMemoryStore.
type MemoryStore struct {
	mu          sync.Mutex
	profiles    map[string]models.Profile
	catalog     map[string]models.CatalogTask
	userTasks   map[string]models.UserTask
	licenses    map[string]models.License
	inspections map[string]models.Inspection
	activity    []models.ActivityLog
	err         error
}

// NewMemoryStore instantiates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles:    make(map[string]models.Profile),
		catalog:     make(map[string]models.CatalogTask),
		userTasks:   make(map[string]models.UserTask),
		licenses:    make(map[string]models.License),
		inspections: make(map[string]models.Inspection),
	}
}

// WithError configures the store to return the provided error from every
// subsequent call, for exercising store-failure paths.
func (m *MemoryStore) WithError(err error) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// ActivityEntries returns a copy of the recorded activity log.
func (m *MemoryStore) ActivityEntries() []models.ActivityLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.ActivityLog, len(m.activity))
	copy(out, m.activity)
	return out
}

// --- ProfileRepository ---

func (m *MemoryStore) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile with ID '%s' not found: %w", userID, ErrNotFound)
	}
	return &p, nil
}

func (m *MemoryStore) Create(ctx context.Context, profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, exists := m.profiles[profile.ID]; exists {
		return fmt.Errorf("profile with ID '%s' already exists", profile.ID)
	}
	m.profiles[profile.ID] = *profile
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.profiles[profile.ID] = *profile
	return nil
}

// Profiles returns the store itself typed as a ProfileRepository.
func (m *MemoryStore) Profiles() ProfileRepository { return m }

// --- CatalogRepository ---

type memoryCatalogRepo struct{ store *MemoryStore }

// Catalog returns a CatalogRepository view over the store.
func (m *MemoryStore) Catalog() CatalogRepository { return memoryCatalogRepo{store: m} }

func (r memoryCatalogRepo) ListAll(ctx context.Context) ([]models.CatalogTask, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return nil, r.store.err
	}
	tasks := make([]models.CatalogTask, 0, len(r.store.catalog))
	for _, t := range r.store.catalog {
		tasks = append(tasks, t)
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Order < tasks[j].Order })
	return tasks, nil
}

func (r memoryCatalogRepo) GetByID(ctx context.Context, taskID string) (*models.CatalogTask, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return nil, r.store.err
	}
	t, ok := r.store.catalog[taskID]
	if !ok {
		return nil, fmt.Errorf("catalog task with ID '%s' not found: %w", taskID, ErrNotFound)
	}
	return &t, nil
}

func (r memoryCatalogRepo) UpsertAll(ctx context.Context, tasks []models.CatalogTask) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return r.store.err
	}
	for _, t := range tasks {
		r.store.catalog[t.ID] = t
	}
	return nil
}

// --- UserTaskRepository ---

type memoryUserTaskRepo struct{ store *MemoryStore }

// UserTasks returns a UserTaskRepository view over the store.
func (m *MemoryStore) UserTasks() UserTaskRepository { return memoryUserTaskRepo{store: m} }

func (r memoryUserTaskRepo) GetByUserID(ctx context.Context, userID string) ([]*models.UserTask, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return nil, r.store.err
	}
	var out []*models.UserTask
	for _, ut := range r.store.userTasks {
		if ut.UserID == userID {
			copied := ut
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryUserTaskRepo) GetByID(ctx context.Context, userTaskID string) (*models.UserTask, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return nil, r.store.err
	}
	ut, ok := r.store.userTasks[userTaskID]
	if !ok {
		return nil, fmt.Errorf("user task with ID '%s' not found: %w", userTaskID, ErrNotFound)
	}
	return &ut, nil
}

func (r memoryUserTaskRepo) InsertIfAbsent(ctx context.Context, userTask *models.UserTask) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return false, r.store.err
	}
	docID := UserTaskDocID(userTask.UserID, userTask.TaskID)
	userTask.ID = docID
	if _, exists := r.store.userTasks[docID]; exists {
		return false, nil
	}
	r.store.userTasks[docID] = *userTask
	return true, nil
}

func (r memoryUserTaskRepo) SetCompletion(ctx context.Context, userTaskID string, completed bool, completedAt *time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return r.store.err
	}
	ut, ok := r.store.userTasks[userTaskID]
	if !ok {
		return fmt.Errorf("user task with ID '%s' not found: %w", userTaskID, ErrNotFound)
	}
	ut.Completed = completed
	ut.CompletedAt = completedAt
	r.store.userTasks[userTaskID] = ut
	return nil
}

// --- LicenseRepository ---

type memoryLicenseRepo struct{ store *MemoryStore }

// Licenses returns a LicenseRepository view over the store.
func (m *MemoryStore) Licenses() LicenseRepository { return memoryLicenseRepo{store: m} }

func (r memoryLicenseRepo) Create(ctx context.Context, license *models.License) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return "", r.store.err
	}
	if license.ID == "" {
		license.ID = uuid.NewString()
	}
	r.store.licenses[license.ID] = *license
	return license.ID, nil
}

func (r memoryLicenseRepo) GetByID(ctx context.Context, licenseID string) (*models.License, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return nil, r.store.err
	}
	l, ok := r.store.licenses[licenseID]
	if !ok {
		return nil, fmt.Errorf("license with ID '%s' not found: %w", licenseID, ErrNotFound)
	}
	return &l, nil
}

func (r memoryLicenseRepo) GetByUserID(ctx context.Context, userID string) ([]*models.License, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return nil, r.store.err
	}
	var out []*models.License
	for _, l := range r.store.licenses {
		if l.UserID == userID {
			copied := l
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpirationDate.Before(out[j].ExpirationDate)
	})
	return out, nil
}

func (r memoryLicenseRepo) Update(ctx context.Context, license *models.License) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return r.store.err
	}
	if _, ok := r.store.licenses[license.ID]; !ok {
		return fmt.Errorf("license with ID '%s' not found: %w", license.ID, ErrNotFound)
	}
	r.store.licenses[license.ID] = *license
	return nil
}

func (r memoryLicenseRepo) Delete(ctx context.Context, licenseID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return r.store.err
	}
	if _, ok := r.store.licenses[licenseID]; !ok {
		return fmt.Errorf("license with ID '%s' not found for deletion: %w", licenseID, ErrNotFound)
	}
	delete(r.store.licenses, licenseID)
	return nil
}

// --- InspectionRepository ---

type memoryInspectionRepo struct{ store *MemoryStore }

// Inspections returns an InspectionRepository view over the store.
func (m *MemoryStore) Inspections() InspectionRepository { return memoryInspectionRepo{store: m} }

func (r memoryInspectionRepo) Create(ctx context.Context, inspection *models.Inspection) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return "", r.store.err
	}
	if inspection.ID == "" {
		inspection.ID = uuid.NewString()
	}
	r.store.inspections[inspection.ID] = *inspection
	return inspection.ID, nil
}

func (r memoryInspectionRepo) GetByID(ctx context.Context, inspectionID string) (*models.Inspection, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return nil, r.store.err
	}
	ins, ok := r.store.inspections[inspectionID]
	if !ok {
		return nil, fmt.Errorf("inspection with ID '%s' not found: %w", inspectionID, ErrNotFound)
	}
	return &ins, nil
}

func (r memoryInspectionRepo) GetByUserID(ctx context.Context, userID string) ([]*models.Inspection, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return nil, r.store.err
	}
	var out []*models.Inspection
	for _, ins := range r.store.inspections {
		if ins.UserID == userID {
			copied := ins
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].NextInspectionEstimate, out[j].NextInspectionEstimate
		switch {
		case a == nil:
			return b != nil
		case b == nil:
			return false
		default:
			return a.Before(*b)
		}
	})
	return out, nil
}

func (r memoryInspectionRepo) Update(ctx context.Context, inspection *models.Inspection) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return r.store.err
	}
	if _, ok := r.store.inspections[inspection.ID]; !ok {
		return fmt.Errorf("inspection with ID '%s' not found: %w", inspection.ID, ErrNotFound)
	}
	r.store.inspections[inspection.ID] = *inspection
	return nil
}

func (r memoryInspectionRepo) Delete(ctx context.Context, inspectionID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return r.store.err
	}
	if _, ok := r.store.inspections[inspectionID]; !ok {
		return fmt.Errorf("inspection with ID '%s' not found for deletion: %w", inspectionID, ErrNotFound)
	}
	delete(r.store.inspections, inspectionID)
	return nil
}

// --- ActivityRepository ---

type memoryActivityRepo struct{ store *MemoryStore }

// Activity returns an ActivityRepository view over the store.
func (m *MemoryStore) Activity() ActivityRepository { return memoryActivityRepo{store: m} }

func (r memoryActivityRepo) Create(ctx context.Context, entry models.ActivityLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.err != nil {
		return r.store.err
	}
	entry.ID = uuid.NewString()
	r.store.activity = append(r.store.activity, entry)
	return nil
}
