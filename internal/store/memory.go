package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quantaflow/quantaflow/internal/models"
)

// MemStore is an in-memory Store. All state lives for the process lifetime;
// nothing is ever deleted. A single mutex guards the maps, so every operation
// is atomic from the caller's perspective. List operations return records in
// insertion order, which Go maps do not preserve on their own, so each record
// kind keeps an ordered id slice beside its map.
type MemStore struct {
	mu  sync.RWMutex
	now func() time.Time

	users     map[string]models.User
	userOrder []string

	files     map[string]models.UploadedFile
	fileOrder []string

	queries    map[string]models.Query
	queryOrder []string

	results     map[string]models.QueryResult
	resultOrder []string
}

// Option configures a MemStore.
type Option func(*MemStore)

// WithNow overrides the timestamp source, for deterministic tests.
func WithNow(now func() time.Time) Option {
	return func(s *MemStore) {
		s.now = now
	}
}

// NewMemStore creates an empty in-memory store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		now:     time.Now,
		users:   make(map[string]models.User),
		files:   make(map[string]models.UploadedFile),
		queries: make(map[string]models.Query),
		results: make(map[string]models.QueryResult),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUser stores a new user under a fresh id.
func (s *MemStore) CreateUser(_ context.Context, in models.InsertUser) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := models.User{
		ID:       uuid.NewString(),
		Email:    in.Email,
		Password: in.Password,
	}
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return &user
}

// GetUser looks up a user by id.
func (s *MemStore) GetUser(_ context.Context, id string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return &user, true
}

// GetUserByEmail scans for a user with the given email. Linear, which is fine
// at demo scale.
func (s *MemStore) GetUserByEmail(_ context.Context, email string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if user := s.users[id]; user.Email == email {
			return &user, true
		}
	}
	return nil, false
}

// CreateUploadedFile stores a new file record with the upload timestamp.
func (s *MemStore) CreateUploadedFile(_ context.Context, in models.InsertUploadedFile) *models.UploadedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	file := models.UploadedFile{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		FileName:   in.FileName,
		FileType:   in.FileType,
		FileSize:   in.FileSize,
		Status:     in.Status,
		UploadedAt: s.now(),
	}
	s.files[file.ID] = file
	s.fileOrder = append(s.fileOrder, file.ID)
	return &file
}

// GetUploadedFilesByUser returns the user's files in upload order.
func (s *MemStore) GetUploadedFilesByUser(_ context.Context, userID string) []*models.UploadedFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	files := []*models.UploadedFile{}
	for _, id := range s.fileOrder {
		if file := s.files[id]; file.UserID == userID {
			files = append(files, &file)
		}
	}
	return files
}

// UpdateFileStatus replaces the status of the file with the given id.
// Unknown ids are a silent no-op.
func (s *MemStore) UpdateFileStatus(_ context.Context, fileID string, status models.FileStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if file, ok := s.files[fileID]; ok {
		file.Status = status
		s.files[fileID] = file
	}
}

// CreateQuery stores a new query record with the creation timestamp.
func (s *MemStore) CreateQuery(_ context.Context, in models.InsertQuery) *models.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	query := models.Query{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		QueryText:  in.QueryText,
		Modalities: in.Modalities,
		Status:     in.Status,
		CreatedAt:  s.now(),
	}
	s.queries[query.ID] = query
	s.queryOrder = append(s.queryOrder, query.ID)
	return &query
}

// GetQueriesByUser returns the user's queries in creation order.
func (s *MemStore) GetQueriesByUser(_ context.Context, userID string) []*models.Query {
	s.mu.RLock()
	defer s.mu.RUnlock()
	queries := []*models.Query{}
	for _, id := range s.queryOrder {
		if query := s.queries[id]; query.UserID == userID {
			queries = append(queries, &query)
		}
	}
	return queries
}

// UpdateQueryStatus replaces the status of the query with the given id.
// Unknown ids are a silent no-op.
func (s *MemStore) UpdateQueryStatus(_ context.Context, queryID string, status models.QueryStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if query, ok := s.queries[queryID]; ok {
		query.Status = status
		s.queries[queryID] = query
	}
}

// CreateQueryResult stores a new result record with the creation timestamp.
func (s *MemStore) CreateQueryResult(_ context.Context, in models.InsertQueryResult) *models.QueryResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := models.QueryResult{
		ID:                  uuid.NewString(),
		QueryID:             in.QueryID,
		Modality:            in.Modality,
		Content:             in.Content,
		ConfidenceScore:     in.ConfidenceScore,
		QuantumEntanglement: in.QuantumEntanglement,
		CreatedAt:           s.now(),
	}
	s.results[result.ID] = result
	s.resultOrder = append(s.resultOrder, result.ID)
	return &result
}

// GetResultsByQuery returns the query's results in creation order.
func (s *MemStore) GetResultsByQuery(_ context.Context, queryID string) []*models.QueryResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := []*models.QueryResult{}
	for _, id := range s.resultOrder {
		if result := s.results[id]; result.QueryID == queryID {
			results = append(results, &result)
		}
	}
	return results
}

// CountQueriesByStatus counts stored queries currently in the given status.
func (s *MemStore) CountQueriesByStatus(_ context.Context, status models.QueryStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, query := range s.queries {
		if query.Status == status {
			n++
		}
	}
	return n
}
