// Package store defines persistence for users, uploads, queries, and results.
package store

import (
	"context"

	"github.com/quantaflow/quantaflow/internal/models"
)

// Store defines record persistence operations. Create operations assign the
// id and server-side timestamps and never fail for well-formed input. Point
// lookups report absence with a bool rather than an error, and status updates
// on an unknown id are silent no-ops.
type Store interface {
	// User operations
	CreateUser(ctx context.Context, in models.InsertUser) *models.User
	GetUser(ctx context.Context, id string) (*models.User, bool)
	GetUserByEmail(ctx context.Context, email string) (*models.User, bool)

	// Uploaded file operations
	CreateUploadedFile(ctx context.Context, in models.InsertUploadedFile) *models.UploadedFile
	GetUploadedFilesByUser(ctx context.Context, userID string) []*models.UploadedFile
	UpdateFileStatus(ctx context.Context, fileID string, status models.FileStatus)

	// Query operations
	CreateQuery(ctx context.Context, in models.InsertQuery) *models.Query
	GetQueriesByUser(ctx context.Context, userID string) []*models.Query
	UpdateQueryStatus(ctx context.Context, queryID string, status models.QueryStatus)

	// Query result operations
	CreateQueryResult(ctx context.Context, in models.InsertQueryResult) *models.QueryResult
	GetResultsByQuery(ctx context.Context, queryID string) []*models.QueryResult

	// Stats
	CountQueriesByStatus(ctx context.Context, status models.QueryStatus) int
}
