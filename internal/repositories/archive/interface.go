package archive

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/moneylane/moneylane/internal/repositories/archive Repository

// Repository defines the interface for archived game result persistence
type Repository interface {
	// SaveResult persists the summary of an ended game session
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetResult retrieves an archived result by session token
	GetResult(ctx context.Context, input *GetResultInput) (*GetResultOutput, error)

	// ListRecentResults retrieves the most recently finished games
	ListRecentResults(ctx context.Context, input *ListRecentResultsInput) (*ListRecentResultsOutput, error)
}
