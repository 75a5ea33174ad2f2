package archive

import (
	"github.com/moneylane/moneylane/internal/models"
)

// SaveResultInput contains parameters for archiving a game result
type SaveResultInput struct {
	// Result is the ended session's summary
	Result *models.GameResult
}

// GetResultInput contains parameters for retrieving an archived result
type GetResultInput struct {
	// SessionID is the session token the game was played under
	SessionID string
}

// GetResultOutput contains the retrieved result
type GetResultOutput struct {
	Result *models.GameResult
}

// ListRecentResultsInput contains parameters for listing archived results
type ListRecentResultsInput struct {
	// Limit caps the number of results returned; zero means all
	Limit int
}

// ListRecentResultsOutput contains the retrieved results, most recent first
type ListRecentResultsOutput struct {
	Results []*models.GameResult
}
