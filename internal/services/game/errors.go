package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound  GameError = "session not found"
	ErrPlayerNotFound   GameError = "player not found"
	ErrDebtNotFound     GameError = "debt not found"
	ErrLocationNotFound GameError = "location not found"
	ErrUnknownAction    GameError = "unknown action identifier"
	ErrInvalidAmount    GameError = "amount must be positive"
	ErrNegativeAmount   GameError = "amount cannot be negative"
	ErrInvalidBoardSize GameError = "board size must be positive"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilArchiveRepo   GameError = "archive repository cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrNilDiceRoller    GameError = "dice roller cannot be nil"
)
