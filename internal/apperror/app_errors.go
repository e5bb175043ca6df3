package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell")
	ErrForbiddenMove     = errors.New("forbidden move")
	ErrMissingPlayerName = errors.New("both player names are required")
	ErrSessionNotFound   = errors.New("session not found")
	ErrDataLoad          = errors.New("failed to load player records")
)
