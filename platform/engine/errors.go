package engine

import "errors"

var (
	ErrInvalidIndex        = errors.New("engine: invalid index")
	ErrInsufficientFunds   = errors.New("engine: insufficient funds")
	ErrIllegalOwnership    = errors.New("engine: illegal ownership")
	ErrMissingCollaborator = errors.New("engine: missing collaborator")
	ErrNotYourTurn         = errors.New("engine: not your turn")
	ErrWrongPhase          = errors.New("engine: action not allowed in current phase")
)
