package punch

import "errors"

var (
	ErrEventNotFound         = errors.New("punch event not found")
	ErrNoOpenEvent           = errors.New("no punch-in found for today, add a manual punch-in entry")
	ErrAlreadyPunchedIn      = errors.New("an open punch-in already exists for this day")
	ErrPunchOutBeforePunchIn = errors.New("punch-out must not be earlier than punch-in")
	ErrUnauthorized          = errors.New("unauthorized to access this punch event")
)
