package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrStorage            = errors.New("storage error")
	ErrEventFinished      = errors.New("event is finished")
	ErrHasTransactions    = errors.New("has transactions")
	ErrHasEvents          = errors.New("administers events")
	ErrNicknameTaken      = errors.New("nickname already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrKittyProtected     = errors.New("kitty cannot be modified")
	ErrForbidden          = errors.New("not allowed for this user")
)
