package drone

import "errors"

var (
	ErrDroneNotFound      = errors.New("drone not found")
	ErrDroneAlreadyExists = errors.New("drone with this serial number already exists")
	ErrInvalidState       = errors.New("invalid drone state")
)
