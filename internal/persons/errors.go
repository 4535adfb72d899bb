package persons

import "errors"

var (
	// ErrNameRequired indicates an empty or whitespace-only person name.
	ErrNameRequired = errors.New("name cannot be empty")

	// ErrPersonExists indicates an add for a name that is already stored.
	ErrPersonExists = errors.New("person already exists")

	// ErrPersonNotFound indicates a lookup for a name that is not stored.
	ErrPersonNotFound = errors.New("person not found")

	// ErrNoFields indicates an update request that carries nothing to change.
	ErrNoFields = errors.New("no updatable fields provided")

	// ErrInvalidField indicates a field value outside its allowed range.
	ErrInvalidField = errors.New("invalid field")

	// ErrInvalidBirthTime indicates a birth date that does not exist on the calendar.
	ErrInvalidBirthTime = errors.New("invalid birth date or time")

	// ErrStoreNotReady indicates the data file has not been opened yet.
	ErrStoreNotReady = errors.New("person store is not ready")
)
