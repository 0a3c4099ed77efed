package config

import "errors"

var (
	// ErrStoreUnavailable means the durable store could not be opened or
	// reached.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrSchemaConflict means an existing table is incompatible with the
	// declared models and destructive mode was not requested.
	ErrSchemaConflict = errors.New("schema conflict")
)
