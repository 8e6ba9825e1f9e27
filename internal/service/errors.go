package service

import "errors"

// ErrValidation marks errors caught before any network call. Handlers map
// it to a 400 with the wrapped message; everything else from a service is
// a store/transport failure.
var ErrValidation = errors.New("validation failed")
