// Package repository implements MySQL persistence for the train roster and
// for clerk accounts. Sentinel values defined here let handlers map
// repository failures to HTTP responses without inspecting error strings.
package repository

import "errors"

// ErrTrainNotFound is returned when a requested train number has no row in
// the trains table. Handlers should translate this into HTTP 404.
var ErrTrainNotFound = errors.New("train not found")

// ErrEmailExists is returned when registering a clerk with an email that is
// already taken. Handlers should translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")
