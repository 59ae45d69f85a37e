// Package model implements the seat inventory core: seats, carriages with a
// left/right seating layout, trains, and their booking and unbooking
// operations. The sentinel errors below let higher layers such as the
// allocator and HTTP handlers distinguish failure scenarios without string
// matching. Every error here is recoverable by the caller; nothing in this
// package is fatal to the process.
package model

import "errors"

// ErrInvalidLayout is returned when a carriage seating layout string does
// not match the required single-digit "L+R" form, e.g. "2+2" or "1+3".
var ErrInvalidLayout = errors.New("invalid seating layout")

// ErrSeatOutOfRange is returned when a seat number is below 1 or beyond the
// carriage's last seat.
var ErrSeatOutOfRange = errors.New("seat number out of range")

// ErrCarriageOutOfRange is returned when a carriage number does not exist
// on the train.
var ErrCarriageOutOfRange = errors.New("carriage number out of range")

// ErrAlreadyBooked is returned when booking a seat that has an occupant.
var ErrAlreadyBooked = errors.New("seat already booked")

// ErrPassengerNotFound is returned when a name lookup matches no seat.
// Callers should suggest retrying with a seat number or checking spelling.
var ErrPassengerNotFound = errors.New("no booked seat under that name")

// ErrAmbiguousName is returned when a name lookup matches more than one
// seat; passenger names are not guaranteed unique, seat numbers are.
var ErrAmbiguousName = errors.New("multiple booked seats under that name")
