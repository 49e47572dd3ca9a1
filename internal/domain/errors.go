package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// record does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing destination, travelers < 1, rating out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrRemoteUnavailable marks a remote call that failed at the network or
// connection level. The arbitrator converts it into an offline-path
// execution; it never reaches a handler.
var ErrRemoteUnavailable = errors.New("remote service unavailable")

// ErrRemoteTimeout marks a remote call that exceeded its time bound.
// Handled the same way as ErrRemoteUnavailable.
var ErrRemoteTimeout = errors.New("remote call timed out")

// ErrMalformedResponse marks a remote response that could not be parsed
// into the expected shape. Treated as a remote failure by the arbitrator.
var ErrMalformedResponse = errors.New("malformed remote response")

// ErrStorageCorrupted marks a backing blob that failed to deserialize.
// The record store converts it into empty-collection semantics and logs it;
// callers never see this error from read operations.
var ErrStorageCorrupted = errors.New("storage corrupted")

// ErrStorageQuota marks a backing store write that was rejected
// (e.g. capacity exceeded). There is no further fallback for writes, so
// this one is reported upward as a store-level failure.
var ErrStorageQuota = errors.New("storage quota exceeded")
