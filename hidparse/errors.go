package hidparse

import "errors"

// Decode errors. All of them abort the in-progress parse; the parser
// itself stays usable and the next Parse starts from a clean slate.
var (
	ErrUnexpectedEnd       = errors.New("hidparse: descriptor truncated")
	ErrUnknownItem         = errors.New("hidparse: unknown item tag")
	ErrStackOverflow       = errors.New("hidparse: state stack overflow")
	ErrStackUnderflow      = errors.New("hidparse: state stack underflow")
	ErrCollectionOverflow  = errors.New("hidparse: collections nested too deep")
	ErrCollectionUnderflow = errors.New("hidparse: end collection without collection")
	ErrUsageOverflow       = errors.New("hidparse: too many queued usages")
	ErrTooManyReportIDs    = errors.New("hidparse: too many report IDs")
	ErrTooManyItems        = errors.New("hidparse: too many report items")
)

// Codec outcomes. Both are expected per-call conditions and leave the
// parser untouched: ErrWrongReport means the buffer belongs to a
// different report ID, ErrLengthMismatch means the buffer cannot hold
// the item's bit range.
var (
	ErrWrongReport    = errors.New("hidparse: report ID does not match item")
	ErrLengthMismatch = errors.New("hidparse: report too short for item")
)
