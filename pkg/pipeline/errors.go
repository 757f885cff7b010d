package pipeline

import "errors"

// Failure categories. Every one of them ends the run; stages wrap the
// underlying cause with the matching sentinel so callers can use errors.Is.
var (
	// ErrDeviceUnavailable means the camera could not be opened.
	ErrDeviceUnavailable = errors.New("device unavailable")

	// ErrRead means the camera failed while reading a frame.
	ErrRead = errors.New("frame read failed")

	// ErrAnnotation means drawing the banner or timestamp failed.
	ErrAnnotation = errors.New("annotation failed")

	// ErrPersist means encoding or writing the archived image failed.
	ErrPersist = errors.New("persist failed")
)
