package fitlog

import "fmt"

// NotFoundError reports that no log exists at Path.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("progression log not found at %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// EmptyDatasetError reports that the log had no usable row after cleaning.
type EmptyDatasetError struct {
	Path  string
	Stats Stats
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("progression log %s has no usable rows after cleaning (%d raw rows, %d incomplete, %d non-numeric)",
		e.Path, e.Stats.Raw, e.Stats.DroppedMissing, e.Stats.DroppedInvalid)
}

// LoadError wraps any other failure to read or parse the log.
type LoadError struct {
	Path string
	Line int // 0 when the failure is not tied to a line
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
