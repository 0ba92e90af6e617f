package seggo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/seggo/trie"
)

var (
	// ErrInvalidMarker is returned when an empty marker is supplied.
	ErrInvalidMarker = errors.New("invalid marker")

	// ErrInvalidK is returned when k is not a sound upper bound on marker
	// length: k < 1 while the marker set is non-empty, or some marker is
	// longer than k.
	ErrInvalidK = errors.New("invalid k")
)

// ErrMarkerTooLong indicates a marker whose length exceeds the configured k.
//
// It unwraps to ErrInvalidK so callers can match the error kind with
// errors.Is.
type ErrMarkerTooLong struct {
	Marker string
	K      int
}

func (e *ErrMarkerTooLong) Error() string {
	return fmt.Sprintf("marker %q has length %d, exceeding k=%d", e.Marker, len(e.Marker), e.K)
}

func (e *ErrMarkerTooLong) Unwrap() error { return ErrInvalidK }

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, trie.ErrEmptyMarker) {
		return fmt.Errorf("%w: %w", ErrInvalidMarker, err)
	}
	return err
}
