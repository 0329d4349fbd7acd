package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrInvalidMoment      = fmt.Errorf("invalid moment")
	ErrInvalidCoordinates = fmt.Errorf("invalid coordinates")
	ErrFutureMoment       = fmt.Errorf("moment is in the future")
	ErrInvalidAge         = fmt.Errorf("invalid age")
	ErrEphemerisFailure   = fmt.Errorf("ephemeris failure")
	ErrUnknownHouseSystem = fmt.Errorf("unknown house system")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	// ErrTransientOracle marks an oracle error as worth retrying.
	// Oracles wrap it with %w, the adapter never retries anything else.
	ErrTransientOracle = fmt.Errorf("transient oracle error")
)

// TargetHouses is the EphemerisFailure target used for house geometry queries.
const TargetHouses = "houses"

// EphemerisFailure is returned when the oracle reports an error for a body or for house geometry.
// A chart computation that meets one is aborted as a whole.
type EphemerisFailure struct {
	Target  string // body name or TargetHouses
	Message string
	Err     error
}

func NewEphemerisFailure(target string, err error) *EphemerisFailure {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &EphemerisFailure{Target: target, Message: msg, Err: err}
}

func (e *EphemerisFailure) Error() string {
	return fmt.Sprintf("ephemeris failure for %s: %s", e.Target, e.Message)
}

func (e *EphemerisFailure) Is(target error) bool {
	return target == ErrEphemerisFailure
}

func (e *EphemerisFailure) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err was classified as transient by the oracle.
func IsTransient(err error) bool {
	return stderrors.Is(err, ErrTransientOracle)
}
