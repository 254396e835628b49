package report

import "errors"

// Export failures are surfaced to the operator as notifications; they never
// touch already-fetched state.
var (
	ErrExportFailed  = errors.New("failed to render report artifact")
	ErrInvalidImage  = errors.New("snapshot image could not be decoded")
	ErrUnknownFormat = errors.New("unknown report format")
)
