package report

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported report format")
	ErrRenderFailed      = errors.New("failed to render report")
)
