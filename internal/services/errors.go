package services

import (
	"errors"
)

// ErrDatasetUnavailable wraps a failed dataset load. The source files are
// static, so the condition persists until the deployment is fixed; the
// transport maps it to 503.
var ErrDatasetUnavailable = errors.New("dataset unavailable")

// ErrUnknownPreset reports an unrecognized series range preset.
var ErrUnknownPreset = errors.New("unknown range preset")
