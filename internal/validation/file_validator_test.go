package validation

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *FileValidator {
	return NewFileValidator(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestFileValidator_ValidateFile(t *testing.T) {
	tests := []struct {
		name          string
		setupFunc     func(t *testing.T) string
		wantErr       bool
		errorContains string
	}{
		{
			name: "valid file",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "data.csv")
				require.NoError(t, os.WriteFile(path, []byte("dteday\n"), 0o644))
				return path
			},
			wantErr: false,
		},
		{
			name: "non-existent file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv")
			},
			wantErr:       true,
			errorContains: "does not exist",
		},
		{
			name: "path is a directory",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr:       true,
			errorContains: "is a directory",
		},
		{
			name: "empty file",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "empty.csv")
				require.NoError(t, os.WriteFile(path, nil, 0o644))
				return path
			},
			wantErr:       true,
			errorContains: "is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestValidator().ValidateFile(tt.setupFunc(t))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFileValidator_ValidateCSVFile(t *testing.T) {
	v := newTestValidator()

	t.Run("rejects wrong extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		err := v.ValidateCSVFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a CSV file")
	})

	t.Run("accepts csv extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.CSV")
		require.NoError(t, os.WriteFile(path, []byte("dteday\n"), 0o644))
		assert.NoError(t, v.ValidateCSVFile(path))
	})
}

func TestFileValidator_ValidateDatasetFiles(t *testing.T) {
	v := newTestValidator()
	dir := t.TempDir()

	day := filepath.Join(dir, "day.csv")
	hour := filepath.Join(dir, "hour.csv")
	require.NoError(t, os.WriteFile(day, []byte("dteday\n"), 0o644))
	require.NoError(t, os.WriteFile(hour, []byte("dteday\n"), 0o644))

	assert.NoError(t, v.ValidateDatasetFiles(day, hour))

	err := v.ValidateDatasetFiles(day, filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hour table")
}

func TestNewFileValidatorNilLogger(t *testing.T) {
	assert.NotNil(t, NewFileValidator(nil))
}
