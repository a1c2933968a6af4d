package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SourceExt is the file extension of Blockland saves.
const SourceExt = ".bls"

// TargetExt is the file extension of Brickadia saves.
const TargetExt = ".brs"

// ValidateInputPath validates the path of a save file to convert.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Extension must be .bls (case-insensitive)
//
// A path with the wrong extension yields ErrCodeInvalidFormat so callers can
// skip it instead of aborting; every other failure is ErrCodeInvalidPath.
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if !strings.EqualFold(filepath.Ext(path), SourceExt) {
		return New(ErrCodeInvalidFormat, "extension is not %s", SourceExt)
	}

	return nil
}

// OutputPath derives the default output path for input by replacing its
// extension with ext.
func OutputPath(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}
