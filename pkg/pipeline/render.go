package pipeline

import (
	"bytes"

	"github.com/matzehuels/bls2brs/pkg/brs"
	"github.com/matzehuels/bls2brs/pkg/errors"
	bsio "github.com/matzehuels/bls2brs/pkg/io"
)

// Render generates output artifacts in the requested formats.
func Render(c *Conversion, formats []string) (map[string][]byte, error) {
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		switch format {
		case FormatBRS:
			var buf bytes.Buffer
			if err := brs.Write(&buf, c.Save); err != nil {
				return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "render %s", format)
			}
			artifacts[format] = buf.Bytes()
		case FormatJSON:
			var buf bytes.Buffer
			if err := bsio.WriteJSON(c.Save, &buf); err != nil {
				return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "render %s", format)
			}
			artifacts[format] = buf.Bytes()
		}
	}
	return artifacts, nil
}
