package pipeline

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/bls2brs/pkg/bls"
	"github.com/matzehuels/bls2brs/pkg/brs"
	"github.com/matzehuels/bls2brs/pkg/buildinfo"
	"github.com/matzehuels/bls2brs/pkg/core/convert"
	"github.com/matzehuels/bls2brs/pkg/errors"
	bsio "github.com/matzehuels/bls2brs/pkg/io"
)

// Conversion is the output of the convert stage.
type Conversion struct {
	Save    *brs.SaveData `json:"-"`
	Summary Summary       `json:"summary"`

	// Document is the JSON encoding of Save. It is what gets cached, and
	// its hash keys the rendered artifacts.
	Document []byte `json:"document"`
}

// ConvertSave parses the source save in data and converts it.
func ConvertSave(data []byte, opts Options) (*Conversion, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	name := opts.InputName()

	r, err := bls.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedSave, err, "read %s", name)
	}
	rep, err := convert.Convert(r, opts.convertOptions())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedSave, err, "read %s", name)
	}
	if !opts.NoPrefix {
		rep.Save.Description = prefixDescription(name, rep.Save.Description)
	}

	doc, err := bsio.Marshal(rep.Save)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return &Conversion{Save: rep.Save, Summary: summarize(rep), Document: doc}, nil
}

// prefixDescription records where a save came from at the top of its
// description.
func prefixDescription(name, description string) string {
	prefix := fmt.Sprintf("Converted from %s with %s.", name, buildinfo.Name)
	if description == "" {
		return prefix
	}
	return prefix + "\n" + description
}

// decodeConversion restores a cached conversion.
func decodeConversion(c *Conversion) error {
	save, err := bsio.Unmarshal(c.Document)
	if err != nil {
		return err
	}
	c.Save = save
	return nil
}
