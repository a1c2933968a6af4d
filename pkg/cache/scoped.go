package cache

// ScopedKeyer wraps a Keyer with a prefix so entries written by different
// builds never collide.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ConversionKey generates a prefixed key for converted documents.
func (k *ScopedKeyer) ConversionKey(inputHash string, opts ConversionKeyOpts) string {
	return k.prefix + k.inner.ConversionKey(inputHash, opts)
}

// ArtifactKey generates a prefixed key for rendered outputs.
func (k *ScopedKeyer) ArtifactKey(documentHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(documentHash, opts)
}
