package cache

// Keyer generates cache keys. Implementations must include every input that
// changes the cached value.
type Keyer interface {
	// ConversionKey identifies a converted document.
	ConversionKey(inputHash string, opts ConversionKeyOpts) string

	// ArtifactKey identifies one rendered output of a converted document.
	ArtifactKey(documentHash string, opts ArtifactKeyOpts) string
}

// ConversionKeyOpts are the options that affect a converted document.
type ConversionKeyOpts struct {
	RulesVersion string `json:"rules_version"`
	InputName    string `json:"input_name,omitempty"` // appears in the description prefix
	MapName      string `json:"map_name,omitempty"`
	AuthorName   string `json:"author_name,omitempty"`
	NoPrefix     bool   `json:"no_prefix,omitempty"`
}

// ArtifactKeyOpts are the options that affect a rendered output.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Key stages, used as the key prefix.
const (
	keyTypeConversion = "conversion"
	keyTypeArtifact   = "artifact"
)

// DefaultKeyer derives keys by hashing their components.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ConversionKey implements Keyer.
func (DefaultKeyer) ConversionKey(inputHash string, opts ConversionKeyOpts) string {
	return deriveKey(keyTypeConversion, inputHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(documentHash string, opts ArtifactKeyOpts) string {
	return deriveKey(keyTypeArtifact, documentHash, opts)
}
