package cache

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey keys a rendered artifact by the hash of the QR matrix and
	// the options that shape its output.
	ArtifactKey(matrixHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the inputs, besides the matrix, that change an artifact.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	StyleHash string  `json:"style"`
	Scale     float64 `json:"scale,omitempty"`
	RemSize   float64 `json:"rem,omitempty"`
	QuietZone int     `json:"quiet,omitempty"`
}

// DefaultKeyer produces unscoped keys of the form "artifact:<sha256>".
type DefaultKeyer struct{}

func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(matrixHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", matrixHash, opts)
}
