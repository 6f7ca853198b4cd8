package manifest

// FileName is the manifest file expected in every payload directory.
const FileName = "filter.yaml"

// Manifest describes a filter payload.
type Manifest struct {
	Name        string   `yaml:"name" json:"name"`
	Version     string   `yaml:"version" json:"version"`
	Description string   `yaml:"description" json:"description"`
	Formats     []Format `yaml:"formats" json:"formats"`
	Cost        int      `yaml:"cost,omitempty" json:"cost,omitempty"`
	MinCUPS     string   `yaml:"min_cups,omitempty" json:"min_cups,omitempty"`
}

// Format is one MIME conversion the filter advertises (e.g. raster in,
// printer command stream out).
type Format struct {
	Src string `yaml:"src" json:"src"`
	Dst string `yaml:"dst" json:"dst"`
}
