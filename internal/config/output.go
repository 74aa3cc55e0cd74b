package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat writes a JSON record instead of plain text
	JSONFormat bool

	// ShowBoard prints an ASCII diagram of the final position
	ShowBoard bool

	// DOTFile receives a Graphviz dump of the search tree when set
	DOTFile string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}
