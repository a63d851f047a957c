package icon

// Record describes one icon available in the catalog.
type Record struct {
	Name   string `json:"name" yaml:"name"`
	Label  string `json:"label" yaml:"label"`
	Prefix string `json:"prefix" yaml:"prefix"`
}

// NewRecord builds a record for key within the icon set identified by prefix.
func NewRecord(prefix, key string) Record {
	return Record{Name: prefix + ":" + key, Label: key, Prefix: prefix}
}
