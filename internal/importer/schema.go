package importer

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// SchemaVersion is the document version written by Encode.
const SchemaVersion = 1

// ScheduleDocument is the top-level YAML structure for schedule import and
// export.
type ScheduleDocument struct {
	Version   int              `yaml:"version"`
	Schedules []ScheduleImport `yaml:"schedules"`
}

// ScheduleImport defines one named expression in the document.
type ScheduleImport struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
	Shape      string `yaml:"shape,omitempty"`
}

// LoadScheduleDocument reads and parses a schedule YAML file.
func LoadScheduleDocument(path string) (*ScheduleDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a schedule document, rejecting unknown keys.
func Decode(r io.Reader) (*ScheduleDocument, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc ScheduleDocument
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return &doc, nil
		}
		return nil, fmt.Errorf("parsing schedule document: %w", err)
	}
	return &doc, nil
}

// Encode writes doc as YAML with two-space indentation.
func Encode(w io.Writer, doc *ScheduleDocument) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding schedule document: %w", err)
	}
	return enc.Close()
}
