// Package importer reads a previously exported YAML plan so it can be
// shown or exported again without calling the text generator.
package importer

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/pathwise/internal/export"
	"gopkg.in/yaml.v3"
)

// LoadPlanDocument reads and parses a YAML plan file.
func LoadPlanDocument(path string) (*export.PlanDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodePlanDocument(bytes.NewReader(data))
}

// DecodePlanDocument parses a YAML plan. Unknown fields are rejected.
func DecodePlanDocument(r io.Reader) (*export.PlanDocument, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc export.PlanDocument
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("parsing plan file: empty document")
		}
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &doc, nil
}
