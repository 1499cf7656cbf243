// Package output provides utilities for formatting and displaying calculator results.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/realty-calc/internal/report"
	"github.com/iwvelando/realty-calc/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Render writes the report in the requested output format.
func Render(w io.Writer, outputFormat string, r report.Report) error {
	switch outputFormat {
	case constants.OutputFormatPretty, "":
		return PrettyFormat(w, r)
	case constants.OutputFormatCSV:
		return CsvFormat(w, r)
	case constants.OutputFormatYAML:
		return YamlFormat(w, r)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// YamlFormat outputs the report as a YAML document.
func YamlFormat(w io.Writer, r report.Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return encoder.Close()
}
