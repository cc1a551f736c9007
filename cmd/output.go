package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/enroll/internal/config"
)

// writeOutput encodes v to w as JSON (4-space indent) or YAML.
func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("writing yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("writing yaml: %w", err)
		}
		return nil
	case config.FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("writing json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
