package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Export prints the whole document converted to a foreign format.
type Export struct {
	Format string `default:"json" enum:"json,yaml" help:"Output format" short:"o"`
	File   string `default:"-"    name:"file"      help:"Source file or '-' for stdin" short:"f" type:"existingfile"`
}

// Run executes the export command.
func (e *Export) Run(ctx context.Context) error {
	doc, err := loadSource(ctx, e.File)
	if err != nil {
		return err
	}

	var out []byte

	switch e.Format {
	case "yaml":
		out, err = yaml.Marshal(doc.ToMap())
	default:
		out, err = json.MarshalIndent(doc.ToMap(), "", "  ")
	}

	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	fmt.Println(string(out))

	return nil
}
