package report

import (
	"encoding/json"
	"os"

	"github.com/fluxany/bolt/pkg/models"
)

// writeJSON writes the run summary as indented JSON
func (g *Generator) writeJSON(results *models.RunResults, outputFile string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(outputFile, data, 0644)
}
