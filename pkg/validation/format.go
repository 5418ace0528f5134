// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/status-plot/pkg/constants"
)

// ValidateOutputFormat checks if the stats output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatYAML:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatYAML, format)
}
