// Package output provides utilities for formatting and displaying log summaries.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/status-plot/pkg/constants"
	"github.com/iwvelando/status-plot/pkg/mathutil"
	"github.com/iwvelando/status-plot/pkg/statuslog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Write formats summary in the named format.
func Write(w io.Writer, format string, summary statuslog.Summary) error {
	switch format {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, summary)
	case constants.OutputFormatCSV:
		return CsvFormat(w, summary)
	case constants.OutputFormatYAML:
		return YamlFormat(w, summary)
	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, summary statuslog.Summary) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "--- Summary of %d records ---\n", summary.Records); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "min %.4f | max %.4f | mean %.4f\n",
		mathutil.Round(summary.Min), mathutil.Round(summary.Max), mathutil.Round(summary.Mean)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Status     | Count      | Max value\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "______     | _____      | _________\n"); err != nil {
		return err
	}
	for _, c := range summary.ByStatus {
		if _, err := p.Fprintf(w, "%-10s | %-10d | %.4f\n", c.Status, c.Count, mathutil.Round(c.MaxValue)); err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat outputs in comma-separated value format, one row per status.
func CsvFormat(w io.Writer, summary statuslog.Summary) error {
	if _, err := fmt.Fprintf(w, `"status","count","max value"`+"\n"); err != nil {
		return err
	}
	for _, c := range summary.ByStatus {
		if _, err := fmt.Fprintf(w, `"%s","%d","%g"`+"\n", c.Status, c.Count, c.MaxValue); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, `"total","%d","%g"`+"\n", summary.Records, summary.Max)
	return err
}

// YamlFormat outputs the summary as a YAML document.
func YamlFormat(w io.Writer, summary statuslog.Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return enc.Close()
}
