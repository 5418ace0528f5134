package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iwvelando/status-plot/internal/apperr"
	"github.com/iwvelando/status-plot/pkg/constants"
)

// Format errors. Match with errors.Is.
var (
	ErrMissingExtension = errors.New("output file has no extension, cannot understand output format")
	ErrUnknownExtension = errors.New("unknown extension, cannot understand output format")
)

// Format is an output image format.
type Format int

const (
	PNG Format = iota
	SVG
)

func (f Format) String() string {
	switch f {
	case PNG:
		return constants.ExtensionPNG
	case SVG:
		return constants.ExtensionSVG
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath selects the format from the extension of path. Matching is
// case-sensitive: "chart.PNG" is rejected.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, apperr.Wrap("render.FormatFromPath", apperr.KindFormat, path, ErrMissingExtension)
	}

	switch name := strings.TrimPrefix(ext, "."); name {
	case constants.ExtensionPNG:
		return PNG, nil
	case constants.ExtensionSVG:
		return SVG, nil
	default:
		return 0, apperr.Wrap("render.FormatFromPath", apperr.KindFormat, path,
			fmt.Errorf("%w: %q", ErrUnknownExtension, name))
	}
}
