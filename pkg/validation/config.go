package validation

import (
	"fmt"

	"github.com/iwvelando/status-plot/pkg/scatter"
)

// ValidateRenderConfig rejects sizes no chart can be drawn at and returns
// warnings for settings that draw a degenerate but valid chart.
func ValidateRenderConfig(cfg scatter.RenderConfig) ([]string, error) {
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("width must be positive, got %d", cfg.Width)
	}
	if cfg.Height <= 0 {
		return nil, fmt.Errorf("height must be positive, got %d", cfg.Height)
	}
	if cfg.Margin < 0 {
		return nil, fmt.Errorf("margin must not be negative, got %d", cfg.Margin)
	}
	if cfg.Radius < 0 {
		return nil, fmt.Errorf("radius must not be negative, got %d", cfg.Radius)
	}

	var warnings []string
	if 2*cfg.Margin >= cfg.Width || 2*cfg.Margin >= cfg.Height {
		warnings = append(warnings, fmt.Sprintf("margin %d leaves no drawing area in a %dx%d image",
			cfg.Margin, cfg.Width, cfg.Height))
	}
	if cfg.Radius == 0 {
		warnings = append(warnings, "radius is 0, points may not be visible")
	}
	return warnings, nil
}
