// Package constants provides shared constants for the status-plot application.
package constants

// Render defaults, in pixels.
const (
	// DefaultWidth is the default output image width
	DefaultWidth = 640

	// DefaultHeight is the default output image height
	DefaultHeight = 480

	// DefaultMargin is the default margin applied to all four sides of the chart
	DefaultMargin = 15

	// DefaultRadius is the default scatter point radius
	DefaultRadius = 2
)

// HeadroomMultiplier scales the largest payload to get the y-axis upper bound
// so the topmost points are not clipped against the plot border.
const HeadroomMultiplier = 1.1

// Output image extensions. Matching is case-sensitive.
const (
	// ExtensionPNG selects the raster backend
	ExtensionPNG = "png"

	// ExtensionSVG selects the vector backend
	ExtensionSVG = "svg"
)

// Stats output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is loaded when present and no --config flag is given
	DefaultConfigFile = "status-plot.yaml"

	// EnvPrefix is prepended to environment variable overrides, e.g. STATUS_PLOT_RENDER_WIDTH
	EnvPrefix = "STATUS_PLOT"

	// StdinName is how standard input is named in messages
	StdinName = "<stdin>"
)

// Logging defaults. A successful run prints nothing at warn level.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)

// Comparison constants
const (
	// ValueTolerance is the smallest y-axis span the renderer accepts
	ValueTolerance = 1e-9

	// DecimalPrecision rounds summary values to four decimal places
	DecimalPrecision = 10000
)
