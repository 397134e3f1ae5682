// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 14

// Generation Defaults - these keys seed a generation run when the matching flag is not given.
const (
	GenerateAuthor  = "generate.author"
	GenerateSystem  = "generate.system"
	GenerateVariant = "generate.variant"
	GenerateWorkers = "generate.workers"
)

// Quantizer Tuning - these keys control sampling density and palette width of the dominant-color pass.
const (
	QuantizeQuality   = "quantize.quality"
	QuantizeMaxColors = "quantize.max_colors"
)

// Output Placement - these keys decide where finished scheme files land.
const (
	OutputDirectory = "output.directory"
)

// Preview Rendering - these keys define how schemes are painted in the terminal.
const (
	PreviewHex = "preview.hex"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
