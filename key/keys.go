// Package key defines the configuration keys read through viper.
package key

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Output of the noodle command.
const (
	OutputAs     = "output.as"
	OutputIndent = "output.indent"
)
