// Package output renders command results as text, JSON, or YAML.
//
// # Overview
//
// Every og command builds one of the output types in this package and
// hands it to a Formatter chosen by the --format flag. The same value
// feeds all three formats, so scripts consuming JSON and humans reading
// the terminal always see the same numbers.
//
// # Output Types
//
//   - GenerationOutput: synthetic pipeline summary (og generate, og demo)
//   - StatsOutput: engine statistics (og inspect)
//   - TransferOutput: import/export/shard results (og import, og export)
//   - BenchmarkOutput: scale matrix with per-stage timings (og benchmark)
//
// # Format Types
//
// Three output formats are supported:
//
//   - Text (default): aligned tables for terminals, via text/tabwriter
//   - JSON: machine-readable, indented
//   - YAML: machine-readable, also the text fallback for ad-hoc values
//
// A result type opts into text rendering by implementing Texter; values
// without a Text method fall back to YAML, which stays readable.
package output
