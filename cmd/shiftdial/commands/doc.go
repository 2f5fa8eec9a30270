// Package commands defines the shiftdial CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encode        Cipher text with the active dials (alias: cipher)
//   - decode        Decipher text with the active dials (alias: decipher)
//   - quantize      Show where an angle lands on the dial grid
//   - override      Wrap a numeric dial entry into [0,26)
//   - schedule      Print the key schedule assembled from --dials
//   - fingerprint   Print the key schedule fingerprint
//   - config        Write or print the configuration file
//   - tui           Interactive dial board
//
// Dials are given as comma separated entries, one per dial in board order;
// empty entries are inactive dials: --dials "3,,0,25".
//
// # Implementation
//
// The root command loads the YAML config, builds the zap logger and the
// service graph (local, or an HTTP client when --remote is set) before any
// subcommand runs, so handlers share one app context.
package commands
