// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: TOML configuration at ~/.closeout/config.toml with
//     CLOSEOUT_* environment overrides
package file
