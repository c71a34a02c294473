// Package config loads kotoba's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/kotoba/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	origin = "http://127.0.0.1:8080"
//	word_list = "words.txt.gz"        # relative to origin, or an absolute/file:// path
//	dialect = "ecmascript"            # or "re2"
//	match_timeout = "0s"              # per-entry limit for the ecmascript engine
//	locale = "en"                     # BCP 47 tag used to format counts
//	encoding = "utf-8"                # or "euc-jp", "shift_jis"
//	normalize = ""                    # or "nfc"
//	request_timeout = "0s"            # zero leaves timeouts to the network stack
//	theme = "Nightfox"
//	log_file = ""                     # empty discards logs while the TUI runs
//
// All fields are optional. Tilde expansion is performed for log_file and for
// a word_list that starts with "~".
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Unknown dialect, encoding, normalize or locale values
//   - Durations that do not parse or are negative
//
// Missing config files are NOT an error. kotoba works out of the box against
// a word list served from the default origin.
package config
