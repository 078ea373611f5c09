// Package config loads sigslot's settings.
//
// Values are layered, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. a user file: the explicit path given to Load, or the first of
//     config.toml, config.yaml, config.yml under $XDG_CONFIG_HOME/sigslot
//  3. SIGSLOT_* environment variables, e.g. SIGSLOT_LOG_VERBOSITY=2
package config
