// Package config loads volt project configuration.
//
// Values are layered, later layers winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the project file, volt.toml or volt.yaml
//  3. VOLT_ variables from the project .env file
//  4. VOLT_ variables from the environment
//  5. explicit overrides, usually from command line flags
//
// Environment variable names map to keys by dropping the prefix,
// lowercasing and turning "__" into a dot: VOLT_BUILD__STAGING_ROOT sets
// build.staging_root.
package config
