// Package config provides configuration loading and validation for tweeter.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (TWEETER_ prefix, plus PORT)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, cfg)
//
//	// Retrieve later
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All config keys map to environment variables with TWEETER_ prefix:
//   - server.port → TWEETER_SERVER_PORT
//   - storage.path → TWEETER_STORAGE_PATH
//   - log.level → TWEETER_LOG_LEVEL
//
// The listening port can also be set with the plain PORT variable. An unset
// or empty PORT leaves the default of 3000 in place.
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535
//   - Storage path is required unless embedded resources are used
//   - Log level must be debug, info, warn, or error
//   - Log format must be text or json
package config
