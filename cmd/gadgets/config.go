package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose = "verbose"
	FlagConfig  = "config"
	FlagLogFile = "log-file"

	// Interactive widget flags
	FlagTUI = "tui"

	// Counter flags
	FlagLimit = "limit"

	// Advisor flags
	FlagCatalog = "catalog"

	// Output format flags
	FlagJSON = "json"
)

// EnvPrefix is the prefix for environment variable overrides (GADGETS_COUNTER_LIMIT etc).
const EnvPrefix = "GADGETS"
