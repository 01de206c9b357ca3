package config

import _ "embed"

// Default is the built-in YAML configuration used when no file is found.
//
//go:embed default.yaml
var Default []byte
