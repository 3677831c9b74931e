package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/davgit/diagnosticss/pkg/config"
)

// envVarPrefix is the prefix for all diagnosticss environment variables.
const envVarPrefix = "DIAGNOSTICSS_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":     {field: "format", typ: envTypeString},
	"JOBS":       {field: "jobs", typ: envTypeInt},
	"STRICT":     {field: "strict", typ: envTypeBool},
	"IGNORE":     {field: "ignore", typ: envTypeSlice},
	"EXTENSIONS": {field: "extensions", typ: envTypeSlice},
	"MAX_DEPTH":  {field: "max_depth", typ: envTypeInt},
	"MAX_NODES":  {field: "max_nodes", typ: envTypeInt},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with DIAGNOSTICSS_ (e.g., DIAGNOSTICSS_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "strict":
		cfg.Strict = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	case "max_depth":
		cfg.MaxDepth = value
	case "max_nodes":
		cfg.MaxNodes = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "extensions":
		cfg.Extensions = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"DIAGNOSTICSS_FORMAT":     "Output format: text, json, sarif, or summary",
		"DIAGNOSTICSS_JOBS":       "Number of parallel workers (0 = auto)",
		"DIAGNOSTICSS_STRICT":     "Treat warnings as failures: true or false",
		"DIAGNOSTICSS_IGNORE":     "Comma-separated list of ignore patterns",
		"DIAGNOSTICSS_EXTENSIONS": "Comma-separated list of file extensions to check",
		"DIAGNOSTICSS_MAX_DEPTH":  "Maximum document tree depth (0 = unlimited)",
		"DIAGNOSTICSS_MAX_NODES":  "Maximum document node count (0 = unlimited)",
	}
}
