package config

import (
	"os"
	"sort"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "KEYLINK_"

// EnvLoader loads configuration overrides from environment variables.
type EnvLoader struct {
	mapping map[string]string // env var -> config path
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a loader with the default mappings.
func NewEnvLoader() *EnvLoader {
	return NewEnvLoaderWithMapping(DefaultEnvMapping())
}

// NewEnvLoaderWithMapping creates a loader with custom mappings.
func NewEnvLoaderWithMapping(mapping map[string]string) *EnvLoader {
	return &EnvLoader{mapping: mapping, lookup: os.LookupEnv}
}

// DefaultEnvMapping returns the environment variable to config path mapping.
func DefaultEnvMapping() map[string]string {
	return map[string]string{
		EnvPrefix + "ADD_TARGET_TO_EXTERNAL_LINKS": "link.addTargetToExternalLinks",
		EnvPrefix + "LOG_LEVEL":                    "log.level",
	}
}

// Load returns a map holding every mapped variable that is set.
// Empty values count as set.
func (l *EnvLoader) Load() map[string]any {
	out := make(map[string]any)
	envs := make([]string, 0, len(l.mapping))
	for env := range l.mapping {
		envs = append(envs, env)
	}
	sort.Strings(envs)

	for _, env := range envs {
		if val, ok := l.lookup(env); ok {
			setByPath(out, l.mapping[env], parseValue(val))
		}
	}
	return out
}

// parseValue turns boolean words into bools and leaves everything else a
// string.
func parseValue(s string) any {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}
	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
