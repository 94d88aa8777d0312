// Package prompts provides externalized LLM prompt templates for the
// activity AI operations. Templates are stored as JSON and embedded at
// compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	cache   map[string]string
	cacheMu sync.RWMutex
)

// Get retrieves a prompt template by key from the embedded prompt files.
func Get(key string) (string, error) {
	templates, err := load()
	if err != nil {
		return "", err
	}

	template, exists := templates[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return template, nil
}

// Render retrieves a template and replaces {{.Key}} placeholders with
// values from data.
func Render(key string, data map[string]string) (string, error) {
	template, err := Get(key)
	if err != nil {
		return "", err
	}

	result := template
	for k, v := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", k), v)
	}
	return result, nil
}

// load parses and caches all embedded prompt files. Keys from every file
// share one namespace.
func load() (map[string]string, error) {
	cacheMu.RLock()
	if cache != nil {
		templates := cache
		cacheMu.RUnlock()
		return templates, nil
	}
	cacheMu.RUnlock()

	merged := make(map[string]string)
	entries, err := promptFiles.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt directory: %w", err)
	}
	for _, entry := range entries {
		data, err := promptFiles.ReadFile(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read prompt file %s: %w", entry.Name(), err)
		}
		var templates map[string]string
		if err := json.Unmarshal(data, &templates); err != nil {
			return nil, fmt.Errorf("failed to parse prompt file %s: %w", entry.Name(), err)
		}
		for k, v := range templates {
			merged[k] = v
		}
	}

	cacheMu.Lock()
	cache = merged
	cacheMu.Unlock()
	return merged, nil
}

// ClearCache clears the prompt cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = nil
	cacheMu.Unlock()
}
