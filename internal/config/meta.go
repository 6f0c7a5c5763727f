package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// New fields on Settings show up automatically.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"next_page": "n",
			"help":      []string{"?", "F1"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName != "debug"
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "history_limit":
				return DefaultHistoryLimit
			case "max_log_files":
				return 1000
			case "page_size":
				return DefaultPageSize
			case "request_timeout_seconds":
				return DefaultRequestTimeout
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "api_base_url":
			return DefaultAPIBaseURL
		case "serve_host":
			return DefaultServeHost
		case "serve_port":
			return DefaultServePort
		case "token":
			return "ghp_..."
		default:
			return "example"
		}
	}

	return nil
}
