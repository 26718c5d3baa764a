package service

import "strings"

// intOr returns *value when set, otherwise fallback.
func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

// boolOr returns *value when set, otherwise fallback.
func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

// normalizeString trims the value and maps blank strings to nil.
func normalizeString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
