package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidator_CustomTags(t *testing.T) {
	t.Parallel()

	v := newValidator()

	tests := []struct {
		tag   string
		value string
		valid bool
	}{
		{"cors_origin", "https://shop.example.com", true},
		{"cors_origin", "http://localhost:3000", true},
		{"cors_origin", "*", true},
		{"cors_origin", "ftp://example.com", false},
		{"cors_origin", "https://example.com/path", false},
		{"cron_spec", "0 0 * * * *", true},
		{"cron_spec", "0 0 * * *", false},
		{"sort_key", "popular", true},
		{"sort_key", "Price-Desc", true},
		{"sort_key", "", true},
		{"sort_key", "cheapest", false},
		{"log_level", "debug", true},
		{"log_level", "WARN", true},
		{"log_level", "verbose", false},
		{"log_level", "fatal", false},
	}

	for _, tt := range tests {
		err := v.Var(tt.value, tt.tag)
		if tt.valid {
			assert.NoError(t, err, "%s=%q", tt.tag, tt.value)
		} else {
			assert.Error(t, err, "%s=%q", tt.tag, tt.value)
		}
	}
}

func TestJoinSortKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "popular, price-low, price-high, rating, rating-low, newest", joinSortKeys())
}
