package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCORSOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		origin  string
		wantErr bool
	}{
		{"*", false},
		{"http://localhost:3000", false},
		{"https://shop.lensyz.com", false},
		{"https://192.168.0.10:8443", false},
		{"", true},
		{"https://shop.lensyz.com/", true},
		{"ftp://shop.lensyz.com", true},
		{"https://shop.lensyz.com/path", true},
		{"https://user@shop.lensyz.com", true},
		{"http://localhost:70000", true},
		{"https://-bad.com", true},
		{"https://host.123", true},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantErr, ValidateCORSOrigin(tt.origin) != nil)
		})
	}
}

func TestValidatePort(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePort(8080))
	assert.Error(t, ValidatePort(0))
	assert.Error(t, ValidatePort(65536))
}

func TestValidateCronExpression(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateCronExpression("0 */10 * * * *"))
	assert.NoError(t, ValidateCronExpression("@every 1h"))
	assert.Error(t, ValidateCronExpression("not a cron"))
}

func TestValidateFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0644))

	assert.NoError(t, ValidateFile(file))
	assert.Error(t, ValidateFile(""))
	assert.Error(t, ValidateFile(dir))
	assert.Error(t, ValidateFile(filepath.Join(dir, "missing.json")))
}
