package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithComponentAndFields(t *testing.T) {
	t.Parallel()

	fields := Fields{"key": "wishlist", ComponentKey: "ignored"}
	entry := WithComponentAndFields("state.memory", fields)

	assert.Equal(t, "state.memory", entry.Data[ComponentKey])
	assert.Equal(t, "wishlist", entry.Data["key"])
	assert.Equal(t, "ignored", fields[ComponentKey], "입력 맵은 변경되지 않아야 합니다")
}

func TestWithComponent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "shop", WithComponent("shop").Data[ComponentKey])
	assert.Same(t, StandardLogger(), WithFields(Fields{}).Logger)
}
