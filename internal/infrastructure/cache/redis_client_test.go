package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedis_InvalidURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "http://not-redis")
	assert.ErrorContains(t, err, "parsing redis url")
}
