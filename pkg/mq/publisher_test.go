package mq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPublisher_InvalidURL(t *testing.T) {
	p, err := NewPublisher("http://localhost:5672", "bookings")
	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	assert.NoError(t, p.PublishJSON(context.Background(), "booking.created", map[string]int{"id": 1}))
	assert.NoError(t, p.Close())
}
