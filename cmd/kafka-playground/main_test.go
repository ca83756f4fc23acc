package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	msg, topic, err := buildMessage("payment", "abc", "jane@x.com", 50, "", 1)
	require.NoError(t, err)
	assert.Equal(t, "payment-topic", topic)
	assert.Equal(t, []byte("abc"), msg.Key)
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "event-version", msg.Headers[2].Key)
	assert.Equal(t, "1", string(msg.Headers[2].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "jane@x.com", body["customerEmail"])

	msg, topic, err = buildMessage("order", "ORD-1", "jane@x.com", 20, "", 2)
	require.NoError(t, err)
	assert.Equal(t, "order-topic", topic)
	assert.Equal(t, "2", string(msg.Headers[2].Value))

	msg, _, err = buildMessage("raw", "k", "", 0, "{broken", 1)
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(msg.Value))
	assert.Empty(t, msg.Headers)

	_, _, err = buildMessage("shipping", "k", "", 0, "", 1)
	assert.Error(t, err)
}
