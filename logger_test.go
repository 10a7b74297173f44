package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Lines(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.RequestReceived("POST", "/scenarios")
	logger.Success(ComponentStore, "Persisted 1 scenarios")
	logger.Responded(404)

	assert.Equal(t,
		"[HTTP SERVER] post /scenarios ℹ  info      Request received\n"+
			"    [STORE] ✔  success   Persisted 1 scenarios\n"+
			"    [HTTP SERVER] ⚠  warning   > Responding with \"404\"\n",
		buf.String())
}

func TestLogger_Color(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf).WithColor(true)

	logger.Error(ComponentStore, "boom")
	logger.Info(ComponentStore, "fine")

	assert.Contains(t, buf.String(), colorRed+LogError+colorReset+"   boom")
	assert.Contains(t, buf.String(), "[STORE] "+LogInfo+"   fine")
}
