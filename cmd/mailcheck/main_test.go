package main

import (
	"testing"

	"cavebeat-backend/config"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	assert.Equal(t, "(not set)", mask(""))
	assert.Equal(t, "***", mask("abc"))
	assert.Equal(t, "ab****gh", mask("abcdefgh"))
}

func TestFromName(t *testing.T) {
	assert.Equal(t, "CaveBeat Notifications", fromName(&config.Config{StudioName: "CaveBeat"}))
	assert.Equal(t, "Studio Bot", fromName(&config.Config{StudioName: "CaveBeat", SMTPFromName: "Studio Bot"}))
}
