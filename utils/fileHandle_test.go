package utils

import (
	"testing"

	"learnhub/config"

	"github.com/stretchr/testify/assert"
)

func TestGetFileURL(t *testing.T) {
	prev := config.AppConfig
	defer func() { config.AppConfig = prev }()

	config.AppConfig = &config.Config{PublicURL: "https://cdn.learnhub.dev/"}

	assert.Equal(t, "https://cdn.learnhub.dev/uploads/cert.png", GetFileURL("storage/certs/cert.png"))
	assert.Equal(t, "", GetFileURL(""))
}

func TestGetFileURLWithoutConfig(t *testing.T) {
	prev := config.AppConfig
	defer func() { config.AppConfig = prev }()

	config.AppConfig = nil
	assert.Equal(t, "/uploads/avatar.jpg", GetFileURL("uploads/avatar.jpg"))

	config.AppConfig = &config.Config{}
	assert.Equal(t, "/uploads/avatar.jpg", GetFileURL("uploads/avatar.jpg"))
}
