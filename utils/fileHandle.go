package utils

import (
	"fmt"
	"io"
	"learnhub/config"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// SaveUploadedFile stores a multipart upload under destDir and returns the
// path on disk.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Create a unique filename
	ext := filepath.Ext(file.Filename)
	newFilename := time.Now().Format("20060102150405") + ext
	filePath := filepath.Join(destDir, newFilename)

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// FetchRemoteFile downloads a file by URL into destDir and returns the path
// on disk. Used for avatar-by-URL uploads.
func FetchRemoteFile(url, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(url)
	if ext == "" || len(ext) > 5 {
		ext = ".png"
	}
	filePath := filepath.Join(destDir, time.Now().Format("20060102150405")+ext)

	client := resty.New().SetTimeout(15 * time.Second)
	resp, err := client.R().SetOutput(filePath).Get(url)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		os.Remove(filePath)
		return "", fmt.Errorf("remote file fetch returned status %d", resp.StatusCode())
	}

	return filePath, nil
}

// GetFileURL converts a stored file path to its public URL, prefixed with
// the configured base URL when one is set.
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	rel := "/uploads/" + filepath.Base(filePath)
	if config.AppConfig != nil && config.AppConfig.PublicURL != "" {
		return strings.TrimRight(config.AppConfig.PublicURL, "/") + rel
	}
	return rel
}
