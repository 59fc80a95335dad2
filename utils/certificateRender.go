package utils

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const (
	certWidth  = 1400
	certHeight = 990
)

// RenderCertificatePNG draws the printable certificate artifact and writes it
// to destDir. Returns the path of the rendered file.
func RenderCertificatePNG(learnerName, courseTitle, certificateNumber, earnedDate, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	dc := gg.NewContext(certWidth, certHeight)

	// Background and border
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetRGB255(26, 35, 126)
	dc.SetLineWidth(12)
	dc.DrawRectangle(30, 30, certWidth-60, certHeight-60)
	dc.Stroke()
	dc.SetRGB255(215, 181, 109)
	dc.SetLineWidth(3)
	dc.DrawRectangle(50, 50, certWidth-100, certHeight-100)
	dc.Stroke()

	cx := float64(certWidth) / 2

	setFace(dc, 64)
	dc.SetRGB255(26, 35, 126)
	dc.DrawStringAnchored("Certificate of Completion", cx, 220, 0.5, 0.5)

	setFace(dc, 28)
	dc.SetRGB255(100, 100, 100)
	dc.DrawStringAnchored("This certifies that", cx, 330, 0.5, 0.5)

	setFace(dc, 56)
	dc.SetRGB255(215, 151, 45)
	dc.DrawStringAnchored(learnerName, cx, 430, 0.5, 0.5)

	setFace(dc, 28)
	dc.SetRGB255(100, 100, 100)
	dc.DrawStringAnchored("has successfully completed the course", cx, 530, 0.5, 0.5)

	setFace(dc, 44)
	dc.SetRGB255(26, 35, 126)
	dc.DrawStringAnchored(courseTitle, cx, 620, 0.5, 0.5)

	setFace(dc, 24)
	dc.SetRGB255(100, 100, 100)
	dc.DrawStringAnchored("Earned on "+earnedDate, cx, 730, 0.5, 0.5)
	dc.DrawStringAnchored("Certificate No. "+certificateNumber, cx, 780, 0.5, 0.5)

	filePath := filepath.Join(destDir, fmt.Sprintf("certificate-%s.png", certificateNumber))
	if err := dc.SavePNG(filePath); err != nil {
		return "", err
	}

	return filePath, nil
}

// setFace applies the configured TTF font at the given size. Without
// CERT_FONT set, gg's built-in face is kept (small but legible).
func setFace(dc *gg.Context, size float64) {
	fontPath := os.Getenv("CERT_FONT")
	if fontPath == "" {
		return
	}
	face, err := loadFontFace(fontPath, size)
	if err != nil {
		log.Printf("Error loading certificate font %s: %v", fontPath, err)
		return
	}
	dc.SetFontFace(face)
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	face := truetype.NewFace(parsedFont, &truetype.Options{
		Size: size,
		DPI:  72,
	})
	return face, nil
}
