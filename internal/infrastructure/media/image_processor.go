// Package media provides image processing utilities
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// binaryPattern matches the data-URL prefix of a base64 binary image upload.
var binaryPattern = regexp.MustCompile(`^data:image/[\w.+-]+;base64,`)

// ImageProcessor handles product image processing operations.
type ImageProcessor struct {
	basePath   string // media root, e.g. ./media
	thumbSizes []int
	quality    float32
}

// NewImageProcessor creates a new ImageProcessor instance
func NewImageProcessor(basePath string, thumbSizes []int, quality float32) *ImageProcessor {
	if len(thumbSizes) == 0 {
		thumbSizes = []int{160, 320, 640}
	}
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &ImageProcessor{
		basePath:   basePath,
		thumbSizes: thumbSizes,
		quality:    quality,
	}
}

// ProcessBase64Image handles a base64 image upload with automatic format
// detection and returns the full file path on disk.
func (p *ImageProcessor) ProcessBase64Image(data, filename, subdir string) (string, error) {
	if data == "" {
		return "", fmt.Errorf("empty base64 data")
	}

	ext := extractExtension(data)
	if ext == "" {
		return "", fmt.Errorf("unsupported image format")
	}

	fullFilename := fmt.Sprintf("%s.%s", filename, ext)
	targetDir := filepath.Join(p.basePath, subdir)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	return processBinaryImage(data, fullFilename, targetDir)
}

// ProcessProductImageWithThumbnails saves the original product image under
// /products/ and generates WebP thumbnails under /thumbs/. Returns the
// original path and the thumbnail paths.
func (p *ImageProcessor) ProcessProductImageWithThumbnails(data, productID string) (string, []string, error) {
	timestamp := time.Now().Unix()
	filename := fmt.Sprintf("%s-%d", productID, timestamp)

	originalPath, err := p.ProcessBase64Image(data, filename, "products")
	if err != nil {
		return "", nil, err
	}

	thumbsDir := filepath.Join(p.basePath, "thumbs")
	if err := os.MkdirAll(thumbsDir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create thumbs directory: %w", err)
	}

	thumbnails, err := p.generateWebPThumbnails(originalPath, filename, thumbsDir)
	if err != nil {
		os.Remove(originalPath)
		return "", nil, err
	}

	return originalPath, thumbnails, nil
}

// DeleteImageAndThumbnails removes a stored product image and every
// thumbnail generated from it. Missing files are not an error.
func (p *ImageProcessor) DeleteImageAndThumbnails(imagePath string) error {
	if imagePath == "" {
		return nil
	}

	basename := strings.TrimSuffix(filepath.Base(imagePath), filepath.Ext(imagePath))
	if err := os.Remove(imagePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image %s: %w", imagePath, err)
	}

	thumbsDir := filepath.Join(p.basePath, "thumbs")
	for _, width := range p.thumbSizes {
		thumbPath := filepath.Join(thumbsDir, fmt.Sprintf("%s_%dpx.webp", basename, width))
		if err := os.Remove(thumbPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete thumbnail %s: %w", thumbPath, err)
		}
	}
	return nil
}

// generateWebPThumbnails resizes the original to each configured width and
// encodes the results as WebP.
func (p *ImageProcessor) generateWebPThumbnails(originalPath, basename, thumbsDir string) ([]string, error) {
	originalFile, err := os.Open(originalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open original file: %w", err)
	}
	defer originalFile.Close()

	img, err := imaging.Decode(originalFile)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumbnailPaths := make([]string, len(p.thumbSizes))
	for i, width := range p.thumbSizes {
		resized := imaging.Resize(img, width, 0, imaging.Lanczos)

		thumbFilename := fmt.Sprintf("%s_%dpx.webp", basename, width)
		thumbPath := filepath.Join(thumbsDir, thumbFilename)

		if err := webp.Save(thumbPath, resized, &webp.Options{Quality: p.quality}); err != nil {
			for j := 0; j < i; j++ {
				os.Remove(thumbnailPaths[j])
			}
			return nil, fmt.Errorf("failed to save WebP thumbnail %s: %w", thumbFilename, err)
		}
		thumbnailPaths[i] = thumbPath
	}

	return thumbnailPaths, nil
}

func processBinaryImage(data, filename, targetDir string) (string, error) {
	if !binaryPattern.MatchString(data) {
		return "", fmt.Errorf("invalid binary image base64 format")
	}

	b64Data := binaryPattern.ReplaceAllString(data, "")
	decoded, err := base64.StdEncoding.DecodeString(b64Data)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write binary file: %w", err)
	}

	return fullPath, nil
}

func extractExtension(data string) string {
	switch {
	case strings.Contains(data, "data:image/png"):
		return "png"
	case strings.Contains(data, "data:image/jpeg"), strings.Contains(data, "data:image/jpg"):
		return "jpg"
	case strings.Contains(data, "data:image/webp"):
		return "webp"
	case strings.Contains(data, "data:image/gif"):
		return "gif"
	}
	// Fallback to PNG
	return "png"
}
