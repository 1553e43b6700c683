package file

import (
	"path/filepath"
	"strings"
)

// File is the metadata of a binary value sitting inside a form value
// tree: a picked upload the engine validates without ever reading its
// content. Two File values with the same pointer are the same file;
// snapshots keep the pointer and never copy the struct.
type File struct {
	Filename string
	Size     int64
	MIMEType string
}

// New creates file metadata for a picked upload.
func New(filename string, size int64, mimeType string) *File {
	return &File{
		Filename: filename,
		Size:     size,
		MIMEType: mimeType,
	}
}

// Extension returns the filename extension including the dot, lowercased.
func (f *File) Extension() string {
	if f == nil {
		return ""
	}
	return strings.ToLower(filepath.Ext(f.Filename))
}

var (
	imageMIMETypes = map[string]bool{
		"image/jpeg":    true,
		"image/jpg":     true,
		"image/png":     true,
		"image/gif":     true,
		"image/webp":    true,
		"image/svg+xml": true,
		"image/bmp":     true,
		"image/tiff":    true,
		"image/heic":    true,
		"image/heif":    true,
		"image/avif":    true,
	}

	videoMIMETypes = map[string]bool{
		"video/mp4":       true,
		"video/mpeg":      true,
		"video/ogg":       true,
		"video/webm":      true,
		"video/quicktime": true,
		"video/x-msvideo": true,
	}

	audioMIMETypes = map[string]bool{
		"audio/mpeg": true,
		"audio/ogg":  true,
		"audio/wav":  true,
		"audio/webm": true,
		"audio/aac":  true,
		"audio/flac": true,
		"audio/opus": true,
	}
)

// IsImage checks whether the file is an image by MIME type, falling
// back to the filename extension when no MIME type was recorded.
func (f *File) IsImage() bool {
	if f == nil {
		return false
	}
	if f.MIMEType != "" {
		return imageMIMETypes[f.MIMEType]
	}
	switch f.Extension() {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".bmp", ".tiff", ".tif", ".heic", ".heif", ".avif":
		return true
	default:
		return false
	}
}

// IsVideo checks whether the file is a video, with the same
// MIME-then-extension fallback as IsImage.
func (f *File) IsVideo() bool {
	if f == nil {
		return false
	}
	if f.MIMEType != "" {
		return videoMIMETypes[f.MIMEType]
	}
	switch f.Extension() {
	case ".mp4", ".mpeg", ".mpg", ".ogg", ".webm", ".mov", ".avi":
		return true
	default:
		return false
	}
}

// IsAudio checks whether the file is an audio file, with the same
// MIME-then-extension fallback as IsImage.
func (f *File) IsAudio() bool {
	if f == nil {
		return false
	}
	if f.MIMEType != "" {
		return audioMIMETypes[f.MIMEType]
	}
	switch f.Extension() {
	case ".mp3", ".ogg", ".wav", ".webm", ".aac", ".m4a", ".opus", ".flac":
		return true
	default:
		return false
	}
}

// IsPDF checks whether the file is a PDF.
func (f *File) IsPDF() bool {
	if f == nil {
		return false
	}
	if f.MIMEType == "application/pdf" {
		return true
	}
	return f.Extension() == ".pdf"
}
