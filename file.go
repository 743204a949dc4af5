package formguard

import (
	"os"
	"path/filepath"
	"strings"
)

// FileInput describes one uploaded file as handed over by the transport
// layer: the client-supplied name, the reported MIME type, and the temporary
// path the server stored the upload under. Uploaded reflects the transport's
// own "was a file actually received" check.
type FileInput struct {
	Name     string
	MIMEType string
	TempPath string
	Uploaded bool
}

// exists reports whether the temporary handle corresponds to a genuinely
// uploaded, currently existing regular file.
func (f *FileInput) exists() bool {
	if f == nil || !f.Uploaded || f.TempPath == "" {
		return false
	}
	info, err := os.Stat(f.TempPath)
	return err == nil && info.Mode().IsRegular()
}

// extension returns the lowercased filename extension without the dot.
func (f *FileInput) extension() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(f.Name), "."))
}

// mimeExtensions maps MIME types to their canonical filename extension.
// The mime rule requires the uploaded name to carry exactly this extension;
// MIME types outside the table never match any extension and always fail.
var mimeExtensions = map[string]string{
	// images
	"image/jpeg":    "jpg",
	"image/pjpeg":   "jpg",
	"image/png":     "png",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/bmp":     "bmp",
	"image/svg+xml": "svg",
	"image/tiff":    "tif",

	// text
	"text/plain": "txt",
	"text/html":  "html",
	"text/css":   "css",
	"text/csv":   "csv",

	// documents
	"application/pdf":    "pdf",
	"application/msword": "doc",
	"application/zip":    "zip",
	"application/json":   "json",
	"application/xml":    "xml",
	"application/vnd.ms-excel": "xls",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       "xlsx",

	// audio
	"audio/mpeg": "mp3",
	"audio/ogg":  "ogg",
	"audio/wav":  "wav",
	"audio/aac":  "aac",
	"audio/flac": "flac",

	// video
	"video/mp4":       "mp4",
	"video/mpeg":      "mpg",
	"video/webm":      "webm",
	"video/quicktime": "mov",
	"video/x-msvideo": "avi",
}

func canonicalExtension(mimeType string) (string, bool) {
	ext, ok := mimeExtensions[mimeType]
	return ext, ok
}
