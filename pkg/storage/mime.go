package storage

import (
	"mime"
	"net/http"
	"path"
	"strings"
)

// MIMEOctetStream is the content type of unrecognized data.
const MIMEOctetStream = "application/octet-stream"

const mimeDetectionBytes = 512 // http.DetectContentType reads at most 512 bytes

// DetectContentType returns the MIME type of an object, preferring the key's
// extension and falling back to sniffing the content.
func DetectContentType(key string, data []byte) string {
	if ext := path.Ext(key); ext != "" {
		if ct := mime.TypeByExtension(strings.ToLower(ext)); ct != "" {
			return ct
		}
	}
	if len(data) == 0 {
		return MIMEOctetStream
	}
	if len(data) > mimeDetectionBytes {
		data = data[:mimeDetectionBytes]
	}
	return http.DetectContentType(data)
}
