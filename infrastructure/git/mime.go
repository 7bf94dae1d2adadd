package git

import (
	"bytes"
	"path/filepath"
	"strings"

	gomime "github.com/cubewise-code/go-mime"
)

// binaryByExtension classifies content by the MIME type registered for the
// file extension. known is false when the extension has no registration,
// in which case the caller falls back to content sniffing.
func binaryByExtension(path string) (binary, known bool) {
	contentType := gomime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		return false, false
	}
	return !isTextMime(contentType), true
}

func isTextMime(contentType string) bool {
	if strings.HasPrefix(contentType, "text/") {
		return true
	}
	switch contentType {
	case "application/json", "application/xml", "application/javascript",
		"application/x-sh", "application/x-httpd-php", "application/sql":
		return true
	}
	return strings.HasSuffix(contentType, "+xml") || strings.HasSuffix(contentType, "+json")
}

// sniffBinary applies git's own heuristic: content with a NUL byte in its
// leading segment is binary, everything else is text.
func sniffBinary(content []byte) bool {
	const sniffLen = 8000
	if len(content) > sniffLen {
		content = content[:sniffLen]
	}
	return bytes.IndexByte(content, 0) >= 0
}
