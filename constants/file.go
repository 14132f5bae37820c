package constants

import "strings"

// PDFExt is the only extension accepted for ingestion.
const PDFExt = "pdf"

// AllowedExtensions holds the file extensions picked up by directory ingest and the inbox watcher.
var AllowedExtensions = map[string]struct{}{
	PDFExt: {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
