package constants

import "strings"

// RecordKind tags a parsed line as one side of the reconciliation.
type RecordKind string

const (
	KindTransaction RecordKind = "TRANSACTION" // card activity line
	KindReceipt     RecordKind = "RECEIPT"     // expense receipt line
)

// RecordKinds holds the allowed values for the kind field on raw records.
var RecordKinds = []string{string(KindTransaction), string(KindReceipt)}

// AllowedExtensions holds the file extensions accepted for session uploads.
// The pipeline only understands text-layer PDFs; scanned images are rejected
// at extraction time, not here.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
