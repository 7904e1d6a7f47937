// Package export writes generated documents out of the app: to the system
// clipboard, to a PDF, or to an .eml draft.
package export

import (
	"strings"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/atotto/clipboard"
)

// Copy puts the document's clipboard text on the system clipboard.
func Copy(doc domain.GeneratedDocument) error {
	return CopyText(doc.Text())
}

// CopyText puts s on the system clipboard.
func CopyText(s string) error {
	return clipboard.WriteAll(s)
}

// ClipboardAvailable reports whether a clipboard backend was found.
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}

// FileName returns the default download name for doc with ext.
func FileName(doc domain.GeneratedDocument, ext string) string {
	base := "referral-email"
	if doc.Kind == domain.KindCoverLetter {
		base = "cover-letter"
	}
	return base + "." + strings.TrimPrefix(ext, ".")
}
