package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/emersion/go-message/mail"
)

// Draft addresses an .eml export. Empty addresses are left out of the
// header so the mail client asks for them.
type Draft struct {
	From string
	To   string
	Date time.Time
}

// WriteEML writes doc as a single-part text/plain RFC 5322 message. The
// body keeps its bold characters and is sent quoted-printable.
func WriteEML(w io.Writer, doc domain.GeneratedDocument, d Draft) error {
	var h mail.Header
	date := d.Date
	if date.IsZero() {
		date = time.Now()
	}
	h.SetDate(date)
	if err := setAddress(&h, "From", d.From); err != nil {
		return err
	}
	if err := setAddress(&h, "To", d.To); err != nil {
		return err
	}
	h.SetSubject(doc.Subject)
	if err := h.GenerateMessageID(); err != nil {
		return fmt.Errorf("generating message id: %w", err)
	}
	h.Set("X-Unsent", "1")
	h.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	h.Set("Content-Transfer-Encoding", "quoted-printable")

	body, err := mail.CreateSingleInlineWriter(w, h)
	if err != nil {
		return fmt.Errorf("writing message header: %w", err)
	}
	if _, err := io.WriteString(body, strings.ReplaceAll(doc.Body, "\n", "\r\n")); err != nil {
		body.Close()
		return fmt.Errorf("writing message body: %w", err)
	}
	return body.Close()
}

func setAddress(h *mail.Header, key, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	addrs, err := mail.ParseAddressList(value)
	if err != nil {
		return &domain.ValidationError{Fields: []string{strings.ToLower(key)}, Message: fmt.Sprintf("invalid %s address %q", strings.ToLower(key), value)}
	}
	h.SetAddressList(key, addrs)
	return nil
}
