// Package receipt stores the printer receipt template under its own storage
// key and renders transactions through it. The rendered output is plain
// text for a 32-column thermal printer; byte-level printer protocols are
// the print spooler's problem, not ours.
package receipt

import (
	"bytes"
	"context"
	"strings"
	"text/template"
	"time"

	"github.com/pkg/errors"

	"kasirpos/internal/models"
	"kasirpos/internal/settings"
	"kasirpos/internal/storage"
)

const lineWidth = 32

// DefaultTemplate ships built in and is used until an admin saves a custom
// one.
const DefaultTemplate = `{{center .Company.Name}}
{{center .Company.Address}}
{{line}}
No : {{.Tx.TransactionNumber}}
Tgl: {{datetime .Tx.CreatedAt}}
Kasir: {{.Tx.CreatedBy}}
{{line}}
{{range .Items}}{{.ProductName}}
  {{.Quantity}} x {{idr .Price}} = {{idr .Subtotal}}
{{end}}{{line}}
Subtotal : {{idr .Tx.Subtotal}}
Diskon   : {{idr .Tx.Discount}}
Pajak    : {{idr .Tx.Tax}}
TOTAL    : {{idr .Tx.Total}}
Bayar    : {{.Tx.PaymentMethod}}
{{line}}
{{center "Terima kasih!"}}
`

// Data is everything a template can reference.
type Data struct {
	Company models.CompanyProfile
	Tx      models.Transaction
	Items   []models.TransactionItem
}

// Service manages the stored template and renders receipts with the current
// app settings.
type Service struct {
	medium   storage.Medium
	key      string
	settings *settings.Service
}

func NewService(medium storage.Medium, key string, set *settings.Service) *Service {
	return &Service{medium: medium, key: key, settings: set}
}

// Template returns the stored template text, or the default when none has
// been saved.
func (s *Service) Template(ctx context.Context) (string, error) {
	raw, err := s.medium.GetItem(ctx, s.key)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return DefaultTemplate, nil
	}
	return string(raw), nil
}

// SaveTemplate validates the template before persisting so a broken one can
// never be stored.
func (s *Service) SaveTemplate(ctx context.Context, text string) error {
	if _, err := s.parse(text); err != nil {
		return errors.Wrap(err, "invalid receipt template")
	}
	return s.medium.SetItem(ctx, s.key, []byte(text))
}

// Render produces the receipt text for one transaction.
func (s *Service) Render(ctx context.Context, data Data) (string, error) {
	text, err := s.Template(ctx)
	if err != nil {
		return "", err
	}
	tpl, err := s.parse(text)
	if err != nil {
		return "", errors.Wrap(err, "parse receipt template")
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "render receipt")
	}
	return buf.String(), nil
}

func (s *Service) parse(text string) (*template.Template, error) {
	funcs := template.FuncMap{
		"idr": func(v float64) string {
			return settings.FormatIDR(v, s.settings.Get())
		},
		"date": func(t time.Time) string {
			return settings.FormatDate(t, s.settings.Get())
		},
		"datetime": func(t time.Time) string {
			return settings.FormatDateTime(t, s.settings.Get())
		},
		"line":   func() string { return strings.Repeat("-", lineWidth) },
		"center": center,
	}
	return template.New("receipt").Funcs(funcs).Parse(text)
}

func center(text string) string {
	if len(text) >= lineWidth {
		return text
	}
	pad := (lineWidth - len(text)) / 2
	return strings.Repeat(" ", pad) + text
}
