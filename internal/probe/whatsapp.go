package probe

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const defaultWhatsAppBaseURL = "https://wa.me"

// colombiaCountryCode is assumed for numbers without an explicit "+" prefix.
const colombiaCountryCode = "57"

// WhatsAppResult holds the outcome of a WhatsApp responsiveness test.
type WhatsAppResult struct {
	PhoneNormalized string `json:"phone_normalized"`
	HasWhatsApp     bool   `json:"has_whatsapp"`
	AutoReply       bool   `json:"auto_reply"`

	OutreachHook string `json:"outreach_hook,omitempty"`

	ScrapeSuccess bool   `json:"scrape_success"`
	Error         string `json:"error,omitempty"`
}

// WhatsAppProbe tests whether a phone number resolves to an active
// WhatsApp account via wa.me.
type WhatsAppProbe struct {
	fetcher *Fetcher
	baseURL string
}

// WhatsAppOption configures the probe.
type WhatsAppOption func(*WhatsAppProbe)

// WithWhatsAppBaseURL overrides the wa.me base URL (for tests).
func WithWhatsAppBaseURL(url string) WhatsAppOption {
	return func(p *WhatsAppProbe) {
		p.baseURL = strings.TrimRight(url, "/")
	}
}

// NewWhatsAppProbe creates a WhatsApp responsiveness probe.
func NewWhatsAppProbe(f *Fetcher, opts ...WhatsAppOption) *WhatsAppProbe {
	p := &WhatsAppProbe{
		fetcher: f,
		baseURL: defaultWhatsAppBaseURL,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// NormalizePhone reduces a phone number to digits and prepends the
// Colombian country code when the number carried no "+" prefix and no
// country code.
func NormalizePhone(phone string) string {
	hasPlus := strings.HasPrefix(strings.TrimSpace(phone), "+")
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if d == "" {
		return ""
	}
	if !hasPlus && !strings.HasPrefix(d, colombiaCountryCode) {
		d = colombiaCountryCode + d
	}
	return d
}

// Scrape probes wa.me for the number. hasAutoReply is the stored CRM
// attribute; it selects the outreach hook variant. Never returns an
// error, and always produces a hook.
func (p *WhatsAppProbe) Scrape(ctx context.Context, phone string, hasAutoReply bool) *WhatsAppResult {
	result := &WhatsAppResult{AutoReply: hasAutoReply}

	normalized := NormalizePhone(phone)
	result.PhoneNormalized = normalized
	if normalized == "" {
		result.Error = "no usable digits in phone number"
		result.OutreachHook = hookNoWhatsApp
		return result
	}

	// Redirects are meaningful here: wa.me answers 301/302 for live
	// accounts, so the no-follow client is used.
	res, err := p.fetcher.GetNoRedirect(ctx, fmt.Sprintf("%s/%s", p.baseURL, normalized))
	if err != nil {
		result.Error = err.Error()
		result.OutreachHook = hookNoWhatsApp
		return result
	}

	switch res.StatusCode {
	case http.StatusOK, http.StatusMovedPermanently, http.StatusFound:
		result.HasWhatsApp = true
	}
	result.ScrapeSuccess = true

	switch {
	case !result.HasWhatsApp:
		result.OutreachHook = hookNoWhatsApp
	case hasAutoReply:
		result.OutreachHook = hookAutoReply
	default:
		result.OutreachHook = hookUnknownResponse
	}

	zap.L().Debug("whatsapp probe complete",
		zap.String("phone", normalized),
		zap.Bool("has_whatsapp", result.HasWhatsApp),
	)

	return result
}

// Outreach hook templates, one per detected situation.
const (
	hookNoWhatsApp      = "No encontramos WhatsApp Business activo — cada mensaje sin responder es una reserva que se va a la competencia."
	hookAutoReply       = "Su respuesta automática de WhatsApp contesta, pero no vende: un asistente que cotiza y reserva convierte esas consultas en ingresos."
	hookUnknownResponse = "¿Cuánto tardan en responder su WhatsApp? Los huéspedes reservan con el primero que contesta — la respuesta instantánea es la ventaja."
)
