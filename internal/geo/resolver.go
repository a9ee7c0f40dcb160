// Package geo guesses the client's country from request headers. The guess
// is never authoritative: hosting providers only set their geo header in
// production, and Accept-Language says which language the browser wants,
// not where the user is.
package geo

import (
	"net/http"
	"strings"
)

const (
	// Set by the hosting provider's edge in production.
	providerCountryHeader = "X-Vercel-Ip-Country"

	acceptLanguageHeader = "Accept-Language"
)

// Guesses for bare language tags without a region part.
var bareLanguageCountry = map[string]string{
	"fr": "FR",
	"en": "US",
	"es": "ES",
	"ma": "MA",
}

// CountryFromHeaders returns a best-guess ISO 3166-1 alpha-2 country code,
// or "" when nothing usable is present.
func CountryFromHeaders(h http.Header) string {
	if cc := h.Get(providerCountryHeader); cc != "" {
		return cc
	}

	lang := h.Get(acceptLanguageHeader)
	if lang == "" {
		return ""
	}

	// First locale of the list, e.g. "fr-FR" out of "fr-FR,fr;q=0.9,en;q=0.8".
	primary := strings.TrimSpace(strings.Split(lang, ",")[0])
	if primary == "" {
		return ""
	}

	parts := strings.Split(primary, "-")
	if len(parts) > 1 {
		return strings.ToUpper(parts[1])
	}
	return bareLanguageCountry[strings.ToLower(parts[0])]
}
