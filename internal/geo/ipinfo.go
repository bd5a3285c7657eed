// Package geo resolves client IP addresses to coarse locations through
// an external lookup service. Lookups are best-effort: every failure
// mode degrades to placeholder values so the audit path never errors.
package geo

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// Unknown is the placeholder substituted for any field the lookup
// could not produce.
const Unknown = "Unknown"

// Location is the 5-field result attached to audited requests.
type Location struct {
	City     string
	Region   string
	Country  string
	Postal   string
	Timezone string
}

// Placeholder returns a Location with every field set to Unknown.
func Placeholder() Location {
	return Location{
		City:     Unknown,
		Region:   Unknown,
		Country:  Unknown,
		Postal:   Unknown,
		Timezone: Unknown,
	}
}

// Locator resolves an IP address to a Location. Implementations return
// a result or a placeholder, never an error: failures must not abort
// the logging path.
type Locator interface {
	Lookup(ip string) Location
}

// IPInfo is a Locator backed by the ipinfo.io JSON endpoint.
type IPInfo struct {
	BaseURL string
	Client  *http.Client
}

// NewIPInfo builds a Locator for the given base URL, e.g.
// "http://ipinfo.io". Lookups are synchronous and carry no timeout
// beyond the HTTP client's own; a nil Client falls back to
// http.DefaultClient.
func NewIPInfo(baseURL string) *IPInfo {
	return &IPInfo{
		BaseURL: baseURL,
		Client:  http.DefaultClient,
	}
}

func (c *IPInfo) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return http.DefaultClient
}

type ipinfoResponse struct {
	City     string `json:"city"`
	Region   string `json:"region"`
	Country  string `json:"country"`
	Postal   string `json:"postal"`
	Timezone string `json:"timezone"`
}

// Lookup fetches {base}/{ip}/json and maps the response fields.
// Transport and decode errors are logged server-side and yield the
// full placeholder; individual missing fields degrade one at a time.
func (c *IPInfo) Lookup(ip string) Location {
	resp, err := c.httpClient().Get(fmt.Sprintf("%s/%s/json", c.BaseURL, ip))
	if err != nil {
		log.Printf("geo: fetching info for %s: %v", ip, err)
		return Placeholder()
	}
	defer resp.Body.Close()

	var data ipinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("geo: decoding info for %s: %v", ip, err)
		return Placeholder()
	}

	return Location{
		City:     orUnknown(data.City),
		Region:   orUnknown(data.Region),
		Country:  orUnknown(data.Country),
		Postal:   orUnknown(data.Postal),
		Timezone: orUnknown(data.Timezone),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
