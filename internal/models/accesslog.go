package models

// AccessLogEntry records one audited request together with best-effort
// IP geolocation. Location fields hold "Unknown" when the lookup failed.
// JSON keys follow the historical request_logs document.
type AccessLogEntry struct {
	Timestamp string `json:"timestamp"`
	Method    string `json:"method"`
	Endpoint  string `json:"endpoint"`
	IP        string `json:"ip"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
	LocalTime string `json:"local_time"`
}
