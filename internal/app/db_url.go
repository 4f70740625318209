package app

import (
	"net/url"
	"strings"
)

// NormalizeDBURL turns on lib/pq binary parameters unless the URL already
// sets them, which lets pq skip the prepare round trip behind poolers.
func NormalizeDBURL(raw string, binaryParameters bool) string {
	if !binaryParameters {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("binary_parameters") == "" {
		query.Set("binary_parameters", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

// dsnInfo is what traces record about the target database.
type dsnInfo struct {
	Name string
	Host string
}

// parseDSN reads the database name and host from either a postgres URL or a
// keyword/value connection string.
func parseDSN(raw string) dsnInfo {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed != nil && parsed.Scheme != "" {
		return dsnInfo{
			Name: strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")),
			Host: parsed.Hostname(),
		}
	}

	var info dsnInfo
	for _, token := range strings.Fields(trimmed) {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		switch key {
		case "dbname":
			info.Name = value
		case "host":
			info.Host = value
		}
	}
	return info
}
