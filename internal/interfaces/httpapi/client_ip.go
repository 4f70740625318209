package httpapi

import (
	"net/http"
	"net/netip"
	"strings"
)

var clientIPHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// resolveClientIP returns the first parseable address from the proxy
// headers, then the socket address. Empty when nothing parses.
func resolveClientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		for _, candidate := range strings.Split(r.Header.Get(header), ",") {
			if addr, ok := parseClientAddr(candidate); ok {
				return addr.String()
			}
		}
	}

	if addr, ok := parseClientAddr(r.RemoteAddr); ok {
		return addr.String()
	}
	return ""
}

func parseClientAddr(raw string) (netip.Addr, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return netip.Addr{}, false
	}
	if addrPort, err := netip.ParseAddrPort(value); err == nil {
		return addrPort.Addr().Unmap(), true
	}
	addr, err := netip.ParseAddr(strings.Trim(value, "[]"))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
