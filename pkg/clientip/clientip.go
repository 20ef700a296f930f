package clientip

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Config lists the proxies whose forwarding headers are believed.
type Config struct {
	// TrustedProxies holds addresses or CIDR ranges, e.g. "10.0.0.0/8".
	TrustedProxies []string `env:"HTTP_TRUSTED_PROXIES" envSeparator:","`
}

// ParseTrustedProxies turns addresses and CIDR ranges into prefixes.
// A bare address becomes a single-host prefix.
func ParseTrustedProxies(values []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if strings.Contains(v, "/") {
			p, err := netip.ParsePrefix(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, v)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, v)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// GetIP returns the client address of r. Forwarding headers are read only
// when the peer (RemoteAddr) is one of the trusted proxies; then the order
// is CF-Connecting-IP, the rightmost untrusted X-Forwarded-For entry and
// X-Real-IP. Otherwise, and as the last resort, the peer address is used.
// It returns "" when nothing holds a valid IP.
func GetIP(r *http.Request, trusted ...netip.Prefix) string {
	peer := remoteIP(r.RemoteAddr)
	if peer == "" || !isTrusted(peer, trusted) {
		return peer
	}

	if ip := parseIP(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	if forwarded := r.Header.Values("X-Forwarded-For"); len(forwarded) > 0 {
		hops := strings.Split(strings.Join(forwarded, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			ip := parseIP(hops[i])
			if ip == "" {
				break
			}
			if !isTrusted(ip, trusted) {
				return ip
			}
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return peer
}

func remoteIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return parseIP(remoteAddr)
	}
	return parseIP(host)
}

func isTrusted(ip string, trusted []netip.Prefix) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// parseIP returns the normalized form of s, or "" if it is not an IP.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
