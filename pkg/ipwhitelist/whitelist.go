package ipwhitelist

import (
	"bufio"
	"net"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Whitelist holds the addresses allowed to edit. A missing list file means
// allow everyone, for backward compatibility with installs that never
// configured one.
type Whitelist struct {
	exact    map[string]struct{}
	networks []*net.IPNet
	allowAll bool
}

// AllowAll is the gate used when no whitelist is configured.
func AllowAll() *Whitelist {
	return &Whitelist{allowAll: true}
}

// Load reads a whitelist file: one IP or CIDR range per line, blank lines
// and #-prefixed comments ignored. Malformed entries are skipped with a
// warning, never fatal. A missing file yields an allow-all gate.
func Load(path string) *Whitelist {
	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			zap.L().Warn("failed to open whitelist, allowing all", zap.String("path", path), zap.Error(err))
		}
		return AllowAll()
	}
	defer func() {
		if err := file.Close(); err != nil {
			zap.L().Debug("failed to close whitelist file", zap.Error(err))
		}
	}()

	w := &Whitelist{exact: make(map[string]struct{})}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.Contains(line, "/") {
			_, network, err := net.ParseCIDR(line)
			if err != nil {
				zap.L().Warn("skipping malformed whitelist entry", zap.String("entry", line), zap.Error(err))
				continue
			}
			w.networks = append(w.networks, network)
			continue
		}

		ip := net.ParseIP(line)
		if ip == nil {
			zap.L().Warn("skipping malformed whitelist entry", zap.String("entry", line))
			continue
		}
		w.exact[ip.String()] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		zap.L().Warn("failed to read whitelist", zap.String("path", path), zap.Error(err))
	}

	return w
}

// Allowed reports whether the given client address may edit.
func (w *Whitelist) Allowed(address string) bool {
	if w.allowAll {
		return true
	}

	ip := net.ParseIP(address)
	if ip == nil {
		return false
	}
	if _, ok := w.exact[ip.String()]; ok {
		return true
	}
	for _, network := range w.networks {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// ClientIP resolves the client address: first entry of X-Forwarded-For,
// then X-Real-IP, then the direct connection address.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
