// Package peerservice guesses a peer service label for outgoing requests
// from the destination hostname. The result is a best-effort annotation for
// trace visualization only; no DNS resolution or connectivity check is made
// and unmatched hosts fall back to the raw hostname.
package peerservice

import (
	"net"
	"net/url"
	"strings"
)

// Infer maps a destination host (optionally host:port) to a peer service
// name. First matching pattern wins:
//
//  1. "elasticsearch" in the host or port 9200 -> elasticsearch
//  2. "redis" in the host or port 6379 -> redis
//  3. a Kubernetes ".svc" name -> its first dot-segment
//  4. a "www." prefix -> the prefix stripped
//
// When host is empty the URL is consulted for one.
func Infer(host, rawURL string) string {
	if host == "" && rawURL != "" {
		if u, err := url.Parse(rawURL); err == nil {
			host = u.Host
		}
	}
	name, port := splitHostPort(host)
	switch {
	case strings.Contains(host, "elasticsearch") || port == "9200":
		return "elasticsearch"
	case strings.Contains(host, "redis") || port == "6379":
		return "redis"
	case strings.Contains(name, ".svc"):
		if i := strings.Index(name, "."); i > 0 {
			return name[:i]
		}
	case strings.HasPrefix(name, "www."):
		return strings.TrimPrefix(name, "www.")
	}
	return name
}

func splitHostPort(host string) (name, port string) {
	name, port, err := net.SplitHostPort(host)
	if err != nil {
		return host, ""
	}
	return name, port
}
