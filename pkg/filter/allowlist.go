package filter

import (
	"context"
	"strings"
)

// AllowDomains keeps only addressees whose domain is listed.
// Subdomains are not matched implicitly.
func AllowDomains(domains ...string) Func {
	allowed := toSet(domains)
	return func(_ context.Context, addressees []string) ([]string, error) {
		out := make([]string, 0, len(addressees))
		for _, a := range addressees {
			if _, ok := allowed[domain(a)]; ok {
				out = append(out, a)
			}
		}
		return out, nil
	}
}

// DenyAddresses drops the listed addresses (case-insensitive).
func DenyAddresses(addresses ...string) Func {
	denied := toSet(addresses)
	return func(_ context.Context, addressees []string) ([]string, error) {
		out := make([]string, 0, len(addressees))
		for _, a := range addressees {
			if _, ok := denied[strings.ToLower(address(a))]; !ok {
				out = append(out, a)
			}
		}
		return out, nil
	}
}

// Trap redirects every message to a single trap mailbox, e.g. for staging
// environments. An empty addressee list stays empty and an empty trap
// address drops every addressee.
func Trap(trapAddress string) Func {
	return func(_ context.Context, addressees []string) ([]string, error) {
		if len(addressees) == 0 || trapAddress == "" {
			return nil, nil
		}
		return []string{trapAddress}, nil
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
