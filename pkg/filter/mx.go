package filter

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrDNSLookupFailed indicates an MX lookup failed for reasons other than
// the domain not existing.
var ErrDNSLookupFailed = errors.New("filter: dns lookup failed")

// MXResolver is the subset of *net.Resolver used by MXVerified.
type MXResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// MXVerified drops addressees whose domain publishes no MX record.
// Each domain is looked up once per call. A nil resolver uses net.DefaultResolver.
func MXVerified(resolver MXResolver) Func {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return func(ctx context.Context, addressees []string) ([]string, error) {
		verdicts := make(map[string]bool)
		out := make([]string, 0, len(addressees))

		for _, a := range addressees {
			d := domain(a)
			if d == "" {
				continue
			}

			ok, seen := verdicts[d]
			if !seen {
				var err error
				ok, err = hasMX(ctx, resolver, d)
				if err != nil {
					return nil, err
				}
				verdicts[d] = ok
			}

			if ok {
				out = append(out, a)
			}
		}
		return out, nil
	}
}

func hasMX(ctx context.Context, resolver MXResolver, domain string) (bool, error) {
	records, err := resolver.LookupMX(ctx, domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return false, nil
		}
		return false, fmt.Errorf("%w: %s: %v", ErrDNSLookupFailed, domain, err)
	}
	return len(records) > 0, nil
}
