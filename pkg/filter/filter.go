package filter

import (
	"context"
	"net/mail"
	"strings"
)

// Func narrows the addressee list of a message before it is sent.
// Implementations may drop or redirect addressees but must keep the
// relative order of those they keep: the first surviving addressee becomes
// the visible recipient when BCC splitting is enabled.
type Func func(ctx context.Context, addressees []string) ([]string, error)

// Identity returns the addressees unchanged.
func Identity(_ context.Context, addressees []string) ([]string, error) {
	return addressees, nil
}

// Chain runs filters in order, feeding each one the output of the previous.
// It stops early once no addressee is left.
func Chain(filters ...Func) Func {
	return func(ctx context.Context, addressees []string) ([]string, error) {
		current := addressees
		for _, f := range filters {
			if f == nil {
				continue
			}
			if len(current) == 0 {
				return current, nil
			}
			next, err := f(ctx, current)
			if err != nil {
				return nil, err
			}
			current = next
		}
		return current, nil
	}
}

// Dedupe drops repeated addresses, comparing case-insensitively and keeping
// the first occurrence.
func Dedupe(_ context.Context, addressees []string) ([]string, error) {
	seen := make(map[string]struct{}, len(addressees))
	out := make([]string, 0, len(addressees))
	for _, a := range addressees {
		key := strings.ToLower(address(a))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out, nil
}

// address extracts the bare address from "Name <user@host>" forms.
// Unparseable input is returned trimmed.
func address(addressee string) string {
	if parsed, err := mail.ParseAddress(addressee); err == nil {
		return parsed.Address
	}
	return strings.TrimSpace(addressee)
}

// domain returns the lowercased domain part of an addressee, or "".
func domain(addressee string) string {
	addr := address(addressee)
	at := strings.LastIndexByte(addr, '@')
	if at < 0 || at == len(addr)-1 {
		return ""
	}
	return strings.ToLower(addr[at+1:])
}
