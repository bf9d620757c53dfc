// Package filter provides addressee filters for the mail builder.
//
// A filter receives the full addressee list of a message and returns the
// addressees that should actually receive it. Typical uses are staging
// environments that must never email real customers:
//
//	m := fluentmail.New(sender,
//		fluentmail.WithAddresseeFilter(filter.Chain(
//			filter.Dedupe,
//			filter.AllowDomains("example.com"),
//		)),
//	)
//
// or that redirect everything to a shared inbox:
//
//	fluentmail.WithAddresseeFilter(filter.Trap("qa-inbox@example.com"))
//
// A filter returning an empty list makes the builder skip the send without
// an error.
package filter
