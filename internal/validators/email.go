package validators

import (
	"net"
	"strings"
)

// IsDeliverableEmail reports whether a patient registration email points at
// a domain that can receive mail. Structural checks are left to the request
// binding; this only asks DNS whether the domain exists at all, so typos
// like "gamil.com" still pass but "example.invalid" does not.
func IsDeliverableEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	return domainReceivesMail(email[at+1:])
}

// domainReceivesMail accepts a domain with MX records, or one that at least
// resolves to an address (implicit-MX rule from RFC 5321 §5.1).
func domainReceivesMail(domain string) bool {
	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
