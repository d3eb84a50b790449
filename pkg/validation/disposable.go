package validation

import "strings"

// disposableEmailDomains is the blocklist of known disposable/temporary
// email providers. It is the single server-side definition; the frontend
// form embeds the same list so client-side bypass cannot change the
// accept/reject outcome.
var disposableEmailDomains = map[string]struct{}{
	"mailinator.com":        {},
	"guerrillamail.com":     {},
	"guerrillamail.org":     {},
	"tempmail.com":          {},
	"temp-mail.org":         {},
	"10minutemail.com":      {},
	"throwaway.email":       {},
	"fakeinbox.com":         {},
	"trashmail.com":         {},
	"mailnesia.com":         {},
	"tempinbox.com":         {},
	"dispostable.com":       {},
	"yopmail.com":           {},
	"yopmail.fr":            {},
	"sharklasers.com":       {},
	"guerrillamailblock.com": {},
	"pokemail.net":          {},
	"spam4.me":              {},
	"grr.la":                {},
	"getairmail.com":        {},
	"mohmal.com":            {},
	"tempail.com":           {},
	"burnermail.io":         {},
	"maildrop.cc":           {},
	"mailsac.com":           {},
	"getnada.com":           {},
	"emailondeck.com":       {},
	"mintemail.com":         {},
	"tempr.email":           {},
	"discard.email":         {},
	"fakemailgenerator.com": {},
	"emailfake.com":         {},
	"crazymailing.com":      {},
	"tempmailo.com":         {},
}

// IsDisposableEmail reports whether the address's domain (case-folded) is a
// known disposable provider. Addresses without an @ are not disposable;
// shape validation catches those separately.
func IsDisposableEmail(email string) bool {
	parts := strings.SplitN(strings.ToLower(email), "@", 2)
	if len(parts) != 2 || parts[1] == "" {
		return false
	}
	_, blocked := disposableEmailDomains[parts[1]]
	return blocked
}
