package bacnet

import (
	"regexp"
	"strings"
)

// ToASN1Name translates an identifier like "analogValue" or
// "subscribeCOV" into its ASN.1-style kebab form: "analog-value",
// "subscribe-cov". Three regex passes handle runs of uppercase
// letters (acronyms), a trailing run of uppercase letters, and plain
// lowerCamel word boundaries, followed by two fixed substitutions for
// the two identifiers BACnet spells with embedded acronyms that would
// otherwise merge incorrectly.
var (
	reRunOfUppers         = regexp.MustCompile(`([A-Z])([A-Z]+)([A-Z][a-z])`)
	reTrailingRunOfUppers = regexp.MustCompile(`([A-Z])([A-Z]+)$`)
	reWordSplit           = regexp.MustCompile(`([a-z0-9])([A-Z]+)`)
)

func ToASN1Name(name string) string {
	// DHCPSnork -> DhcpSnork
	name = reRunOfUppers.ReplaceAllStringFunc(name, func(m string) string {
		g := reRunOfUppers.FindStringSubmatch(m)
		return g[1] + toLowerASCII(g[2]) + g[3]
	})

	// subscribeCOV -> subscribeCov
	name = reTrailingRunOfUppers.ReplaceAllStringFunc(name, func(m string) string {
		g := reTrailingRunOfUppers.FindStringSubmatch(m)
		return g[1] + toLowerASCII(g[2])
	})

	// lowerCamel -> lower-camel
	name = reWordSplit.ReplaceAllStringFunc(name, func(m string) string {
		g := reWordSplit.FindStringSubmatch(m)
		return g[1] + "-" + toLowerASCII(g[2])
	})

	name = strings.ReplaceAll(name, "-ipnat-", "-ip-nat-")
	name = strings.ReplaceAll(name, "-ipudp-", "-ip-udp-")

	return name
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
