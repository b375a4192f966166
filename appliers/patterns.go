package appliers

import "regexp"

const (
	emailAtom  = "[A-Za-z0-9!#$%&'*+/=?^_`{|}~-]+"
	domainPart = `[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?`
	ipv4Octet  = `(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])`
	ipv4       = ipv4Octet + `(?:\.` + ipv4Octet + `){3}`
	h16        = `[0-9A-Fa-f]{1,4}`
)

// Pattern tables for the email / ipv4 / ipv6 kinds.
var (
	PatternEmail = regexp.MustCompile(`^` + emailAtom + `(?:\.` + emailAtom + `)*@` + domainPart + `(?:\.` + domainPart + `)+$`)
	PatternIPv4  = regexp.MustCompile(`^` + ipv4 + `$`)
	PatternIPv6  = regexp.MustCompile(`^(?:` +
		`(?:` + h16 + `:){7}` + h16 +
		`|(?:` + h16 + `:){1,7}:` +
		`|(?:` + h16 + `:){1,6}:` + h16 +
		`|(?:` + h16 + `:){1,5}(?::` + h16 + `){1,2}` +
		`|(?:` + h16 + `:){1,4}(?::` + h16 + `){1,3}` +
		`|(?:` + h16 + `:){1,3}(?::` + h16 + `){1,4}` +
		`|(?:` + h16 + `:){1,2}(?::` + h16 + `){1,5}` +
		`|` + h16 + `:(?::` + h16 + `){1,6}` +
		`|:(?:(?::` + h16 + `){1,7}|:)` +
		`|::(?:[Ff]{4}(?::0{1,4})?:)?` + ipv4 +
		`|(?:` + h16 + `:){6}` + ipv4 +
		`|(?:` + h16 + `:){1,4}:` + ipv4 +
		`)$`)
	PatternURI = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:[^\s]*$`)
)
