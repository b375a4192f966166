package appliers

import (
	"fmt"
	"regexp"
	"strings"

	vs "github.com/reoring/valueschema"
	js "github.com/reoring/valueschema/jsonschema"
)

// Checksum algorithm names accepted by the checksum feature.
const (
	ChecksumLuhn              = "luhn"
	ChecksumCreditCard        = "credit_card" // alias of luhn
	ChecksumModulus10Weight31 = "modulus10/weight3:1"
	ChecksumISBN13            = "isbn13" // alias of modulus10/weight3:1
	ChecksumEAN               = "ean"    // alias of modulus10/weight3:1
	ChecksumJAN               = "jan"    // alias of modulus10/weight3:1
)

var checksumFuncs = map[string]func(string) bool{
	ChecksumLuhn:              checkLuhn,
	ChecksumCreditCard:        checkLuhn,
	ChecksumModulus10Weight31: checkModulus10Weight31,
	ChecksumISBN13:            checkModulus10Weight31,
	ChecksumEAN:               checkModulus10Weight31,
	ChecksumJAN:               checkModulus10Weight31,
}

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// JoinArray concatenates an array output into one string.
//
// Features: joinArray()
var JoinArray = vs.NewApplier[FlagConfig]("joinArray", func(c *FlagConfig, v *vs.Values, _ vs.KeyStack) (bool, error) {
	if !c.Enabled {
		return false, nil
	}
	arr, ok := vs.AsArray(v.Output)
	if !ok {
		return false, nil
	}
	b := &strings.Builder{}
	for _, e := range arr {
		if s, ok := e.(string); ok {
			b.WriteString(s)
			continue
		}
		if s, ok := stringify(e); ok {
			b.WriteString(s)
			continue
		}
		fmt.Fprint(b, e)
	}
	v.Output = b.String()
	return false, nil
}).
	Feature("joinArray", featureFlag)

// SeparatorConfig is the slot of SeparatedBy and ArrayType.
type SeparatorConfig struct {
	Sep     *regexp.Regexp
	ToArray bool // ArrayType only
}

// SeparatedBy removes every separator occurrence from a string output.
//
// Features: separatedBy(sep) where sep is a literal string or a *regexp.Regexp
var SeparatedBy = vs.NewApplier[SeparatorConfig]("separatedBy", func(c *SeparatorConfig, v *vs.Values, _ vs.KeyStack) (bool, error) {
	if c.Sep == nil {
		return false, nil
	}
	if s, ok := v.Output.(string); ok {
		v.Output = c.Sep.ReplaceAllLiteralString(s, "")
	}
	return false, nil
}).
	Feature("separatedBy", featureSeparator)

// featureSeparator treats string arguments literally.
func featureSeparator(c *SeparatorConfig, args ...any) error {
	if err := arity(args, 1, 1); err != nil {
		return err
	}
	if s, ok := args[0].(string); ok {
		if s == "" {
			return fmt.Errorf("empty separator")
		}
		c.Sep = regexp.MustCompile(regexp.QuoteMeta(s))
		return nil
	}
	re, err := argRegexp(args, 0)
	if err != nil {
		return err
	}
	c.Sep = re
	return nil
}

// NumericStringType requires a string of ASCII digits (CausePattern otherwise). Numbers are
// converted to their decimal text first; other values fail with CauseType.
var NumericStringType = vs.NewApplier[struct{}]("numericStringType", func(_ *struct{}, v *vs.Values, ks vs.KeyStack) (bool, error) {
	s, ok := v.Output.(string)
	if !ok {
		if _, isBool := v.Output.(bool); isBool {
			return false, vs.Raise(vs.CauseType, v, ks)
		}
		if s, ok = stringify(v.Output); !ok {
			return false, vs.Raise(vs.CauseType, v, ks)
		}
	}
	if !digitsOnly.MatchString(s) {
		return false, vs.Raise(vs.CausePattern, v, ks)
	}
	v.Output = s
	return false, nil
}).
	Describe(func(_ *struct{}, s *js.Schema) {
		s.Type = "string"
		s.Pattern = digitsOnly.String()
	})

// ChecksumConfig is the slot of Checksum.
type ChecksumConfig struct {
	Algorithm string
	check     func(string) bool
}

// Checksum validates the adjusted digits and reports the original value on failure
// (CauseChecksum).
//
// Features: checksum(algorithm)
var Checksum = vs.NewApplier[ChecksumConfig]("checksum", func(c *ChecksumConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	if c.check == nil {
		return false, nil
	}
	s, ok := v.Output.(string)
	if !ok || !digitsOnly.MatchString(s) || !c.check(s) {
		return false, vs.Raise(vs.CauseChecksum, v, ks)
	}
	return false, nil
}).
	Feature("checksum", func(c *ChecksumConfig, args ...any) error {
		if err := arity(args, 1, 1); err != nil {
			return err
		}
		alg, err := argString(args, 0)
		if err != nil {
			return err
		}
		fn, ok := checksumFuncs[strings.ToLower(alg)]
		if !ok {
			return fmt.Errorf("unknown checksum algorithm %q", alg)
		}
		c.Algorithm, c.check = alg, fn
		return nil
	})

// checkLuhn implements the Luhn algorithm (credit cards).
func checkLuhn(s string) bool {
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		d := int(s[i] - '0')
		if double {
			d *= 2
			d = d%10 + d/10
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// checkModulus10Weight31 implements Modulus 10 / Weight 3:1 (ISBN-13, EAN, JAN). The last
// digit is the check digit.
func checkModulus10Weight31(s string) bool {
	n := len(s)
	if n < 2 {
		return false
	}
	sum := 0
	for i := 0; i < n-1; i++ {
		d := int(s[i] - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return (10-sum%10)%10 == int(s[n-1]-'0')
}
