package wire

import (
	"math"
	"strconv"
	"strings"

	"github.com/k0kubun/toon/toonerr"
)

// MaxSafeInt is the safe-integer magnitude threshold from spec section 3:
// a Float that is integral and within this magnitude round-trips through
// the Int variant instead.
const MaxSafeInt = 1 << 53

// FormatInt renders an integer in canonical form: sign and decimal digits,
// with -0 impossible for int64 (there is no negative zero integer).
func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// FormatFloat renders f in canonical form per spec section 4.2: NaN/Inf
// become "null", signed zero becomes "0", integral values within
// MaxSafeInt become their integer token, and everything else is rendered
// with no exponent, no leading zeros, and no trailing fractional zeros.
func FormatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == 0 {
		return "0"
	}
	if f == math.Trunc(f) && math.Abs(f) < MaxSafeInt {
		return strconv.FormatInt(int64(f), 10)
	}
	// strconv's 'f' format never produces an exponent; signed zero was
	// handled above, and trimTrailingZeros strips any trailing fractional
	// zeros to match the canonical grammar.
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return trimTrailingZeros(s)
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// LooksLikeNumber reports whether s would be classified as a number token
// by the decoder's grammar, OR matches the forbidden-leading-zero pattern
// that must still be quoted on emit (spec section 4.2's "looks-like-number
// test").
func LooksLikeNumber(s string) bool {
	if _, _, _, ok := ParseNumber(s); ok {
		return true
	}
	return hasForbiddenLeadingZero(s)
}

func hasForbiddenLeadingZero(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	if i+1 >= len(s) {
		return false
	}
	if s[i] != '0' {
		return false
	}
	return isDigit(s[i+1])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// ParseNumber parses s against the number grammar in spec section 4.2. ok
// is false if s is not a valid number token (including dangling/leading
// '.', forbidden leading zeros, empty input, or trailing garbage).
// isFloat reports whether the result is carried in f (true) or i (false);
// a decimal/exponent literal that is integral and within MaxSafeInt still
// folds to an Int per spec section 3's Int/Float boundary rule.
func ParseNumber(s string) (i int64, f float64, isFloat bool, ok bool) {
	if !validNumberSyntax(s) {
		return 0, 0, false, false
	}
	if !strings.ContainsAny(s, ".eE") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return n, 0, false, true
		}
		// Overflow falls back to float per spec section 4.2.
		fv, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, 0, false, false
		}
		return 0, foldNegZero(fv), true, true
	}
	fv, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0, false, false
	}
	fv = foldNegZero(fv)
	if fv == math.Trunc(fv) && math.Abs(fv) < MaxSafeInt && !math.IsInf(fv, 0) {
		return int64(fv), 0, false, true
	}
	return 0, fv, true, true
}

func foldNegZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

// validNumberSyntax implements the grammar from spec section 4.2:
//
//	'-'? digits ('.' digits)? ([eE] [+-]? digits)?
//
// where a leading '0' in the integer part may only be followed by '.',
// 'e', or 'E'. A dangling or leading '.' is invalid.
func validNumberSyntax(s string) bool {
	i, n := 0, len(s)
	if n == 0 {
		return false
	}
	if s[i] == '-' {
		i++
	}
	start := i
	for i < n && isDigit(s[i]) {
		i++
	}
	intLen := i - start
	if intLen == 0 {
		return false
	}
	if intLen > 1 && s[start] == '0' {
		return false
	}
	if intLen == 1 && s[start] == '0' && i < n {
		switch s[i] {
		case '.', 'e', 'E':
		default:
			return false
		}
	}
	if i < n && s[i] == '.' {
		i++
		fracStart := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == fracStart {
			return false
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == expStart {
			return false
		}
	}
	return i == n
}

// CheckInt is a strict integer parser that surfaces Overflow distinctly
// from a generic InvalidNumber, matching the error taxonomy in spec
// section 7. The decoder does not call it; it uses ParseNumber, which
// falls back to a float on overflow.
func CheckInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, toonerr.New(toonerr.Overflow, "integer literal %q overflows int64", s)
		}
		return 0, toonerr.New(toonerr.InvalidNumber, "invalid integer literal %q", s)
	}
	return n, nil
}
