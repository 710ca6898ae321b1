package wavefront

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/achilleasa/objbuf/types"
	"github.com/pkg/errors"
)

// Invoke fn with the whitespace-separated tokens of every non-blank line in
// data. Both geometry passes go through this function so that the counting
// pass and the parser always agree on how a line is split.
func scanLines(data []byte, maxLineLength int, fn func(lineNum int, lineTokens []string) error) error {
	var lineNum int = 0

	bufSize := 64 * 1024
	if maxLineLength < bufSize {
		bufSize = maxLineLength
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, bufSize), maxLineLength)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 {
			continue
		}

		if err := fn(lineNum, lineTokens); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return &ParseError{
			Kind:  MalformedInput,
			Line:  lineNum + 1,
			Msg:   err.Error(),
			cause: err,
		}
	}
	return nil
}

// Parse a float the way C's atof does: the longest decimal prefix of the token
// is converted and trailing garbage is dropped. Tokens without a numeric
// prefix yield 0 and out of range values saturate to +/-Inf. Textual
// infinity and NaN literals are not recognized.
func lenientFloat32(token string) float32 {
	prefix := numericPrefix(token, true)
	if prefix == "" {
		return 0
	}

	val, err := strconv.ParseFloat(prefix, 32)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); !ok || numErr.Err != strconv.ErrRange {
			return 0
		}
	}
	return float32(val)
}

// Parse an integer the way C's atoi does: the longest base-10 prefix of the
// token is converted. Tokens without a numeric prefix and out of range values
// yield 0.
func lenientInt32(token string) int32 {
	prefix := numericPrefix(token, false)
	if prefix == "" {
		return 0
	}

	val, err := strconv.ParseInt(prefix, 10, 32)
	if err != nil {
		return 0
	}
	return int32(val)
}

// Return the longest prefix of token that forms a decimal number: an optional
// sign followed by digits and, if withFraction is set, an optional fraction
// and exponent. Returns an empty string if the prefix contains no digits.
func numericPrefix(token string, withFraction bool) string {
	end := 0
	if end < len(token) && (token[end] == '+' || token[end] == '-') {
		end++
	}

	digits := 0
	for ; end < len(token) && isDigit(token[end]); end++ {
		digits++
	}

	if withFraction && end < len(token) && token[end] == '.' {
		for end++; end < len(token) && isDigit(token[end]); end++ {
			digits++
		}
	}

	if digits == 0 {
		return ""
	}

	// The exponent only counts if at least one digit follows the marker.
	if withFraction && end < len(token) && (token[end] == 'e' || token[end] == 'E') {
		expEnd := end + 1
		if expEnd < len(token) && (token[expEnd] == '+' || token[expEnd] == '-') {
			expEnd++
		}

		expDigitsStart := expEnd
		for expEnd < len(token) && isDigit(token[expEnd]) {
			expEnd++
		}
		if expEnd > expDigitsStart {
			end = expEnd
		}
	}

	return token[:end]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Parse a float scalar value.
func parseFloat32(lineTokens []string) (float32, error) {
	if len(lineTokens) < 2 {
		return 0, errors.Errorf(`unsupported syntax for "%s"; expected 1 argument; got %d`, lineTokens[0], len(lineTokens)-1)
	}
	return lenientFloat32(lineTokens[1]), nil
}

// Parse an integer scalar value.
func parseInt(lineTokens []string) (int, error) {
	if len(lineTokens) < 2 {
		return 0, errors.Errorf(`unsupported syntax for "%s"; expected 1 argument; got %d`, lineTokens[0], len(lineTokens)-1)
	}
	return int(lenientInt32(lineTokens[1])), nil
}

// Parse a Vec3 row.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, errors.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		v[tokIdx-1] = lenientFloat32(lineTokens[tokIdx])
	}
	return v, nil
}

// Parse a Vec2 row.
func parseVec2(lineTokens []string) (types.Vec2, error) {
	if len(lineTokens) < 3 {
		return types.Vec2{}, errors.Errorf(`unsupported syntax for "%s"; expected 2 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec2{}
	for tokIdx := 1; tokIdx <= 2; tokIdx++ {
		v[tokIdx-1] = lenientFloat32(lineTokens[tokIdx])
	}
	return v, nil
}

// Parse a single string argument.
func parseName(lineTokens []string) (string, error) {
	if len(lineTokens) < 2 {
		return "", errors.Errorf(`unsupported syntax for "%s"; expected 1 argument; got %d`, lineTokens[0], len(lineTokens)-1)
	}
	return lineTokens[1], nil
}

// Parse a file name argument. The name spans all remaining tokens so that
// unquoted names containing spaces are preserved; runs of whitespace inside
// the name collapse to a single space.
func parseFileName(lineTokens []string) (string, error) {
	if len(lineTokens) < 2 {
		return "", errors.Errorf(`unsupported syntax for "%s"; expected 1 argument; got %d`, lineTokens[0], len(lineTokens)-1)
	}
	return strings.Join(lineTokens[1:], " "), nil
}
