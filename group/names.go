package group

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/kdgroup/algebra"
)

// knownNames maps flattened coordinate tuples of the complex and quaternion
// units to their conventional names.
var knownNames = map[string]string{
	// complex
	"1,0":  "1",
	"0,1":  "i",
	"-1,0": "-1",
	"0,-1": "-i",

	// quaternion
	"1,0,0,0":  "1",
	"0,1,0,0":  "i",
	"0,0,1,0":  "j",
	"0,0,0,1":  "k",
	"-1,0,0,0": "-1",
	"0,-1,0,0": "-i",
	"0,0,-1,0": "-j",
	"0,0,0,-1": "-k",
}

// Name returns the conventional name of x ("1", "i", "-k", …) when x is a
// complex or quaternion unit. ok is false for anything else.
func Name(x algebra.Element) (name string, ok bool) {
	if x.IsScalar() || x.Order() > 2 {
		return "", false
	}
	coeffs := x.Flatten()
	parts := make([]string, len(coeffs))
	for i, v := range coeffs {
		if v == 0 {
			v = 0
		}
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	name, ok = knownNames[strings.Join(parts, ",")]

	return name, ok
}

// Label returns Name(x) or the synthetic label "e<idx>".
func Label(x algebra.Element, idx int) string {
	if name, ok := Name(x); ok {
		return name
	}

	return fmt.Sprintf("e%d", idx)
}
