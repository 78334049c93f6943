package widget

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	revolving "github.com/marben/revolving_ifs"
)

const number = `(\d+(?:\.\d*)?|\.\d+)`

var (
	standardForm = regexp.MustCompile(`^([+-]?)` + number + `([+-])` + number + `?i$`)
	realOnly     = regexp.MustCompile(`^([+-]?)` + number + `$`)
	imagOnly     = regexp.MustCompile(`^([+-]?)` + number + `?i$`)
)

// ParseComplex reads "a+bi", "a-bi", a bare real "a" or a bare imaginary
// "bi". Each part may carry a sign and a decimal fraction; an imaginary
// part without digits ("i", "-i", "2+i") means a magnitude of one.
// Whitespace is ignored.
func ParseComplex(s string) (revolving.Complex, error) {
	v := strings.Join(strings.Fields(s), "")

	if m := standardForm.FindStringSubmatch(v); m != nil {
		return revolving.Complex{
			Re: signed(m[1], m[2]),
			Im: signed(m[3], m[4]),
		}, nil
	}
	if m := realOnly.FindStringSubmatch(v); m != nil {
		return revolving.Complex{Re: signed(m[1], m[2])}, nil
	}
	if m := imagOnly.FindStringSubmatch(v); m != nil {
		return revolving.Complex{Im: signed(m[1], m[2])}, nil
	}
	return revolving.Complex{}, fmt.Errorf("%w: %q", ErrSyntax, s)
}

// signed combines an optional sign with an optional magnitude, an absent
// magnitude counting as 1. The patterns guarantee magnitude parses.
func signed(sign, magnitude string) float64 {
	v := 1.0
	if magnitude != "" {
		v, _ = strconv.ParseFloat(magnitude, 64)
	}
	if sign == "-" {
		return -v
	}
	return v
}

// FormatComplex writes z as "a + bi" or "a - bi" with prec decimals.
func FormatComplex(z revolving.Complex, prec int) string {
	re := z.Re
	if re == 0 {
		re = 0 // drop the sign of -0
	}
	op := "+"
	if z.Im < 0 {
		op = "-"
	}
	return fmt.Sprintf("%s %s %si",
		strconv.FormatFloat(re, 'f', prec, 64),
		op,
		strconv.FormatFloat(math.Abs(z.Im), 'f', prec, 64),
	)
}
