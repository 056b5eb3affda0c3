// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMatrix returns a new [Matrix] parsed from the given
// CSS / SVG transform string. See [Matrix.SetString].
func ParseMatrix(str string) (Matrix, error) {
	m := Identity()
	err := m.SetString(str)
	return m, err
}

// String returns the matrix as a CSS / SVG transform string.
// Only the affine part is represented. Identity is "none", pure
// translate and scale matrices use those functions, and anything
// else is written as matrix(a,b,c,d,e,f) in canvas parameter order.
func (m Matrix) String() string {
	if m.IsIdentity() {
		return "none"
	}
	sx, sy := m.ScaleX(), m.ScaleY()
	tx, ty := m.TransX(), m.TransY()
	if m.SkewX() == 0 && m.SkewY() == 0 {
		hasTrans := tx != 0 || ty != 0
		hasScale := sx != 1 || sy != 1
		switch {
		case hasTrans && hasScale:
			return fmt.Sprintf("translate(%s,%s) scale(%s,%s)", fmt32(tx), fmt32(ty), fmt32(sx), fmt32(sy))
		case hasTrans:
			return fmt.Sprintf("translate(%s,%s)", fmt32(tx), fmt32(ty))
		case hasScale:
			return fmt.Sprintf("scale(%s,%s)", fmt32(sx), fmt32(sy))
		}
	}
	p := m.CanvasTransformParams()
	strs := make([]string, len(p))
	for i, v := range p {
		strs[i] = fmt32(v)
	}
	return "matrix(" + strings.Join(strs, ",") + ")"
}

func fmt32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// SetString sets the matrix from a CSS / SVG transform list such as
// "translate(10, 20) rotate(45deg) scale(2)". The functions are
// composed left to right with [Matrix.Mul], so the rightmost one is
// applied to points first. Supported functions are matrix, translate,
// translateX, translateY, scale, scaleX, scaleY, rotate, skewX and skewY.
// Angles default to degrees, and accept deg, rad and turn units.
// On error the matrix is left as the identity.
func (m *Matrix) SetString(str string) error {
	*m = Identity()
	str = strings.ToLower(strings.TrimSpace(str))
	if str == "" || str == "none" {
		return nil
	}
	res := Identity()
	rest := str
	for {
		rest = strings.TrimLeft(rest, " \t\n,")
		if rest == "" {
			break
		}
		op := strings.IndexByte(rest, '(')
		cp := strings.IndexByte(rest, ')')
		if op < 0 || cp < op {
			return fmt.Errorf("math32.Matrix.SetString: malformed transform %q", str)
		}
		name := strings.TrimSpace(rest[:op])
		args := strings.FieldsFunc(rest[op+1:cp], func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		rest = rest[cp+1:]
		d, err := transformFunc(name, args)
		if err != nil {
			return fmt.Errorf("math32.Matrix.SetString: %q: %w", str, err)
		}
		res = res.Mul(d)
	}
	*m = res
	return nil
}

// transformFunc returns the matrix for one transform function.
func transformFunc(name string, args []string) (Matrix, error) {
	d := Identity()
	nums := func(min, max int) ([]float32, error) {
		if len(args) < min || len(args) > max {
			return nil, fmt.Errorf("%s: expected %d to %d arguments, got %d", name, min, max, len(args))
		}
		vs := make([]float32, len(args))
		for i, a := range args {
			v, err := ParseFloat32(strings.TrimSuffix(a, "px"))
			if err != nil {
				return nil, fmt.Errorf("%s: invalid number %q", name, a)
			}
			vs[i] = v
		}
		return vs, nil
	}
	switch name {
	case "matrix":
		vs, err := nums(6, 6)
		if err != nil {
			return d, err
		}
		return Matrix{vs[0], vs[1], 0, vs[2], vs[3], 0, vs[4], vs[5], 1}, nil
	case "translate", "translatex", "translatey":
		vs, err := nums(1, 2)
		if err != nil {
			return d, err
		}
		switch {
		case name == "translatex":
			d.SetTranslate(vs[0], 0)
		case name == "translatey":
			d.SetTranslate(0, vs[0])
		case len(vs) == 2:
			d.SetTranslate(vs[0], vs[1])
		default:
			d.SetTranslate(vs[0], 0)
		}
		return d, nil
	case "scale", "scalex", "scaley":
		vs, err := nums(1, 2)
		if err != nil {
			return d, err
		}
		switch {
		case name == "scalex":
			d.SetScale(vs[0], 1)
		case name == "scaley":
			d.SetScale(1, vs[0])
		case len(vs) == 2:
			d.SetScale(vs[0], vs[1])
		default:
			d.SetScale(vs[0], vs[0])
		}
		return d, nil
	case "rotate":
		if len(args) != 1 && len(args) != 3 {
			return d, fmt.Errorf("rotate: expected 1 or 3 arguments, got %d", len(args))
		}
		rad, err := parseAngle(args[0])
		if err != nil {
			return d, err
		}
		d.SetRotate(rad)
		if len(args) == 3 {
			args = args[1:]
			vs, err := nums(2, 2)
			if err != nil {
				return d, err
			}
			c := Identity()
			c.SetTranslate(vs[0], vs[1])
			return c.Mul(d).Translate(-vs[0], -vs[1]), nil
		}
		return d, nil
	case "skewx", "skewy":
		if len(args) != 1 {
			return d, fmt.Errorf("%s: expected 1 argument, got %d", name, len(args))
		}
		rad, err := parseAngle(args[0])
		if err != nil {
			return d, err
		}
		if name == "skewx" {
			d[3] = Tan(rad)
		} else {
			d[1] = Tan(rad)
		}
		return d, nil
	}
	return d, fmt.Errorf("unknown transform function %q", name)
}

// parseAngle parses an angle with an optional deg, rad or turn unit,
// returning radians. Unitless values are degrees, as in SVG.
func parseAngle(str string) (float32, error) {
	str = strings.TrimSpace(str)
	unit := float32(DegToRadFactor)
	switch {
	case strings.HasSuffix(str, "deg"):
		str = strings.TrimSuffix(str, "deg")
	case strings.HasSuffix(str, "rad"):
		str = strings.TrimSuffix(str, "rad")
		unit = 1
	case strings.HasSuffix(str, "turn"):
		str = strings.TrimSuffix(str, "turn")
		unit = 2 * Pi
	}
	v, err := ParseFloat32(str)
	if err != nil {
		return 0, fmt.Errorf("invalid angle %q", str)
	}
	return v * unit, nil
}
