package prefabs

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// YAMLColor decodes a colour from a YAML scalar. See ParseColor for the
// accepted forms.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	clr, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = clr
	return nil
}

// NRGBA returns the colour as non-premultiplied RGBA, opaque white if unset.
func (c YAMLColor) NRGBA() color.NRGBA {
	if c.Color == nil {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

// ParseColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name such as
// "crimson". Any form may carry an "@alpha" suffix with alpha in [0, 1], e.g.
// "black@0.5".
func ParseColor(s string) (color.NRGBA, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}

	base, alphaStr, hasAlpha := strings.Cut(raw, "@")
	clr, err := parseBaseColor(strings.TrimSpace(base))
	if err != nil {
		return color.NRGBA{}, err
	}

	if hasAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(alphaStr), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q", s)
		}
		clr.A = uint8(math.Round(a * 255))
	}
	return clr, nil
}

func parseBaseColor(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		named, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color name: %s", s)
		}
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(hex) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
