package chart

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/xerrors"
	"gonum.org/v1/plot/plotutil"
)

// The one-letter colors of matplotlib.
var shortColors = map[string]color.RGBA{
	"b": {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	"g": {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	"r": {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	"c": {R: 0x00, G: 0xbf, B: 0xbf, A: 0xff},
	"m": {R: 0xbf, G: 0x00, B: 0xbf, A: 0xff},
	"y": {R: 0xbf, G: 0xbf, B: 0x00, A: 0xff},
	"k": {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"w": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// ParseColor understands matplotlib one-letter colors, the SVG 1.1 color
// names and hex values in the #RGB, #RRGGBB and #RRGGBBAA forms.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := shortColors[name]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		return parseHex(name[1:])
	}
	return nil, xerrors.Errorf("unknown color %q", s)
}

func parseHex(h string) (color.Color, error) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return nil, xerrors.Errorf("wrong length for hex color #%s", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, xerrors.Errorf("bad hex color #%s: %v", h, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// hexColor returns the RRGGBB form used by spreadsheets.
func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return strings.ToUpper(strconv.FormatUint(uint64(n.R)<<16|uint64(n.G)<<8|uint64(n.B)|1<<24, 16)[1:])
}

func seriesColors(series []Series) ([]color.Color, error) {
	colors := make([]color.Color, len(series))
	for i, s := range series {
		if s.Color == "" {
			colors[i] = plotutil.Color(i)
			continue
		}
		c, err := ParseColor(s.Color)
		if err != nil {
			return nil, newRenderError("color of "+strconv.Quote(s.Label), err)
		}
		colors[i] = c
	}
	return colors, nil
}
