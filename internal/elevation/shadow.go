package elevation

import (
	"fmt"
	"strconv"
	"strings"
)

// Shadow is one resolved box shadow. Offsets are signed; blur and spread are
// magnitudes.
type Shadow struct {
	BlurPx    float64
	SpreadPx  float64
	OffsetXPx float64
	OffsetYPx float64
	ColorHex  string
	Alpha     float64
}

// IsZero reports whether the shadow is the flat level-0 baseline.
func (s Shadow) IsZero() bool {
	return s == Shadow{}
}

// CSS renders the shadow as a box-shadow value, for example
// "0px 4px 8px 0px rgba(17, 24, 39, 0.16)".
func (s Shadow) CSS() string {
	if s.IsZero() {
		return "none"
	}
	r, g, b := splitHex(s.ColorHex)
	return fmt.Sprintf("%spx %spx %spx %spx rgba(%d, %d, %d, %s)",
		formatPx(s.OffsetXPx), formatPx(s.OffsetYPx), formatPx(s.BlurPx), formatPx(s.SpreadPx),
		r, g, b, strconv.FormatFloat(s.Alpha, 'f', -1, 64))
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// splitHex decodes a #rgb or #rrggbb color. Unparseable input yields black,
// which keeps shadow rendering total.
func splitHex(hexColor string) (int, int, int) {
	hexColor = strings.TrimPrefix(hexColor, "#")
	if len(hexColor) == 3 {
		hexColor = string([]byte{
			hexColor[0], hexColor[0],
			hexColor[1], hexColor[1],
			hexColor[2], hexColor[2],
		})
	}
	if len(hexColor) != 6 {
		return 0, 0, 0
	}
	value, err := strconv.ParseUint(hexColor, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(value >> 16), int(value >> 8 & 0xff), int(value & 0xff)
}
