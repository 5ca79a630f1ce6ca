package helper

import (
	"fmt"
	"math"
	"strings"
)

// Round2 membulatkan nominal EUR ke 2 desimal (sen).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatEUR merender nominal gaya de-DE: 1.234,56 €
func FormatEUR(v float64) string {
	neg := v < 0
	cents := int64(math.Round(math.Abs(v) * 100))
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	pre := len(digits) % 3
	if pre > 0 {
		b.WriteString(digits[:pre])
		if len(digits) > pre {
			b.WriteString(".")
		}
	}
	for i := pre; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(".")
		}
	}

	out := fmt.Sprintf("%s,%02d €", b.String(), frac)
	if neg {
		return "-" + out
	}
	return out
}
