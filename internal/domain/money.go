package domain

import "strconv"

// FormatPrice renders a whole-krona amount the Swedish way, with a thin
// space as thousands separator: 1097 -> "1 097 kr".
func FormatPrice(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, d)
	}

	s := string(out)
	if negative {
		s = "-" + s
	}
	return s + " kr"
}
