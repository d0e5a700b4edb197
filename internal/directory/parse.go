package directory

import "strconv"

// ParseFee extracts the numeric amount from a fee descriptor such as "₹500"
// by discarding every non-digit. It returns 0 when no digits are present or
// the number does not fit in an int64.
func ParseFee(fees string) int64 {
	digits := make([]byte, 0, len(fees))
	for i := 0; i < len(fees); i++ {
		if isDigit(fees[i]) {
			digits = append(digits, fees[i])
		}
	}
	return parseDigits(digits)
}

// ParseExperience returns the first run of digits in an experience descriptor
// such as "13 Years of experience", or 0 when there is none.
func ParseExperience(experience string) int64 {
	start := -1
	for i := 0; i < len(experience); i++ {
		if isDigit(experience[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return parseDigits([]byte(experience[start:i]))
		}
	}
	if start < 0 {
		return 0
	}
	return parseDigits([]byte(experience[start:]))
}

func parseDigits(digits []byte) int64 {
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
