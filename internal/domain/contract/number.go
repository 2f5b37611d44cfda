package contract

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	numberPrefix = "CON"
	MaxSequence  = 9999
)

type Number string

func (n Number) String() string { return string(n) }

// NumberPrefix is the LIKE-able prefix shared by every number issued in year.
func NumberPrefix(year int) string {
	return fmt.Sprintf("%s-%d-", numberPrefix, year)
}

func FormatNumber(year, seq int) (Number, error) {
	if seq < 1 {
		return "", ErrInvalidNumber
	}
	if seq > MaxSequence {
		return "", ErrIdentifierExhausted
	}
	return Number(fmt.Sprintf("%s%04d", NumberPrefix(year), seq)), nil
}

// NextNumber follows lastSeq, the highest sequence already issued for year (0 if none).
func NextNumber(year, lastSeq int) (Number, error) {
	if lastSeq < 0 {
		return "", ErrInvalidNumber
	}
	return FormatNumber(year, lastSeq+1)
}

func ParseNumber(s string) (year, seq int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != numberPrefix || len(parts[2]) != 4 {
		return 0, 0, ErrInvalidNumber
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, ErrInvalidNumber
	}
	seq, err = strconv.Atoi(parts[2])
	if err != nil || seq < 1 {
		return 0, 0, ErrInvalidNumber
	}
	return year, seq, nil
}
