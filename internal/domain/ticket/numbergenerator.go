package ticket

import (
	"regexp"
	"time"
)

// NumberPrefix starts every ticket number: TKT-<YYYYMMDD>-<8 uppercase hex>.
const NumberPrefix = "TKT"

var numberPattern = regexp.MustCompile(`^TKT-\d{8}-[0-9A-F]{8}$`)

type NumberGenerator interface {
	Generate(now time.Time) string
}

func ValidNumber(number string) bool {
	return numberPattern.MatchString(number)
}
