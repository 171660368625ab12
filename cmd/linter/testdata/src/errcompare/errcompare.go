package errcompare

import (
	"errors"
	"io"
)

var ErrFull = errors.New("full")

var errQuiet = errors.New("quiet")

var ErrCount = 3

func check(err error) bool {
	if err == ErrFull { // want "compare with errors.Is instead of == against ErrFull"
		return true
	}
	if ErrFull != err { // want "compare with errors.Is instead of != against ErrFull"
		return false
	}
	if errors.Is(err, ErrFull) {
		return true
	}
	if err == nil || err == io.EOF || err == errQuiet {
		return false
	}
	return ErrCount == 3
}
