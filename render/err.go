package render

import (
	"github.com/ezrec/regmap/translate"
)

var f = translate.From

// ErrFormat reports an unknown output format.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("output format '%v' unknown", string(err))
}
