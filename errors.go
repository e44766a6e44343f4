package numeric

import "errors"

// ErrEmptyInput indicates the input contained nothing but whitespace.
var ErrEmptyInput = errors.New("numeric: empty input")

// ErrNoDigits indicates no digits survived once symbols and labels were stripped
var ErrNoDigits = errors.New("numeric: no digits in input")
