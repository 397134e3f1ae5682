package scheme

import "errors"

// Error vocabulary of a generation run. Every failure wraps one of these and
// aborts the run; there is no partial scheme and nothing is retried.
var (
	// ErrNoColors reports that quantization or an anchor search found
	// nothing usable in the image.
	ErrNoColors = errors.New("no colors")

	// ErrGenerateColors reports a failed slot or color construction.
	ErrGenerateColors = errors.New("generate colors")

	// ErrUnsupportedSchemeVariant reports a parseable but ungenerable
	// variant, such as auto.
	ErrUnsupportedSchemeVariant = errors.New("unsupported scheme variant")
)
