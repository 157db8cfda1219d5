package namedcolor

import "errors"

var (
	// ErrMalformedHex is returned when a color code is not three hex bytes.
	ErrMalformedHex = errors.New("malformed hex color")
	// ErrChannelRange is returned for channel values outside [0,256].
	ErrChannelRange = errors.New("channel out of range")
	// ErrMalformedChannel is returned when channels given as text are not
	// three decimal integers.
	ErrMalformedChannel = errors.New("malformed channel value")
	// ErrEmptyPalette rejects building a table without any named color.
	ErrEmptyPalette = errors.New("empty palette")
	// ErrCapacity rejects a bucket capacity below one.
	ErrCapacity = errors.New("bucket capacity must be at least 1")
	// ErrUnknownLocale is returned when no palette exists for a locale.
	ErrUnknownLocale = errors.New("no palette for locale")
	// ErrBrokenPartition signals that no bucket contains a point. It is
	// only ever raised through a panic.
	ErrBrokenPartition = errors.New("bucket partition broken")
)
