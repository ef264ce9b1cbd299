package emit

import "go/format"

// Format pretty prints generated source. It fails on source that does not parse.
func Format(src []byte) ([]byte, error) {
	return format.Source(src)
}
