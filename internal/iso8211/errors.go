package iso8211

import "fmt"

// TruncatedRecordError reports that fewer bytes remained in the stream than
// a record's leader declared.
type TruncatedRecordError struct {
	Offset   int64
	Expected int
	Got      int
}

func (e *TruncatedRecordError) Error() string {
	return fmt.Sprintf("iso8211: truncated record at offset %d: expected %d bytes, got %d", e.Offset, e.Expected, e.Got)
}

// InvalidLeaderError reports a leader that failed its structural checks
// (bad length digits, unexpected leader identifier, bad size-of-* digits).
type InvalidLeaderError struct {
	Offset int64
	Reason string
}

func (e *InvalidLeaderError) Error() string {
	return fmt.Sprintf("iso8211: invalid leader at offset %d: %s", e.Offset, e.Reason)
}

// InvalidFormatError reports a format-controls string that did not parse
// under the grammar in DESIGN NOTES "format-string recursion".
type InvalidFormatError struct {
	Tag    string
	Format string
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("iso8211: invalid format controls for field %q (%q): %s", e.Tag, e.Format, e.Reason)
}

// UnknownFormatError reports a format letter this reader does not know how
// to decode.
type UnknownFormatError struct {
	Tag    string
	Letter byte
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("iso8211: unknown format control %q in field %q", string(e.Letter), e.Tag)
}
