package pipeline

import (
	"strconv"
	"time"
)

// DisplayLayout is the on-image timestamp format (RFC 2822 with an unpadded day).
const DisplayLayout = "Mon, 2 Jan 2006 15:04:05 -0700"

// Timestamp is the capture instant of an accepted frame.
// Both the file name and the banner text are derived from the same value.
type Timestamp struct {
	Time time.Time
}

// NewTimestamp captures t in the local time zone.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Local()}
}

// UnixNano returns nanoseconds since the Unix epoch.
func (ts Timestamp) UnixNano() int64 {
	return ts.Time.UnixNano()
}

// Display returns the human readable form drawn onto the frame.
func (ts Timestamp) Display() string {
	return ts.Time.Format(DisplayLayout)
}

// FileStem returns the decimal nanosecond value used as the archive file name.
func (ts Timestamp) FileStem() string {
	return strconv.FormatInt(ts.UnixNano(), 10)
}
