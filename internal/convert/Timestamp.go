package convert

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/gruppe-adler/asc2json/internal/failure"
)

// Timestamp returns the epoch seconds given by unixTime or isoTime, or now
// if both are empty. UNIX times are decimal. ISO times without a zone are
// read as local time.
func Timestamp(unixTime, isoTime string, now func() time.Time) (int64, error) {
	switch {
	case unixTime != "":
		ts, err := strconv.ParseInt(strings.TrimSpace(unixTime), 10, 64)
		if err != nil {
			return 0, failure.Convert(err, "invalid UNIX time %q", unixTime)
		}
		return ts, nil
	case isoTime != "":
		t, err := cast.ToTimeInDefaultLocationE(isoTime, time.Local)
		if err != nil {
			return 0, failure.Convert(err, "invalid ISO time %q", isoTime)
		}
		return t.Unix(), nil
	}
	return now().Unix(), nil
}
