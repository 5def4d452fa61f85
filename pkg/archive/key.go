package archive

import (
	"fmt"
	"strings"
	"time"
)

var (
	KeyPrefix = "logs/"
	KeyTime   = "2006-01-02_15-04-05"
)

// Key returns the storage key for a log group at the given time.
// Keys have second granularity so two batches for the same group stored
// within the same second share a key and the later write replaces the earlier.
func Key(group string, t time.Time) string {
	return fmt.Sprintf("%s%s_%s", KeyPrefix, strings.Replace(group, "/", "_", -1), t.UTC().Format(KeyTime))
}
