package models

import (
	"strconv"
	"time"
)

// NewID generates a record id from the current timestamp, as the sheet data
// has always been keyed (millisecond epoch strings).
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Timestamp returns the createdAt value for a new record.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
