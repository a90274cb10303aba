// Package rowstore provides access to the tabular sheet store backing the
// application: named tables whose first row holds column names, addressed by
// 1-indexed row numbers that include the header (row 2 is the first data
// row). Deleting a row shifts all later rows up by one, so callers deleting
// in batches must work from the highest row number down.
package rowstore

import "context"

// Table names in the backing store.
const (
	TableUsers             = "Users"
	TableCustomers         = "Customers"
	TableSubscriptionTypes = "SubscriptionTypes"
	TableSubscriptions     = "Subscriptions"
)

// Headers holds the column order of each table.
var Headers = map[string][]string{
	TableUsers:             {"id", "email", "password", "role", "name", "createdAt"},
	TableCustomers:         {"id", "name", "email", "phone", "createdAt"},
	TableSubscriptionTypes: {"id", "name", "visits", "createdAt"},
	TableSubscriptions:     {"id", "customerId", "name", "totalVisits", "usedVisits", "visitDates", "visitNotes", "createdAt"},
}

// Record is one data row keyed by column name. Missing cells read as empty
// strings; all values are stored as text.
type Record map[string]string

// Store is the row store contract. Any transport or storage error propagates
// to the caller as-is; there are no retries.
type Store interface {
	// GetAll reads the full table and maps each data row into a Record keyed
	// by the header row. An empty table yields an empty slice.
	GetAll(ctx context.Context, table string) ([]Record, error)

	// Append adds records at the end of the table, writing each record's
	// values in the column order of the current header row.
	Append(ctx context.Context, table string, records []Record) error

	// UpdateRow rewrites one row's full contents aligned to the current
	// header order. rowNumber is 1-indexed and includes the header row.
	UpdateRow(ctx context.Context, table string, rowNumber int, rec Record) error

	// DeleteRow removes the row at rowNumber, shifting later rows up by one.
	DeleteRow(ctx context.Context, table string, rowNumber int) error
}

// recordValues orders a record's values by the given headers, substituting
// empty strings for missing columns.
func recordValues(headers []string, rec Record) []string {
	values := make([]string, len(headers))
	for i, h := range headers {
		values[i] = rec[h]
	}
	return values
}

// rowRecord maps one raw row onto the given headers.
func rowRecord(headers []string, row []string) Record {
	rec := make(Record, len(headers))
	for i, h := range headers {
		if i < len(row) {
			rec[h] = row[i]
		} else {
			rec[h] = ""
		}
	}
	return rec
}
