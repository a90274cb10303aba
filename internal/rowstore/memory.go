package rowstore

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Store used in development and tests. Tables are
// seeded with the standard header rows on creation.
type Memory struct {
	mu     sync.RWMutex
	tables map[string][][]string
}

// NewMemory creates an in-memory store with all standard tables present and
// empty.
func NewMemory() *Memory {
	tables := make(map[string][][]string, len(Headers))
	for name, headers := range Headers {
		tables[name] = [][]string{append([]string(nil), headers...)}
	}
	return &Memory{tables: tables}
}

// GetAll implements Store.
func (m *Memory) GetAll(ctx context.Context, table string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows, ok := m.tables[table]
	if !ok {
		return nil, fmt.Errorf("table %s not found", table)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	headers := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, rowRecord(headers, row))
	}
	return records, nil
}

// Append implements Store.
func (m *Memory) Append(ctx context.Context, table string, records []Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.tables[table]
	if !ok {
		return fmt.Errorf("table %s not found", table)
	}
	headers := rows[0]
	for _, rec := range records {
		rows = append(rows, recordValues(headers, rec))
	}
	m.tables[table] = rows
	return nil
}

// UpdateRow implements Store.
func (m *Memory) UpdateRow(ctx context.Context, table string, rowNumber int, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.tables[table]
	if !ok {
		return fmt.Errorf("table %s not found", table)
	}
	if rowNumber < 2 || rowNumber > len(rows) {
		return fmt.Errorf("table %s has no row %d", table, rowNumber)
	}
	rows[rowNumber-1] = recordValues(rows[0], rec)
	return nil
}

// DeleteRow implements Store.
func (m *Memory) DeleteRow(ctx context.Context, table string, rowNumber int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.tables[table]
	if !ok {
		return fmt.Errorf("table %s not found", table)
	}
	if rowNumber < 2 || rowNumber > len(rows) {
		return fmt.Errorf("table %s has no row %d", table, rowNumber)
	}
	m.tables[table] = append(rows[:rowNumber-1], rows[rowNumber:]...)
	return nil
}
