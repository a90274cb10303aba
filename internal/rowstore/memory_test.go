package rowstore_test

import (
	"context"
	"testing"

	"github.com/ankush0407/salon-backend/internal/rowstore"
)

func TestMemory_GetAllEmptyTable(t *testing.T) {
	store := rowstore.NewMemory()
	ctx := context.Background()

	records, err := store.GetAll(ctx, rowstore.TableCustomers)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected 0 records, got %d", len(records))
	}
}

func TestMemory_UnknownTable(t *testing.T) {
	store := rowstore.NewMemory()
	ctx := context.Background()

	if _, err := store.GetAll(ctx, "Nope"); err == nil {
		t.Error("Expected error for unknown table")
	}
	if err := store.Append(ctx, "Nope", []rowstore.Record{{"id": "1"}}); err == nil {
		t.Error("Expected error for unknown table")
	}
}

func TestMemory_AppendAndReadBack(t *testing.T) {
	store := rowstore.NewMemory()
	ctx := context.Background()

	recs := []rowstore.Record{
		{"id": "1", "name": "Asha", "email": "asha@example.com", "phone": "111", "createdAt": "2024-01-01T00:00:00Z"},
		{"id": "2", "name": "Binod", "email": "binod@example.com", "phone": "222", "createdAt": "2024-01-02T00:00:00Z"},
	}
	if err := store.Append(ctx, rowstore.TableCustomers, recs); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	records, err := store.GetAll(ctx, rowstore.TableCustomers)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0]["name"] != "Asha" || records[1]["phone"] != "222" {
		t.Errorf("Unexpected records: %v", records)
	}
}

func TestMemory_MissingCellsReadEmpty(t *testing.T) {
	store := rowstore.NewMemory()
	ctx := context.Background()

	// Record without phone or createdAt
	if err := store.Append(ctx, rowstore.TableCustomers, []rowstore.Record{{"id": "1", "name": "Asha"}}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	records, _ := store.GetAll(ctx, rowstore.TableCustomers)
	if records[0]["phone"] != "" {
		t.Errorf("Expected empty phone, got %q", records[0]["phone"])
	}
	if records[0]["email"] != "" {
		t.Errorf("Expected empty email, got %q", records[0]["email"])
	}
}

func TestMemory_UpdateRow(t *testing.T) {
	store := rowstore.NewMemory()
	ctx := context.Background()

	store.Append(ctx, rowstore.TableCustomers, []rowstore.Record{
		{"id": "1", "name": "Asha"},
		{"id": "2", "name": "Binod"},
	})

	// Row 3 is the second data row
	err := store.UpdateRow(ctx, rowstore.TableCustomers, 3, rowstore.Record{"id": "2", "name": "Binod K", "phone": "333"})
	if err != nil {
		t.Fatalf("UpdateRow failed: %v", err)
	}

	records, _ := store.GetAll(ctx, rowstore.TableCustomers)
	if records[1]["name"] != "Binod K" || records[1]["phone"] != "333" {
		t.Errorf("Update not applied: %v", records[1])
	}
	if records[0]["name"] != "Asha" {
		t.Errorf("Unrelated row changed: %v", records[0])
	}
}

func TestMemory_UpdateRowOutOfRange(t *testing.T) {
	store := rowstore.NewMemory()
	ctx := context.Background()

	if err := store.UpdateRow(ctx, rowstore.TableCustomers, 2, rowstore.Record{"id": "1"}); err == nil {
		t.Error("Expected error updating past end of table")
	}
	if err := store.UpdateRow(ctx, rowstore.TableCustomers, 1, rowstore.Record{"id": "1"}); err == nil {
		t.Error("Expected error updating the header row")
	}
}

func TestMemory_DeleteRowShiftsLaterRows(t *testing.T) {
	store := rowstore.NewMemory()
	ctx := context.Background()

	store.Append(ctx, rowstore.TableCustomers, []rowstore.Record{
		{"id": "1", "name": "Asha"},
		{"id": "2", "name": "Binod"},
		{"id": "3", "name": "Chitra"},
	})

	if err := store.DeleteRow(ctx, rowstore.TableCustomers, 3); err != nil {
		t.Fatalf("DeleteRow failed: %v", err)
	}

	records, _ := store.GetAll(ctx, rowstore.TableCustomers)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0]["id"] != "1" || records[1]["id"] != "3" {
		t.Errorf("Unexpected records after delete: %v", records)
	}

	// The former row 4 is now row 3
	if err := store.DeleteRow(ctx, rowstore.TableCustomers, 3); err != nil {
		t.Fatalf("DeleteRow after shift failed: %v", err)
	}
	records, _ = store.GetAll(ctx, rowstore.TableCustomers)
	if len(records) != 1 || records[0]["id"] != "1" {
		t.Errorf("Unexpected records after second delete: %v", records)
	}
}
