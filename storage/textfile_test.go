package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"hotel-frontdesk/models"
)

func TestCustomerFileMissingIsEmpty(t *testing.T) {
	f := NewCustomerFile(t.TempDir())
	got, err := f.LoadCustomers()
	if err != nil {
		t.Fatalf("LoadCustomers: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no customers, got %v", got)
	}
}

func TestCustomerFileRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	f := NewCustomerFile(dir)

	want := []models.Customer{
		{ID: 1, Name: "Alice", Contact: "555-1234", Email: "alice@x.com"},
		{ID: 5, Name: "Bob", Contact: "555-9999"},
	}
	if err := f.SaveCustomers(want); err != nil {
		t.Fatalf("SaveCustomers: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, CustomersFileName))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(raw) != "1,Alice,555-1234,alice@x.com\n5,Bob,555-9999,\n" {
		t.Fatalf("unexpected file content %q", raw)
	}

	got, err := f.LoadCustomers()
	if err != nil {
		t.Fatalf("LoadCustomers: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestCustomerFileSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	content := "1,Alice,555,a@x\n\ngarbage\n2,Smith, John,555,j@x\n3,Carol,777,\n"
	if err := os.WriteFile(filepath.Join(dir, CustomersFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewCustomerFile(dir).LoadCustomers()
	if err != nil {
		t.Fatalf("LoadCustomers: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("expected customers 1 and 3, got %+v", got)
	}
}

func TestRoomFileExistsAndRoundTrip(t *testing.T) {
	f := NewRoomFile(t.TempDir())

	exists, err := f.RoomsExist()
	if err != nil || exists {
		t.Fatalf("RoomsExist on fresh dir = %t, %v", exists, err)
	}

	want := []models.Room{
		{Number: 2, Type: "Single"},
		{Number: 1, Type: "Suite", Occupied: true, CustomerID: intPtr(4)},
	}
	if err := f.SaveRooms(want); err != nil {
		t.Fatalf("SaveRooms: %v", err)
	}

	exists, err = f.RoomsExist()
	if err != nil || !exists {
		t.Fatalf("RoomsExist after save = %t, %v", exists, err)
	}

	got, err := f.LoadRooms()
	if err != nil {
		t.Fatalf("LoadRooms: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestRoomFileEmptyStillExists(t *testing.T) {
	f := NewRoomFile(t.TempDir())
	if err := f.SaveRooms(nil); err != nil {
		t.Fatalf("SaveRooms: %v", err)
	}
	exists, err := f.RoomsExist()
	if err != nil || !exists {
		t.Fatalf("empty room file should exist, got %t, %v", exists, err)
	}
	rooms, err := f.LoadRooms()
	if err != nil || len(rooms) != 0 {
		t.Fatalf("LoadRooms = %v, %v", rooms, err)
	}
}

func TestWriteLinesLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	f := NewCustomerFile(dir)
	for i := 0; i < 3; i++ {
		if err := f.SaveCustomers([]models.Customer{{ID: i + 1, Name: "A", Contact: "1"}}); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != CustomersFileName {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("unexpected files in data dir: %v", names)
	}
}

func TestSaveRejectsLineBreaksAndKeepsFile(t *testing.T) {
	dir := t.TempDir()
	f := NewCustomerFile(dir)
	if err := f.SaveCustomers([]models.Customer{{ID: 1, Name: "Alice", Contact: "555"}}); err != nil {
		t.Fatal(err)
	}

	forged := []models.Customer{
		{ID: 1, Name: "Alice", Contact: "555"},
		{ID: 2, Name: "Eve", Contact: "555\n99,Mallory,1"},
	}
	if err := f.SaveCustomers(forged); !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("SaveCustomers error = %v, want ErrMalformedLine", err)
	}

	got, err := f.LoadCustomers()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Alice" {
		t.Fatalf("file changed after rejected save: %+v", got)
	}
}

func TestSavedFilesAreWorldReadable(t *testing.T) {
	dir := t.TempDir()
	if err := NewRoomFile(dir).SaveRooms([]models.Room{{Number: 1, Type: "Single"}}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Join(dir, RoomsFileName))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o644 {
		t.Fatalf("mode = %o, want 644", perm)
	}
}
