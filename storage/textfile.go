package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"hotel-frontdesk/models"
)

const (
	CustomersFileName = "customers.txt"
	RoomsFileName     = "rooms.txt"
)

// CustomerFile keeps the customer collection in a line-oriented text file.
type CustomerFile struct {
	Path string
}

func NewCustomerFile(dataDir string) *CustomerFile {
	return &CustomerFile{Path: filepath.Join(dataDir, CustomersFileName)}
}

// LoadCustomers reads every decodable line. A missing file is an empty
// collection; malformed lines are logged and skipped.
func (f *CustomerFile) LoadCustomers() ([]models.Customer, error) {
	lines, err := readLines(f.Path)
	if err != nil {
		return nil, err
	}

	customers := make([]models.Customer, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := DecodeCustomer(line)
		if err != nil {
			log.Printf("⚠️ %s:%d skipped: %v", f.Path, i+1, err)
			continue
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (f *CustomerFile) SaveCustomers(customers []models.Customer) error {
	lines := make([]string, len(customers))
	for i, c := range customers {
		lines[i] = EncodeCustomer(c)
	}
	return writeLines(f.Path, lines)
}

// RoomFile keeps the room inventory in a line-oriented text file.
type RoomFile struct {
	Path string
}

func NewRoomFile(dataDir string) *RoomFile {
	return &RoomFile{Path: filepath.Join(dataDir, RoomsFileName)}
}

// RoomsExist reports whether the room file is present, empty or not.
func (f *RoomFile) RoomsExist() (bool, error) {
	_, err := os.Stat(f.Path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", f.Path, err)
	}
}

func (f *RoomFile) LoadRooms() ([]models.Room, error) {
	lines, err := readLines(f.Path)
	if err != nil {
		return nil, err
	}

	rooms := make([]models.Room, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := DecodeRoom(line)
		if err != nil {
			log.Printf("⚠️ %s:%d skipped: %v", f.Path, i+1, err)
			continue
		}
		rooms = append(rooms, r)
	}
	return rooms, nil
}

func (f *RoomFile) SaveRooms(rooms []models.Room) error {
	lines := make([]string, len(rooms))
	for i, r := range rooms {
		lines[i] = EncodeRoom(r)
	}
	return writeLines(f.Path, lines)
}

// readLines returns nil for a missing file.
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// writeLines replaces the whole file. The content goes to a temporary file
// in the same directory first and is renamed over the target, so a failed
// write leaves the previous content intact.
func writeLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := bufio.NewWriter(tmp)
	for i, line := range lines {
		if strings.ContainsAny(line, "\r\n") {
			tmp.Close()
			return fmt.Errorf("%w: record %d of %s contains a line break", ErrMalformedLine, i+1, path)
		}
		if _, err := w.WriteString(line + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
