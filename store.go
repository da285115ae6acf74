package kakeibo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Store reads and writes the items of a single ledger file.
//
// Every operation loads the whole file and every mutation rewrites it
// entirely: the new content goes to a temporary file in the same directory
// that is then renamed over the ledger.
type Store struct {
	path string

	// Now returns the current time. It defaults to time.Now.
	Now func() time.Time
}

// NewStore returns a Store bound to the ledger file at path.
func NewStore(path string) *Store {
	return &Store{path: path, Now: time.Now}
}

// Path returns the ledger file path.
func (s *Store) Path() string { return s.path }

// Load returns all the items in the ledger file.
// An empty file holds no items, a missing file is an error wrapping fs.ErrNotExist.
func (s *Store) Load() ([]Item, error) {
	return s.load(os.O_RDONLY)
}

// loadWritable is like Load but fails when the ledger cannot be opened for read and write.
func (s *Store) loadWritable() ([]Item, error) {
	return s.load(os.O_RDWR)
}

func (s *Store) load(flag int) ([]Item, error) {
	f, err := os.OpenFile(s.path, flag, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	items, err := DecodeItems(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", s.path, err)
	}
	slog.Debug("ledger loaded", "path", s.path, "items", len(items))
	return items, nil
}

// loadOrEmpty is like loadWritable but a missing file holds no items.
func (s *Store) loadOrEmpty() ([]Item, error) {
	items, err := s.loadWritable()
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("ledger does not exist, starting empty", "path", s.path)
		return []Item{}, nil
	}
	return items, err
}

// Append adds a new item to the ledger, creating the file if needed, and returns it.
// The new item gets an id one above the highest id in the ledger.
func (s *Store) Append(label string, amount uint64, description string) (Item, error) {
	items, err := s.loadOrEmpty()
	if err != nil {
		return Item{}, err
	}

	now := At(s.Now())
	item := Item{
		ID:          nextID(items),
		Label:       label,
		Amount:      amount,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	items = append(items, item)

	if err := s.save(items); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Remove deletes the item with the given id and returns it.
// It fails with ErrInvalidID if id is zero or not in the ledger.
func (s *Store) Remove(id uint) (Item, error) {
	items, err := s.loadWritable()
	if err != nil {
		return Item{}, err
	}

	i := indexOf(items, id)
	if i < 0 {
		return Item{}, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	removed := items[i]
	items = append(items[:i], items[i+1:]...)

	if err := s.save(items); err != nil {
		return Item{}, err
	}
	return removed, nil
}

// Update replaces the label, amount and description of the item with the given id,
// and refreshes its update time. The id and the creation time are kept.
//
// If no item has that id, the ledger is rewritten unchanged and found is false.
func (s *Store) Update(id uint, label string, amount uint64, description string) (item Item, found bool, err error) {
	items, err := s.loadWritable()
	if err != nil {
		return Item{}, false, err
	}

	now := At(s.Now())
	for i, it := range items {
		if it.ID != id {
			continue
		}
		items[i] = Item{
			ID:          it.ID,
			Label:       label,
			Amount:      amount,
			Description: description,
			CreatedAt:   it.CreatedAt,
			UpdatedAt:   now,
		}
		if !found {
			item, found = items[i], true
		}
	}

	if err := s.save(items); err != nil {
		return Item{}, false, err
	}
	return item, found, nil
}

// Find returns the item with the given id, or ErrNotFound.
func (s *Store) Find(id uint) (Item, error) {
	items, err := s.Load()
	if err != nil {
		return Item{}, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return Item{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return items[i], nil
}

// save atomically replaces the ledger file with items.
func (s *Store) save(items []Item) (err error) {
	mode := fs.FileMode(0o644)
	if info, statErr := os.Stat(s.path); statErr == nil {
		mode = info.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err := EncodeItems(f, items); err != nil {
		f.Close()
		return fmt.Errorf("could not encode %q: %w", s.path, err)
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return err
	}
	slog.Debug("ledger written", "path", s.path, "items", len(items))
	return nil
}

// DecodeItems decodes a JSON array of items. Empty or blank content holds no items.
func DecodeItems(r io.Reader) ([]Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []Item{}, nil
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		// "null" content.
		items = []Item{}
	}
	return items, nil
}

// EncodeItems writes items as a JSON array, one item per line.
func EncodeItems(w io.Writer, items []Item) error {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, it := range items {
		b, err := json.Marshal(it)
		if err != nil {
			return err
		}
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
		buf.Write(b)
	}
	if len(items) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func nextID(items []Item) uint {
	var highest uint
	for _, it := range items {
		if it.ID > highest {
			highest = it.ID
		}
	}
	return highest + 1
}

// indexOf returns the position of the first item with the given id, or -1.
// Zero is never a valid id.
func indexOf(items []Item, id uint) int {
	if id == 0 {
		return -1
	}
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
