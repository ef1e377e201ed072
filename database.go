package pricedb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Database is the content of a price database file, one entry per line.
//
// Price lines and other lines are kept together, in file order.
type Database struct {
	Lines []string
}

// DecodeDatabase reads a database from r.
func DecodeDatabase(r io.Reader) (*Database, error) {
	db := new(Database)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		db.Lines = append(db.Lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read price database: %w", err)
	}
	return db, nil
}

// EncodeDatabase writes every line of db to w, each terminated by a newline.
func EncodeDatabase(w io.Writer, db *Database) error {
	bw := bufio.NewWriter(w)
	for _, line := range db.Lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadDatabase reads the database file at path. A missing file is an empty database.
func ReadDatabase(path string) (*Database, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return new(Database), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open price database: %w", err)
	}
	defer f.Close()
	return DecodeDatabase(f)
}

// WriteDatabase overwrites the database file at path.
func WriteDatabase(path string, db *Database) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open price database %q for writing: %w", path, err)
	}
	if err := EncodeDatabase(f, db); err != nil {
		f.Close()
		return fmt.Errorf("could not write price database %q: %w", path, err)
	}
	return f.Close()
}

// CheckWritable returns an error if the database at path could not be written.
//
// The file itself is left untouched.
func CheckWritable(path string) error {
	if path == "" {
		return ErrNoDatabasePath
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("price database directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("price database directory %q is not a directory", dir)
	}
	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		// probe the directory instead
		f, err := os.CreateTemp(dir, ".pricedb-*")
		if err != nil {
			return fmt.Errorf("price database %q is not writable: %w", path, err)
		}
		f.Close()
		return os.Remove(f.Name())
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("price database %q is not writable: %w", path, err)
	}
	return f.Close()
}
