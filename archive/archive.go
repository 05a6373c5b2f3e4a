// Package archive caches decoded data next to its source file.
//
// Write stores a value in source+".bin", prefixed with the modification time
// of source in whole seconds. Read loads it back only when the cache exists,
// the source still exists, and the cache is at least as new as the source;
// otherwise it logs a warning and reports false so the caller can fall back
// to parsing the source.
package archive

import (
	"bufio"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gpures"
)

// Ext is appended to the source path to form the cache path.
const Ext = ".bin"

// Path returns the cache path for source.
func Path(source string) string {
	return source + Ext
}

func modTime(source string) (int64, error) {
	fi, err := os.Stat(source)
	if err != nil {
		return 0, err
	}
	return fi.ModTime().Unix(), nil
}

// Write encodes v into the cache of source. The source must exist.
func Write(source string, v any) (err error) {
	ts, err := modTime(source)
	if err != nil {
		return fmt.Errorf("archive: %w", err)
	}

	f, err := os.Create(Path(source))
	if err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("archive: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, ts); err != nil {
		return fmt.Errorf("archive: write timestamp: %w", err)
	}
	if err := gob.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("archive: encode: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	return nil
}

// Read decodes the cache of source into v. It returns false, without error,
// when the cache should not be used; decode failures of a fresh cache are
// returned as errors.
func Read(source string, v any) (bool, error) {
	bin := Path(source)

	f, err := os.Open(bin)
	if errors.Is(err, os.ErrNotExist) {
		gpures.Logger().Warn("archive: cache does not exist, falling back to source", "path", bin)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("archive: %w", err)
	}
	defer f.Close()

	ts, err := modTime(source)
	if err != nil {
		gpures.Logger().Warn("archive: source does not exist, ignoring cache", "path", bin, "err", err)
		return false, nil
	}

	r := bufio.NewReader(f)
	var cached int64
	if err := binary.Read(r, binary.LittleEndian, &cached); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			gpures.Logger().Warn("archive: cache truncated, falling back to source", "path", bin)
			return false, nil
		}
		return false, fmt.Errorf("archive: read timestamp: %w", err)
	}
	if cached < ts {
		gpures.Logger().Warn("archive: cache older than source, falling back to source",
			"path", bin, "cache", cached, "source", ts)
		return false, nil
	}

	if err := gob.NewDecoder(r).Decode(v); err != nil {
		return false, fmt.Errorf("archive: decode %s: %w", bin, err)
	}
	return true, nil
}
