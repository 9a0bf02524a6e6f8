package recording

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// Full float precision: timestamps must survive a round trip untouched.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode reads a recording from its flat JSON form. Recordings written by
// older recorders carry no id; one is assigned here so the trajectory cache
// can key on it.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	dec := json.NewDecoder(r)
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode recording: %w", err)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return &rec, nil
}

// Encode writes the recording as JSON.
func Encode(w io.Writer, rec *Recording) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	return nil
}

// Load reads a recording from a file on disk.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording %q: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
