// Package transcript archives invocation outcomes on disk so graders
// can audit what the tool printed after the queue messages are gone.
// Transcripts are JSON, zstd-compressed, one file per invocation uuid.
package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Transcript struct {
	InvUuid string   `json:"inv_uuid"`
	Name    string   `json:"name"`
	Path    string   `json:"path,omitempty"`
	Args    []string `json:"args"`

	StartedAt time.Time `json:"started_at"`

	// Outcome mirrors the gateway taxonomy: success, nonzero_exit,
	// timeout or tool_not_found.
	Outcome  string `json:"outcome"`
	ExitCode int    `json:"exit_code"`

	Stdout string `json:"stdout,omitempty"`
	Stderr string `json:"stderr,omitempty"`

	WallMillis int64 `json:"wall_ms"`
}

type Store struct {
	dir string
	tmp string
}

// NewStore creates the transcript directory if needed. DefaultDir
// places it under the user cache directory.
func NewStore(dir string) (*Store, error) {
	s := &Store{
		dir: dir,
		tmp: filepath.Join(dir, "tmp"),
	}
	if err := os.MkdirAll(s.tmp, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create transcript directory: %w", err)
	}
	return s, nil
}

func DefaultDir() string {
	cache, err := os.UserCacheDir()
	if err != nil {
		cache = os.TempDir()
	}
	return filepath.Join(cache, "titod", "transcripts")
}

// Save writes the transcript atomically: compress into the tmp
// directory first, then rename into place.
func (s *Store) Save(t Transcript) error {
	b, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	tmpPath := filepath.Join(s.tmp, t.InvUuid+".json.zst")
	if err := writeCompressed(tmpPath, b); err != nil {
		return err
	}

	finalPath := filepath.Join(s.dir, t.InvUuid+".json.zst")
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return fmt.Errorf("failed to move transcript into place: %w", err)
	}
	return nil
}

// Load reads a previously saved transcript by invocation uuid.
func (s *Store) Load(invUuid string) (*Transcript, error) {
	b, err := readCompressed(filepath.Join(s.dir, invUuid+".json.zst"))
	if err != nil {
		return nil, err
	}
	var t Transcript
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transcript %s: %w", invUuid, err)
	}
	return &t, nil
}
