package solution

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// wireArtifact is the JSON-serializable shape of an Artifact.
type wireArtifact struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Steps  int     `json:"steps"`
	Grid   [][][]int `json:"grid"`
}

// SaveJSON writes artifact to w as JSON, losslessly reloadable via
// LoadJSON (spec.md §6).
func SaveJSON(w io.Writer, artifact Artifact) error {
	enc := json.NewEncoder(w)
	return enc.Encode(wireArtifact{
		Width:  artifact.Width,
		Height: artifact.Height,
		Steps:  artifact.Steps,
		Grid:   artifact.Grid,
	})
}

// LoadJSON reads an Artifact previously written by SaveJSON.
func LoadJSON(r io.Reader) (Artifact, error) {
	var w wireArtifact
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return Artifact{}, fmt.Errorf("solution: decode artifact: %w", err)
	}
	return Artifact{Width: w.Width, Height: w.Height, Steps: w.Steps, Grid: w.Grid}, nil
}

// FileSink persists each artifact to "<dir>/w<width>.json", overwriting
// any prior file for that width (each width is only ever improved once,
// since spec.md §4.G's upper bound only decreases).
type FileSink struct {
	Dir string
}

// Put implements Sink by writing artifact to a fresh temp file and
// renaming it into place, so a reader never observes a partially written
// artifact (spec.md §5 "written atomically per update").
func (f FileSink) Put(width int, artifact Artifact) error {
	path := fmt.Sprintf("%s/w%d.json", f.Dir, width)
	tmp := path + ".tmp"

	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("solution: create artifact file: %w", err)
	}
	if err := SaveJSON(file, artifact); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("solution: close artifact file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("solution: rename artifact file: %w", err)
	}
	return nil
}

// MemorySink keeps every Put in memory, keyed by width, for tests and for
// callers that want the final solution without touching disk.
type MemorySink struct {
	ByWidth map[int]Artifact
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{ByWidth: make(map[int]Artifact)}
}

// Put implements Sink.
func (m *MemorySink) Put(width int, artifact Artifact) error {
	m.ByWidth[width] = artifact
	return nil
}
