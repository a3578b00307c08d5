package transcript

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Ensure FileSource implements Fetcher at compile time.
var _ Fetcher = (*FileSource)(nil)

// FileSource reads a transcript that another process keeps writing to disk.
//
// Plain text files hold one pre-wrapped line per row, with blank rows
// separating sentences. Files ending in .yaml or .yml hold a Transcript
// document.
type FileSource struct {
	path        string
	tail        int
	blinkCursor bool
}

// NewFileSource builds a FileSource. tail limits how many sentences are kept;
// blinkCursor is reported for formats that cannot carry the flag themselves.
func NewFileSource(path string, tail int, blinkCursor bool) *FileSource {
	return &FileSource{path: path, tail: tail, blinkCursor: blinkCursor}
}

// FetchTranscript reads the file. A missing file is an empty transcript.
func (f *FileSource) FetchTranscript(ctx context.Context) (Transcript, error) {
	if err := ctx.Err(); err != nil {
		return Transcript{}, err
	}
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Transcript{BlinkCursor: f.blinkCursor}, nil
		}
		return Transcript{}, fmt.Errorf("open transcript: %w", err)
	}
	defer file.Close()

	if isYAML(f.path) {
		return readYAML(file, f.tail, f.blinkCursor)
	}
	sentences, err := ReadSentences(file, f.tail)
	if err != nil {
		return Transcript{}, err
	}
	return Transcript{Sentences: sentences, BlinkCursor: f.blinkCursor}, nil
}

// ReadSentences parses blank-line separated sentences and returns at most
// maxSentences from the end. Non-positive maxSentences returns them all.
func ReadSentences(r io.Reader, maxSentences int) ([][]string, error) {
	var ring [][]string
	if maxSentences > 0 {
		ring = make([][]string, maxSentences)
	}
	var all [][]string
	count := 0
	idx := 0
	push := func(s []string) {
		if maxSentences <= 0 {
			all = append(all, s)
			return
		}
		ring[idx] = s
		idx = (idx + 1) % maxSentences
		if count < maxSentences {
			count++
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var current []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				push(current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	if len(current) > 0 {
		push(current)
	}

	if maxSentences <= 0 {
		return all, nil
	}
	sentences := make([][]string, count)
	if count == maxSentences {
		for i := 0; i < count; i++ {
			sentences[i] = ring[(idx+i)%maxSentences]
		}
	} else {
		copy(sentences, ring[:count])
	}
	return sentences, nil
}

func readYAML(r io.Reader, tail int, blinkCursor bool) (Transcript, error) {
	var raw struct {
		Sentences   [][]string `yaml:"sentences"`
		BlinkCursor *bool      `yaml:"blinkCursor"`
	}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Transcript{BlinkCursor: blinkCursor}, nil
		}
		return Transcript{}, fmt.Errorf("parse transcript: %w", err)
	}
	out := Transcript{Sentences: raw.Sentences, BlinkCursor: blinkCursor}
	if raw.BlinkCursor != nil {
		out.BlinkCursor = *raw.BlinkCursor
	}
	return out.Tail(tail), nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
