package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/reusee/tainote/notebooks"
)

// FileBuffer reads the current file content on every access, so edits
// between passes are always observed.
type FileBuffer struct {
	path string
}

func NewFileBuffer(path string) *FileBuffer {
	return &FileBuffer{path: path}
}

func (b *FileBuffer) Lines() ([]string, error) {
	content, err := os.ReadFile(b.path)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n"), nil
}

// Replace writes a persistent edit back to the file, replacing the
// 0-based line range [start, end).
func (b *FileBuffer) Replace(start, end int, insert []string) error {
	lines, err := b.Lines()
	if err != nil {
		return err
	}
	if start < 0 || start > len(lines) || end < start || end > len(lines) {
		return fmt.Errorf("bad replace range %d:%d of %d lines", start, end, len(lines))
	}
	updated := slices.Concat(lines[:start], insert, lines[end:])
	return os.WriteFile(b.path, []byte(strings.Join(updated, "\n")+"\n"), 0644)
}

// printSink renders overlay annotations by printing the whole
// annotated buffer; persistent edits go through the FileBuffer.
type printSink struct {
	out io.Writer
	*FileBuffer
}

func (s *printSink) Overlay(anns []notebooks.RenderedAnnotation) error {
	lines, err := s.Lines()
	if err != nil {
		return err
	}
	byLine := make(map[int]notebooks.RenderedAnnotation, len(anns))
	for _, ann := range anns {
		byLine[ann.Line] = ann
	}
	for i, line := range lines {
		ann, ok := byLine[i+1]
		if ok && ann.Style == notebooks.MarkInline {
			line = line + " " + ann.Text
		}
		fmt.Fprintln(s.out, line)
		if ok && ann.Style == notebooks.MarkBlock {
			for _, injected := range notebooks.InjectLines(ann.Text) {
				fmt.Fprintln(s.out, injected)
			}
		}
	}
	fmt.Fprintln(s.out)
	return nil
}
