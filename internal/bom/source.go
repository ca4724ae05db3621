package bom

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/invectorlabs/bomsort/internal/fsops"
)

// recordFields is the number of tokens a BOM line must carry.
const recordFields = 6

// DefaultFilterPrefixes are the designator prefixes skipped during ingestion:
// test points and fiducials are not placed by the machine.
var DefaultFilterPrefixes = []string{"TP", "FID"}

// Source yields the component records of one board.
type Source interface {
	// Records returns every non-filtered record in file order.
	Records() ([]Record, error)
}

// Parser turns BOM text into records.
type Parser struct {
	filterPrefixes []string
}

// NewParser creates a Parser that skips lines starting with any of the given prefixes.
// A nil slice selects DefaultFilterPrefixes.
func NewParser(filterPrefixes []string) *Parser {
	if filterPrefixes == nil {
		filterPrefixes = DefaultFilterPrefixes
	}
	return &Parser{filterPrefixes: filterPrefixes}
}

// Parse reads all records from r. The first malformed line aborts parsing;
// no partial result is returned.
func (p *Parser) Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	var records []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if p.filtered(line) {
			continue
		}

		fields := strings.Fields(strings.ReplaceAll(line, ",", "."))
		if len(fields) == 0 {
			continue
		}

		rec, err := parseFields(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrMalformedRecord, lineNo, line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan BOM: %w", err)
	}

	return records, nil
}

// filtered reports whether the raw line belongs to a skipped designator class.
func (p *Parser) filtered(line string) bool {
	for _, prefix := range p.filterPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func parseFields(fields []string) (Record, error) {
	if len(fields) < recordFields {
		return Record{}, fmt.Errorf("expected %d fields, got %d", recordFields, len(fields))
	}

	coords := make([]float64, 3)
	for i, name := range []string{"x", "y", "rotation"} {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Record{}, fmt.Errorf("invalid %s %q", name, fields[i+1])
		}
		coords[i] = v
	}

	return Record{
		Designator: fields[0],
		X:          coords[0],
		Y:          coords[1],
		Rotation:   coords[2],
		TypeKey:    TypeKey(fields[4], fields[5]),
	}, nil
}

// FileSource reads records from a BOM file through an fsops.FS.
type FileSource struct {
	fs     fsops.FS
	path   string
	parser *Parser
}

// Compile-time assertion that FileSource implements Source.
var _ Source = (*FileSource)(nil)

// NewFileSource creates a FileSource for path.
func NewFileSource(fs fsops.FS, path string, parser *Parser) *FileSource {
	return &FileSource{fs: fs, path: path, parser: parser}
}

// Path returns the file the source reads from.
func (s *FileSource) Path() string {
	return s.path
}

// Content returns the raw file bytes.
func (s *FileSource) Content() ([]byte, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, s.path, err)
	}
	return data, nil
}

// Records reads and parses the whole file.
func (s *FileSource) Records() ([]Record, error) {
	data, err := s.Content()
	if err != nil {
		return nil, err
	}
	records, err := s.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return records, nil
}
