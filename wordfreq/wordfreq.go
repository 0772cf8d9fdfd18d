package wordfreq

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed data/*.txt
var dataFS embed.FS

// ErrUnsupportedLanguage is returned by Zipf when no frequency table is
// embedded for the requested language.
var ErrUnsupportedLanguage = errors.New("wordfreq: unsupported language")

// Corpus is an in-memory word-frequency table keyed by ISO 639-1 language
// code. It implements the dictionary.Lookup contract: Zipf scores on a
// logarithmic scale where ~7 is "the" and anything below ~3 is rare.
//
// The corpus is read-only after construction and safe for concurrent reads.
type Corpus struct {
	tables map[string]map[string]float64
}

var (
	parseOnce    sync.Once
	sharedCorpus *Corpus
	parseErr     error
)

// New returns the Corpus parsed from the embedded frequency tables. Each
// data file is named <iso639-1>.txt and holds one "word score" pair per
// line; blank lines and lines starting with '#' are skipped. Parsing happens
// once per process; subsequent calls share the same read-only Corpus.
func New() (*Corpus, error) {
	parseOnce.Do(func() {
		sharedCorpus, parseErr = parseAll()
	})
	return sharedCorpus, parseErr
}

func parseAll() (*Corpus, error) {
	entries, err := fs.ReadDir(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("wordfreq: read embedded data: %w", err)
	}

	c := &Corpus{tables: make(map[string]map[string]float64, len(entries))}
	for _, entry := range entries {
		code := strings.TrimSuffix(entry.Name(), ".txt")
		table, err := parseTable("data/" + entry.Name())
		if err != nil {
			return nil, err
		}
		c.tables[code] = table
	}
	return c, nil
}

func parseTable(path string) (map[string]float64, error) {
	f, err := dataFS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordfreq: open %s: %w", path, err)
	}
	defer f.Close()

	table := make(map[string]float64)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("wordfreq: %s:%d: expected \"word score\", got %q", path, lineNo, line)
		}
		score, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("wordfreq: %s:%d: bad score: %w", path, lineNo, err)
		}
		table[strings.ToLower(fields[0])] = score
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordfreq: scan %s: %w", path, err)
	}
	return table, nil
}

// Zipf returns the frequency score of word in the language identified by
// tag, or 0 when the word is not in the table. Languages without an
// embedded table yield ErrUnsupportedLanguage.
func (c *Corpus) Zipf(word string, tag language.Tag) (float64, error) {
	base, _ := tag.Base()
	table, ok := c.tables[base.String()]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, tag)
	}
	return table[strings.ToLower(word)], nil
}

// Languages returns the ISO 639-1 codes with embedded tables, sorted.
func (c *Corpus) Languages() []string {
	codes := make([]string, 0, len(c.tables))
	for code := range c.tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
