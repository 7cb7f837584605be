package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"
)

const (
	metadataFile = "metadata.json"
	appendsFile  = "appends.csv"
	idAlphabet   = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Store keeps one directory per recorded playback.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Script      string    `json:"script"`
	Timestamp   time.Time `json:"timestamp"`
	Speed       float64   `json:"speed"`
	Lines       int       `json:"lines"`
	ScheduledMs float64   `json:"scheduled_ms"`
	ActualMs    float64   `json:"actual_ms"`
}

// Append is one recorded line. DelayMs is what the script asked for, GapMs
// is what was observed since the previous append.
type Append struct {
	Index    int     `json:"index"`
	DelayMs  float64 `json:"delay_ms"`
	GapMs    float64 `json:"gap_ms"`
	OffsetMs float64 `json:"offset_ms"`
}

func (s *Store) Save(script string, speed float64, appends []Append) (string, error) {
	suffix, err := nanoid.Generate(idAlphabet, 6)
	if err != nil {
		return "", err
	}
	now := time.Now()
	runID := fmt.Sprintf("%s_%s_%s", runName(script), now.Format("20060102-150405"), suffix)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Script:    script,
		Timestamp: now,
		Speed:     speed,
		Lines:     len(appends),
	}
	for _, a := range appends {
		meta.ScheduledMs += a.DelayMs
	}
	if len(appends) > 0 {
		meta.ActualMs = appends[len(appends)-1].OffsetMs
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, appendsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"index", "delay_ms", "gap_ms", "offset_ms"}); err != nil {
		return "", err
	}
	for _, a := range appends {
		row := []string{
			strconv.Itoa(a.Index),
			strconv.FormatFloat(a.DelayMs, 'f', 3, 64),
			strconv.FormatFloat(a.GapMs, 'f', 3, 64),
			strconv.FormatFloat(a.OffsetMs, 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// runName reduces a script name to a single path element so a run always
// lands directly under the base directory.
func runName(script string) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == filepath.Separator || r < ' ' {
			return '-'
		}
		return r
	}, script)
	name = strings.Trim(name, ".- ")
	if name == "" {
		return "script"
	}
	return name
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadAppends(runID string) ([]Append, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, appendsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 4

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Append{}, nil
	}

	appends := make([]Append, 0, len(records)-1)
	for i, record := range records[1:] {
		idx, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		var vals [3]float64
		for j := range vals {
			vals[j], err = strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		appends = append(appends, Append{Index: idx, DelayMs: vals[0], GapMs: vals[1], OffsetMs: vals[2]})
	}
	return appends, nil
}

// Export is a whole run in one document.
type Export struct {
	RunMetadata
	Appends []Append `json:"appends"`
}

func (s *Store) Export(runID string) (*Export, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	appends, err := s.LoadAppends(runID)
	if err != nil {
		return nil, err
	}
	return &Export{RunMetadata: *meta, Appends: appends}, nil
}
