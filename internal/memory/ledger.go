// Package memory provides the household's long-term memory: an append-only,
// file-backed JSON ledger of timestamped, tagged notes kept by the scribe.
package memory

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Entry is one immutable ledger record.
type Entry struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
}

// ledgerFile is the persisted document. Version guards forward
// compatibility; the zero value marks a legacy bare-array file.
type ledgerFile struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

const ledgerVersion = 1

// NoEntriesText is returned by RenderText when the ledger is empty.
const NoEntriesText = "No memory entries available."

// Ledger is a durable append-only note store. All writes rewrite the whole
// file via a temp-file rename, so readers never observe a half-written
// document. The ledger assumes a single writing process; it guards only
// against concurrent goroutines within that process.
type Ledger struct {
	path    string
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewLedger opens (or creates) the ledger at path.
func NewLedger(path string) (*Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create ledger dir: %w", err)
	}
	l := &Ledger{
		path:    path,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := l.save(ledgerFile{Version: ledgerVersion}); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Path returns the backing file path.
func (l *Ledger) Path() string { return l.path }

// Append classifies and tags content, stamps it, and durably appends it.
// Tag order is: the auto marker, exactly one type tag, zero or more domain
// tags, then any explicit tags — first occurrence wins, duplicates dropped.
func (l *Ledger) Append(content string, explicitTags []string) (Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	content = strings.TrimSpace(content)
	entry := Entry{
		ID:        ulid.MustNew(ulid.Timestamp(time.Now()), l.entropy).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Content:   content,
		Tags:      ComposeTags(content, explicitTags),
	}

	doc := l.load()
	doc.Entries = append(doc.Entries, entry)
	if err := l.save(doc); err != nil {
		return Entry{}, fmt.Errorf("persist ledger: %w", err)
	}
	slog.Debug("memory.append", "id", entry.ID, "tags", entry.Tags)
	return entry, nil
}

// LoadAll returns every entry in insertion order. An unreadable or corrupt
// file yields an empty slice; the condition is logged, never raised.
func (l *Ledger) LoadAll() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load().Entries
}

// Search returns entries whose content or any tag contains query,
// case-insensitively, in store order.
func (l *Ledger) Search(query string) []Entry {
	q := strings.ToLower(query)
	var results []Entry
	for _, e := range l.LoadAll() {
		if strings.Contains(strings.ToLower(e.Content), q) {
			results = append(results, e)
			continue
		}
		for _, tag := range e.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				results = append(results, e)
				break
			}
		}
	}
	return results
}

// RenderText renders the whole ledger as a human-readable log suitable for
// downstream summarization.
func (l *Ledger) RenderText() string {
	entries := l.LoadAll()
	if len(entries) == 0 {
		return NoEntriesText
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		tags := "none"
		if len(e.Tags) > 0 {
			tags = strings.Join(e.Tags, ", ")
		}
		fmt.Fprintf(&b, "- [%s] (%s) %s", e.Timestamp, tags, e.Content)
	}
	return b.String()
}

// ReplaceAll overwrites the whole ledger. This is the maintenance path
// (ledger clean); the per-request flow only ever appends.
func (l *Ledger) ReplaceAll(entries []Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save(ledgerFile{Version: ledgerVersion, Entries: entries})
}

func (l *Ledger) load() ledgerFile {
	data, err := os.ReadFile(l.path)
	if err != nil {
		slog.Warn("memory: ledger unreadable, treating as empty", "path", l.path, "error", err)
		return ledgerFile{Version: ledgerVersion}
	}

	var doc ledgerFile
	if err := json.Unmarshal(data, &doc); err == nil && doc.Version > 0 {
		return doc
	}

	// Legacy layout: a bare top-level array of entries.
	var legacy []Entry
	if err := json.Unmarshal(data, &legacy); err == nil {
		return ledgerFile{Version: ledgerVersion, Entries: legacy}
	}

	slog.Warn("memory: ledger corrupt, treating as empty", "path", l.path)
	return ledgerFile{Version: ledgerVersion}
}

// save writes the document to a temp file and renames it into place.
func (l *Ledger) save(doc ledgerFile) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".ledger-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp ledger: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp ledger: %w", err)
	}
	if err := os.Rename(tmpPath, l.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename ledger: %w", err)
	}
	return nil
}
