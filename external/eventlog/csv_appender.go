package eventlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	eventlogpkg "github.com/ninfea/babylog/internal/eventlog"
)

var csvHeader = []string{"timestamp_local", "event", "who"}

type CSVAppender struct {
	path string
	loc  *time.Location
	mu   sync.Mutex
}

func NewCSVAppender(path string, loc *time.Location) eventlogpkg.Appender {
	return &CSVAppender{path: path, loc: loc}
}

func (a *CSVAppender) Append(rec eventlogpkg.Record) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	newFile := false
	if _, err := os.Stat(a.path); errors.Is(err, fs.ErrNotExist) {
		newFile = true
	}
	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	w := csv.NewWriter(f)
	if newFile {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("failed to write log header: %w", err)
		}
	}
	row := []string{
		rec.Timestamp.In(a.loc).Format("2006-01-02T15:04:05Z07:00"),
		rec.Kind,
		rec.Actor,
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("failed to write log row: %w", err)
	}
	w.Flush()
	return w.Error()
}

func (a *CSVAppender) Export() ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	data, err := os.ReadFile(a.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}
	return data, nil
}
