// Package backup writes the exported holdings file to disk, both on a
// debounced trigger after mutations and on a daily cron schedule. The
// backup is the same document the export endpoint serves, so a backup
// file can be re-imported directly.
package backup

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/debounce"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/service"
)

// Writer persists holdings exports into a backup directory.
type Writer struct {
	svc       *service.PortfolioService
	dir       string
	debouncer *debounce.Debouncer
	cron      *cron.Cron
}

// NewWriter creates a Writer that coalesces mutation bursts with the
// given quiet period.
func NewWriter(svc *service.PortfolioService, dir string, delay time.Duration) *Writer {
	return &Writer{
		svc:       svc,
		dir:       dir,
		debouncer: debounce.New(delay),
	}
}

// NotifyChanged schedules a debounced backup write. Rapid successive
// mutations result in a single file write carrying the final state.
func (w *Writer) NotifyChanged() {
	w.debouncer.Call(func() {
		if err := w.WriteSnapshot(); err != nil {
			log.Printf("debounced backup failed: %v", err)
		}
	})
}

// WriteSnapshot writes the current holdings export to the backup
// directory immediately. One file per day; a later write on the same day
// overwrites the earlier one, so the file always holds the day's final
// state.
func (w *Writer) WriteSnapshot() error {
	data, filename, err := w.svc.ExportHoldings()
	if err != nil {
		return fmt.Errorf("failed to export holdings for backup: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	path := filepath.Join(w.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// StartCron schedules a daily snapshot in addition to the debounced
// writes, so quiet days still leave a backup behind.
func (w *Writer) StartCron(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := w.WriteSnapshot(); err != nil {
			log.Printf("scheduled backup failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", schedule, err)
	}
	c.Start()
	w.cron = c
	return nil
}

// Stop discards any pending debounced write and halts the cron schedule.
func (w *Writer) Stop() {
	w.debouncer.Stop()
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}
