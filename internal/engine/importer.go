// Package engine runs SMS imports: parse a batch of messages in parallel and
// store what was recognized in the ledger.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/model"
	"github.com/nimesh4992/Stack-sub000/internal/service"
)

// ImportOptions configures import behavior.
type ImportOptions struct {
	Workers   int  // Number of parallel parse workers
	BatchSize int  // Entries per ledger write
	DryRun    bool // Parse only, do not touch the ledger
}

// DefaultImportOptions returns sensible defaults.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{
		Workers:   4,
		BatchSize: 200,
	}
}

// ImportResult is the outcome for one message, index-aligned with the input.
type ImportResult struct {
	Err   error
	Entry *model.LedgerEntry
	Index int
}

// ImportSummary contains statistics about the import run.
type ImportSummary struct {
	Results        []ImportResult
	Reasons        map[string]int
	TotalMessages  int
	Parsed         int
	Saved          int
	Duplicates     int
	ProcessingTime time.Duration
}

// Failed returns the number of messages that did not parse.
func (s *ImportSummary) Failed() int {
	return s.TotalMessages - s.Parsed
}

// Progress receives one tick per processed message.
type Progress interface {
	Add(n int)
}

// Importer parses messages and saves them to a ledger.
type Importer struct {
	parser   service.SMSParser
	ledger   service.Ledger
	progress Progress
	now      func() time.Time
}

// Option configures an Importer.
type Option func(*Importer)

// WithProgress reports parse progress to p.
func WithProgress(p Progress) Option {
	return func(im *Importer) {
		im.progress = p
	}
}

// WithClock sets the time used for messages without a timestamp.
func WithClock(now func() time.Time) Option {
	return func(im *Importer) {
		im.now = now
	}
}

// NewImporter creates an importer. ledger may be nil for dry runs.
func NewImporter(parser service.SMSParser, ledger service.Ledger, opts ...Option) *Importer {
	im := &Importer{
		parser: parser,
		ledger: ledger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Import parses messages with opts.Workers goroutines and, unless DryRun is
// set, saves the recognized ones in input order. Messages already in the
// ledger or repeated in the input are counted as duplicates. On cancellation
// the summary reflects what was stored before ctx ended.
func (im *Importer) Import(ctx context.Context, messages []Message, opts ImportOptions) (*ImportSummary, error) {
	startTime := time.Now()

	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultImportOptions().BatchSize
	}
	if !opts.DryRun && im.ledger == nil {
		return nil, errors.New("import: ledger is required unless dry run")
	}

	summary := &ImportSummary{
		TotalMessages: len(messages),
		Reasons:       make(map[string]int),
	}

	summary.Results = im.parseParallel(ctx, messages, opts.Workers)
	if err := ctx.Err(); err != nil {
		summary.ProcessingTime = time.Since(startTime)
		return summary, err
	}

	entries := make([]model.LedgerEntry, 0, len(summary.Results))
	seen := make(map[string]bool, len(summary.Results))
	for _, r := range summary.Results {
		if r.Err != nil {
			summary.Reasons[common.ReasonCode(r.Err)]++
			continue
		}
		summary.Parsed++
		if seen[r.Entry.Hash] {
			summary.Duplicates++
			continue
		}
		seen[r.Entry.Hash] = true
		entries = append(entries, *r.Entry)
	}

	if opts.DryRun {
		summary.ProcessingTime = time.Since(startTime)
		return summary, nil
	}

	for start := 0; start < len(entries); start += opts.BatchSize {
		if err := ctx.Err(); err != nil {
			summary.ProcessingTime = time.Since(startTime)
			return summary, err
		}

		end := min(start+opts.BatchSize, len(entries))
		inserted, err := im.ledger.SaveEntries(ctx, entries[start:end])
		if err != nil {
			summary.ProcessingTime = time.Since(startTime)
			return summary, fmt.Errorf("failed to save entries: %w", err)
		}
		summary.Saved += inserted
		summary.Duplicates += (end - start) - inserted
	}

	summary.ProcessingTime = time.Since(startTime)

	common.LogInfo("Import complete", common.Fields{
		"messages":   summary.TotalMessages,
		"parsed":     summary.Parsed,
		"saved":      summary.Saved,
		"duplicates": summary.Duplicates,
		"duration":   summary.ProcessingTime,
	})

	return summary, nil
}

// parseParallel fans messages out over workers and collects results in
// input order.
func (im *Importer) parseParallel(ctx context.Context, messages []Message, workers int) []ImportResult {
	workChan := make(chan int, len(messages))
	for i := range messages {
		workChan <- i
	}
	close(workChan)

	results := make([]ImportResult, len(messages))

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(workerID int) {
			defer wg.Done()
			im.worker(ctx, workerID, workChan, messages, results)
		}(i)
	}
	wg.Wait()

	return results
}

// worker parses messages from the work channel. Each index is written by
// exactly one worker.
func (im *Importer) worker(ctx context.Context, workerID int, workChan <-chan int, messages []Message, results []ImportResult) {
	for idx := range workChan {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg := messages[idx]
		result := ImportResult{Index: idx}

		txn, err := im.parser.Diagnose(msg.Text)
		if err != nil {
			common.LogDebug("message skipped", common.Fields{
				"worker_id": workerID,
				"index":     idx,
				"reason":    common.ReasonCode(err),
			})
			result.Err = err
		} else {
			receivedAt := msg.ReceivedAt
			if receivedAt.IsZero() {
				receivedAt = im.now()
			}
			entry := model.NewLedgerEntry(msg.Text, *txn, receivedAt, model.SourceSMS)
			result.Entry = &entry
		}

		results[idx] = result
		if im.progress != nil {
			im.progress.Add(1)
		}
	}
}
