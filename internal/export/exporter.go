package export

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bethropolis/wordpad/internal/logger"
	"github.com/google/uuid"
)

// DefaultFilename is the suggested name of every export.
const DefaultFilename = "word.docx"

// Result reports the outcome of an export job.
type Result struct {
	JobID    uuid.UUID
	Path     string // where the deliverer put the file
	Bytes    int
	Duration time.Duration
	Err      error
}

// Job is a running export. Its result is available once Done is closed.
type Job struct {
	ID     uuid.UUID
	done   chan struct{}
	result Result
}

// Done is closed when the job has finished.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the job finishes and returns its result.
func (j *Job) Wait() Result {
	<-j.done
	return j.result
}

// Exporter builds a document from a buffer and runs the encode and deliver
// steps in the background.
type Exporter struct {
	encoder   Encoder
	deliverer Deliverer
	filename  string
}

// NewExporter creates an Exporter. An empty filename selects DefaultFilename;
// a filename without extension gets the encoder's.
func NewExporter(enc Encoder, del Deliverer, filename string) (*Exporter, error) {
	if enc == nil || del == nil {
		return nil, fmt.Errorf("export: encoder and deliverer are required")
	}
	if filename == "" {
		filename = DefaultFilename
	}
	if filepath.Ext(filename) == "" {
		filename += enc.Extension()
	}
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}
	return &Exporter{encoder: enc, deliverer: del, filename: filename}, nil
}

// Filename returns the suggested name handed to the deliverer.
func (e *Exporter) Filename() string {
	return e.filename
}

// Export snapshots buffer into a Document and starts a job that encodes and
// delivers it. The job never touches caller state; failures are logged and
// carried in the job's Result.
func (e *Exporter) Export(ctx context.Context, buffer string) *Job {
	doc := BuildDocument(buffer)
	job := &Job{ID: uuid.New(), done: make(chan struct{})}
	logger.InfoTagf("export", "Export %s: started (%d bytes of text)", job.ID, len(buffer))

	go func() {
		defer close(job.done)
		start := time.Now()
		job.result = e.run(ctx, doc)
		job.result.JobID = job.ID
		job.result.Duration = time.Since(start)

		if job.result.Err != nil {
			logger.Errorf("Export %s: failed: %v", job.ID, job.result.Err)
			return
		}
		logger.InfoTagf("export", "Export %s: wrote %s (%d bytes) in %v", job.ID, job.result.Path, job.result.Bytes, job.result.Duration)
	}()

	return job
}

func (e *Exporter) run(ctx context.Context, doc Document) Result {
	var buf bytes.Buffer
	if err := e.encoder.Encode(&buf, doc); err != nil {
		return Result{Err: fmt.Errorf("encode document: %w", err)}
	}
	if err := ctx.Err(); err != nil {
		return Result{Err: fmt.Errorf("export cancelled: %w", err)}
	}

	path, err := e.deliverer.Deliver(ctx, e.filename, buf.Bytes())
	if err != nil {
		return Result{Err: fmt.Errorf("deliver %s: %w", e.filename, err)}
	}
	return Result{Path: path, Bytes: buf.Len()}
}
