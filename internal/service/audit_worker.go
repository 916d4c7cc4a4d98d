package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/metrics"
)

// Auditor records audit entries (implemented by store.AuditStore).
type Auditor interface {
	RecordAudit(ctx context.Context, userID int64, action, entity string, entityID int64, details map[string]any) error
}

// AuditJob represents a single audit entry to be recorded.
type AuditJob struct {
	ActorID  int64
	Action   string
	Entity   string
	EntityID int64
	Details  map[string]any
}

// AuditEnqueuer enqueues audit jobs (implemented by AuditWorker).
type AuditEnqueuer interface {
	Enqueue(job *AuditJob)
}

// AuditWorker buffers audit entries and writes them via a single worker
// goroutine, keeping the request path free of audit write latency.
type AuditWorker struct {
	auditor Auditor
	log     *logrus.Logger
	jobs    chan *AuditJob
}

// NewAuditWorker creates an AuditWorker with the given queue capacity.
func NewAuditWorker(auditor Auditor, log *logrus.Logger, queueSize int) *AuditWorker {
	if queueSize <= 0 {
		queueSize = 1000
	}
	return &AuditWorker{
		auditor: auditor,
		log:     log,
		jobs:    make(chan *AuditJob, queueSize),
	}
}

// Enqueue adds an audit job. Non-blocking; drops the job if the queue is full.
func (w *AuditWorker) Enqueue(job *AuditJob) {
	select {
	case w.jobs <- job:
		metrics.AuditQueueDepth.Set(float64(len(w.jobs)))
	default:
		metrics.AuditDropped.Inc()
		w.log.WithFields(logrus.Fields{
			"action": job.Action,
			"entity": job.Entity,
		}).Warn("audit queue full, dropping entry")
	}
}

// Run processes audit jobs until the context is cancelled, then drains remaining jobs.
func (w *AuditWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case job := <-w.jobs:
			w.process(job)
		}
	}
}

func (w *AuditWorker) drain() {
	for {
		select {
		case job := <-w.jobs:
			w.process(job)
		default:
			return
		}
	}
}

func (w *AuditWorker) process(job *AuditJob) {
	metrics.AuditQueueDepth.Set(float64(len(w.jobs)))

	if err := w.auditor.RecordAudit(
		context.Background(), job.ActorID, job.Action, job.Entity, job.EntityID, job.Details,
	); err != nil {
		w.log.WithError(err).WithFields(logrus.Fields{
			"action": job.Action,
			"entity": job.Entity,
		}).Warn("audit record failed")
	}
}
