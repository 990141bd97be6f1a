package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/optiifreight/quoting-engine/internal/api/metrics"
	"github.com/optiifreight/quoting-engine/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes quote audit records to a fixed set of workers using
// consistent hashing on the request ID, so retries of the same request land
// on the same worker in order. Recording audits never blocks the quote path.
type Dispatcher struct {
	workers []chan ports.QuoteAuditInput
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.QuoteAuditInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.QuoteAuditInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an audit record to the worker responsible for its request ID.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(input ports.QuoteAuditInput) {
	idx := d.shardIndex(input.RequestID)
	d.workers[idx] <- input
	metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a request ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(requestID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(requestID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.QuoteAuditInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.service.Record(ctx, input); err != nil {
				metrics.AuditErrorsTotal.WithLabelValues("record_failed").Inc()
				d.log.Error().Err(err).
					Str("request_id", input.RequestID).
					Int("worker_id", id).
					Msg("audit recording failed")
			}
		}
	}
}
