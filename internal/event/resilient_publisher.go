package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/HeroArena_Go/internal/logger"
)

type retryItem struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps an Event Bus with a bounded retry queue,
// exponential backoff and a dead-letter file for events that never land.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	retryQueue chan retryItem
	done       chan struct{}
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

// NewResilientPublisher creates a new ResilientPublisher and starts its retry worker
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		retryQueue: make(chan retryItem, RetryQueueBufferSize),
		done:       make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry publishes the event once synchronously and queues it for
// background retries on failure. It never blocks on the retry path.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	p.enqueue(retryItem{event: event, attempts: 1, lastErr: err})
}

// Publish implements Bus. Failures are handled by the retry worker, so the
// caller always gets nil.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case <-p.done:
		p.writeDeadLetter(item)
		return
	default:
	}

	select {
	case p.retryQueue <- item:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", item.event.Type)
		p.writeDeadLetter(item)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			p.drain()
			return
		case item := <-p.retryQueue:
			p.retry(item)
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	for item.attempts <= p.maxRetries {
		timer := time.NewTimer(CalculateRetryDelay(p.baseDelay, item.attempts))
		select {
		case <-p.done:
			timer.Stop()
			p.writeDeadLetter(item)
			return
		case <-timer.C:
		}

		err := p.inner.Publish(context.Background(), item.event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded,
				"event_type", item.event.Type,
				"attempt", item.attempts)
			return
		}

		item.attempts++
		item.lastErr = err
		logger.Warn(LogMsgEventRetryFailed,
			"event_type", item.event.Type,
			"attempt", item.attempts,
			"error", err)
	}

	logger.Error(LogMsgEventRetryExhausted,
		"event_type", item.event.Type,
		"attempts", item.attempts)
	p.writeDeadLetter(item)
}

func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case item := <-p.retryQueue:
			p.writeDeadLetter(item)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem) {
	if err := p.deadLetter.Write(item.event, item.attempts, item.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", item.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker. Pending retries go to the dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() { close(p.done) })

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
