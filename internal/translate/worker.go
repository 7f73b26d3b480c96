package translate

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Request struct {
	Seq  uint64
	Text string
	Dir  Direction
}

type Result struct {
	Seq    uint64
	Input  string
	Dir    Direction
	Output string
	Err    error
}

// Worker runs translations off the UI goroutine. Only the newest pending
// request is kept; older ones are dropped before they start.
type Worker struct {
	tr      *Translator
	timeout time.Duration
	log     *zap.Logger

	reqCh   chan Request
	results chan Result
	stopCh  chan struct{}
	done    chan struct{}

	mu      sync.Mutex
	seq     uint64
	started bool
	cancel  context.CancelFunc
}

func NewWorker(tr *Translator, timeout time.Duration, log *zap.Logger) *Worker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Worker{
		tr:      tr,
		timeout: timeout,
		log:     log,
		reqCh:   make(chan Request, 1),
		results: make(chan Result, 4),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true
	ctx, w.cancel = context.WithCancel(ctx)
	go w.loop(ctx)
}

func (w *Worker) Stop() {
	w.mu.Lock()
	started := w.started
	select {
	case <-w.stopCh:
		w.mu.Unlock()
		return
	default:
		close(w.stopCh)
	}
	if w.cancel != nil {
		w.cancel()
	}
	w.mu.Unlock()
	if started {
		<-w.done
	}
}

func (w *Worker) Results() <-chan Result {
	return w.results
}

// Submit queues text for translation, replacing any request that has not
// started yet, and returns the request's sequence number.
func (w *Worker) Submit(text string, dir Direction) uint64 {
	w.mu.Lock()
	w.seq++
	req := Request{Seq: w.seq, Text: text, Dir: dir}
	w.mu.Unlock()

	for {
		select {
		case w.reqCh <- req:
			return req.Seq
		default:
		}
		select {
		case old := <-w.reqCh:
			w.log.Debug("translation superseded", zap.Uint64("seq", old.Seq))
		default:
		}
	}
}

// Latest reports the sequence number of the most recent submission.
func (w *Worker) Latest() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.seq
}

func (w *Worker) loop(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-w.stopCh:
			return
		case req := <-w.reqCh:
			w.run(ctx, req)
		}
	}
}

func (w *Worker) run(ctx context.Context, req Request) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}
	start := time.Now()
	out, err := w.tr.Translate(ctx, req.Text, req.Dir)
	w.log.Debug("translation finished",
		zap.Uint64("seq", req.Seq),
		zap.String("dir", string(req.Dir)),
		zap.Duration("took", time.Since(start)),
		zap.Error(err))

	res := Result{Seq: req.Seq, Input: req.Text, Dir: req.Dir, Output: out, Err: err}
	select {
	case w.results <- res:
	case <-w.stopCh:
	}
}
