package listing

import (
	"context"
	"sync"

	"github.com/Astemirdum/book-exchange-admin/admin/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Status uint8

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	default:
		return "idle"
	}
}

var ErrNotMounted = errors.New("view is not mounted")

type FetchFunc func(ctx context.Context) ([]model.BookItem, error)

// Result is the outcome of the one-shot fetch. Books is never nil.
type Result struct {
	Books []model.BookItem
	Err   error
}

func (r Result) OK() bool { return r.Err == nil }

// View owns the fetch lifecycle of one listing page: idle -> loading -> ready.
// A failed fetch is ready with no books and the failure in Result.Err.
type View struct {
	fetch FetchFunc
	log   *zap.Logger

	mu       sync.Mutex
	status   Status
	result   Result
	cancel   context.CancelFunc
	done     chan struct{}
	disposed bool
}

func NewView(fetch FetchFunc, log *zap.Logger) *View {
	return &View{
		fetch:  fetch,
		log:    log.Named("view"),
		result: Result{Books: []model.BookItem{}},
	}
}

// Mount starts the fetch. Only the first call has an effect.
func (v *View) Mount(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.status != StatusIdle || v.disposed {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.done = make(chan struct{})
	v.status = StatusLoading
	go v.load(ctx, v.done)
}

func (v *View) load(ctx context.Context, done chan struct{}) {
	defer close(done)
	books, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		v.log.Debug("fetch completed after unmount, dropped", zap.Error(err))
		return
	}
	v.cancel()
	if err != nil {
		v.log.Error("fetch books", zap.Error(err))
		v.result = Result{Books: []model.BookItem{}, Err: err}
	} else {
		if books == nil {
			books = []model.BookItem{}
		}
		v.result = Result{Books: books}
	}
	v.status = StatusReady
}

// Unmount cancels an in-flight fetch; its completion no longer changes the view.
func (v *View) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return
	}
	v.disposed = true
	if v.cancel != nil {
		v.cancel()
	}
}

// Wait blocks until the fetch goroutine is finished or ctx is done.
func (v *View) Wait(ctx context.Context) error {
	v.mu.Lock()
	done := v.done
	v.mu.Unlock()
	if done == nil {
		return ErrNotMounted
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (v *View) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

func (v *View) Result() Result {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result
}

// Data is the stored book sequence, empty unless the fetch succeeded.
func (v *View) Data() []model.BookItem {
	return v.Result().Books
}
