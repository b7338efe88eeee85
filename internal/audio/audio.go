// Package audio plays the directions alert and speaks cue words by running
// the platform's sound and text-to-speech commands in the background.
package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/tturner/scandrill/internal/errors"
	"github.com/tturner/scandrill/internal/logging"
)

// Speaker says a word in the given language. Speak must not block.
type Speaker interface {
	Speak(text, languageCode string)
	Close() error
}

// Player plays the alert sound. Play must not block.
type Player interface {
	Play()
	Close() error
}

// Runner executes one command to completion.
type Runner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

const (
	queueSize  = 4
	runTimeout = 10 * time.Second
)

// Nop discards speech and sound.
type Nop struct{}

func (Nop) Speak(string, string) {}
func (Nop) Play() {}
func (Nop) Close() error { return nil }

// Bell rings the terminal bell instead of playing a file.
type Bell struct {
	mu  sync.Mutex
	out io.Writer
}

// NewBell writes BEL to out; nil means stderr.
func NewBell(out io.Writer) *Bell {
	if out == nil {
		out = os.Stderr
	}
	return &Bell{out: out}
}

func (b *Bell) Play() {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprint(b.out, "\a")
}

func (b *Bell) Close() error { return nil }

// queue runs commands one at a time on a single goroutine so speech does
// not overlap. Work is dropped when the queue is full.
type queue struct {
	mu     sync.Mutex
	closed bool
	jobs   chan []string
	wg     sync.WaitGroup
	run    Runner
	logger *logging.Logger
	failed map[string]bool
}

func newQueue(run Runner, logger *logging.Logger) *queue {
	if run == nil {
		run = execRunner
	}
	if logger == nil {
		logger = logging.Discard()
	}
	q := &queue{
		jobs:   make(chan []string, queueSize),
		run:    run,
		logger: logger,
		failed: make(map[string]bool),
	}
	q.wg.Add(1)
	go q.loop()
	return q
}

func (q *queue) push(argv []string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || len(argv) == 0 {
		return
	}
	select {
	case q.jobs <- argv:
	default:
		q.logger.Debug("Audio queue full, dropping %s", argv[0])
	}
}

func (q *queue) loop() {
	defer q.wg.Done()
	for argv := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		err := q.run(ctx, argv[0], argv[1:]...)
		cancel()
		if err == nil {
			continue
		}
		// Report the first failure per command loudly, then quietly.
		if q.failed[argv[0]] {
			q.logger.Debug("%s failed again: %v", argv[0], err)
			continue
		}
		q.failed[argv[0]] = true
		q.logger.Error("%v", errors.WrapAudioError(err, argv[0]))
	}
}

// close stops accepting work and waits for the running command.
func (q *queue) close() error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()
	q.wg.Wait()
	return nil
}
