package dictation

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"sync"
)

// CommandRecognizer runs an external speech-to-text program and reads its
// stdout as JSON lines:
//
//	{"text": "hello", "final": false}
//	{"text": "hello world", "final": true}
//	{"error": "no-speech"}
type CommandRecognizer struct {
	name string
	args []string

	mu      sync.Mutex
	cancel  context.CancelFunc
	session uint64
}

func NewCommandRecognizer(name string, args ...string) *CommandRecognizer {
	return &CommandRecognizer{name: name, args: args}
}

// Available reports whether the command can be found.
func (r *CommandRecognizer) Available() bool {
	_, err := exec.LookPath(r.name)
	return err == nil
}

type line struct {
	Text  string `json:"text"`
	Final bool   `json:"final"`
	Error string `json:"error"`
}

func (r *CommandRecognizer) Start(ctx context.Context) (<-chan Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return nil, ErrRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, r.name, r.args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("start %s: %w", r.name, err)
	}
	r.cancel = cancel
	r.session++
	session := r.session

	out := make(chan Result)
	go func() {
		defer close(out)
		defer r.finish(session, cancel)

		send := func(res Result) bool {
			select {
			case out <- res:
				return true
			case <-ctx.Done():
				return false
			}
		}

		sc := bufio.NewScanner(stdout)
		for sc.Scan() {
			var l line
			if err := json.Unmarshal(sc.Bytes(), &l); err != nil {
				continue
			}
			if l.Error != "" {
				send(Result{Err: errors.New(l.Error)})
				_ = cmd.Wait()
				return
			}
			if !send(Result{Text: l.Text, Final: l.Final}) {
				break
			}
		}
		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			send(Result{Err: fmt.Errorf("%s: %w", r.name, err)})
		}
	}()

	return out, nil
}

// finish releases session unless a newer one has already replaced it.
func (r *CommandRecognizer) finish(session uint64, cancel context.CancelFunc) {
	cancel()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == session {
		r.cancel = nil
	}
}

// Stop ends the running session, if any. A new session may be started right
// after Stop returns.
func (r *CommandRecognizer) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
