package session

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// Signals that end the program. The terminal is restored before we
// go.
var fatalSignals = []os.Signal{
	syscall.SIGTERM,
	syscall.SIGQUIT,
	syscall.SIGINT,
	syscall.SIGABRT,
	syscall.SIGILL,
	syscall.SIGSEGV,
}

// installSignals starts the handler goroutine. Called with the write
// lock held.
func (s *Session) installSignals() {
	s.sigCh = make(chan os.Signal, 4)
	s.sigDone = make(chan struct{})

	signal.Notify(s.sigCh, append(fatalSignals, syscall.SIGWINCH)...)
	go s.handleSignals(s.sigCh, s.sigDone)
}

// stopSignals is safe to call from the handler goroutine itself.
func (s *Session) stopSignals() {
	if s.sigCh == nil {
		return
	}
	signal.Stop(s.sigCh)
	close(s.sigDone)
	s.sigCh = nil
}

func (s *Session) handleSignals(sig <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case sg := <-sig:
			if s.handleSignal(sg) {
				return
			}
		case <-done:
			return
		}
	}
}

// handleSignal reacts to one signal and reports whether the session
// has been torn down.
func (s *Session) handleSignal(sig os.Signal) bool {
	if sig == syscall.SIGWINCH {
		s.resizePending.Store(true)
		return false
	}

	slog.Info("fatal signal, restoring terminal", "signal", sig)

	// Holding the write lock lets a sequence that is being written
	// finish before the teardown starts.
	s.mux.Lock()
	s.finishLocked()
	s.mux.Unlock()

	n := 0
	name := sig.String()
	if ss, ok := sig.(syscall.Signal); ok {
		n = int(ss)
		name = unix.SignalName(ss)
	}
	fmt.Fprintf(s.stderr, "\nProgram stopped: signal %d (%s)\n", n, name)
	s.exit(128 + n)
	return true
}
