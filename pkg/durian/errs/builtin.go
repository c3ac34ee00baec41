package errs

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/Zzx121/durian/pkg/durian"
	"github.com/Zzx121/durian/pkg/durian/strprint"
)

// LogHandler is the plugin capability behind Log. Hosts redirect
// library-internal failure logging by registering an implementation with
// durian.Register[errs.LogHandler] during startup, or by configuring a
// factory override for the capability.
type LogHandler func(error)

// DialogHandler is the plugin capability behind Dialog. The library ships no
// UI; hosts that want real dialogs register one here.
type DialogHandler func(error)

var suppress = NewHandling(nil)

// Suppress returns the policy that discards every failure.
func Suppress() *Handling {
	return suppress
}

var rethrow = NewRethrowing(asUnchecked)

// Rethrow returns the policy that raises every failure: an unchecked failure
// (*PanicError) is re-raised as the same instance, a returned error is
// wrapped in a new *PanicError whose cause is the original.
func Rethrow() *Rethrowing {
	return rethrow
}

var (
	logCell    atomic.Pointer[Handling]
	dialogCell atomic.Pointer[Handling]
)

// Log returns the policy that reports failures through the LogHandler
// plugin, defaulting to structured logging via slog.
//
// The policy is built lazily on first use: concurrent first calls may each
// resolve and build a candidate, the first one stored wins, and later calls
// return that winner. A malformed factory override for the capability is a
// deployment fault and panics, matching durian.MustResolve.
func Log() *Handling {
	if p := logCell.Load(); p != nil {
		return p
	}
	handler := durian.MustResolve(durian.Default, LogHandler(defaultLogHandler))
	logCell.CompareAndSwap(nil, NewHandling(Handler(handler)))
	return logCell.Load()
}

// Dialog returns the policy that presents failures to a person through the
// DialogHandler plugin. The default renders a prominent block on stderr;
// construction follows the same lazy first-wins scheme as Log.
func Dialog() *Handling {
	if p := dialogCell.Load(); p != nil {
		return p
	}
	handler := durian.MustResolve(durian.Default, DialogHandler(defaultDialogHandler))
	dialogCell.CompareAndSwap(nil, NewHandling(Handler(handler)))
	return dialogCell.Load()
}

// resetForTesting clears the lazy policy cells so tests can re-wire the
// registry underneath them.
func resetForTesting() {
	logCell.Store(nil)
	dialogCell.Store(nil)
}

// defaultLogHandler reports a failure with slog, including the stack when
// the failure carries one.
func defaultLogHandler(err error) {
	var pe *PanicError
	if errors.As(err, &pe) && pe.Stack != "" {
		slog.Error("unhandled failure", "error", err, "stack", pe.Stack)
		return
	}
	slog.Error("unhandled failure", "error", err)
}

// dialogOut is where the default dialog handler renders. Swapped in tests.
var dialogOut io.Writer = os.Stderr

// defaultDialogHandler renders the failure prominently on stderr. A
// registered DialogHandler plugin replaces this with real UI.
func defaultDialogHandler(err error) {
	p := strprint.NewWriter(dialogOut)
	p.Println(strings.Repeat("-", 60))
	p.Printf("FAILURE: %v\n", err)
	var pe *PanicError
	if errors.As(err, &pe) && pe.Stack != "" {
		p.Print(pe.Stack)
		if !strings.HasSuffix(pe.Stack, "\n") {
			p.Print("\n")
		}
	}
	p.Println(strings.Repeat("-", 60))
}
