package vbtext

import (
	"log/slog"
	"sync"
	"time"
)

// Scheduler runs f once after d. The host may supply its own event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// timerScheduler schedules on the runtime timer goroutines.
type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// State is the installation state of an Installer.
type State int

const (
	// Uninstalled means the host service has not been found yet.
	Uninstalled State = iota
	// Installed means the fallback is active. The state is terminal.
	Installed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Uninstalled:
		return "Uninstalled"
	case Installed:
		return "Installed"
	default:
		return "Unknown"
	}
}

// Installer wraps the host's text service in a Fallback once the service
// exists and makes the Fallback the env's active text service. Services that
// implement GlyphRouter also get their per-character calls routed through
// the Fallback.
//
// Installer is safe for concurrent use.
type Installer struct {
	env  *Env
	opts options

	mu       sync.Mutex
	state    State
	pending  bool // a retry is scheduled
	attempts int
	fallback *Fallback
	done     chan struct{}
}

// NewInstaller returns an Uninstalled installer for env.
func NewInstaller(env *Env, opts ...Option) *Installer {
	return &Installer{
		env:  env,
		opts: buildOptions(opts),
		done: make(chan struct{}),
	}
}

// Install looks for the host service and installs the fallback if it is
// present. Otherwise it schedules one retry after the retry delay and returns.
// Retries continue until the service appears or WithMaxAttempts is reached.
// Once installed, Install does nothing.
func (i *Installer) Install() {
	svc, ok := i.env.Service()

	i.mu.Lock()
	if i.state == Installed {
		i.mu.Unlock()
		return
	}
	i.attempts++
	if ok {
		i.installLocked(svc)
		i.mu.Unlock()
		return
	}
	if i.pending {
		i.mu.Unlock()
		return
	}
	attempts := i.attempts
	if i.opts.maxAttempts > 0 && attempts >= i.opts.maxAttempts {
		i.mu.Unlock()
		Logger().Warn("vbtext: text service never appeared, giving up",
			slog.Int("attempts", attempts))
		return
	}
	i.pending = true
	i.mu.Unlock()

	Logger().Debug("vbtext: text service not ready, retrying",
		slog.Int("attempt", attempts),
		slog.Duration("delay", i.opts.retryDelay))
	// Scheduled outside the lock: a scheduler may run retry synchronously.
	i.opts.scheduler.AfterFunc(i.opts.retryDelay, i.retry)
}

func (i *Installer) retry() {
	i.mu.Lock()
	i.pending = false
	i.mu.Unlock()
	i.Install()
}

// InstallOnReady installs the fallback when the host publishes its service,
// without polling. If the service is already published, installation happens
// before InstallOnReady returns.
func (i *Installer) InstallOnReady() {
	i.env.OnService(i.Attach)
}

// Attach installs the fallback around svc directly. It is the explicit
// initialization hook for hosts that construct their service after the shim.
// Attach after installation does nothing.
func (i *Installer) Attach(svc Service) {
	if svc == nil {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.state == Installed {
		return
	}
	i.installLocked(svc)
}

func (i *Installer) installLocked(svc Service) {
	i.fallback = &Fallback{base: svc, opts: i.opts}
	if r, ok := svc.(GlyphRouter); ok {
		r.SetGlyphRenderer(i.fallback)
	}
	i.env.setText(i.fallback)
	i.state = Installed
	close(i.done)
	Logger().Info("vbtext: text fallback installed",
		slog.Int("attempts", i.attempts),
		slog.Bool("preferVectorOutlines", i.opts.preferVectorOutlines))
}

// State returns the current installation state.
func (i *Installer) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// Attempts returns how many times Install has looked for the service.
func (i *Installer) Attempts() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.attempts
}

// Fallback returns the installed decorator, or nil while Uninstalled.
func (i *Installer) Fallback() *Fallback {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.fallback
}

// Done returns a channel that is closed when the fallback is installed.
func (i *Installer) Done() <-chan struct{} {
	return i.done
}
