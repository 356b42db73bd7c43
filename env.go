package vbtext

import "sync"

// Env is the state shared between the host game and the shim: the host's text
// service and the registry of named faces. The host owns it and hands it to
// the shim explicitly.
//
// Env is safe for concurrent use.
type Env struct {
	mu      sync.Mutex
	service Service // as published by the host
	text    Service // active service, the host's or its decorator
	faces   map[string]*Face
	waiters []func(Service)
}

// NewEnv returns an empty Env with no service and no faces.
func NewEnv() *Env {
	return &Env{faces: make(map[string]*Face)}
}

// PublishService records s as the host's text service and makes it the
// active one. Callbacks registered with OnService run once, in registration
// order, after the env is updated. Publishing again replaces the active
// service, including an installed fallback.
func (e *Env) PublishService(s Service) {
	e.mu.Lock()
	e.service = s
	e.text = s
	waiters := e.waiters
	e.waiters = nil
	e.mu.Unlock()

	for _, fn := range waiters {
		fn(s)
	}
}

// Service returns the service published by the host.
func (e *Env) Service() (Service, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.service, e.service != nil
}

// Text returns the active text service, or nil before the host publishes one.
// Once the fallback is installed this is the decorator.
func (e *Env) Text() Service {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

// OnService runs fn with the host's service as soon as it is available. If a
// service is already published, fn runs immediately on the calling goroutine.
func (e *Env) OnService(fn func(Service)) {
	e.mu.Lock()
	s := e.service
	if s == nil {
		e.waiters = append(e.waiters, fn)
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()
	fn(s)
}

// SetFace publishes f under name. The last write wins.
func (e *Env) SetFace(name string, f *Face) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.faces[name] = f
}

// Face returns the face published under name.
func (e *Env) Face(name string) (*Face, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	f, ok := e.faces[name]
	return f, ok
}

func (e *Env) setText(s Service) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = s
}
