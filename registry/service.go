package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/viant/idmanager"
	"github.com/viant/idmanager/internal/clock"
	"github.com/viant/idmanager/internal/idgen"
	"github.com/viant/idmanager/internal/store"
	"github.com/viant/idmanager/tracing"
)

// DefaultAnonymousTemplate names the prefix source for sessions opened
// without a template name.
const DefaultAnonymousTemplate = "ctx"

var (
	// ErrSessionNotFound is returned when no open session has the given handle.
	ErrSessionNotFound = errors.New("registry: session not found")

	// ErrInvalidID indicates an empty session handle.
	ErrInvalidID = errors.New("registry: invalid session id")
)

// Session is one template instance together with its id manager.
type Session struct {
	ID        string    `json:"id" yaml:"id"`
	Template  string    `json:"template" yaml:"template"`
	Prefix    string    `json:"prefix" yaml:"prefix"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	// Manager is owned by the session. It is not safe for concurrent use.
	Manager *idmanager.Manager `json:"-" yaml:"-"`
}

// Service tracks open template instances. Each template name has a root
// Manager whose ids become instance prefixes, so two instances of the same
// template never share a prefix and a closed instance's prefix is reused.
// Session managers separate prefix and counter (panel1_10, panel11_0) so that
// ids of live instances never collide.
type Service struct {
	mu                sync.Mutex
	templates         map[string]*idmanager.Manager
	sessions          *store.MemoryStore[string, Session]
	managerOptions    []idmanager.Option
	anonymousTemplate string
	configErr         error
}

// New creates a registry service.
func New(options ...Option) *Service {
	ret := &Service{
		templates:         make(map[string]*idmanager.Manager),
		sessions:          store.NewMemoryStore[string, Session](func(s *Session) string { return s.ID }),
		anonymousTemplate: DefaultAnonymousTemplate,
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Open starts a template instance and returns its session.
func (s *Service) Open(ctx context.Context, template string) (session *Session, err error) {
	ctx, span := tracing.StartSpan(ctx, "registry.open", tracing.KindInternal)
	defer func() { tracing.EndSpan(span, err) }()
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if s.configErr != nil {
		return nil, s.configErr
	}

	name := template
	if name == "" {
		name = s.anonymousTemplate
	}
	s.mu.Lock()
	root, ok := s.templates[name]
	if !ok {
		root = idmanager.New(idmanager.WithPrefix(name))
		s.templates[name] = root
	}
	prefix := root.NewID()
	s.mu.Unlock()

	options := append([]idmanager.Option{}, s.managerOptions...)
	options = append(options, idmanager.WithPrefix(prefix), idmanager.WithSeparatedIDs())
	session = &Session{
		ID:        idgen.New(),
		Template:  name,
		Prefix:    prefix,
		CreatedAt: clock.Now(),
		Manager:   idmanager.New(options...),
	}
	if err = s.sessions.Save(ctx, session); err != nil {
		s.releasePrefix(name, prefix)
		return nil, fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	span.WithAttributes(map[string]string{
		"session.id":       session.ID,
		"session.template": name,
		"session.prefix":   prefix,
	})
	return session, nil
}

// Lookup returns the open session with the given handle.
func (s *Service) Lookup(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	session, err := s.sessions.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

// List returns open sessions ordered by creation time.
func (s *Service) List(ctx context.Context) ([]*Session, error) {
	return s.sessions.List(ctx, func(a, b *Session) bool {
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.Prefix < b.Prefix
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

// Close tears a session down and frees its instance prefix.
func (s *Service) Close(ctx context.Context, id string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "registry.close", tracing.KindInternal)
	defer func() { tracing.EndSpan(span, err) }()
	if err = ctx.Err(); err != nil {
		return err
	}
	session, err := s.Lookup(ctx, id)
	if err != nil {
		return err
	}
	removed, err := s.sessions.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if !removed {
		// closed concurrently
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	session.Manager.Close()
	s.releasePrefix(session.Template, session.Prefix)
	span.WithAttributes(map[string]string{
		"session.id":     id,
		"session.prefix": session.Prefix,
	})
	return nil
}

// Templates returns allocation stats of every template root manager.
func (s *Service) Templates() map[string]idmanager.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret := make(map[string]idmanager.Stats, len(s.templates))
	for name, root := range s.templates {
		ret[name] = root.Stats()
	}
	return ret
}

func (s *Service) releasePrefix(template, prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if root, ok := s.templates[template]; ok {
		root.Release(prefix)
	}
}
