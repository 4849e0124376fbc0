package satchel

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pbnjay/memory"
	"github.com/pkg/errors"
)

var ErrAlreadyRunning = errors.New("service is already running")
var ErrNotRunning = errors.New("service is not running")

// Serializer is the serialization capability.
type Serializer interface {
	Snapshot() M
}

// Service composes two independent capabilities, logging and
// serialization, instead of inheriting them.
type Service struct {
	mu      sync.RWMutex
	name    string
	config  M
	log     Logger
	running bool
	started time.Time
}

var _ Serializer = (*Service)(nil)

func NewService(log Logger, name string, config M) *Service {
	if log == nil {
		log = NopLogger()
	}

	if config == nil {
		config = make(M)
	}

	return &Service{name: name, config: config, log: log}
}

func DefaultService(log Logger) *Service {
	return NewService(log, "default", M{"debug": true})
}

// ServiceFromConfig takes the service name from the "name" config
// key, falling back to "unnamed".
func ServiceFromConfig(log Logger, config M) *Service {
	name := config.String("name")
	if name == "" {
		name = "unnamed"
	}

	return NewService(log, name, config)
}

func (s *Service) Name() string {
	return s.name
}

func (s *Service) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "could not start service %s", s.name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.Wrapf(ErrAlreadyRunning, "%s", s.name)
	}

	s.log.Infof("starting service: %s", s.name)
	s.running = true
	s.started = time.Now()

	return nil
}

func (s *Service) Stop(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "could not stop service %s", s.name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return errors.Wrapf(ErrNotRunning, "%s", s.name)
	}

	s.log.Infof("stopping service: %s", s.name)
	s.running = false

	return nil
}

func (s *Service) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.running
}

// Snapshot implements Serializer. The config is copied, callers
// cannot mutate service state through it.
func (s *Service) Snapshot() M {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := make(M, len(s.config))
	for k, v := range s.config {
		cfg[k] = v
	}

	return M{
		"name":    s.name,
		"config":  cfg,
		"running": s.running,
	}
}

func (s *Service) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}

// Fingerprint hashes the canonical JSON form of the snapshot.
// Services with equal state produce equal fingerprints.
func (s *Service) Fingerprint() (uint64, error) {
	b, err := json.Marshal(s.Snapshot())
	if err != nil {
		return 0, errors.Wrapf(err, "could not fingerprint service %s", s.name)
	}

	return xxhash.Sum64(b), nil
}

// Stats reports runtime info about the service and its host.
func (s *Service) Stats() M {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := M{
		"name":         s.name,
		"running":      s.running,
		"total_memory": memory.TotalMemory(),
	}

	if s.running {
		stats["uptime"] = time.Since(s.started).String()
	}

	return stats
}
