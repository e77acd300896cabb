package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/biometrics"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

var errStorage = errors.New("storage unavailable")

// ---- fake credential store ----

type fakeCreds struct {
	mu     sync.Mutex
	creds  *models.Credentials
	sets   int
	GetErr error
	SetErr error
}

func (f *fakeCreds) Set(ctx context.Context, username, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetErr != nil {
		return f.SetErr
	}
	f.sets++
	f.creds = &models.Credentials{Username: username, Password: password}
	return nil
}

func (f *fakeCreds) Get(ctx context.Context) (*models.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	if f.creds == nil {
		return nil, nil
	}
	c := *f.creds
	return &c, nil
}

func (f *fakeCreds) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetErr != nil {
		return f.SetErr
	}
	f.creds = nil
	return nil
}

// ---- fake preference store ----

type fakePrefs struct {
	mu     sync.Mutex
	m      map[string][]byte
	GetErr map[string]error
	SetErr map[string]error
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{m: map[string][]byte{}, GetErr: map[string]error{}, SetErr: map[string]error{}}
}

func (f *fakePrefs) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.SetErr[key]; err != nil {
		return err
	}
	f.m[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakePrefs) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.GetErr[key]; err != nil {
		return nil, err
	}
	v, ok := f.m[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (f *fakePrefs) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.SetErr[key]; err != nil {
		return err
	}
	delete(f.m, key)
	return nil
}

func (f *fakePrefs) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.m[key]
	return ok
}

// ---- fake biometric sensor ----

type fakeBio struct {
	mu        sync.Mutex
	available bool
	kind      models.BiometryKind
	answers   []bool
	prompts   []string
}

func newFakeBio(available bool, answers ...bool) *fakeBio {
	kind := models.BiometryNone
	if available {
		kind = models.BiometryFace
	}
	return &fakeBio{available: available, kind: kind, answers: answers}
}

func (f *fakeBio) Probe(ctx context.Context) biometrics.Status {
	return biometrics.Status{Available: f.available, Kind: f.kind}
}

func (f *fakeBio) Prompt(ctx context.Context, message string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, message)
	if !f.available || len(f.answers) == 0 {
		return false
	}
	ok := f.answers[0]
	f.answers = f.answers[1:]
	return ok
}

func (f *fakeBio) promptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

// ---- fixed clock ----

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
