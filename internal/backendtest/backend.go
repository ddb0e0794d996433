// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backendtest provides an in-memory vault backend for tests.
//
// [Backend] speaks the REST dialect of the real server: bearer tokens are
// signed JWTs, request bodies are wrapped in a resource key and secrets are
// stored exactly as the client sent them. The backend never sees a
// plaintext password, which lets end-to-end tests assert on what actually
// reached the server.
package backendtest

import (
	"crypto/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	defaultTokenTTL = time.Hour
	tokenIssuer     = "vault-backend"
)

// Account is a registered user as the backend stores it.
type Account struct {
	Login          string
	AuthHash       string // HMAC of the client-supplied auth hash
	EncryptionSalt string
	AuthSalt       string
	PublicKey      string
	PrivateKey     string // sealed by the client, opaque here
	PrivateKeyIV   string
}

// URLRecord is one URL of a stored login.
type URLRecord struct {
	ID  int64
	URI string
}

// FieldRecord is one custom field of a stored login.
type FieldRecord struct {
	ID    int64
	Name  string
	Value string
}

// LoginRecord is a stored login. Password holds ciphertext.
type LoginRecord struct {
	ID           int64
	Owner        string
	Name         string
	Username     string
	Password     string
	IV           string
	URLs         []URLRecord
	Notes        string
	CustomFields []FieldRecord
	IsFavorite   bool
	FolderID     *int64
	TrashedAt    *time.Time
}

func (l *LoginRecord) uris() []string {
	out := make([]string, 0, len(l.URLs))
	for _, u := range l.URLs {
		out = append(out, u.URI)
	}
	return out
}

// NoteRecord is a stored secure note.
type NoteRecord struct {
	ID     int64
	Owner  string
	Name   string
	NameIV string
	Text   string
	TextIV string
}

// SSHKeyRecord is a stored SSH key pair.
type SSHKeyRecord struct {
	ID         int64
	Owner      string
	Name       string
	PublicKey  string
	PrivateKey string
	IV         string
	Notes      string
}

// ShareRecord is a sharing grant.
type ShareRecord struct {
	ID         int64
	LoginID    int64
	Name       string
	Username   string
	URLs       []string
	SharedBy   string
	SharedWith string
	Password   string
}

// FolderRecord is a folder of one account.
type FolderRecord struct {
	ID   int64
	Name string
}

type failure struct {
	method string
	path   string
	status int
}

// Option configures a [Backend].
type Option func(*Backend)

// WithClock replaces time.Now. Token issue and validation follow the clock.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		b.now = now
	}
}

// WithTokenTTL sets the lifetime of issued tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(b *Backend) {
		b.tokenTTL = ttl
	}
}

// WithLogger sets the request logger. Requests are not logged by default.
func WithLogger(log *logger.Logger) Option {
	return func(b *Backend) {
		b.logger = log
	}
}

// Backend is an in-memory vault server. It is safe for concurrent use.
type Backend struct {
	mu       sync.Mutex
	accounts map[string]*Account
	logins   map[int64]*LoginRecord
	notes    map[int64]*NoteRecord
	sshKeys  map[int64]*SSHKeyRecord
	shares   map[int64]*ShareRecord
	folders  map[string][]FolderRecord
	failures []failure
	nextID   int64

	signKey  []byte
	pepper   []byte
	tokenTTL time.Duration
	now      func() time.Time
	validate *validator.Validate
	logger   *logger.Logger
}

// New constructs an empty backend with fresh signing keys.
func New(opts ...Option) *Backend {
	b := &Backend{
		accounts: make(map[string]*Account),
		logins:   make(map[int64]*LoginRecord),
		notes:    make(map[int64]*NoteRecord),
		sshKeys:  make(map[int64]*SSHKeyRecord),
		shares:   make(map[int64]*ShareRecord),
		folders:  make(map[string][]FolderRecord),
		signKey:  []byte(rand.Text()),
		pepper:   []byte(rand.Text()),
		tokenTTL: defaultTokenTTL,
		now:      time.Now,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Handler returns the HTTP handler of the backend.
func (b *Backend) Handler() http.Handler {
	return b.routes()
}

// FailNext makes the next request matching method and path answer with
// status instead of being served.
func (b *Backend) FailNext(method, path string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = append(b.failures, failure{method: strings.ToUpper(method), path: path, status: status})
}

// takeFailure pops the first injected failure matching the request.
func (b *Backend) takeFailure(method, path string) (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, f := range b.failures {
		if f.method == method && f.path == path {
			b.failures = slices.Delete(b.failures, i, i+1)
			return f.status, true
		}
	}
	return 0, false
}

// AddFolder creates a folder for login and returns its id.
func (b *Backend) AddFolder(login, name string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.newIDLocked()
	b.folders[login] = append(b.folders[login], FolderRecord{ID: id, Name: name})
	return id
}

// Account returns a copy of the stored account.
func (b *Backend) Account(login string) (Account, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accounts[login]
	if !ok {
		return Account{}, false
	}
	return *a, true
}

// Login returns a copy of the stored login, trashed or not.
func (b *Backend) Login(id int64) (LoginRecord, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.logins[id]
	if !ok {
		return LoginRecord{}, false
	}
	return *l, true
}

// Note returns a copy of the stored note.
func (b *Backend) Note(id int64) (NoteRecord, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, ok := b.notes[id]
	if !ok {
		return NoteRecord{}, false
	}
	return *n, true
}

// SSHKey returns a copy of the stored SSH key.
func (b *Backend) SSHKey(id int64) (SSHKeyRecord, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	k, ok := b.sshKeys[id]
	if !ok {
		return SSHKeyRecord{}, false
	}
	return *k, true
}

// Shares returns copies of all grants ordered by id.
func (b *Backend) Shares() []ShareRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]ShareRecord, 0, len(b.shares))
	for _, s := range sortedByID(b.shares) {
		out = append(out, *s)
	}
	return out
}

func (b *Backend) newIDLocked() int64 {
	b.nextID++
	return b.nextID
}

// sortedByID returns the values of m in id order.
func sortedByID[T any](m map[int64]*T) []*T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}
