// Package testutil provides in-memory fakes for the persistence and logging
// boundaries so service and controller tests run without a database.
package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"

	"notes-app-be/internal/entity"
	"notes-app-be/internal/repository/contract"
	"notes-app-be/internal/repository/specification"
	"notes-app-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// FakeNoteRepository keeps notes in a map and interprets the subset of
// specifications the note service actually uses (ByID, OrderBy, Limit).
type FakeNoteRepository struct {
	mu    sync.Mutex
	notes map[uuid.UUID]entity.Note

	// FailWith, when set, is returned by every call to simulate store failure.
	FailWith error
}

func NewFakeNoteRepository() *FakeNoteRepository {
	return &FakeNoteRepository{notes: make(map[uuid.UUID]entity.Note)}
}

func (r *FakeNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	if r.FailWith != nil {
		return r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes[note.Id] = *note
	return nil
}

func (r *FakeNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	if r.FailWith != nil {
		return r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[note.Id]; !ok {
		return errors.New("no such row")
	}
	r.notes[note.Id] = *note
	return nil
}

func (r *FakeNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.FailWith != nil {
		return r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.notes, id)
	return nil
}

func (r *FakeNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			if n, found := r.notes[byID.ID]; found {
				copied := n
				return &copied, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *FakeNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*entity.Note, 0, len(r.notes))
	for _, n := range r.notes {
		copied := n
		all = append(all, &copied)
	}

	limit := 0
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.OrderBy:
			desc := spec.Desc
			sort.Slice(all, func(i, j int) bool {
				if desc {
					return all[i].CreatedAt.After(all[j].CreatedAt)
				}
				return all[i].CreatedAt.Before(all[j].CreatedAt)
			})
		case specification.Limit:
			limit = spec.Limit
		}
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *FakeNoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if r.FailWith != nil {
		return 0, r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.notes)), nil
}

// Len reports how many notes the fake currently stores.
func (r *FakeNoteRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notes)
}

// Get returns a stored note by id, or nil.
func (r *FakeNoteRepository) Get(id uuid.UUID) *entity.Note {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.notes[id]; ok {
		copied := n
		return &copied
	}
	return nil
}

// Put stores a note directly, bypassing the service.
func (r *FakeNoteRepository) Put(n entity.Note) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes[n.Id] = n
}

// fakeUnitOfWork hands out the shared fake repository.
type fakeUnitOfWork struct {
	repo contract.NoteRepository
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error         { return nil }
func (u *fakeUnitOfWork) Commit() error                           { return nil }
func (u *fakeUnitOfWork) Rollback() error                         { return nil }
func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository { return u.repo }

// FakeRepositoryFactory satisfies unitofwork.RepositoryFactory over a fake repo.
type FakeRepositoryFactory struct {
	Repo contract.NoteRepository
}

func (f *FakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{repo: f.Repo}
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(module, message string, details map[string]interface{}) {}
func (NopLogger) Info(module, message string, details map[string]interface{})  {}
func (NopLogger) Warn(module, message string, details map[string]interface{})  {}
func (NopLogger) Error(module, message string, details map[string]interface{}) {}
func (NopLogger) Sync() error                                                  { return nil }

// RecordingPublisher captures published payloads.
type RecordingPublisher struct {
	mu       sync.Mutex
	Payloads [][]byte
	FailWith error
}

func (p *RecordingPublisher) Publish(ctx context.Context, payload []byte) error {
	if p.FailWith != nil {
		return p.FailWith
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Payloads = append(p.Payloads, payload)
	return nil
}

// Published returns a snapshot of captured payloads.
func (p *RecordingPublisher) Published() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]byte, len(p.Payloads))
	copy(out, p.Payloads)
	return out
}
