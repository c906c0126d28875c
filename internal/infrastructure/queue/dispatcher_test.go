package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/spellnotes/notes-api/internal/core/domain"
)

type recordingAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (r *recordingAuditRepo) Insert(_ context.Context, event domain.AuthEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingAuditRepo) snapshot() []domain.AuthEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuthEvent, len(r.events))
	copy(out, r.events)
	return out
}

func TestDispatcher_PersistsRecordedEvents(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(domain.AuthEvent{Username: "alice", Action: domain.AuditLogin, Success: true})
	d.Record(domain.AuthEvent{Username: "bob", Action: domain.AuditRegister, Success: true})

	deadline := time.After(2 * time.Second)
	for {
		if len(repo.snapshot()) == 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("events not persisted, got %d", len(repo.snapshot()))
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcher_SameUserSameShard(t *testing.T) {
	d := NewDispatcher(4, &recordingAuditRepo{}, zerolog.Nop())

	first := d.shardIndex("alice")
	for i := 0; i < 10; i++ {
		if d.shardIndex("alice") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}

func TestDispatcher_FullQueueDropsWithoutBlocking(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())
	// Workers never started: the buffer fills and further records must not block.

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Record(domain.AuthEvent{Username: "alice", Action: domain.AuditLogin})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Record blocked on full queue")
	}
}
