package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pdfship/pdfship/internal/domain"
	"github.com/pdfship/pdfship/internal/ports"
	"github.com/pdfship/pdfship/internal/session"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

// mockAssembler records calls and returns canned output.
type mockAssembler struct {
	mu      sync.Mutex
	calls   int
	lastReq domain.MergeRequest
	out     []byte
	err     error
	started chan struct{} // when non-nil, closed once on first call
	block   chan struct{} // when non-nil, Assemble waits until closed
}

func (m *mockAssembler) Assemble(ctx context.Context, req domain.MergeRequest) ([]byte, error) {
	m.mu.Lock()
	m.calls++
	m.lastReq = req
	if m.started != nil && m.calls == 1 {
		close(m.started)
	}
	block := m.block
	m.mu.Unlock()
	if block != nil {
		<-block
	}
	return m.out, m.err
}

func (m *mockAssembler) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockStorage records writes.
type mockStorage struct {
	mu       sync.Mutex
	written  []byte
	name     string
	writeErr error
}

func (m *mockStorage) ReadAll(ctx context.Context, loc domain.Location) ([]byte, error) {
	return nil, errors.New("not used")
}

func (m *mockStorage) WriteAll(ctx context.Context, data []byte, suggestedName string) (domain.Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return "", m.writeErr
	}
	m.written = append([]byte(nil), data...)
	m.name = suggestedName
	return domain.Location("out/" + suggestedName), nil
}

// mockSharer records share calls.
type mockSharer struct {
	mu    sync.Mutex
	locs  []domain.Location
	fail  bool
	count int
}

func (m *mockSharer) Share(ctx context.Context, loc domain.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
	m.locs = append(m.locs, loc)
	if m.fail {
		return errors.New("share sink unavailable")
	}
	return nil
}

func twoItemSession(t *testing.T) *session.Session {
	t.Helper()
	s := session.New()
	s.AddItems([]session.Loaded{
		{DisplayName: "a.pdf", Location: "loc-a", PageCount: 2},
		{DisplayName: "b.pdf", Location: "loc-b", PageCount: 3},
	})
	return s
}

func TestMerger_CommitSuccess(t *testing.T) {
	sess := twoItemSession(t)
	asm := &mockAssembler{out: []byte("merged-bytes")}
	st := &mockStorage{}
	sh := &mockSharer{}
	m := NewMerger(sess, session.NewGate(150), asm, st, sh, mockLogger{})

	loc, err := m.Commit(context.Background())
	if err != nil {
		t.Fatalf("Commit() = %v", err)
	}
	if loc != "out/a_merged.pdf" {
		t.Errorf("location = %q, want out/a_merged.pdf", loc)
	}
	if string(st.written) != "merged-bytes" {
		t.Errorf("storage received %q", st.written)
	}
	if st.name != "a_merged.pdf" {
		t.Errorf("suggested name = %q, want a_merged.pdf", st.name)
	}
	if sh.count != 1 || sh.locs[0] != loc {
		t.Errorf("sharer calls = %d locs = %v", sh.count, sh.locs)
	}
	if m.State() != OpSucceeded {
		t.Errorf("state = %v, want Succeeded", m.State())
	}
	if asm.lastReq.TotalPages != 5 {
		t.Errorf("request TotalPages = %d, want 5", asm.lastReq.TotalPages)
	}
}

func TestMerger_GateBlocksBeforeAssembly(t *testing.T) {
	sess := session.New()
	sess.AddItems([]session.Loaded{{DisplayName: "only.pdf", PageCount: 1}})
	asm := &mockAssembler{out: []byte("x")}
	m := NewMerger(sess, session.NewGate(150), asm, &mockStorage{}, nil, mockLogger{})

	_, err := m.Commit(context.Background())
	var few *domain.TooFewItemsError
	if !errors.As(err, &few) {
		t.Fatalf("Commit() = %v, want TooFewItems violation", err)
	}
	if asm.Calls() != 0 {
		t.Error("assembler invoked despite gate violation")
	}
	if m.State() != OpFailed {
		t.Errorf("state = %v, want Failed", m.State())
	}
}

func TestMerger_PageLimitBlocks(t *testing.T) {
	sess := session.New()
	sess.AddItems([]session.Loaded{
		{DisplayName: "a.pdf", PageCount: 100},
		{DisplayName: "b.pdf", PageCount: 51},
	})
	asm := &mockAssembler{out: []byte("x")}
	m := NewMerger(sess, session.NewGate(150), asm, &mockStorage{}, nil, mockLogger{})

	_, err := m.Commit(context.Background())
	var ple *domain.PageLimitExceededError
	if !errors.As(err, &ple) {
		t.Fatalf("Commit() = %v, want PageLimitExceeded", err)
	}
	if ple.Actual != 151 || ple.Limit != 150 {
		t.Errorf("payload = {%d, %d}, want {151, 150}", ple.Actual, ple.Limit)
	}
	if asm.Calls() != 0 {
		t.Error("assembler invoked despite gate violation")
	}
}

func TestMerger_SingleFlight(t *testing.T) {
	sess := twoItemSession(t)
	block := make(chan struct{})
	started := make(chan struct{})
	asm := &mockAssembler{out: []byte("x"), block: block, started: started}
	m := NewMerger(sess, session.NewGate(150), asm, &mockStorage{}, nil, mockLogger{})

	done := make(chan error, 1)
	go func() {
		_, err := m.Commit(context.Background())
		done <- err
	}()

	// Wait for the first commit to reach the assembler.
	<-started
	if m.State() != OpRunning {
		t.Fatalf("state = %v, want Running", m.State())
	}

	if _, err := m.Commit(context.Background()); !errors.Is(err, domain.ErrMergeInProgress) {
		t.Fatalf("second Commit() = %v, want ErrMergeInProgress", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first Commit() = %v", err)
	}
	if m.State() != OpSucceeded {
		t.Errorf("state = %v, want Succeeded", m.State())
	}

	// Completion is observable and a new commit may start.
	if _, err := m.Commit(context.Background()); err != nil {
		t.Errorf("Commit() after completion = %v", err)
	}
}

func TestMerger_AssemblyFailure(t *testing.T) {
	sess := twoItemSession(t)
	cause := &domain.AssemblyFailedError{ItemID: "id-1", Err: errors.New("gone")}
	asm := &mockAssembler{err: cause}
	st := &mockStorage{}
	m := NewMerger(sess, session.NewGate(150), asm, st, nil, mockLogger{})

	_, err := m.Commit(context.Background())
	if !errors.Is(err, domain.ErrAssemblyFailed) {
		t.Fatalf("Commit() = %v, want ErrAssemblyFailed", err)
	}
	if st.written != nil {
		t.Error("output written despite assembly failure")
	}
	if m.State() != OpFailed {
		t.Errorf("state = %v, want Failed", m.State())
	}
}

func TestMerger_ShareFailureDoesNotFailMerge(t *testing.T) {
	sess := twoItemSession(t)
	asm := &mockAssembler{out: []byte("x")}
	sh := &mockSharer{fail: true}
	m := NewMerger(sess, session.NewGate(150), asm, &mockStorage{}, sh, mockLogger{})

	loc, err := m.Commit(context.Background())
	if err != nil {
		t.Fatalf("Commit() = %v, want nil despite share failure", err)
	}
	if loc == "" {
		t.Error("location empty")
	}
	if m.State() != OpSucceeded {
		t.Errorf("state = %v, want Succeeded", m.State())
	}
}

func TestMerger_PersistFailure(t *testing.T) {
	sess := twoItemSession(t)
	asm := &mockAssembler{out: []byte("x")}
	st := &mockStorage{writeErr: errors.New("disk full")}
	m := NewMerger(sess, session.NewGate(150), asm, st, nil, mockLogger{})

	_, err := m.Commit(context.Background())
	if err == nil {
		t.Fatal("Commit() = nil, want persist error")
	}
	if m.State() != OpFailed {
		t.Errorf("state = %v, want Failed", m.State())
	}
}
