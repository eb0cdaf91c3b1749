package kitties

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byKey map[string]Kitty
}

func newTestRepo() *testRepo {
	return &testRepo{byKey: map[string]Kitty{}}
}

func (r *testRepo) key(owner string, id KittyID) string {
	return fmt.Sprintf("%s/%d", owner, id)
}

func (r *testRepo) Insert(ctx context.Context, k Kitty) error {
	key := r.key(k.OwnerUserID, k.ID)
	if _, ok := r.byKey[key]; ok {
		return errors.New("repo: already exists")
	}
	r.byKey[key] = k
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, owner string, id KittyID) (Kitty, error) {
	k, ok := r.byKey[r.key(owner, id)]
	if !ok {
		return Kitty{}, ErrNotFound
	}
	return k, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, owner string) ([]Kitty, error) {
	out := make([]Kitty, 0)
	for _, k := range r.byKey {
		if k.OwnerUserID == owner {
			out = append(out, k)
		}
	}
	return out, nil
}

// -------------------------
// Scripted DNA source
// -------------------------

// scriptedDNA devuelve payloads en orden. Cada draw consume uno.
type scriptedDNA struct {
	queue []DNA
}

func (s *scriptedDNA) DrawDNA(ctx context.Context, ownerUserID string) (DNA, error) {
	if len(s.queue) == 0 {
		return DNA{}, errors.New("scripted dna exhausted")
	}
	d := s.queue[0]
	s.queue = s.queue[1:]
	return d, nil
}

// -------------------------
// Recording sink
// -------------------------

type recordedEvent struct {
	kind    string
	kitty   Kitty
	parentA KittyID
	parentB KittyID
}

type testSink struct {
	events []recordedEvent
}

func (s *testSink) KittyCreated(ctx context.Context, k Kitty) {
	s.events = append(s.events, recordedEvent{kind: "created", kitty: k})
}

func (s *testSink) KittyBred(ctx context.Context, k Kitty, parentA, parentB KittyID) {
	s.events = append(s.events, recordedEvent{kind: "bred", kitty: k, parentA: parentA, parentB: parentB})
}

func dnaWithFirstByte(b byte) DNA {
	var d DNA
	d[0] = b
	for i := 1; i < DNASize; i++ {
		d[i] = byte(i)
	}
	return d
}

func newTestService(repo *testRepo, counter *testCounter, dna *scriptedDNA, sink *testSink) *Service {
	svc := NewService(repo, counter, dna, sink)
	svc.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreate_AllocatesSequentialIDsAndStores(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	counter := &testCounter{}
	dna := &scriptedDNA{queue: []DNA{dnaWithFirstByte(0x02), dnaWithFirstByte(0x03)}}
	sink := &testSink{}
	svc := newTestService(repo, counter, dna, sink)

	a, err := svc.Create(ctx, "owner-1")
	if err != nil {
		t.Fatalf("create A: %v", err)
	}
	if a.ID != 0 {
		t.Fatalf("first id = %d, want 0", a.ID)
	}

	b, err := svc.Create(ctx, "owner-1")
	if err != nil {
		t.Fatalf("create B: %v", err)
	}
	if b.ID != 1 {
		t.Fatalf("second id = %d, want 1", b.ID)
	}

	// Lookup devuelve exactamente lo que se creó.
	got, err := svc.GetByID(ctx, "owner-1", a.ID)
	if err != nil {
		t.Fatalf("get A: %v", err)
	}
	if got.DNA != a.DNA || got.OwnerUserID != "owner-1" {
		t.Fatalf("stored kitty mismatch: %+v vs %+v", got, a)
	}

	if len(sink.events) != 2 || sink.events[0].kind != "created" || sink.events[1].kind != "created" {
		t.Fatalf("expected 2 created events, got %+v", sink.events)
	}
}

func TestCreate_EmptyOwnerRejected(t *testing.T) {
	svc := newTestService(newTestRepo(), &testCounter{}, &scriptedDNA{}, &testSink{})

	if _, err := svc.Create(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCreate_IDOverflow(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	counter := &testCounter{next: MaxKittyID}
	dna := &scriptedDNA{queue: []DNA{dnaWithFirstByte(0x02)}}
	sink := &testSink{}
	svc := newTestService(repo, counter, dna, sink)

	_, err := svc.Create(ctx, "owner-1")
	if !errors.Is(err, ErrIDOverflow) {
		t.Fatalf("err = %v, want ErrIDOverflow", err)
	}
	if counter.next != MaxKittyID {
		t.Fatalf("counter mutó en overflow: %d", counter.next)
	}
	if len(repo.byKey) != 0 {
		t.Fatalf("no debe haber registros tras overflow")
	}
	if len(sink.events) != 0 {
		t.Fatalf("no debe haber eventos tras overflow")
	}
}

func TestBreed_CrossoverScenario(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	counter := &testCounter{}

	male := dnaWithFirstByte(0x10)   // par => male
	female := dnaWithFirstByte(0x11) // impar => female
	selector := DNA{0x00, 0xFF, 0x00, 0xFF, 0xA5, 0x5A, 0x0F, 0xF0, 0x00, 0xFF, 0x00, 0xFF, 0xA5, 0x5A, 0x0F, 0xF0}

	dna := &scriptedDNA{queue: []DNA{male, female, selector}}
	sink := &testSink{}
	svc := newTestService(repo, counter, dna, sink)

	if _, err := svc.Create(ctx, "owner-1"); err != nil {
		t.Fatalf("create A: %v", err)
	}
	if _, err := svc.Create(ctx, "owner-1"); err != nil {
		t.Fatalf("create B: %v", err)
	}

	child, err := svc.Breed(ctx, "owner-1", 0, 1)
	if err != nil {
		t.Fatalf("breed: %v", err)
	}
	if child.ID != 2 {
		t.Fatalf("child id = %d, want 2", child.ID)
	}
	if want := CrossDNA(male, female, selector); child.DNA != want {
		t.Fatalf("child dna = %s, want crossover %s", child.DNA, want)
	}

	stored, err := svc.GetByID(ctx, "owner-1", 2)
	if err != nil {
		t.Fatalf("get child: %v", err)
	}
	if stored.DNA != child.DNA {
		t.Fatalf("stored child dna mismatch")
	}

	last := sink.events[len(sink.events)-1]
	if last.kind != "bred" || last.parentA != 0 || last.parentB != 1 {
		t.Fatalf("bred event mismatch: %+v", last)
	}
}

func TestBreed_SameGenderLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	counter := &testCounter{}

	dna := &scriptedDNA{queue: []DNA{dnaWithFirstByte(0x02), dnaWithFirstByte(0x04)}}
	sink := &testSink{}
	svc := newTestService(repo, counter, dna, sink)

	if _, err := svc.Create(ctx, "owner-1"); err != nil {
		t.Fatalf("create A: %v", err)
	}
	if _, err := svc.Create(ctx, "owner-1"); err != nil {
		t.Fatalf("create B: %v", err)
	}

	_, err := svc.Breed(ctx, "owner-1", 0, 1)
	if !errors.Is(err, ErrSameGender) {
		t.Fatalf("err = %v, want ErrSameGender", err)
	}

	// Sin rastro: contador intacto, sin registros nuevos, sin eventos nuevos.
	if counter.next != 2 {
		t.Fatalf("counter = %d, want 2", counter.next)
	}
	if len(repo.byKey) != 2 {
		t.Fatalf("repo = %d registros, want 2", len(repo.byKey))
	}
	if len(sink.events) != 2 {
		t.Fatalf("eventos = %d, want 2", len(sink.events))
	}
}

func TestBreed_SelfBreedingFails(t *testing.T) {
	ctx := context.Background()
	dna := &scriptedDNA{queue: []DNA{dnaWithFirstByte(0x02)}}
	svc := newTestService(newTestRepo(), &testCounter{}, dna, &testSink{})

	if _, err := svc.Create(ctx, "owner-1"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Un kitty comparte género consigo mismo.
	if _, err := svc.Breed(ctx, "owner-1", 0, 0); !errors.Is(err, ErrSameGender) {
		t.Fatalf("err = %v, want ErrSameGender", err)
	}
}

func TestBreed_UnknownParentFails(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	counter := &testCounter{}
	dna := &scriptedDNA{queue: []DNA{dnaWithFirstByte(0x02)}}
	svc := newTestService(repo, counter, dna, &testSink{})

	if _, err := svc.Create(ctx, "owner-1"); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := svc.Breed(ctx, "owner-1", 0, 99)
	if !errors.Is(err, ErrInvalidKittyID) {
		t.Fatalf("err = %v, want ErrInvalidKittyID", err)
	}
	if counter.next != 1 {
		t.Fatalf("counter = %d, want 1", counter.next)
	}
	if len(repo.byKey) != 1 {
		t.Fatalf("repo = %d registros, want 1", len(repo.byKey))
	}
}

func TestBreed_OtherOwnersKittyIsInvisible(t *testing.T) {
	ctx := context.Background()
	dna := &scriptedDNA{queue: []DNA{dnaWithFirstByte(0x02), dnaWithFirstByte(0x03)}}
	svc := newTestService(newTestRepo(), &testCounter{}, dna, &testSink{})

	if _, err := svc.Create(ctx, "owner-1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, "owner-2"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// La clave es (owner, id): el kitty de owner-2 no existe para owner-1.
	if _, err := svc.Breed(ctx, "owner-1", 0, 1); !errors.Is(err, ErrInvalidKittyID) {
		t.Fatalf("err = %v, want ErrInvalidKittyID", err)
	}
}
