package kitties

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test counter (in-memory)
// -------------------------

type testCounter struct {
	next    KittyID
	readErr error
	setErr  error
}

func (c *testCounter) NextKittyID(ctx context.Context) (KittyID, error) {
	if c.readErr != nil {
		return 0, c.readErr
	}
	return c.next, nil
}

func (c *testCounter) SetNextKittyID(ctx context.Context, next KittyID) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.next = next
	return nil
}

func TestAllocateKittyID_MonotonicFromGenesis(t *testing.T) {
	ctx := context.Background()
	counter := &testCounter{}

	for want := KittyID(0); want < 5; want++ {
		got, err := AllocateKittyID(ctx, counter)
		if err != nil {
			t.Fatalf("allocate #%d: %v", want, err)
		}
		if got != want {
			t.Fatalf("allocate #%d: got %d", want, got)
		}
	}

	if counter.next != 5 {
		t.Fatalf("counter = %d, want 5", counter.next)
	}
}

func TestAllocateKittyID_OverflowLeavesCounterIntact(t *testing.T) {
	ctx := context.Background()
	counter := &testCounter{next: MaxKittyID}

	_, err := AllocateKittyID(ctx, counter)
	if !errors.Is(err, ErrIDOverflow) {
		t.Fatalf("err = %v, want ErrIDOverflow", err)
	}
	if counter.next != MaxKittyID {
		t.Fatalf("counter mutó en overflow: %d", counter.next)
	}
}

func TestAllocateKittyID_PropagatesStoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("store down")

	if _, err := AllocateKittyID(ctx, &testCounter{readErr: boom}); !errors.Is(err, boom) {
		t.Fatalf("read err = %v, want wrapped %v", err, boom)
	}
	if _, err := AllocateKittyID(ctx, &testCounter{setErr: boom}); !errors.Is(err, boom) {
		t.Fatalf("set err = %v, want wrapped %v", err, boom)
	}
}
