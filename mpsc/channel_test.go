package mpsc

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestChannel_RoundTrip(t *testing.T) {
	tx, rx := New[string]()

	if err := tx.Send("Hello, world!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := rx.Recv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "Hello, world!" {
		t.Errorf("expected %q, got %q", "Hello, world!", v)
	}
}

func TestChannel_FIFO(t *testing.T) {
	tx, rx := New[int]()
	for i := range 1000 {
		if err := tx.Send(i); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}
	tx.Close()

	if rx.Len() != 1000 {
		t.Errorf("expected 1000 buffered values, got %d", rx.Len())
	}

	next := 0
	for v := range rx.All() {
		if v != next {
			t.Fatalf("expected %d, got %d", next, v)
		}
		next++
	}
	if next != 1000 {
		t.Errorf("expected 1000 values, got %d", next)
	}
}

func TestChannel_RecvBlocksUntilSend(t *testing.T) {
	tx, rx := New[int]()
	got := make(chan int, 1)

	go func() {
		v, _ := rx.Recv()
		got <- v
	}()

	select {
	case <-got:
		t.Fatal("expected Recv to block on an empty channel")
	case <-time.After(20 * time.Millisecond):
	}

	_ = tx.Send(5)
	select {
	case v := <-got:
		if v != 5 {
			t.Errorf("expected 5, got %d", v)
		}
	case <-time.After(time.Second):
		t.Fatal("Recv did not wake after Send")
	}
}

func TestChannel_SenderGone(t *testing.T) {
	t.Run("buffered values survive", func(t *testing.T) {
		tx, rx := New[int]()
		_ = tx.Send(1)
		_ = tx.Send(2)
		tx.Close()

		for _, want := range []int{1, 2} {
			v, err := rx.Recv()
			if err != nil || v != want {
				t.Fatalf("expected %d, got %d (%v)", want, v, err)
			}
		}
		if _, err := rx.Recv(); !errors.Is(err, ErrDisconnected) {
			t.Errorf("expected ErrDisconnected, got %v", err)
		}
	})

	t.Run("wakes blocked receiver", func(t *testing.T) {
		tx, rx := New[int]()
		errCh := make(chan error, 1)
		go func() {
			_, err := rx.Recv()
			errCh <- err
		}()

		time.Sleep(10 * time.Millisecond)
		tx.Close()

		select {
		case err := <-errCh:
			if !errors.Is(err, ErrDisconnected) {
				t.Errorf("expected ErrDisconnected, got %v", err)
			}
		case <-time.After(time.Second):
			t.Fatal("Recv did not observe the disconnection")
		}
	})

	t.Run("clones keep channel alive", func(t *testing.T) {
		tx, rx := New[int]()
		tx2, err := tx.Clone()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tx.Close()
		tx.Close() // no-op

		if _, err := rx.TryRecv(); !errors.Is(err, ErrEmpty) {
			t.Errorf("expected ErrEmpty while a clone lives, got %v", err)
		}

		_ = tx2.Send(9)
		tx2.Close()

		if v, err := rx.TryRecv(); err != nil || v != 9 {
			t.Errorf("expected 9, got %d (%v)", v, err)
		}
		if _, err := rx.TryRecv(); !errors.Is(err, ErrDisconnected) {
			t.Errorf("expected ErrDisconnected, got %v", err)
		}
	})
}

func TestChannel_ReceiverGone(t *testing.T) {
	tx, rx := New[string]()
	_ = tx.Send("dropped")
	rx.Close()

	err := tx.Send("undeliverable")
	if !errors.Is(err, ErrDisconnected) {
		t.Fatalf("expected ErrDisconnected, got %v", err)
	}

	var se *SendError[string]
	if !errors.As(err, &se) || se.Value != "undeliverable" {
		t.Errorf("expected the value back in a SendError, got %v", err)
	}

	if _, err := rx.Recv(); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed from a closed receiver, got %v", err)
	}
}

func TestChannel_ClosedSender(t *testing.T) {
	tx, _ := New[int]()
	tx.Close()

	if err := tx.Send(1); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if _, err := tx.Clone(); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed from Clone, got %v", err)
	}
}

func TestChannel_CloneRacingClose(t *testing.T) {
	for range 200 {
		tx, rx := New[int]()

		var wg sync.WaitGroup
		var clone *Sender[int]
		wg.Go(func() { clone, _ = tx.Clone() })
		wg.Go(tx.Close)
		wg.Wait()

		if clone == nil {
			// lost the race: the channel must stay disconnected
			if _, err := rx.TryRecv(); !errors.Is(err, ErrDisconnected) {
				t.Fatalf("expected ErrDisconnected, got %v", err)
			}
			continue
		}

		if err := clone.Send(1); err != nil {
			t.Fatalf("unexpected error from clone: %v", err)
		}
		clone.Close()
		if v, err := rx.Recv(); err != nil || v != 1 {
			t.Fatalf("expected 1, got %d, %v", v, err)
		}
		if _, err := rx.Recv(); !errors.Is(err, ErrDisconnected) {
			t.Fatalf("expected ErrDisconnected after the clone closed, got %v", err)
		}
	}
}

func TestChannel_ManyProducers(t *testing.T) {
	tx, rx := New[int]()

	var wg sync.WaitGroup
	for p := range 8 {
		ptx, _ := tx.Clone()
		wg.Go(func() {
			defer ptx.Close()
			for i := range 100 {
				_ = ptx.Send(p*100 + i)
			}
		})
	}
	tx.Close()

	lastSeen := make(map[int]int)
	count := 0
	for v := range rx.All() {
		p := v / 100
		if prev, ok := lastSeen[p]; ok && v <= prev {
			t.Fatalf("producer %d out of order: %d after %d", p, v, prev)
		}
		lastSeen[p] = v
		count++
	}
	wg.Wait()

	if count != 800 {
		t.Errorf("expected 800 values, got %d", count)
	}
}

func TestChannel_NilInterfaceValues(t *testing.T) {
	tx, rx := New[error]()
	_ = tx.Send(nil)

	v, err := rx.Recv()
	if err != nil || v != nil {
		t.Errorf("expected nil value without error, got %v, %v", v, err)
	}
}
