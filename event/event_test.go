package event

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestSyncTwoPassOrdering(t *testing.T) {
	q := NewQueue(8)
	var order []string
	var mu sync.Mutex
	record := func(name string) func(Event) {
		return func(Event) {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
		}
	}

	q.On(TypeFrame, false, 1, record("scene"))
	q.On(TypeFrame, false, 0, record("user"))

	q.Send(Event{Type: TypeFrame})

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 || order[0] != "user" || order[1] != "scene" {
		t.Fatalf("dispatch order = %v, want [user scene] (param=0 before param>0)", order)
	}
}

func TestAsyncCallbackRunsOnBackgroundLoop(t *testing.T) {
	q := NewQueue(8)
	done := make(chan Event, 1)
	q.On(TypeTimer, true, 0, func(e Event) { done <- e })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	q.Send(Event{Type: TypeTimer, Param: 42})

	select {
	case e := <-done:
		if e.Param != 42 {
			t.Fatalf("got param %d, want 42", e.Param)
		}
	case <-time.After(time.Second):
		t.Fatal("async callback never ran")
	}
	q.Close()
}

func TestPostWithoutSyncCallback(t *testing.T) {
	q := NewQueue(8)
	got := make(chan struct{}, 1)
	q.On(TypeResize, true, 0, func(Event) { got <- struct{}{} })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	q.Post(Event{Type: TypeResize})

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("posted event was never dispatched")
	}
	q.Close()
}

func TestNoneSentinelClosesConsumer(t *testing.T) {
	q := NewQueue(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go q.Run(ctx)
	q.Post(Event{Type: TypeNone})

	select {
	case <-q.proc.Done():
	case <-time.After(time.Second):
		t.Fatal("NONE event did not close the consumer loop")
	}
}

func TestResetDrainsPendingEvents(t *testing.T) {
	q := NewQueue(8)
	for i := 0; i < 5; i++ {
		q.deq.Enqueue(eventsQueueName, Event{Type: TypeFrame})
	}
	q.Reset()
	if got := q.deq.Size(eventsQueueName); got != 0 {
		t.Fatalf("queue length after Reset = %d, want 0", got)
	}
}

func TestTimerTickEmitsTimerEvent(t *testing.T) {
	q := NewQueue(8)
	done := make(chan Event, 1)
	q.On(TypeTimer, true, 0, func(e Event) {
		select {
		case done <- e:
		default:
		}
	})

	q.Timers().Create(0, time.Millisecond, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("proc's wait callback never advanced the timer set")
	}
	q.Close()
}

func TestOffRemovesCallback(t *testing.T) {
	q := NewQueue(8)
	called := false
	cb := q.On(TypeKey, false, 0, func(Event) { called = true })
	q.Off(cb)

	q.Send(Event{Type: TypeKey})
	if called {
		t.Fatalf("removed callback was still invoked")
	}
}

func TestEventsToKeepClipsToCapacity(t *testing.T) {
	q := NewQueue(4)
	if got := q.eventsToKeep(0, 0); got != q.capacity {
		t.Fatalf("with no samples, eventsToKeep = %d, want capacity %d", got, q.capacity)
	}
	if got := q.eventsToKeep(time.Millisecond, 1); got != q.capacity {
		t.Fatalf("fast average should report capacity (unbounded), got %d", got)
	}
	if got := q.eventsToKeep(500*time.Millisecond, 1); got != 1 {
		t.Fatalf("slow average should clip to 1, got %d", got)
	}
}
