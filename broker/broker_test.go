package broker_test

import (
	"testing"
	"time"

	"github.com/x11tap/x11tap/broker"
)

func TestPublishSubscribe(t *testing.T) {
	b := broker.New(4)
	ch, unsub := b.Subscribe()
	defer unsub()

	b.Publish(broker.Record{ConnID: 1, Name: "InternAtom", Line: "C001:..."})

	select {
	case rec := <-ch:
		if rec.Name != "InternAtom" {
			t.Errorf("expected InternAtom, got %q", rec.Name)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for publish")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := broker.New(1)
	ch, unsub := b.Subscribe()
	unsub()

	if _, ok := <-ch; ok {
		t.Error("expected channel to be closed after unsubscribe")
	}
}

func TestPublishDropsWhenFull(t *testing.T) {
	b := broker.New(1)
	ch, unsub := b.Subscribe()
	defer unsub()

	b.Publish(broker.Record{ConnID: 1})
	b.Publish(broker.Record{ConnID: 2}) // dropped, buffer is full

	rec := <-ch
	if rec.ConnID != 1 {
		t.Errorf("expected first published record to survive, got ConnID=%d", rec.ConnID)
	}
}

func TestSubscriberCount(t *testing.T) {
	b := broker.New(1)
	if b.SubscriberCount() != 0 {
		t.Fatalf("expected 0 subscribers, got %d", b.SubscriberCount())
	}
	_, unsub := b.Subscribe()
	if b.SubscriberCount() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", b.SubscriberCount())
	}
	unsub()
	if b.SubscriberCount() != 0 {
		t.Fatalf("expected 0 subscribers after unsub, got %d", b.SubscriberCount())
	}
}
