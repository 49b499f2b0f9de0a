package amqp

import (
	"testing"
	"time"
)

func TestImportRequestMessageRoundTrip(t *testing.T) {
	msg := NewImportRequestMessage(3)
	if msg.Days != 3 {
		t.Fatalf("days = %d, want 3", msg.Days)
	}
	if msg.RequestedAt.IsZero() || msg.RequestedAt.Location() != time.UTC {
		t.Fatalf("requested_at must be a UTC timestamp, got %v", msg.RequestedAt)
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	got, err := ImportRequestMessageFromJSON(body)
	if err != nil {
		t.Fatal(err)
	}
	if got.Days != msg.Days || !got.RequestedAt.Equal(msg.RequestedAt) {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, msg)
	}
}

func TestImportRequestMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := ImportRequestMessageFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}
