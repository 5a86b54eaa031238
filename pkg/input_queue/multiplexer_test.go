package input_queue

import (
	"reflect"
	"testing"

	"streamrun/pkg/commtypes"
)

func rowMsg(ts int64) commtypes.StreamMessage {
	return commtypes.DataMessage(&commtypes.RowBatch{Rows: []commtypes.Row{{TsMs: ts}}})
}

func nextReady(t *testing.T, m *Multiplexer) (*PartitionQueue, commtypes.StreamMessage, bool) {
	t.Helper()
	chosen, recv, ok := reflect.Select(m.Cases())
	q := m.Take(chosen)
	if !ok {
		return q, commtypes.StreamMessage{}, false
	}
	return q, recv.Interface().(commtypes.StreamMessage), true
}

func TestMultiplexerPerPartitionFIFO(t *testing.T) {
	ch := make(chan commtypes.StreamMessage, 3)
	ch <- rowMsg(1)
	ch <- rowMsg(2)
	ch <- rowMsg(3)
	close(ch)
	m := NewMultiplexer()
	q := NewPartitionQueue(0, ch)
	m.Push(q)
	for want := int64(1); want <= 3; want++ {
		got, msg, ok := nextReady(t, m)
		if !ok {
			t.Fatalf("queue closed before message %d", want)
		}
		if msg.Batch.Rows[0].TsMs != want {
			t.Fatalf("out of order: got ts %d, want %d", msg.Batch.Rows[0].TsMs, want)
		}
		m.Push(got)
	}
}

func TestMultiplexerWithheldQueueNotConsumed(t *testing.T) {
	blocked := make(chan commtypes.StreamMessage, 1)
	blocked <- rowMsg(99)
	open := make(chan commtypes.StreamMessage, 1)
	open <- rowMsg(1)

	m := NewMultiplexer()
	qBlocked := NewPartitionQueue(0, blocked)
	qOpen := NewPartitionQueue(1, open)
	m.Push(qBlocked)
	m.Push(qOpen)

	// Consume until the blocked queue comes up, then withhold it.
	var got []*PartitionQueue
	for i := 0; i < 2; i++ {
		q, _, ok := nextReady(t, m)
		if !ok {
			t.Fatal("unexpected close")
		}
		got = append(got, q)
		// neither queue is re-pushed
	}
	if len(got) != 2 || got[0].Index() == got[1].Index() {
		t.Fatalf("expected one item from each partition, got %v", got)
	}
	if m.NumActive() != 0 {
		t.Fatalf("withheld queues still active: %d", m.NumActive())
	}
	// The withheld queue's second message must stay unread.
	blocked <- rowMsg(100)
	select {
	case <-blocked:
	default:
		t.Fatal("message vanished from withheld queue")
	}
}

func TestMultiplexerExhaustion(t *testing.T) {
	ch0 := make(chan commtypes.StreamMessage)
	ch1 := make(chan commtypes.StreamMessage, 1)
	ch1 <- rowMsg(5)
	close(ch0)
	close(ch1)

	m := NewMultiplexer()
	m.Push(NewPartitionQueue(0, ch0))
	m.Push(NewPartitionQueue(1, ch1))
	if m.AllClosed() {
		t.Fatal("reported exhaustion before any queue closed")
	}
	closedCnt := 0
	dataCnt := 0
	for closedCnt < 2 {
		q, _, ok := nextReady(t, m)
		if !ok {
			m.MarkClosed(q)
			closedCnt++
			continue
		}
		dataCnt++
		m.Push(q)
	}
	if dataCnt != 1 {
		t.Fatalf("expected 1 data message before close, got %d", dataCnt)
	}
	if !m.AllClosed() {
		t.Fatal("exhaustion not reported after all queues closed")
	}
}
