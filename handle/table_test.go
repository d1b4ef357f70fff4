package handle

import (
	"sync"
	"testing"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnHandleEvent(e Event) {
	o.events = append(o.events, e)
}

func TestTable_Basic(t *testing.T) {
	table := NewTable()

	id := table.Insert(KindExport, 0x1000, "cursor")
	if id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	e, ok := table.Get(id)
	if !ok {
		t.Fatal("Get failed")
	}
	if e.Token != 0x1000 || e.Kind != KindExport || e.Value != "cursor" {
		t.Fatalf("unexpected entry %+v", e)
	}

	if _, ok := table.GetTyped(id, KindExport); !ok {
		t.Fatal("GetTyped with correct kind failed")
	}
	if _, ok := table.GetTyped(id, KindConfig); ok {
		t.Fatal("GetTyped with wrong kind should fail")
	}

	e, ok = table.Remove(id)
	if !ok || e.Token != 0x1000 {
		t.Fatalf("Remove returned %+v, %v", e, ok)
	}
	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Remove")
	}
	if _, ok := table.Remove(id); ok {
		t.Fatal("second Remove should fail")
	}
}

func TestTable_Find(t *testing.T) {
	table := NewTable()

	a := table.Insert(KindExport, 0xa0, nil)
	b := table.Insert(KindEntityList, 0xb0, nil)

	id, e, ok := table.Find(0xb0)
	if !ok || id != b || e.Kind != KindEntityList {
		t.Fatalf("Find(0xb0) = %d, %+v, %v", id, e, ok)
	}

	if _, ok := table.RemoveToken(0xa0); !ok {
		t.Fatal("RemoveToken failed")
	}
	if _, _, ok := table.Find(0xa0); ok {
		t.Fatal("token should be gone after RemoveToken")
	}
	if _, ok := table.Get(a); ok {
		t.Fatal("ID should be gone after RemoveToken")
	}
}

func TestTable_ReusesIDs(t *testing.T) {
	table := NewTable()

	first := table.Insert(KindConfig, 1, nil)
	table.Insert(KindConfig, 2, nil)
	table.Remove(first)

	again := table.Insert(KindConfig, 3, nil)
	if again != first {
		t.Fatalf("expected freed ID %d to be reused, got %d", first, again)
	}
	if table.Len() != 2 {
		t.Fatalf("Expected Len() == 2, got %d", table.Len())
	}
}

func TestTable_Observer(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	id := table.Insert(KindExport, 7, nil)
	if len(obs.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventOpened || obs.events[0].ID != id {
		t.Fatalf("unexpected event %+v", obs.events[0])
	}

	table.Remove(id)
	if len(obs.events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(obs.events))
	}
	if obs.events[1].Type != EventClosed || obs.events[1].Entry.Token != 7 {
		t.Fatalf("unexpected event %+v", obs.events[1])
	}

	table.Unsubscribe(obs)
	table.Insert(KindExport, 8, nil)
	if len(obs.events) != 2 {
		t.Fatal("Should not receive events after Unsubscribe")
	}
}

func TestTable_Clear(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	table.Insert(KindExport, 1, nil)
	table.Insert(KindExport, 2, nil)
	table.Insert(KindEntityList, 3, nil)

	table.Clear()

	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Clear")
	}
	closed := 0
	for _, e := range obs.events {
		if e.Type == EventClosed {
			closed++
		}
	}
	if closed != 3 {
		t.Fatalf("Expected 3 close events, got %d", closed)
	}
}

func TestTable_Close(t *testing.T) {
	table := NewTable()

	table.Insert(KindExport, 1, nil)
	if err := table.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if id := table.Insert(KindExport, 2, nil); id != 0 {
		t.Fatal("Expected Insert to fail after Close")
	}
}

type dropCounter struct {
	count int
}

func (d *dropCounter) Drop() {
	d.count++
}

func TestTable_DropperInterface(t *testing.T) {
	table := NewTable()
	d := &dropCounter{}

	id := table.Insert(KindExport, 1, d)
	table.Remove(id)

	if d.count != 1 {
		t.Fatalf("Expected Drop() to be called once, called %d times", d.count)
	}
}

func TestTable_Concurrent(t *testing.T) {
	table := NewTable()
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				id := table.Insert(KindExport, Token(g*1000+i+1), nil)
				if id == 0 {
					t.Error("Insert failed")
					return
				}
				if _, ok := table.Remove(id); !ok {
					t.Error("Remove failed")
					return
				}
			}
		}(g)
	}
	wg.Wait()

	if table.Len() != 0 {
		t.Fatalf("Expected empty table, got %d", table.Len())
	}
}
