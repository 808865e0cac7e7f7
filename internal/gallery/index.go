package gallery

// Index is a flattened, read-only view of the events in a Data, built once
// per process and passed to the components that look events up.
type Index struct {
	events []Event
	byID   map[string]int
}

// NewIndex flattens data in period order. A nil data yields an empty index.
func NewIndex(data *Data) *Index {
	idx := &Index{byID: make(map[string]int)}
	if data == nil {
		return idx
	}
	for _, period := range data.Periods {
		for _, event := range period.Events {
			if _, dup := idx.byID[event.ID]; dup {
				continue
			}
			idx.byID[event.ID] = len(idx.events)
			idx.events = append(idx.events, event)
		}
	}
	return idx
}

// Events returns every event in period order. The slice must not be modified.
func (i *Index) Events() []Event {
	return i.events
}

// Lookup returns the event with the given id.
func (i *Index) Lookup(id string) (Event, bool) {
	pos, ok := i.byID[id]
	if !ok {
		return Event{}, false
	}
	return i.events[pos], true
}

// Len reports the number of indexed events.
func (i *Index) Len() int {
	return len(i.events)
}
