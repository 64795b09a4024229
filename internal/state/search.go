package state

// Search holds the free-text project filter shared between the navbar
// (producer) and the projects page (consumer). Last writer wins; the value
// is session-lived and resets on restart. Empty means "no filter".
type Search struct {
	store *Store[string]
}

func NewSearch() *Search {
	return &Search{store: NewStore("")}
}

func (s *Search) Query() string { return s.store.Get() }

func (s *Search) SetQuery(q string) { s.store.Set(q) }

func (s *Search) ClearQuery() { s.store.Set("") }

func (s *Search) Subscribe(fn func(string)) func() {
	return s.store.Subscribe(fn)
}
