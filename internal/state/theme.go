package state

// Theme holds the dark/light display preference. Persisting the value and
// reflecting it on the rendered document is the consumer's responsibility.
type Theme struct {
	store *Store[bool]
}

func NewTheme() *Theme {
	return &Theme{store: NewStore(false)}
}

func (t *Theme) IsDark() bool { return t.store.Get() }

func (t *Theme) SetTheme(isDark bool) { t.store.Set(isDark) }

// Toggle flips the preference and returns the new value.
func (t *Theme) Toggle() bool {
	return t.store.Update(func(v bool) bool { return !v })
}

func (t *Theme) Subscribe(fn func(bool)) func() {
	return t.store.Subscribe(fn)
}
