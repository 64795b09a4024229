package state

// AuthSnapshot is the current session view: the bearer token ("" when logged
// out) and a loading flag for in-flight auth operations.
type AuthSnapshot struct {
	Token     string
	IsLoading bool
}

// Auth holds the in-memory session state. It performs no storage or network
// access; keeping it in sync with the token store and the session cookie is
// the session manager's job.
type Auth struct {
	store *Store[AuthSnapshot]
}

func NewAuth() *Auth {
	return &Auth{store: NewStore(AuthSnapshot{})}
}

func (a *Auth) Snapshot() AuthSnapshot { return a.store.Get() }

func (a *Auth) Token() string { return a.store.Get().Token }

func (a *Auth) HasToken() bool { return a.store.Get().Token != "" }

func (a *Auth) SetToken(token string) {
	a.store.Update(func(s AuthSnapshot) AuthSnapshot {
		s.Token = token
		return s
	})
}

func (a *Auth) ClearToken() {
	a.store.Update(func(s AuthSnapshot) AuthSnapshot {
		s.Token = ""
		return s
	})
}

func (a *Auth) SetLoading(loading bool) {
	a.store.Update(func(s AuthSnapshot) AuthSnapshot {
		s.IsLoading = loading
		return s
	})
}

func (a *Auth) Subscribe(fn func(AuthSnapshot)) func() {
	return a.store.Subscribe(fn)
}
