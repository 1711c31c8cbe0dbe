package app

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"jizzakh_hotels/internal/domain"
	"jizzakh_hotels/internal/i18n"
)

// ThemeKey picks the decorative background styling. It mirrors the location
// of the hotel currently being viewed and is derived state, never persisted.
type ThemeKey string

const (
	ThemeMountain ThemeKey = "mountain"
	ThemeDesert   ThemeKey = "desert"
	ThemeDefault  ThemeKey = "default"
)

// persistedSession is the durable slice of session state. Everything else a
// session holds is rehydrated by refetching.
type persistedSession struct {
	Identity *domain.Identity `json:"identity,omitempty"`
	Language i18n.Locale      `json:"language"`
	DarkMode bool             `json:"darkMode"`
}

// SessionStore owns the session identity, the active locale and the theme
// flags. Identity, language and dark mode survive restarts through the
// SessionStorage port; they are restored verbatim, with no backend check.
type SessionStore struct {
	storage domain.SessionStorage
	log     zerolog.Logger

	mu         sync.Mutex
	identity   *domain.Identity
	language   i18n.Locale
	darkMode   bool
	theme      ThemeKey
	onLanguage func(i18n.Locale)
}

// NewSessionStore restores any persisted session before returning. A storage
// read failure degrades to a fresh session rather than blocking startup.
func NewSessionStore(ctx context.Context, storage domain.SessionStorage, defaultLang i18n.Locale, log zerolog.Logger) *SessionStore {
	s := &SessionStore{
		storage:  storage,
		log:      log,
		language: defaultLang,
		theme:    ThemeDefault,
	}
	var p persistedSession
	ok, err := storage.Load(ctx, &p)
	if err != nil {
		log.Warn().Err(err).Msg("session restore failed, starting fresh")
		return s
	}
	if !ok {
		return s
	}
	s.identity = p.Identity
	s.darkMode = p.DarkMode
	if l, err := i18n.Parse(string(p.Language)); err == nil {
		s.language = l
	}
	return s
}

// OnLanguageChange registers the presentation hook that swaps translation
// tables when the locale changes. The store owns only the selected code.
func (s *SessionStore) OnLanguageChange(fn func(i18n.Locale)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLanguage = fn
}

func (s *SessionStore) SetLanguage(ctx context.Context, l i18n.Locale) error {
	s.mu.Lock()
	s.language = l
	fn := s.onLanguage
	s.mu.Unlock()
	if fn != nil {
		fn(l)
	}
	return s.persist(ctx)
}

func (s *SessionStore) Language() i18n.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

func (s *SessionStore) ToggleDarkMode(ctx context.Context) error {
	s.mu.Lock()
	s.darkMode = !s.darkMode
	s.mu.Unlock()
	return s.persist(ctx)
}

func (s *SessionStore) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

func (s *SessionStore) SetDecorativeTheme(k ThemeKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = k
}

// ApplyHotelTheme mirrors the viewed hotel's location onto the decorative
// theme; unknown locations fall back to the default styling.
func (s *SessionStore) ApplyHotelTheme(loc domain.Location) {
	switch loc {
	case domain.LocationMountain:
		s.SetDecorativeTheme(ThemeMountain)
	case domain.LocationDesert:
		s.SetDecorativeTheme(ThemeDesert)
	default:
		s.SetDecorativeTheme(ThemeDefault)
	}
}

func (s *SessionStore) Theme() ThemeKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Login unconditionally overwrites the current identity. This is an identity
// claim, not a verified login; no credential check exists in this client.
func (s *SessionStore) Login(ctx context.Context, id domain.Identity) error {
	s.mu.Lock()
	s.identity = &id
	s.mu.Unlock()
	s.log.Info().Str("email", id.Email).Msg("session identity set")
	return s.persist(ctx)
}

func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()
	return s.persist(ctx)
}

// EnsureIdentity adopts the fallback identity when the session has none yet
// (the profile view auto-logs a demo guest in). The fallback gets a fresh id
// when it carries none.
func (s *SessionStore) EnsureIdentity(ctx context.Context, fallback domain.Identity) (domain.Identity, error) {
	s.mu.Lock()
	if s.identity != nil {
		id := *s.identity
		s.mu.Unlock()
		return id, nil
	}
	if fallback.ID == "" {
		fallback.ID = uuid.NewString()
	}
	s.identity = &fallback
	s.mu.Unlock()
	return fallback, s.persist(ctx)
}

func (s *SessionStore) Identity() (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return domain.Identity{}, false
	}
	return *s.identity, true
}

// Authenticated reports whether the session holds an identity claim.
func (s *SessionStore) Authenticated() bool {
	_, ok := s.Identity()
	return ok
}

func (s *SessionStore) persist(ctx context.Context) error {
	s.mu.Lock()
	p := persistedSession{
		Identity: s.identity,
		Language: s.language,
		DarkMode: s.darkMode,
	}
	s.mu.Unlock()
	if err := s.storage.Save(ctx, p); err != nil {
		s.log.Warn().Err(err).Msg("session persist failed")
		return err
	}
	return nil
}
