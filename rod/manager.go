package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of views opened before the browser
// is recycled. Chrome accumulates memory over long batch runs and the
// baseline never returns to initial levels, so the browser is restarted
// periodically.
const DefaultMaxPages = 75

// Manager owns a headless Chrome instance and hands out Views, recycling
// the browser after a configurable number of pages.
//
// Manager is safe for concurrent use.
type Manager struct {
	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int
	maxPages  int
	closed    bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithMaxPages sets the page count at which the browser is recycled.
func WithMaxPages(n int) ManagerOption {
	return func(m *Manager) { m.maxPages = n }
}

// NewManager launches a headless Chrome browser. Close must be called when
// the Manager is no longer needed.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.launch(); err != nil {
		return nil, err
	}
	return m, nil
}

// Open navigates a new view to url, recycling the browser first if the page
// budget is spent.
func (m *Manager) Open(url string) (*View, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, fmt.Errorf("manager is closed")
	}
	if m.pageCount >= m.maxPages {
		m.recycle()
	}
	m.pageCount++
	browser := m.browser
	m.mu.Unlock()

	return NewView(browser, url)
}

// Close releases browser resources. Close is safe to call multiple times.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	return m.shutdown()
}

// launch starts a new browser instance with stability flags.
func (m *Manager) launch() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	m.browser = browser
	m.launcher = lnchr
	return nil
}

// recycle starts a fresh browser and closes the old one. If the new launch
// fails the old browser is kept. Must be called with mu held.
func (m *Manager) recycle() {
	oldBrowser := m.browser
	oldLauncher := m.launcher

	if err := m.launch(); err != nil {
		m.browser = oldBrowser
		m.launcher = oldLauncher
		return
	}

	m.pageCount = 0
	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
}

// shutdown closes the current browser and launcher. Must be called with mu
// held.
func (m *Manager) shutdown() error {
	var err error
	if m.browser != nil {
		err = m.browser.Close()
		m.browser = nil
	}
	if m.launcher != nil {
		m.launcher.Kill()
		m.launcher = nil
	}
	return err
}
