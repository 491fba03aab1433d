package loader

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/sync/singleflight"

	"github.com/rtomasi/animbind/internal/config"
	"github.com/rtomasi/animbind/internal/model"
	"github.com/rtomasi/animbind/internal/resolve"
)

// Fetcher retrieves the raw text of a configuration document by
// locator. internal/http.Client satisfies it; tests supply fakes.
type Fetcher interface {
	GetString(ctx context.Context, locator string) (string, error)
}

// LoadError reports a failed remote load, naming the locator that
// could not be retrieved or parsed.
type LoadError struct {
	Locator string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %v", e.Locator, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader fetches, caches, and resolves remote configuration documents.
//
// Parsed documents are cached by locator; concurrent loads of the same
// locator share one in-flight fetch instead of issuing duplicate
// transport calls. The cache is owned by the Loader, not process-wide,
// and Reset gives tests a clean slate.
//
// Example:
//
//	l := loader.New(http.NewClient(), resolve.NewBuilder(doc))
//	groups, err := l.Load(ctx, "https://example.com/animations.json", nil)
type Loader struct {
	fetcher Fetcher
	builder *resolve.Builder

	mu     sync.Mutex
	cache  map[string]*model.Document
	flight singleflight.Group
}

// New creates a Loader that fetches through f and resolves through b.
func New(f Fetcher, b *resolve.Builder) *Loader {
	return &Loader{
		fetcher: f,
		builder: b,
		cache:   make(map[string]*model.Document),
	}
}

// Load retrieves the document at locator and builds its groups against
// explicitRoot (nil for the document default).
//
// The host capability check runs before any transport. Transport or
// parse failures surface as a *LoadError naming the locator; they are
// not retried. A cached locator is served without touching transport.
func (l *Loader) Load(ctx context.Context, locator string, explicitRoot *html.Node) (*model.Groups, error) {
	if !l.builder.HostCapable() {
		return nil, resolve.ErrHostNotCapable
	}

	doc, err := l.Document(ctx, locator)
	if err != nil {
		return nil, err
	}

	return l.builder.Build(doc.Groups, explicitRoot)
}

// Document returns the parsed document for locator, fetching it on the
// first call and serving the cache afterwards.
func (l *Loader) Document(ctx context.Context, locator string) (*model.Document, error) {
	l.mu.Lock()
	if doc, ok := l.cache[locator]; ok {
		l.mu.Unlock()
		return doc, nil
	}
	l.mu.Unlock()

	v, err, _ := l.flight.Do(locator, func() (any, error) {
		raw, err := l.fetcher.GetString(ctx, locator)
		if err != nil {
			return nil, &LoadError{Locator: locator, Err: err}
		}

		doc, err := config.DecodeDocument([]byte(raw))
		if err != nil {
			return nil, &LoadError{Locator: locator, Err: err}
		}

		l.mu.Lock()
		l.cache[locator] = doc
		l.mu.Unlock()
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Document), nil
}

// Cached returns the cached document for locator, if any.
func (l *Loader) Cached(locator string) (*model.Document, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	doc, ok := l.cache[locator]
	return doc, ok
}

// Reset drops every cached document.
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]*model.Document)
}
