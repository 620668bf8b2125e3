// file: internal/finder/finder.go
// version: 1.1.0
// guid: 15cb42ee-53f8-46ee-acb5-3ee5cfc51845

package finder

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/jdfalk/course-group-finder/internal/cache"
	"github.com/jdfalk/course-group-finder/internal/catalog"
	"github.com/jdfalk/course-group-finder/internal/matcher"
	"github.com/jdfalk/course-group-finder/internal/metrics"
	"github.com/oklog/ulid/v2"
)

// ErrNoCatalog is returned by queries made before the first successful load.
var ErrNoCatalog = errors.New("no catalog loaded")

// Query kinds used for metrics labels.
const (
	KindRanking = "ranking"
	KindMatrix  = "matrix"
	KindSuggest = "suggest"
)

// LoadFunc produces raw catalog rows, typically source.Loader.
type LoadFunc func() ([]catalog.Row, error)

// Options configures result caching. A zero CacheTTL disables the cache.
type Options struct {
	CacheTTL  time.Duration
	CacheSize int
}

// Snapshot is one successfully built catalog. It is never modified after it
// has been installed.
type Snapshot struct {
	Catalog  *catalog.Catalog
	Version  string
	LoadedAt time.Time
	Skipped  []*catalog.MalformedRowError
}

// ReloadEvent is delivered to OnReload subscribers after every reload attempt.
// Err is nil on success; Snapshot is always the one now in service (nil if none).
type ReloadEvent struct {
	Snapshot *Snapshot
	Err      error
}

// Result is a ranked search against a specific catalog version.
type Result struct {
	Query   matcher.Query         `json:"query"`
	Version string                `json:"catalog_version"`
	Results matcher.RankedResults `json:"results"`
}

// MatrixResult is a presence matrix against a specific catalog version.
type MatrixResult struct {
	Version string                 `json:"catalog_version"`
	Matrix  matcher.PresenceMatrix `json:"matrix"`
}

type cacheKey struct {
	version string
	query   string
}

// Finder holds the current catalog and answers queries against it.
type Finder struct {
	load LoadFunc

	reloadMu sync.Mutex // serializes Reload

	mu      sync.RWMutex
	snap    *Snapshot
	lastErr error

	rankings *cache.Cache[cacheKey, matcher.RankedResults]
	matrices *cache.Cache[cacheKey, matcher.PresenceMatrix]

	subsMu sync.RWMutex
	subs   []func(ReloadEvent)
}

// New creates a Finder. No rows are loaded until Reload is called.
func New(load LoadFunc, opts Options) *Finder {
	f := &Finder{load: load}
	if opts.CacheTTL > 0 {
		f.rankings = cache.New[cacheKey, matcher.RankedResults](opts.CacheTTL, opts.CacheSize)
		f.matrices = cache.New[cacheKey, matcher.PresenceMatrix](opts.CacheTTL, opts.CacheSize)
	}
	return f
}

// OnReload registers fn to be called after each reload attempt.
func (f *Finder) OnReload(fn func(ReloadEvent)) {
	f.subsMu.Lock()
	f.subs = append(f.subs, fn)
	f.subsMu.Unlock()
}

// Reload loads and builds a fresh catalog and swaps it in. On failure the
// previous snapshot stays in service and the error is returned.
func (f *Finder) Reload() (*Snapshot, error) {
	f.reloadMu.Lock()
	defer f.reloadMu.Unlock()

	snap, err := f.build()

	f.mu.Lock()
	f.lastErr = err
	if err == nil {
		f.snap = snap
	}
	current := f.snap
	f.mu.Unlock()

	if err != nil {
		metrics.IncReload("failure")
		log.Printf("[ERROR] finder: reload failed, keeping previous catalog: %v", err)
	} else {
		metrics.IncReload("success")
		metrics.SetCatalog(snap.Catalog.Len(), len(snap.Catalog.AllCourses()), len(snap.Skipped))
		log.Printf("[INFO] finder: loaded catalog %s with %d groups, %d courses (%d rows skipped)",
			snap.Version, snap.Catalog.Len(), len(snap.Catalog.AllCourses()), len(snap.Skipped))
	}

	f.notify(ReloadEvent{Snapshot: current, Err: err})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (f *Finder) build() (*Snapshot, error) {
	if f.load == nil {
		return nil, fmt.Errorf("finder: no loader configured")
	}
	rows, err := f.load()
	if err != nil {
		return nil, err
	}

	cat, skipped := catalog.Build(rows)
	for _, s := range skipped {
		log.Printf("[WARN] finder: skipping %v", s)
	}
	return &Snapshot{
		Catalog:  cat,
		Version:  ulid.Make().String(),
		LoadedAt: time.Now(),
		Skipped:  skipped,
	}, nil
}

func (f *Finder) notify(ev ReloadEvent) {
	f.subsMu.RLock()
	subs := slices.Clone(f.subs)
	f.subsMu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}

// Snapshot returns the catalog currently in service, or ErrNoCatalog.
func (f *Finder) Snapshot() (*Snapshot, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.snap == nil {
		return nil, ErrNoCatalog
	}
	return f.snap, nil
}

// Search ranks every group against the comma separated course list in input.
func (f *Finder) Search(input string) (*Result, error) {
	snap, err := f.Snapshot()
	if err != nil {
		return nil, err
	}
	q := matcher.ParseQuery(input).Distinct()
	key := cacheKey{version: snap.Version, query: q.String()}

	metrics.IncSearch(KindRanking)
	if f.rankings != nil {
		if cached, ok := f.rankings.Get(key); ok {
			metrics.IncCacheHit(KindRanking)
			return &Result{Query: q, Version: snap.Version, Results: slices.Clone(cached)}, nil
		}
		metrics.IncCacheMiss(KindRanking)
	}

	start := time.Now()
	results := matcher.Score(snap.Catalog, q)
	metrics.ObserveSearchDuration(KindRanking, time.Since(start))

	if f.rankings != nil {
		f.rankings.Set(key, slices.Clone(results))
	}
	return &Result{Query: q, Version: snap.Version, Results: results}, nil
}

// Matrix builds the presence matrix for the comma separated course list in input.
func (f *Finder) Matrix(input string) (*MatrixResult, error) {
	snap, err := f.Snapshot()
	if err != nil {
		return nil, err
	}
	q := matcher.ParseQuery(input).Distinct()
	key := cacheKey{version: snap.Version, query: q.String()}

	metrics.IncSearch(KindMatrix)
	if f.matrices != nil {
		if cached, ok := f.matrices.Get(key); ok {
			metrics.IncCacheHit(KindMatrix)
			return &MatrixResult{Version: snap.Version, Matrix: cached.Clone()}, nil
		}
		metrics.IncCacheMiss(KindMatrix)
	}

	start := time.Now()
	m := matcher.BuildPresenceMatrix(snap.Catalog, q)
	metrics.ObserveSearchDuration(KindMatrix, time.Since(start))

	if f.matrices != nil {
		f.matrices.Set(key, m.Clone())
	}
	return &MatrixResult{Version: snap.Version, Matrix: m}, nil
}

// Courses returns every course code in the current catalog, sorted.
func (f *Finder) Courses() ([]catalog.CourseCode, error) {
	snap, err := f.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Catalog.AllCourses(), nil
}

// Groups returns the current catalog's groups in row order.
func (f *Finder) Groups() ([]catalog.Group, error) {
	snap, err := f.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Catalog.Groups(), nil
}

// Suggest returns up to limit known course codes fuzzily matching partial.
func (f *Finder) Suggest(partial string, limit int) ([]catalog.CourseCode, error) {
	snap, err := f.Snapshot()
	if err != nil {
		return nil, err
	}
	metrics.IncSearch(KindSuggest)
	start := time.Now()
	out := matcher.Suggest(snap.Catalog, partial, limit)
	metrics.ObserveSearchDuration(KindSuggest, time.Since(start))
	return out, nil
}

// Select adds course to selection and returns the canonical selection string
// together with the query it parses to. It does not need a catalog.
func (f *Finder) Select(selection, course string) (string, matcher.Query) {
	canonical := matcher.AddCourse(selection, course)
	return canonical, matcher.ParseQuery(canonical)
}

// Status summarizes the finder state for health checks.
type Status struct {
	Loaded    bool      `json:"loaded"`
	Version   string    `json:"catalog_version,omitempty"`
	LoadedAt  time.Time `json:"loaded_at,omitzero"`
	Groups    int       `json:"groups"`
	Courses   int       `json:"courses"`
	Skipped   []string  `json:"skipped_rows,omitempty"`
	LastError string    `json:"last_error,omitempty"`
}

// Status reports the snapshot in service and the outcome of the last reload.
func (f *Finder) Status() Status {
	f.mu.RLock()
	snap, lastErr := f.snap, f.lastErr
	f.mu.RUnlock()

	var st Status
	if lastErr != nil {
		st.LastError = lastErr.Error()
	}
	if snap == nil {
		return st
	}
	st.Loaded = true
	st.Version = snap.Version
	st.LoadedAt = snap.LoadedAt
	st.Groups = snap.Catalog.Len()
	st.Courses = len(snap.Catalog.AllCourses())
	for _, s := range snap.Skipped {
		st.Skipped = append(st.Skipped, s.Error())
	}
	return st
}
