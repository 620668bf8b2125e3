// file: internal/finder/finder_test.go
// version: 1.1.0
// guid: f7178cb8-64b1-445a-8297-1330e5e96337

package finder

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jdfalk/course-group-finder/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader returns whatever rows/err are currently set.
type stubLoader struct {
	mu    sync.Mutex
	rows  []catalog.Row
	err   error
	calls int
}

func (s *stubLoader) set(rows []catalog.Row, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows, s.err = rows, err
}

func (s *stubLoader) load() ([]catalog.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func sampleRows() []catalog.Row {
	return []catalog.Row{
		catalog.TextRow(2, "G1", "CS101 CS102"),
		catalog.TextRow(3, "G2", "CS101"),
		catalog.TextRow(4, "G3", "MATH200"),
	}
}

func newFinder(t *testing.T, ttl time.Duration) (*Finder, *stubLoader) {
	t.Helper()
	stub := &stubLoader{}
	stub.set(sampleRows(), nil)
	return New(stub.load, Options{CacheTTL: ttl, CacheSize: 16}), stub
}

func TestQueriesBeforeLoad(t *testing.T) {
	f, _ := newFinder(t, time.Minute)

	_, err := f.Search("CS101")
	assert.ErrorIs(t, err, ErrNoCatalog)
	_, err = f.Matrix("CS101")
	assert.ErrorIs(t, err, ErrNoCatalog)
	_, err = f.Courses()
	assert.ErrorIs(t, err, ErrNoCatalog)
	_, err = f.Groups()
	assert.ErrorIs(t, err, ErrNoCatalog)
	_, err = f.Suggest("CS", 5)
	assert.ErrorIs(t, err, ErrNoCatalog)
	assert.False(t, f.Status().Loaded)
}

func TestSearch(t *testing.T) {
	f, _ := newFinder(t, time.Minute)
	snap, err := f.Reload()
	require.NoError(t, err)
	require.NotEmpty(t, snap.Version)

	res, err := f.Search("cs101, cs102 , CS101")
	require.NoError(t, err)
	assert.Equal(t, snap.Version, res.Version)
	assert.Equal(t, "CS101, CS102", res.Query.String())
	require.Len(t, res.Results, 3)

	assert.Equal(t, "G1", res.Results[0].GroupName)
	assert.Equal(t, 2, res.Results[0].Count)
	assert.InDelta(t, 1.0, res.Results[0].Ratio, 1e-9)
	assert.Equal(t, "G2", res.Results[1].GroupName)
	assert.InDelta(t, 0.5, res.Results[1].Ratio, 1e-9)
	assert.Equal(t, "G3", res.Results[2].GroupName)
	assert.Equal(t, 0, res.Results[2].Count)
}

func TestSearchCachedResultsAreIsolated(t *testing.T) {
	f, _ := newFinder(t, time.Minute)
	_, err := f.Reload()
	require.NoError(t, err)

	first, err := f.Search("CS101")
	require.NoError(t, err)
	first.Results[0].GroupName = "mutated"

	second, err := f.Search("cs101")
	require.NoError(t, err)
	assert.Equal(t, "G1", second.Results[0].GroupName)
}

func TestSearchWithoutCache(t *testing.T) {
	f, _ := newFinder(t, 0)
	_, err := f.Reload()
	require.NoError(t, err)

	a, err := f.Search("MATH200")
	require.NoError(t, err)
	b, err := f.Search("MATH200")
	require.NoError(t, err)
	assert.Equal(t, a.Results, b.Results)
	assert.Equal(t, "G3", a.Results[0].GroupName)
}

func TestReloadInvalidatesByVersion(t *testing.T) {
	f, stub := newFinder(t, time.Minute)
	_, err := f.Reload()
	require.NoError(t, err)

	before, err := f.Search("MATH200")
	require.NoError(t, err)
	assert.Equal(t, "G3", before.Results[0].GroupName)

	stub.set([]catalog.Row{
		catalog.TextRow(2, "G9", "MATH200"),
		catalog.TextRow(3, "G3", "CS101"),
	}, nil)
	_, err = f.Reload()
	require.NoError(t, err)

	after, err := f.Search("MATH200")
	require.NoError(t, err)
	assert.NotEqual(t, before.Version, after.Version)
	assert.Equal(t, "G9", after.Results[0].GroupName)
	assert.Len(t, after.Results, 2)
}

func TestReloadFailureKeepsPreviousCatalog(t *testing.T) {
	f, stub := newFinder(t, time.Minute)
	good, err := f.Reload()
	require.NoError(t, err)

	boom := errors.New("file locked")
	stub.set(nil, boom)
	snap, err := f.Reload()
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, snap)

	current, err := f.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, good.Version, current.Version)

	st := f.Status()
	assert.True(t, st.Loaded)
	assert.Equal(t, good.Version, st.Version)
	assert.Contains(t, st.LastError, "file locked")
}

func TestReloadFailureBeforeFirstLoad(t *testing.T) {
	f, stub := newFinder(t, time.Minute)
	stub.set(nil, errors.New("missing"))

	_, err := f.Reload()
	require.Error(t, err)
	_, err = f.Search("CS101")
	assert.ErrorIs(t, err, ErrNoCatalog)
}

func TestNilLoader(t *testing.T) {
	f := New(nil, Options{})
	_, err := f.Reload()
	assert.Error(t, err)
}

func TestMalformedRowsReported(t *testing.T) {
	f, stub := newFinder(t, time.Minute)
	rows := append(sampleRows(), catalog.Row{Number: 5, Name: "Broken"}, catalog.TextRow(6, "", "CS1"))
	stub.set(rows, nil)

	snap, err := f.Reload()
	require.NoError(t, err)
	require.Len(t, snap.Skipped, 2)
	assert.Equal(t, 5, snap.Skipped[0].Number)

	st := f.Status()
	assert.Equal(t, 3, st.Groups)
	assert.Equal(t, 3, st.Courses)
	require.Len(t, st.Skipped, 2)
	assert.Contains(t, st.Skipped[0], "row 5 (Broken)")
}

func TestOnReload(t *testing.T) {
	f, stub := newFinder(t, time.Minute)

	var events []ReloadEvent
	f.OnReload(func(ev ReloadEvent) { events = append(events, ev) })

	_, err := f.Reload()
	require.NoError(t, err)
	stub.set(nil, errors.New("gone"))
	_, _ = f.Reload()

	require.Len(t, events, 2)
	assert.NoError(t, events[0].Err)
	require.NotNil(t, events[0].Snapshot)
	assert.Error(t, events[1].Err)
	assert.Equal(t, events[0].Snapshot.Version, events[1].Snapshot.Version)
}

func TestMatrix(t *testing.T) {
	f, _ := newFinder(t, time.Minute)
	_, err := f.Reload()
	require.NoError(t, err)

	res, err := f.Matrix("CS102, MATH200")
	require.NoError(t, err)
	m := res.Matrix
	assert.Equal(t, []catalog.CourseCode{"CS102", "MATH200"}, m.Columns)
	require.Len(t, m.Rows, 3)
	assert.Equal(t, "G1", m.Rows[0].GroupName)
	assert.Equal(t, []bool{true, false}, m.Rows[0].Cells)
	assert.Equal(t, "G3", m.Rows[1].GroupName)
	assert.InDelta(t, 50.0, m.Rows[1].Percentage, 1e-9)

	again, err := f.Matrix("cs102,math200")
	require.NoError(t, err)
	assert.Equal(t, m, again.Matrix)
}

func TestMatrixCachedResultsAreIsolated(t *testing.T) {
	f, _ := newFinder(t, time.Minute)
	_, err := f.Reload()
	require.NoError(t, err)

	first, err := f.Matrix("CS101, CS102")
	require.NoError(t, err)
	first.Matrix.Rows[0].Cells[0] = false
	first.Matrix.Rows[0].GroupName = "mutated"
	first.Matrix.Columns[0] = "XX000"

	second, err := f.Matrix("cs101,cs102")
	require.NoError(t, err)
	assert.Equal(t, []catalog.CourseCode{"CS101", "CS102"}, second.Matrix.Columns)
	assert.Equal(t, "G1", second.Matrix.Rows[0].GroupName)
	assert.Equal(t, []bool{true, true}, second.Matrix.Rows[0].Cells)

	second.Matrix.Rows[0].Cells[1] = false
	third, err := f.Matrix("CS101,CS102")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, third.Matrix.Rows[0].Cells)
}

func TestCoursesGroupsSuggest(t *testing.T) {
	f, _ := newFinder(t, time.Minute)
	_, err := f.Reload()
	require.NoError(t, err)

	courses, err := f.Courses()
	require.NoError(t, err)
	assert.Equal(t, []catalog.CourseCode{"CS101", "CS102", "MATH200"}, courses)

	groups, err := f.Groups()
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "G1", groups[0].Name)

	sugg, err := f.Suggest("cs10", 10)
	require.NoError(t, err)
	assert.Equal(t, []catalog.CourseCode{"CS101", "CS102"}, sugg)
}

func TestSelect(t *testing.T) {
	f := New(nil, Options{})

	sel, q := f.Select("CS101", " cs200 ")
	assert.Equal(t, "CS101, CS200", sel)
	assert.Equal(t, "CS101, CS200", q.String())

	sel, _ = f.Select(sel, "cs101")
	assert.Equal(t, "CS101, CS200", sel)

	sel, q = f.Select("", "")
	assert.Equal(t, "", sel)
	assert.True(t, q.Empty())
}

func TestConcurrentSearchAndReload(t *testing.T) {
	f, _ := newFinder(t, time.Minute)
	_, err := f.Reload()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				res, err := f.Search("CS101")
				if assert.NoError(t, err) {
					assert.Len(t, res.Results, 3)
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_, _ = f.Reload()
			}
		}()
	}
	wg.Wait()
}
