// file: internal/matcher/query_test.go
// version: 1.1.0
// guid: 60beb27e-32ab-4217-8f4e-3dc3585c8e43

package matcher

import (
	"testing"

	"github.com/jdfalk/course-group-finder/internal/catalog"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Query
	}{
		{"empty", "", Query{}},
		{"whitespace only", "   \t ", Query{}},
		{"single", "cs101", Query{"CS101"}},
		{"trims and uppercases", " cs101 , Math2 ", Query{"CS101", "MATH2"}},
		{"trailing comma", "CS101,", Query{"CS101"}},
		{"double comma", "CS101,,CS200", Query{"CS101", "CS200"}},
		{"keeps order", "b,a,c", Query{"B", "A", "C"}},
		{"keeps duplicates", "a, A", Query{"A", "A"}},
		{"full width", "ＣＳ１０１", Query{"CS101"}},
		{"full width comma", "cs101，cs200", Query{"CS101", "CS200"}},
		{"ideographic space around comma", "ＣＳ１０１\u3000，\u3000cs200", Query{"CS101", "CS200"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuery(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseQuery(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("ParseQuery(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseQuery_CaseAndWhitespaceInvariance(t *testing.T) {
	a := ParseQuery("A, b ,C")
	b := ParseQuery("a,B,c")
	if a.String() != b.String() {
		t.Errorf("expected %q and %q to parse equally", a, b)
	}
}

func TestQuery_Distinct(t *testing.T) {
	q := Query{"B", "A", "B", "C", "A"}
	got := q.Distinct()
	want := Query{"B", "A", "C"}
	if got.String() != want.String() {
		t.Errorf("Distinct() = %v, want %v", got, want)
	}
	if len(q) != 5 {
		t.Error("Distinct must not modify the receiver")
	}
}

func TestQuery_String(t *testing.T) {
	if got := (Query{"CS101", "CS200"}).String(); got != "CS101, CS200" {
		t.Errorf("String() = %q", got)
	}
	if got := (Query{}).String(); got != "" {
		t.Errorf("empty String() = %q", got)
	}
	if !(Query{}).Empty() {
		t.Error("expected empty query")
	}
}

func TestAddCourse(t *testing.T) {
	tests := []struct {
		selection string
		course    string
		want      string
	}{
		{"", "cs101", "CS101"},
		{"CS101", "cs200", "CS101, CS200"},
		{"CS101, CS200", "cs101", "CS101, CS200"},
		{"cs101,,", "  ", "CS101"},
		{"CS101", "cs200, cs300", "CS101, CS200, CS300"},
		{"cs101, CS101", "x", "CS101, X"},
	}
	for _, tt := range tests {
		if got := AddCourse(tt.selection, tt.course); got != tt.want {
			t.Errorf("AddCourse(%q, %q) = %q, want %q", tt.selection, tt.course, got, tt.want)
		}
	}
}

func TestAddCourse_RoundTripsThroughParseQuery(t *testing.T) {
	selection := ""
	for _, course := range []string{"math1", "cs101", "MATH1", "phys2"} {
		selection = AddCourse(selection, course)
	}
	q := ParseQuery(selection)
	want := []catalog.CourseCode{"MATH1", "CS101", "PHYS2"}
	if len(q) != len(want) {
		t.Fatalf("ParseQuery(%q) = %v, want %v", selection, q, want)
	}
	for i := range want {
		if q[i] != want[i] {
			t.Errorf("q[%d] = %q, want %q", i, q[i], want[i])
		}
	}
}

func TestRemoveCourse(t *testing.T) {
	if got := RemoveCourse("CS101, CS200, CS300", "cs200"); got != "CS101, CS300" {
		t.Errorf("RemoveCourse() = %q", got)
	}
	if got := RemoveCourse("CS101", "MATH1"); got != "CS101" {
		t.Errorf("RemoveCourse() of absent code = %q", got)
	}
	if got := RemoveCourse("CS101", "cs101"); got != "" {
		t.Errorf("RemoveCourse() of last code = %q", got)
	}
}
