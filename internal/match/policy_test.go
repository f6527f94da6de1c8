package match

import (
	"math"
	"testing"
)

func uniformResult(records, fields int, fill string) *Result {
	header := make([]string, fields)
	for i := range header {
		header[i] = fieldName(i)
	}
	rows := make([][]string, records)
	for r := range rows {
		row := make([]string, fields)
		for c := range row {
			row[c] = fill
		}
		rows[r] = row
	}
	return &Result{Header: header, Rows: rows}
}

func fieldName(i int) string {
	return string(rune('A' + i))
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestZeroRecordsScoreZero(t *testing.T) {
	res := &Result{Header: []string{"A", "B"}}
	if got := Score("show ip route", res); got != 0 {
		t.Fatalf("zero-record score = %v, want 0", got)
	}
	if got := Score("show version", res); got != 0 {
		t.Fatalf("zero-record version score = %v, want 0", got)
	}
}

func TestVersionSingleRecordFactor(t *testing.T) {
	single := uniformResult(1, 5, "x")
	b := ScoreBreakdown("show version", single)
	if b.RecordCount != 30 {
		t.Fatalf("single version record factor = %v, want 30", b.RecordCount)
	}

	double := uniformResult(2, 5, "x")
	b2 := ScoreBreakdown("show version", double)
	if b2.RecordCount >= b.RecordCount {
		t.Fatalf("second record should lower the factor: %v", b2.RecordCount)
	}
	if b2.RecordCount != 10 {
		t.Fatalf("two-record version factor = %v, want 10", b2.RecordCount)
	}

	// The penalty floors at zero rather than going negative.
	many := uniformResult(9, 5, "x")
	if got := ScoreBreakdown("show version", many).RecordCount; got != 0 {
		t.Fatalf("nine-record version factor = %v, want 0", got)
	}
}

func TestRecordCountBreakpoints(t *testing.T) {
	cases := []struct {
		records int
		want    float64
	}{
		{1, 10},
		{2, 20},
		{3, 20},
		{5, 20 + 2*(10.0/7.0)},
		{10, 30},
		{50, 30},
	}
	for _, tc := range cases {
		b := ScoreBreakdown("show ip arp", uniformResult(tc.records, 4, "x"))
		if !almostEqual(b.RecordCount, tc.want) {
			t.Fatalf("records=%d: factor %v, want %v", tc.records, b.RecordCount, tc.want)
		}
	}
}

func TestFieldRichnessBreakpoints(t *testing.T) {
	cases := []struct {
		fields int
		want   float64
	}{
		{1, 5},
		{2, 10},
		{3, 10},
		{4, 10 + 10.0/3.0},
		{6, 20},
		{8, 25},
		{10, 30},
		{14, 30},
	}
	for _, tc := range cases {
		b := ScoreBreakdown("show ip arp", uniformResult(3, tc.fields, "x"))
		if !almostEqual(b.FieldRich, tc.want) {
			t.Fatalf("fields=%d: factor %v, want %v", tc.fields, b.FieldRich, tc.want)
		}
	}
}

func TestPopulationMonotonic(t *testing.T) {
	full := uniformResult(4, 4, "x")
	half := uniformResult(4, 4, "x")
	for r := range half.Rows {
		half.Rows[r][0] = ""
		half.Rows[r][1] = "   " // whitespace counts as unpopulated
	}
	empty := uniformResult(4, 4, "")

	fullScore := ScoreBreakdown("show ip arp", full).Population
	halfScore := ScoreBreakdown("show ip arp", half).Population
	emptyScore := ScoreBreakdown("show ip arp", empty).Population

	if fullScore != 25 {
		t.Fatalf("full population = %v, want 25", fullScore)
	}
	if !almostEqual(halfScore, 12.5) {
		t.Fatalf("half population = %v, want 12.5", halfScore)
	}
	if emptyScore != 0 {
		t.Fatalf("empty population = %v, want 0", emptyScore)
	}
	if !(fullScore > halfScore && halfScore > emptyScore) {
		t.Fatalf("population factor not monotonic: %v %v %v", fullScore, halfScore, emptyScore)
	}
}

func TestConsistencyFactor(t *testing.T) {
	// Single record is trivially consistent.
	if got := ScoreBreakdown("show ip arp", uniformResult(1, 4, "x")).Consistency; got != 15 {
		t.Fatalf("single record consistency = %v, want 15", got)
	}

	// Globally unused fields still count as consistent.
	unused := uniformResult(3, 4, "x")
	for r := range unused.Rows {
		unused.Rows[r][3] = ""
	}
	if got := ScoreBreakdown("show ip arp", unused).Consistency; got != 15 {
		t.Fatalf("unused-field consistency = %v, want 15", got)
	}

	// A sporadically filled field is inconsistent.
	sporadic := uniformResult(3, 4, "x")
	sporadic.Rows[1][3] = ""
	if got := ScoreBreakdown("show ip arp", sporadic).Consistency; !almostEqual(got, 3.0/4.0*15) {
		t.Fatalf("sporadic consistency = %v, want %v", got, 3.0/4.0*15)
	}
}

func TestReferenceScenario(t *testing.T) {
	// 3 records, 8 fields, fully populated and consistent, non-version.
	res := uniformResult(3, 8, "x")
	b := ScoreBreakdown("show ip interface brief", res)

	if !almostEqual(b.RecordCount, 20) {
		t.Fatalf("record factor = %v, want 20", b.RecordCount)
	}
	if !almostEqual(b.FieldRich, 25) {
		t.Fatalf("field factor = %v, want 25", b.FieldRich)
	}
	if !almostEqual(b.Population, 25) {
		t.Fatalf("population factor = %v, want 25", b.Population)
	}
	if !almostEqual(b.Consistency, 15) {
		t.Fatalf("consistency factor = %v, want 15", b.Consistency)
	}
	if !almostEqual(b.Total(), 85) {
		t.Fatalf("total = %v, want 85", b.Total())
	}
}

func TestTotalStaysInRange(t *testing.T) {
	shapes := []struct{ records, fields int }{
		{1, 1}, {1, 20}, {2, 3}, {10, 10}, {50, 2}, {3, 8},
	}
	for _, s := range shapes {
		total := Score("show foo", uniformResult(s.records, s.fields, "x"))
		if total < 0 || total > 100 {
			t.Fatalf("records=%d fields=%d: total %v outside [0,100]", s.records, s.fields, total)
		}
	}
}
