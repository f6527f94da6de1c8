package match

import "strings"

// Factor ceilings. The four factors sum to at most 100.
const (
	recordFactorMax      = 30.0
	fieldFactorMax       = 30.0
	populationFactorMax  = 25.0
	consistencyFactorMax = 15.0
)

// Record-count breakpoints. Commands labeled "version" are expected to
// parse into exactly one record; everything else is expected to produce
// tabular output, saturating at 10 records.
const (
	versionSingleRecordScore = 30.0
	versionPenaltyBase       = 15.0
	versionPenaltyPerRecord  = 5.0

	recordSaturation = 10
	recordMidpoint   = 3
	recordMidBase    = 20.0
	recordMidSlope   = 10.0 / 7.0
	recordLowPerUnit = 10.0
)

// Field-richness breakpoints: saturates at 10 fields, with knees at 6 and 3.
const (
	fieldSaturation = 10
	fieldUpperKnee  = 6
	fieldUpperBase  = 20.0
	fieldUpperSlope = 2.5
	fieldLowerKnee  = 3
	fieldLowerBase  = 10.0
	fieldLowerSlope = 10.0 / 3.0
	fieldLowPerUnit = 5.0
)

// Breakdown holds the four sub-scores of one (template, result) pair.
type Breakdown struct {
	RecordCount float64
	FieldRich   float64
	Population  float64
	Consistency float64
}

// Total sums the four factors into the 0-100 score.
func (b Breakdown) Total() float64 {
	return b.RecordCount + b.FieldRich + b.Population + b.Consistency
}

// Score computes the 0-100 quality score for a template's parse of some
// raw text. A result with zero records scores 0 regardless of template.
func Score(commandLabel string, res *Result) float64 {
	return ScoreBreakdown(commandLabel, res).Total()
}

// ScoreBreakdown computes the per-factor scores. commandLabel is the
// template's command label; a label containing "version" switches the
// record-count factor to single-record expectations.
func ScoreBreakdown(commandLabel string, res *Result) Breakdown {
	records := res.RecordCount()
	if records == 0 {
		return Breakdown{}
	}
	fields := res.FieldCount()
	isVersion := strings.Contains(strings.ToLower(commandLabel), "version")

	return Breakdown{
		RecordCount: recordCountScore(records, isVersion),
		FieldRich:   fieldRichnessScore(fields),
		Population:  populationScore(res),
		Consistency: consistencyScore(res),
	}
}

func recordCountScore(records int, isVersion bool) float64 {
	if isVersion {
		if records == 1 {
			return versionSingleRecordScore
		}
		score := versionPenaltyBase - float64(records-1)*versionPenaltyPerRecord
		if score < 0 {
			return 0
		}
		return score
	}
	switch {
	case records >= recordSaturation:
		return recordFactorMax
	case records >= recordMidpoint:
		return recordMidBase + float64(records-recordMidpoint)*recordMidSlope
	default:
		return float64(records) * recordLowPerUnit
	}
}

func fieldRichnessScore(fields int) float64 {
	switch {
	case fields >= fieldSaturation:
		return fieldFactorMax
	case fields >= fieldUpperKnee:
		return fieldUpperBase + float64(fields-fieldUpperKnee)*fieldUpperSlope
	case fields >= fieldLowerKnee:
		return fieldLowerBase + float64(fields-fieldLowerKnee)*fieldLowerSlope
	default:
		return float64(fields) * fieldLowPerUnit
	}
}

func populationScore(res *Result) float64 {
	totalCells := res.RecordCount() * res.FieldCount()
	if totalCells == 0 {
		return 0
	}
	populated := 0
	for _, row := range res.Rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				populated++
			}
		}
	}
	return float64(populated) / float64(totalCells) * populationFactorMax
}

// consistencyScore rewards fields that are populated either in every record
// or in none (globally unused fields are acceptable, e.g. vendor-specific
// columns). Sporadic fill is evidence of a template mismatched to the
// data's structure even when it technically parses.
func consistencyScore(res *Result) float64 {
	records := res.RecordCount()
	if records <= 1 {
		// A single record is trivially consistent.
		return consistencyFactorMax
	}
	fields := res.FieldCount()
	if fields == 0 {
		return 0
	}

	fillCounts := make([]int, fields)
	for _, row := range res.Rows {
		for i, cell := range row {
			if strings.TrimSpace(cell) != "" {
				fillCounts[i]++
			}
		}
	}
	consistent := 0
	for _, count := range fillCounts {
		if count == 0 || count == records {
			consistent++
		}
	}
	return float64(consistent) / float64(fields) * consistencyFactorMax
}
