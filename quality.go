package stabletrack

// Rating is the categorical quality rating derived from the quality score
type Rating string

const (
	RatingExcellent Rating = "EXCELLENT"
	RatingGood      Rating = "GOOD"
	RatingFair      Rating = "FAIR"
	RatingPoor      Rating = "POOR"
)

// QualityReport holds the aggregate track quality metrics computed over
// the final set of stable identities after merging
type QualityReport struct {
	// TotalTracks is the number of final tracks with recorded history
	TotalTracks int
	// LongTracks counts tracks persisting beyond LongTrackFrames
	LongTracks int
	// VeryLongTracks counts tracks persisting beyond VeryLongTrackFrames
	VeryLongTracks int
	// ExcellentTracks counts tracks persisting beyond ExcellentTrackFrames
	ExcellentTracks int
	// TotalVolatileIDs is the number of distinct upstream IDs ever seen
	TotalVolatileIDs int
	// FragmentationRatio is total tracks over the expected object count,
	// higher means more fragmented
	FragmentationRatio float64
	// PersistenceRate is the fraction of tracks counted as long
	PersistenceRate float64
	// ExcellenceRate is the fraction of tracks counted as excellent
	ExcellenceRate float64
	// IDEfficiency is final tracks over distinct volatile IDs, a ratio
	// at most 1 where higher means less fragmentation per real object
	IDEfficiency float64
	// Score is the bounded overall quality score in [0,100]
	Score int
	// Rating is the categorical rating for Score
	Rating Rating
}

// Scorer computes quality reports from final track durations.  It is a
// pure function of its inputs, scoring an empty stream yields zero rates
// without error
type Scorer struct {
	params Params
}

// NewScorer returns a scorer using the duration thresholds and expected
// object count from the given parameters
func NewScorer(p Params) *Scorer {
	return &Scorer{params: p}
}

// Score computes the quality report from the persistence duration of each
// final track and the total number of distinct volatile IDs observed
func (s *Scorer) Score(durations map[StableID]int, totalVolatile int) QualityReport {

	r := QualityReport{
		TotalTracks:      len(durations),
		TotalVolatileIDs: totalVolatile,
	}

	for _, d := range durations {
		if d > s.params.LongTrackFrames {
			r.LongTracks++
		}
		if d > s.params.VeryLongTrackFrames {
			r.VeryLongTracks++
		}
		if d > s.params.ExcellentTrackFrames {
			r.ExcellentTracks++
		}
	}

	if r.TotalTracks > 0 {
		r.FragmentationRatio = float64(r.TotalTracks) / float64(s.params.ExpectedObjectCount)
		r.PersistenceRate = float64(r.LongTracks) / float64(r.TotalTracks)
		r.ExcellenceRate = float64(r.ExcellentTracks) / float64(r.TotalTracks)
	}

	divisor := totalVolatile

	if divisor < 1 {
		divisor = 1
	}

	r.IDEfficiency = float64(r.TotalTracks) / float64(divisor)

	r.Score = s.score(r)
	r.Rating = ScoreRating(r.Score)

	return r
}

// score applies the banded contribution table to the computed metrics
func (s *Scorer) score(r QualityReport) int {

	score := 0

	if r.FragmentationRatio <= 1.5 {
		score += 35
	} else if r.FragmentationRatio <= 2.0 {
		score += 25
	}

	if r.PersistenceRate >= 0.7 {
		score += 25
	} else if r.PersistenceRate >= 0.5 {
		score += 15
	}

	if r.IDEfficiency >= 0.9 {
		score += 25
	} else if r.IDEfficiency >= 0.8 {
		score += 20
	}

	if r.ExcellenceRate >= 0.3 {
		score += 15
	}

	return score
}

// ScoreRating returns the categorical rating for a quality score
func ScoreRating(score int) Rating {

	switch {
	case score >= 85:
		return RatingExcellent
	case score >= 70:
		return RatingGood
	case score >= 50:
		return RatingFair
	default:
		return RatingPoor
	}
}
