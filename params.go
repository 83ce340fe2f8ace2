package stabletrack

// Params holds the tuning parameters for the reconciliation core.  The
// defaults were tuned against 25 FPS football footage but nothing in the
// core assumes a particular frame rate, only the duration thresholds do.
type Params struct {
	// RecordThreshold is the minimum detection confidence required for a
	// detection to be recorded into a tracks position history and to
	// count towards its persistence
	RecordThreshold float32
	// TrailThreshold is the minimum detection confidence required for a
	// detection to be appended to the rendering trail.  It is independent
	// of RecordThreshold
	TrailThreshold float32
	// TrailLength is the maximum number of recent positions kept per track
	// for trail rendering, oldest dropped first
	TrailLength int
	// MaxLostFrames is the number of frames a stable identity may remain
	// unseen before it is purged from the lost bookkeeping set.  The
	// identity and its accumulated state are kept regardless
	MaxLostFrames int
	// MaxMergeDistance is the average pixel distance between the trailing
	// samples of two tracks below which the merge pass unifies them
	MaxMergeDistance float64
	// MinMergeSamples is the minimum number of recorded position samples
	// both tracks need before they are considered for merging
	MinMergeSamples int
	// MinTrackLength is the minimum duration in frames for a track to be
	// considered established.  It is exposed separately from
	// MinMergeSamples on purpose, the two guards are independent
	MinTrackLength int
	// ExpectedObjectCount is the number of real world objects expected in
	// frame, used for the fragmentation ratio.  22 covers two football
	// teams
	ExpectedObjectCount int
	// LongTrackFrames, VeryLongTrackFrames and ExcellentTrackFrames are
	// the persistence thresholds used by the quality scorer.  At 25 FPS
	// the defaults correspond to 3, 6 and 10 seconds
	LongTrackFrames      int
	VeryLongTrackFrames  int
	ExcellentTrackFrames int
	// TraceLimit is the number of registry mapping events returned by
	// TraceHead for rendering to logs.  The full trace is kept internally
	TraceLimit int
}

// DefaultParams returns the default reconciliation parameters
func DefaultParams() Params {
	return Params{
		RecordThreshold:      0.3,
		TrailThreshold:       0.4,
		TrailLength:          20,
		MaxLostFrames:        30,
		MaxMergeDistance:     100,
		MinMergeSamples:      5,
		MinTrackLength:       15,
		ExpectedObjectCount:  22,
		LongTrackFrames:      75,
		VeryLongTrackFrames:  150,
		ExcellentTrackFrames: 250,
		TraceLimit:           20,
	}
}
