package stabletrack

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// TrackSummary is the end of stream record for one final stable identity
type TrackSummary struct {
	// ID is the stable identity
	ID StableID
	// Duration is the persistence count in frames
	Duration int
	// Indicator is the per track quality label, one of EXCELLENT,
	// VERY GOOD, GOOD or STANDARD
	Indicator string
	// VolatileIDs is the provenance list of upstream IDs aggregated
	// under this identity
	VolatileIDs []VolatileID
}

// Summary is the end of stream output of the reconciler, produced by
// Finalize after the merge pass has run
type Summary struct {
	// FramesProcessed is the number of frames applied to state
	FramesProcessed int
	// SkippedFrames is the number of frames rejected whole
	SkippedFrames int
	// SkippedDetections is the number of malformed detections dropped
	SkippedDetections int
	// VolatileIDs is the number of distinct upstream IDs observed
	VolatileIDs int
	// StableIDsCreated counts every stable identity ever assigned,
	// including identities later merged away
	StableIDsCreated int
	// MergedTracks is the number of merges the post pass performed
	MergedTracks int
	// Tracks lists every final identity, longest duration first
	Tracks []TrackSummary
	// Quality is the aggregate quality report
	Quality QualityReport
}

// trackIndicator returns the per track quality label for a persistence
// duration
func trackIndicator(duration int, p Params) string {

	switch {
	case duration > p.ExcellentTrackFrames:
		return "EXCELLENT"
	case duration > p.VeryLongTrackFrames:
		return "VERY GOOD"
	case duration > p.LongTrackFrames:
		return "GOOD"
	default:
		return "STANDARD"
	}
}

// newSummary assembles the end of stream summary from the reconcilers
// final state
func newSummary(r *Reconciler, merged int) *Summary {

	ids := r.store.RecordedIDs()

	durations := make(map[StableID]int, len(ids))
	tracks := make([]TrackSummary, 0, len(ids))

	for _, id := range ids {

		state, _ := r.store.Get(id)

		durations[id] = state.Persistence()

		tracks = append(tracks, TrackSummary{
			ID:          id,
			Duration:    state.Persistence(),
			Indicator:   trackIndicator(state.Persistence(), r.params),
			VolatileIDs: r.registry.VolatileIDs(id),
		})
	}

	// longest first, ascending ID on ties so the order is deterministic
	sort.Slice(tracks, func(i, j int) bool {
		if tracks[i].Duration != tracks[j].Duration {
			return tracks[i].Duration > tracks[j].Duration
		}
		return tracks[i].ID < tracks[j].ID
	})

	return &Summary{
		FramesProcessed:   r.framesProcessed,
		SkippedFrames:     r.skippedFrames,
		SkippedDetections: r.skippedDetections,
		VolatileIDs:       r.registry.VolatileCount(),
		StableIDsCreated:  r.registry.StableCount(),
		MergedTracks:      merged,
		Tracks:            tracks,
		Quality:           NewScorer(r.params).Score(durations, r.registry.VolatileCount()),
	}
}

// TopTracks returns the n longest duration tracks
func (s *Summary) TopTracks(n int) []TrackSummary {

	if n > len(s.Tracks) {
		n = len(s.Tracks)
	}

	if n < 0 {
		n = 0
	}

	out := make([]TrackSummary, n)
	copy(out, s.Tracks[:n])
	return out
}

// WriteText renders the summary as a plain text analysis report.  The
// frame rate is only used to convert durations into seconds, pass the
// source video FPS or zero for the 25 FPS default
func (s *Summary) WriteText(w io.Writer, fps float64) error {

	if fps <= 0 {
		fps = 25
	}

	rule := strings.Repeat("-", 40)

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(&b, "TRACKING ANALYSIS COMPLETE\n")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(&b, "Total frames processed: %d\n", s.FramesProcessed)

	if s.SkippedFrames > 0 || s.SkippedDetections > 0 {
		fmt.Fprintf(&b, "Skipped frames: %d, skipped detections: %d\n",
			s.SkippedFrames, s.SkippedDetections)
	}

	fmt.Fprintf(&b, "Tracks merged: %d\n", s.MergedTracks)

	fmt.Fprintf(&b, "\nID MANAGEMENT SUMMARY\n%s\n", rule)
	fmt.Fprintf(&b, "Volatile IDs encountered: %d\n", s.VolatileIDs)
	fmt.Fprintf(&b, "Stable IDs created: %d\n", s.StableIDsCreated)
	fmt.Fprintf(&b, "Final tracks after merging: %d\n", s.Quality.TotalTracks)
	fmt.Fprintf(&b, "ID management efficiency: %.1f%%\n", s.Quality.IDEfficiency*100)

	finalTracks := s.Quality.TotalTracks

	if finalTracks < 1 {
		finalTracks = 1
	}

	fmt.Fprintf(&b, "ID reduction ratio: %.1f:1\n",
		float64(s.VolatileIDs)/float64(finalTracks))

	fmt.Fprintf(&b, "\nTRACKING QUALITY ANALYSIS\n%s\n", rule)
	fmt.Fprintf(&b, "Total tracks: %d\n", s.Quality.TotalTracks)
	fmt.Fprintf(&b, "Long duration tracks: %d\n", s.Quality.LongTracks)
	fmt.Fprintf(&b, "Very long duration tracks: %d\n", s.Quality.VeryLongTracks)
	fmt.Fprintf(&b, "Excellent tracks: %d\n", s.Quality.ExcellentTracks)
	fmt.Fprintf(&b, "Track persistence rate: %.1f%%\n", s.Quality.PersistenceRate*100)
	fmt.Fprintf(&b, "Track fragmentation ratio: %.1fx\n", s.Quality.FragmentationRatio)

	fmt.Fprintf(&b, "\nOVERALL QUALITY SCORE\n%s\n", rule)
	fmt.Fprintf(&b, "Quality Score: %d/100\n", s.Quality.Score)
	fmt.Fprintf(&b, "Rating: %s\n", s.Quality.Rating)

	fmt.Fprintf(&b, "\nTOP PERFORMING TRACKS\n%s\n", rule)

	for _, track := range s.TopTracks(10) {

		provenance := fmt.Sprintf(" (mapped from %d volatile IDs)",
			len(track.VolatileIDs))

		if len(track.VolatileIDs) <= 3 {
			provenance = fmt.Sprintf(" (mapped from volatile IDs: %v)",
				track.VolatileIDs)
		}

		fmt.Fprintf(&b, "%10s | Stable ID %d: %d frames (%.1fs)%s\n",
			track.Indicator, track.ID, track.Duration,
			float64(track.Duration)/fps, provenance)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
