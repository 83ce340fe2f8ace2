/*
go-stabletrack reconciles the volatile track identifiers produced by an
external detector/tracker into stable, human readable identities that
persist across the lifetime of a video.

Upstream trackers such as ByteTrack or BoT-SORT reassign their numeric IDs
whenever an object is occluded or lost, which makes the raw IDs useless for
reporting on real world objects like players on a field.  This package maps
every volatile ID to a monotonically increasing stable ID on first sight,
follows each stable identity through active and lost states, merges
identities that were fragmented by long occlusions once the stream has
ended, and scores the quality of the final set of tracks.

The core is strictly sequential and free of any detector, video, or model
dependencies.  Feed it detections one frame at a time through a Reconciler
and read back the resolved identities, then call Finalize at end of stream
for the merge pass and quality report.

See example code and usage in the example subdirectory.
*/
package stabletrack
