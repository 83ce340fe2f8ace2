/*
Example demonstrating stable identity reconciliation over a recorded
detection stream.

The upstream detector/tracker runs offline and writes one JSON object per
detection, eg:

	{"frame":1,"id":42,"box":[104.5,220.0,162.5,388.0],"conf":0.91}

Boxes are in top left x, top left y, bottom right x, bottom right y pixel
coordinates.  When a source video is supplied the resolved identities are
drawn back onto it with per identity colors and trails.
*/
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	stabletrack "github.com/stabletrack/go-stabletrack"
	"github.com/stabletrack/go-stabletrack/render"
	"gocv.io/x/gocv"
)

// detRecord is one line of the detection stream file
type detRecord struct {
	Frame int        `json:"frame"`
	ID    int64      `json:"id"`
	Box   [4]float32 `json:"box"`
	Conf  float32    `json:"conf"`
}

func main() {

	detFile := flag.String("d", "detections.jsonl",
		"JSONL detection stream produced by the upstream tracker")
	vidFile := flag.String("v", "", "Optional source video to overlay")
	outFile := flag.String("o", "output_tracking.mp4",
		"Overlay output video file")
	mapFile := flag.String("m", "", "Optional trajectory map PNG output")
	paramsFile := flag.String("p", "",
		"Optional TOML file with parameter overrides")
	fps := flag.Float64("fps", 25, "Frame rate used for duration reporting")
	mapW := flag.Int("mapw", 1280, "Trajectory map source width")
	mapH := flag.Int("maph", 720, "Trajectory map source height")

	flag.Parse()

	err := run(*detFile, *vidFile, *outFile, *mapFile, *paramsFile,
		*fps, *mapW, *mapH)

	if err != nil {
		log.Fatal("Error: ", err)
	}
}

func run(detFile, vidFile, outFile, mapFile, paramsFile string,
	fps float64, mapW, mapH int) error {

	params, err := loadParams(paramsFile)

	if err != nil {
		return fmt.Errorf("error loading parameters: %w", err)
	}

	frames, order, err := loadDetections(detFile)

	if err != nil {
		return fmt.Errorf("error loading detections: %w", err)
	}

	log.Printf("Loaded detections for %d frames", len(order))

	rec := stabletrack.New(params)

	if vidFile != "" {
		err = processWithVideo(rec, frames, vidFile, outFile)
	} else {
		err = process(rec, frames, order)
	}

	if err != nil {
		return err
	}

	// show how the first stable identities were assigned
	for _, ev := range rec.TraceHead(params.TraceLimit) {
		log.Printf("NEW MAPPING: volatile ID %d assigned to stable ID %d (frame %d)",
			ev.Volatile, ev.Stable, ev.Frame)
	}

	summary, err := rec.Finalize()

	if err != nil {
		return fmt.Errorf("error finalizing: %w", err)
	}

	if err := summary.WriteText(os.Stdout, fps); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	if mapFile != "" {
		if err := writeTrajectoryMap(rec, summary, mapFile, mapW, mapH); err != nil {
			return fmt.Errorf("error writing trajectory map: %w", err)
		}
	}

	return nil
}

// loadParams returns the default parameters with any overrides from the
// given TOML file applied
func loadParams(file string) (stabletrack.Params, error) {

	params := stabletrack.DefaultParams()

	if file == "" {
		return params, nil
	}

	buf, err := os.ReadFile(file)

	if err != nil {
		return params, fmt.Errorf("error reading file: %w", err)
	}

	if err := toml.Unmarshal(buf, &params); err != nil {
		return params, fmt.Errorf("error parsing TOML: %w", err)
	}

	return params, nil
}

// loadDetections reads the JSONL detection stream and groups detections by
// frame index, returning the groups and the sorted frame order
func loadDetections(file string) (map[int][]stabletrack.Detection, []int, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	frames := make(map[int][]stabletrack.Detection)

	scanner := bufio.NewScanner(f)

	for scanner.Scan() {

		line := scanner.Bytes()

		if len(line) == 0 {
			continue
		}

		var rec detRecord

		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, nil, fmt.Errorf("error parsing line: %w", err)
		}

		frames[rec.Frame] = append(frames[rec.Frame], stabletrack.NewDetection(
			stabletrack.VolatileID(rec.ID),
			stabletrack.GenerateRectByTlbr(rec.Box[0], rec.Box[1], rec.Box[2], rec.Box[3]),
			rec.Conf,
		))
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("error reading file: %w", err)
	}

	order := make([]int, 0, len(frames))

	for frame := range frames {
		order = append(order, frame)
	}

	sort.Ints(order)

	return frames, order, nil
}

// process feeds the detection stream through the reconciler without video
// rendering
func process(rec *stabletrack.Reconciler, frames map[int][]stabletrack.Detection,
	order []int) error {

	for _, frame := range order {

		_, err := rec.ProcessFrame(frame, frames[frame])

		if err != nil {
			return fmt.Errorf("error processing frame %d: %w", frame, err)
		}

		if rec.FramesProcessed()%50 == 0 {
			log.Printf("Processing: frame %d | active tracks: %d | stable IDs: %d",
				frame, rec.ActiveCount(), rec.StableCount())
		}
	}

	return nil
}

// processWithVideo feeds the detection stream through the reconciler and
// renders resolved identities onto every source video frame
func processWithVideo(rec *stabletrack.Reconciler,
	frames map[int][]stabletrack.Detection, vidFile, outFile string) error {

	vid, err := gocv.VideoCaptureFile(vidFile)

	if err != nil {
		return fmt.Errorf("error opening video file %s: %w", vidFile, err)
	}

	defer vid.Close()

	vidFps := vid.Get(gocv.VideoCaptureFPS)
	width := int(vid.Get(gocv.VideoCaptureFrameWidth))
	height := int(vid.Get(gocv.VideoCaptureFrameHeight))

	log.Printf("Video properties: %dx%d pixels, %.1f FPS", width, height, vidFps)

	writer, err := gocv.VideoWriterFile(outFile, "mp4v", vidFps,
		width, height, true)

	if err != nil {
		return fmt.Errorf("error opening video writer: %w", err)
	}

	defer writer.Close()

	img := gocv.NewMat()
	defer img.Close()

	font := render.DefaultFont()
	trailStyle := render.DefaultTrailStyle()

	frame := 0

	for {
		if ok := vid.Read(&img); !ok || img.Empty() {
			break
		}

		frame++

		resolved, err := rec.ProcessFrame(frame, frames[frame])

		if err != nil {
			return fmt.Errorf("error processing frame %d: %w", frame, err)
		}

		render.Trails(&img, resolved, trailStyle)
		render.TrackBoxes(&img, resolved, font)

		if err := writer.Write(img); err != nil {
			return fmt.Errorf("error writing frame %d: %w", frame, err)
		}

		if frame%50 == 0 {
			log.Printf("Processing: frame %d | active tracks: %d | stable IDs: %d",
				frame, rec.ActiveCount(), rec.StableCount())
		}
	}

	log.Printf("Output file saved: %s", outFile)

	return nil
}

// writeTrajectoryMap renders the full position history of every final
// track to a PNG pitch map
func writeTrajectoryMap(rec *stabletrack.Reconciler, summary *stabletrack.Summary,
	file string, width, height int) error {

	paths := make([]render.TrackPath, 0, len(summary.Tracks))

	for _, track := range summary.Tracks {

		state, exists := rec.Track(track.ID)

		if !exists {
			continue
		}

		paths = append(paths, render.TrackPath{
			ID:     track.ID,
			Points: state.Positions(),
		})
	}

	img := render.TrajectoryMap(paths, width, height, width, height)

	f, err := os.Create(file)

	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("error encoding PNG: %w", err)
	}

	log.Printf("Trajectory map saved: %s", file)

	return nil
}
