package game

// LaneCenters maps lane indices to horizontal center coordinates on the
// virtual canvas. Lanes split the canvas into equal-width bands;
// centers[i] = (canvasW/laneCount) * (i + 0.5).
//
// Callers that change the lane count must reassign every entity's x from
// its (unchanged) lane index; entities are never re-bucketed to a
// different lane.
func LaneCenters(laneCount int, canvasW float64) []float64 {
	centers := make([]float64, laneCount)
	width := canvasW / float64(laneCount)
	for i := range centers {
		centers[i] = width * (float64(i) + 0.5)
	}
	return centers
}
