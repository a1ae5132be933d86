// postprocess.go: reshaping of raw network output for downstream stitching.
package phasenet

// PostprocessWindow transposes a class probability window from classes by
// time to time by classes, the row-major layout window stitching indexes by
// time. Pure shape transform, values are unchanged.
func PostprocessWindow(pred [][]float64) [][]float64 {
	if len(pred) == 0 {
		return nil
	}
	classes := len(pred)
	n := len(pred[0])
	out := make([][]float64, n)
	for j := 0; j < n; j++ {
		row := make([]float64, classes)
		for c := 0; c < classes; c++ {
			row[c] = pred[c][j]
		}
		out[j] = row
	}
	return out
}
