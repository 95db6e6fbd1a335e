package polynomial

// generatePairs returns the (first, second) index pairs into a length-total
// evaluation vector whose entries differ only in variable varIndex, under the
// convention that variable 0 is the most significant bit of the index.
// PartialEval relies on this pairing to know which two evaluation slots
// collapse into one when a variable is fixed.
func generatePairs(total, varIndex int) [][2]int {
	step := 1 << varIndex
	blockSize := total / step
	half := blockSize / 2

	pairs := make([][2]int, 0, total/2)
	for block := 0; block < step; block++ {
		base := block * blockSize
		for i := 0; i < half; i++ {
			first := base + i
			pairs = append(pairs, [2]int{first, first + half})
		}
	}
	return pairs
}
