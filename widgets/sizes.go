package widgets

import "math"

// fitSizes shrinks the widest entry one cell at a time until sizes fit targetSize,
// then spreads any slack across entries with a positive flex.
func fitSizes(targetSize int, sizes []int, flexes []int) []int {
	result := make([]int, len(sizes))
	totalSize, totalFlex := 0, 0
	for i, size := range sizes {
		result[i] = size
		totalSize += size
		totalFlex += flexes[i]
	}
	for totalSize > targetSize {
		idx := 0
		for i, size := range result {
			if result[idx] < size {
				idx = i
			}
		}
		if result[idx] <= 1 {
			break
		}
		result[idx]--
		totalSize--
	}

	if totalFlex == 0 || totalSize >= targetSize {
		return result
	}

	diff := targetSize - totalSize
	for i, flex := range flexes {
		result[i] += int(math.Floor(float64(diff*flex) / float64(totalFlex)))
	}
	totalSize = 0
	for _, size := range result {
		totalSize += size
	}
	for i := range result {
		if totalSize == targetSize {
			break
		}
		if flexes[i] > 0 {
			result[i]++
			totalSize++
		}
	}
	return result
}
