// Completion: 100% - Work distribution complete
package engine

// WorkRange returns the half-open range [start, end) of items that worker
// should process when totalItems are split into contiguous chunks over
// workers. The remainder is spread over the first workers, one item each.
func WorkRange(worker, totalItems, workers int) (start, end int) {
	if workers <= 0 {
		workers = 1
	}
	chunkSize := totalItems / workers
	remainder := totalItems % workers

	start = worker*chunkSize + min(worker, remainder)
	end = start + chunkSize
	if worker < remainder {
		end++
	}
	return start, end
}
