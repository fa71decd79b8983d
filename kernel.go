package smooth

// Average computes one output pixel of the 3x3 box blur centred at (r, c).
//
// Neighbour rows outside [0, rows) are skipped entirely and neighbour
// columns outside [0, cols) are skipped cell by cell, so the average runs
// over 4 cells at a corner, 6 on an edge and 9 in the interior. Each
// channel is summed independently and divided by the surviving-cell count
// with truncating integer division.
//
// The caller guarantees 0 <= r < in.Rows() and 0 <= c < in.Cols().
func Average(in *Grid, r, c int) Pixel {
	var sum [Channels]int
	count := 0

	for rr := r - 1; rr <= r+1; rr++ {
		if rr < 0 || rr >= in.rows {
			continue
		}
		row := in.Row(rr)
		for cc := c - 1; cc <= c+1; cc++ {
			if cc < 0 || cc >= in.cols {
				continue
			}
			i := cc * Channels
			sum[0] += int(row[i+0])
			sum[1] += int(row[i+1])
			sum[2] += int(row[i+2])
			count++
		}
	}

	var out Pixel
	if count == 0 {
		return out
	}
	for ch := range out {
		out[ch] = clamp255(sum[ch] / count)
	}
	return out
}

func clamp255(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
