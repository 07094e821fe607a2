package spatial

import "math"

// kdTree is a static k-d tree stored in two flat slices.
//
// Entries are ordered so that for every range [left, right] larger than
// nodeSize, the median m = (left+right)/2 splits it on the range's axis:
// everything in [left, m) is <= coords[m] and everything in (m, right] is
// >= coords[m]. Axes alternate x, y, x, ... with depth. Ranges of nodeSize
// or fewer entries are leaves and are scanned linearly.
type kdTree struct {
	nodeSize int
	ids      []int
	coords   []float64 // x0, y0, x1, y1, ...
}

func newKDTree(entries []Entry, nodeSize int) *kdTree {
	t := &kdTree{
		nodeSize: nodeSize,
		ids:      make([]int, len(entries)),
		coords:   make([]float64, 2*len(entries)),
	}
	for i, e := range entries {
		t.ids[i] = e.ID
		t.coords[2*i] = e.X
		t.coords[2*i+1] = e.Y
	}
	t.sort(0, len(entries)-1, 0)
	return t
}

// sort arranges [left, right] into k-d order.
func (t *kdTree) sort(left, right, axis int) {
	if right-left <= t.nodeSize {
		return
	}
	m := (left + right) >> 1
	t.selectKth(m, left, right, axis)
	t.sort(left, m-1, 1-axis)
	t.sort(m+1, right, 1-axis)
}

// selectKth partially orders [left, right] so entry k holds the value that
// would be there if the range were sorted on axis (Floyd-Rivest selection).
func (t *kdTree) selectKth(k, left, right, axis int) {
	for right > left {
		if right-left > 600 {
			n := float64(right - left + 1)
			m := float64(k - left + 1)
			z := math.Log(n)
			s := 0.5 * math.Exp(2*z/3)
			sd := 0.5 * math.Sqrt(z*s*(n-s)/n)
			if m-n/2 < 0 {
				sd = -sd
			}
			newLeft := max(left, int(math.Floor(float64(k)-m*s/n+sd)))
			newRight := min(right, int(math.Floor(float64(k)+(n-m)*s/n+sd)))
			t.selectKth(k, newLeft, newRight, axis)
		}

		pivot := t.coords[2*k+axis]
		i, j := left, right

		t.swap(left, k)
		if t.coords[2*right+axis] > pivot {
			t.swap(left, right)
		}

		for i < j {
			t.swap(i, j)
			i++
			j--
			for t.coords[2*i+axis] < pivot {
				i++
			}
			for t.coords[2*j+axis] > pivot {
				j--
			}
		}

		if t.coords[2*left+axis] == pivot {
			t.swap(left, j)
		} else {
			j++
			t.swap(j, right)
		}

		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

func (t *kdTree) swap(i, j int) {
	t.ids[i], t.ids[j] = t.ids[j], t.ids[i]
	t.coords[2*i], t.coords[2*j] = t.coords[2*j], t.coords[2*i]
	t.coords[2*i+1], t.coords[2*j+1] = t.coords[2*j+1], t.coords[2*i+1]
}

func (t *kdTree) search(box Box, visit func(id int)) {
	if len(t.ids) == 0 {
		return
	}

	// Explicit stack of (left, right, axis) triples.
	stack := []int{0, len(t.ids) - 1, 0}
	for len(stack) > 0 {
		n := len(stack)
		left, right, axis := stack[n-3], stack[n-2], stack[n-1]
		stack = stack[:n-3]

		if right-left <= t.nodeSize {
			for i := left; i <= right; i++ {
				if box.Contains(t.coords[2*i], t.coords[2*i+1]) {
					visit(t.ids[i])
				}
			}
			continue
		}

		m := (left + right) >> 1
		x, y := t.coords[2*m], t.coords[2*m+1]
		if box.Contains(x, y) {
			visit(t.ids[m])
		}

		var lo, hi, v float64
		if axis == 0 {
			lo, hi, v = box.MinX, box.MaxX, x
		} else {
			lo, hi, v = box.MinY, box.MaxY, y
		}
		if lo <= v {
			stack = append(stack, left, m-1, 1-axis)
		}
		if hi >= v {
			stack = append(stack, m+1, right, 1-axis)
		}
	}
}
