package protolang

// Disallowed is the cost-matrix sentinel for a forbidden pairing, mirroring
// munkres.DISALLOWED in the Python original. It is a large finite value
// rather than +Inf so the potential-based solver below never produces NaN.
const Disallowed = 1e12

const infeasiblePotential = 1e18

// solveAssignment finds the minimum-cost perfect matching of an n×n cost
// matrix via the Hungarian algorithm (Kuhn–Munkres with vertex
// potentials), returning, for each row, the column it is matched to.
// Every matrix this module builds is square (see phonemedistance.go), so
// unlike Munkres.compute this never needs to handle rectangular input.
func solveAssignment(cost [][]float64) ([]int, error) {
	n := len(cost)
	if n == 0 {
		return nil, &AssignmentInfeasibleError{Rows: 0, Cols: 0}
	}
	for _, row := range cost {
		if len(row) != n {
			return nil, &AssignmentInfeasibleError{Rows: n, Cols: len(row)}
		}
	}

	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] = 1-based row matched to column j, 0 = unmatched
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = infeasiblePotential
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := infeasiblePotential
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 == -1 {
				return nil, &AssignmentInfeasibleError{Rows: n, Cols: n}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	result := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			result[p[j]-1] = j - 1
		}
	}
	return result, nil
}
