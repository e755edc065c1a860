package present

import (
	"fmt"
	"io"

	"github.com/katalvlaran/bimatch/bipartite"
)

// Matrix writes a row-wise dump of inst's original weight matrix to w,
// one bracketed row per S-vertex, matching matrix.Dense.String's style.
func Matrix(w io.Writer, inst *bipartite.Instance) error {
	n := inst.N()
	for i := 0; i < n; i++ {
		if _, err := io.WriteString(w, "["); err != nil {
			return err
		}
		for j := 0; j < n; j++ {
			raw, err := inst.Raw(i, n+j)
			if err != nil {
				return err
			}
			// A matched edge's sign is flipped in storage; present the
			// original-sign weight regardless of current match state.
			if inst.Matched(i) == n+j {
				raw = -raw
			}
			if j > 0 {
				if _, err := io.WriteString(w, ", "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%d", raw); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "]\n"); err != nil {
			return err
		}
	}

	return nil
}

// Matching writes one "u v" pair per line to w for every matched
// S-vertex in m, u in [0,n) and v in [n,2n).
func Matching(w io.Writer, inst *bipartite.Instance, m []int) error {
	n := inst.N()
	for i := 0; i < n; i++ {
		if m[i] == bipartite.NullNode {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d %d\n", i, m[i]); err != nil {
			return err
		}
	}

	return nil
}
