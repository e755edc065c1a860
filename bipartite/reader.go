package bipartite

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// FromMatrix reads the dense-matrix format of §6:
//
//	n
//	w_{0,0} w_{0,1} ... w_{0,n-1}
//	w_{1,0} ...
//	...
//	w_{n-1,0} ... w_{n-1,n-1}
//
// Whitespace-separated signed integers. A trailing expected-maximum value
// (used by test oracles) is ignored if present. Malformed input returns
// ErrInputSize or ErrInputToken wrapped with the offending token's
// context, never a panic — parsing is the reader's concern, not the
// solver's (spec §4.3.4).
// Complexity: O(n²).
func FromMatrix(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	nextInt := func(what string) (int64, error) {
		if !sc.Scan() {
			return 0, fmt.Errorf("%w: expected %s, reached end of input", ErrInputSize, what)
		}
		tok := sc.Text()
		val, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a valid integer (%s)", ErrInputToken, tok, what)
		}

		return val, nil
	}

	nRaw, err := nextInt("matrix size n")
	if err != nil {
		return nil, err
	}
	if nRaw <= 0 {
		return nil, fmt.Errorf("%w: n must be > 0, got %d", ErrInputSize, nRaw)
	}
	n := int(nRaw)

	w := make([][]int64, n)
	for i := 0; i < n; i++ {
		w[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			val, err := nextInt(fmt.Sprintf("w[%d][%d]", i, j))
			if err != nil {
				return nil, err
			}
			w[i][j] = val
		}
	}

	// A trailing expected-maximum oracle value, if present, is ignored.
	return NewFromWeights(w)
}
