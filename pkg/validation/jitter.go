package validation

import (
	"github.com/aprl-ssp/ctypes/pkg/table"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Jitter draws n pairs of Gaussian noise values with zero mean and
// standard deviation sigma. Values are drawn pair by pair, x first, so the
// same seed always gives the same noise for the same n.
func Jitter(n int, sigma float64, seed uint64) (dx, dy []float64) {
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.NewSource(seed)}
	dx = make([]float64, n)
	dy = make([]float64, n)
	for i := 0; i < n; i++ {
		dx[i] = dist.Rand()
		dy[i] = dist.Rand()
	}
	return dx, dy
}

// Jittered returns point coordinates with Gaussian noise added to spread
// overlapping points. When all values are the same the y noise is dropped.
func (p *Points) Jittered(sigma float64, seed uint64) (xs, ys []float64) {
	n := p.Len()
	dx, dy := Jitter(n, sigma, seed)
	flat := len(table.Distinct(p.Values)) == 1

	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = float64(p.Codes[i]) + dx[i]
		ys[i] = p.Values[i]
		if !flat {
			ys[i] += dy[i]
		}
	}
	return xs, ys
}
