package enumap

import (
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
	"golang.org/x/sync/errgroup"
)

// Maps and sets are safe for concurrent readers as long as nothing
// mutates them. Run a pile of readers over a fixed map under -race.
func TestConcurrentReaders(t *testing.T) {
	m := Of(
		KV[Fruit, int]{Orange, 100},
		KV[Fruit, int]{Banana, 200},
	)
	s := m.KeySet()

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 1000; i++ {
				if v, ok := m.Get(Banana); !ok || v != 200 {
					return fmt.Errorf("got %d, %t for banana", v, ok)
				}
				total := 0
				for _, v := range m.All() {
					total += v
				}
				if total != 300 {
					return fmt.Errorf("values summed to %d", total)
				}
				if s.Contains(Grape) {
					return fmt.Errorf("grape crept into the key set")
				}
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}
