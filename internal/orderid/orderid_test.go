package orderid_test

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/recharge-gateway/internal/orderid"
)

var idPattern = regexp.MustCompile(`^ORDER[0-9]{21}$`)

func TestGenerate_Format(t *testing.T) {
	id := orderid.Generate()
	require.Regexp(t, idPattern, id)
}

func TestGenerate_ConcurrentIDsAreDistinct(t *testing.T) {
	const n = 100

	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- orderid.Generate()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		require.Regexp(t, idPattern, id)
		seen[id] = struct{}{}
	}
	require.Len(t, seen, n)
}
