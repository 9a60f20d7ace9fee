package ledger

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrpavithran/WorkShop/pkg/util/errorutil"
)

// Concurrent registrations must never push a workshop past its capacity even
// when many goroutines race for the last seats.
func TestConcurrentRegistrationRespectsCapacity(t *testing.T) {
	s := NewStore()
	capacity := 5
	w := s.CreateWorkshop(testWorkshop(capacity, 100))

	numRequests := 100
	var successCount int32
	var fullCount int32
	var otherCount int32

	var wg sync.WaitGroup
	wg.Add(numRequests)
	for i := 0; i < numRequests; i++ {
		go func(requestID int) {
			defer wg.Done()

			_, err := s.RegisterParticipant(w.ID, testParticipant(fmt.Sprintf("gopher%d@example.com", requestID)))
			switch {
			case err == nil:
				atomic.AddInt32(&successCount, 1)
			case errorutil.HasCode(err, "CAPACITY_EXCEEDED"):
				atomic.AddInt32(&fullCount, 1)
			default:
				atomic.AddInt32(&otherCount, 1)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, int32(capacity), successCount)
	require.Equal(t, int32(numRequests-capacity), fullCount)
	require.Zero(t, otherCount)

	final, err := s.GetWorkshop(w.ID)
	require.NoError(t, err)
	require.Equal(t, capacity, final.RegisteredCount)
	require.Len(t, s.RegistrationsForWorkshop(w.ID), capacity)
}
