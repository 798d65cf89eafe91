/*
Package resilience provides a circuit breaker for the upstream Gemini call.

The breaker is optional (GEMINI_BREAKER_ENABLED). When enabled it stops
hammering an upstream that keeps failing and answers immediately with
ErrCircuitOpen until the open timeout elapses.

# Usage

	breaker := resilience.New("gemini", resilience.Settings{
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// client errors say nothing about upstream health
			return isClientError(err)
		},
	})

	resp, err := resilience.Execute(breaker, func() (*Response, error) {
		return client.Call(ctx)
	})

# States

	Closed --[ReadyToTrip]-> Open --[Timeout]-> Half-Open --[MaxRequests successes]-> Closed
	                                               |
	                                           [failure]
	                                               v
	                                              Open
*/
package resilience
