package channels

import "time"

// ReceiveAll collects values from ch until it is closed, no value arrives
// for idle, or limit values were read. A limit of zero means no limit.
func ReceiveAll[T any](ch <-chan T, idle time.Duration, limit int) []T {
	var out []T

	timer := time.NewTimer(idle)
	defer timer.Stop()

	for limit == 0 || len(out) < limit {
		select {
		case v, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, v)
			timer.Reset(idle)
		case <-timer.C:
			return out
		}
	}

	return out
}
