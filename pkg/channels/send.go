package channels

import "time"

// SendNonBlock delivers msg only if ch has room now. A full channel gives
// ErrChannelFull; a closed one gives ErrChannelClosed.
func SendNonBlock[T any](ch chan<- T, msg T) error {
	return send(ch, msg, nil)
}

// SendWithTimeout gives ch up to timeout to accept msg before failing with
// ErrChannelTimeout. A closed channel gives ErrChannelClosed.
func SendWithTimeout[T any](ch chan<- T, msg T, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	return send(ch, msg, timer.C)
}

// send blocks until expired fires; a nil expired never blocks.
func send[T any](ch chan<- T, msg T, expired <-chan time.Time) (err error) {
	defer func() {
		if recover() != nil {
			err = ErrChannelClosed
		}
	}()

	if expired == nil {
		select {
		case ch <- msg:
			return nil
		default:
			return ErrChannelFull
		}
	}

	select {
	case ch <- msg:
		return nil
	case <-expired:
		return ErrChannelTimeout
	}
}
