package term

import (
	"sort"
	"time"

	"github.com/thelolagemann/go-chip8/internal/keypad"
)

// latch turns the repeated key presses a terminal reports while a
// key is held into a press followed, once the reports stop, by a
// release.
type latch struct {
	hold time.Duration
	seen map[keypad.Key]time.Time
}

func newLatch(hold time.Duration) *latch {
	return &latch{hold: hold, seen: make(map[keypad.Key]time.Time)}
}

// press records k as seen at now. It returns true if k was not
// already held.
func (l *latch) press(k keypad.Key, now time.Time) bool {
	_, held := l.seen[k]
	l.seen[k] = now
	return !held
}

// expire releases every key not seen within the hold time of now,
// returning them in ascending order.
func (l *latch) expire(now time.Time) []keypad.Key {
	var released []keypad.Key
	for k, t := range l.seen {
		if now.Sub(t) >= l.hold {
			released = append(released, k)
			delete(l.seen, k)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}
