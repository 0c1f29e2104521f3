package game

// turnLatch allows at most one direction change per tick.
//
// Contract: the latch is open after Reset and after every Tick. A successful
// SetDirection closes it; while closed every further SetDirection is
// dropped. Rejected requests (reversal, game over, invalid vector) leave it
// as it was.
type turnLatch struct {
	shut bool
}

func (l *turnLatch) close()       { l.shut = true }
func (l *turnLatch) open()        { l.shut = false }
func (l *turnLatch) closed() bool { return l.shut }
