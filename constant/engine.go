package constant

import "time"

// Frame Loop Timing
const (
	// TickInterval is the nominal frame interval (~29 Hz); input polling
	// consumes whatever budget rendering leaves within each tick
	TickInterval = 34 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel feeding
	// the frame loop
	EventQueueSize = 256
)

// Physics Parallelism
const (
	// ParallelThreshold is the field size above which the integration step
	// is partitioned across workers; small fields stay single-threaded
	ParallelThreshold = 4096
)
