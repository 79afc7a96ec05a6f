package worker

// Pool defaults
const (
	DefaultWorkers   = 2
	DefaultQueueSize = 64
)

// Log messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanic    = "Worker job panicked"
	LogMsgWorkerQueueFull   = "Worker queue full, job dropped"
	LogMsgWorkerPoolStopped = "Worker pool stopped"
)
