package agent

// Agent defines the minimal lifecycle contract for the runnable agent
// application.
type Agent interface {
	// Run starts the agent and blocks until shutdown.
	Run() error
}
