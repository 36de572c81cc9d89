package application

import "time"

// Worker describes one workflow execution as the workflow server reports it.
type Worker struct {
	ID        string     `json:"id"`
	RunID     string     `json:"run_id"`
	Type      string     `json:"type"`
	Status    string     `json:"status"`
	StartTime time.Time  `json:"start_time"`
	CloseTime *time.Time `json:"close_time,omitempty"`
}

// StartOptions is what the manager needs the workflow server to start.
type StartOptions struct {
	ID           string
	WorkerType   string
	TaskQueue    string
	CronSchedule string
	Args         []any
}
