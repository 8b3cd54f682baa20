package domain

// Trigger identifies what started a run
type Trigger string

const (
	TriggerSchedule Trigger = "schedule"
	TriggerStartup  Trigger = "startup"
	TriggerManual   Trigger = "manual"
	TriggerOnce     Trigger = "once"
)
