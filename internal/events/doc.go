// Package events decouples the services that request background work from the
// task machinery that runs it. A service emits a TaskRequestEvent carrying a
// type and raw JSON payload; registered handlers turn it into a persisted
// task. Neither side imports the other, which keeps the service and task
// packages free of a dependency cycle.
package events
