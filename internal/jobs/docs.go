// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish stored domain events to the message broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(outboxRepo, publisher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay job uses the cron expression "* * * * * *" which means it runs
// every second, keeping event delivery latency low without a dedicated
// change-data-capture pipeline.
//
// # Error Handling
//
// The relay job stops a batch at the first failure and retries the remaining
// messages on the next tick; outbox messages are only marked published after
// the broker accepted them.
package jobs
