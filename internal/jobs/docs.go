// Package jobs provides scheduled background tasks for QuickDrop.
//
// Jobs are cron-driven using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. PaymentReconciliationJob - by default once a minute, finds stored payments
// whose parcel is still unpaid and marks the parcel paid with the payment's
// transaction id
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconcileHandler, cfg.ReconcileSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A sweep applies every payment in its own transaction. Failures are counted
// and logged together after the batch; they never stop the scheduler. A sweep
// that is still running when the next tick fires causes that tick to be skipped.
package jobs
