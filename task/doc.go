// Package task provides bounded concurrent execution helpers.
//
// It offers three composable pieces:
//
//   - Pool: a bounded runner for fire-and-forget or future-backed work. Each
//     submission carries a generated run ID in its context, so logs and spans
//     from one task can be correlated.
//
//   - InvokeAllTimed: run a batch of value-producing tasks under a shared
//     deadline and collect, in task order, only the results that completed
//     successfully in time. Late and failed tasks are excluded from the
//     result set; they are not errors.
//
//   - Future: a one-shot promise with Then mapping and Fallback recovery,
//     for small asynchronous pipelines.
package task
