// Package batch drives region extraction across many documents and
// tags with per-item fault isolation.
//
// # Orchestration
//
// [Orchestrator.ExtractAll] produces exactly one [model.ExtractionResult]
// per (document, tag) pair and never aborts the batch: a missing
// buffer, a detached buffer, a scanned page, or a decode failure on
// one document turns into typed placeholder results for that
// document's tags while the remaining documents still run.
//
// Each document is decoded once and its element list reused across
// every tag, since decoding dominates the cost and filtering is cheap.
// Processing is strictly sequential, one document at a time and one
// tag at a time, so result order is deterministic and at most one
// element list is live at once.
//
// # Diagnostics
//
// An optional [Recorder] observes step events and a completion summary.
// It is purely advisory: no behavior depends on it. [NopRecorder] is
// the default, [CaptureRecorder] retains events for inspection, and
// [NewLogRecorder] forwards them to a logrus logger.
package batch
