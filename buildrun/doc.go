// Package buildrun executes the packaging pipeline: ordered subprocess
// steps with first-failure short-circuiting.
//
// What:
//
//   - Runner runs Steps in order through an injectable ExecFunc.
//   - The first nonzero exit code stops the pipeline and propagates
//     unchanged; later steps are never invoked.
//   - Full success prints the banner exactly once and returns zero.
//
// Why:
//
//   - buildcheck needs exactly these semantics, and tests need to observe
//     sequencing without spawning processes.
//
// Errors:
//
//   - ErrNoSteps: a runner with an empty pipeline.
package buildrun
