// SPDX-License-Identifier: MPL-2.0

// Package sequencer runs provisioning plans: strictly sequential,
// best-effort execution of each step in plan order.
//
// The one deliberate behavioral contract of the whole tool lives here: a
// failed step is recorded and logged, never propagated. The run always
// proceeds to the next step (unless the plan explicitly opts a step out of
// continue-on-failure), and the process reports success regardless of step
// outcomes. Operators read the run log and the summary, not the exit code.
package sequencer
