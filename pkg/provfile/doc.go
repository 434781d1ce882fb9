// SPDX-License-Identifier: MPL-2.0

// Package provfile defines the provisioning plan file format.
//
// A provfile is a CUE document listing the ordered steps of a provisioning
// run. Each step carries a shell script to execute, an optional
// precondition that skips the step when its effect already exists, and a
// continue-on-failure policy (true by default: a failed step is recorded
// and the run moves on).
package provfile
