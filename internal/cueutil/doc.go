// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// Both file surfaces of provis (the provfile plan format and the user
// configuration) follow the same 3-step CUE parsing pattern:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to Go struct
//
// # Usage
//
//	//go:embed provfile_schema.cue
//	var schema string
//
//	result, err := cueutil.ParseAndDecode[Provfile](
//	    schema,
//	    userFileBytes,
//	    "#Provfile",
//	    cueutil.WithFilename("provfile.cue"),
//	)
//	if err != nil {
//	    return nil, err  // Error includes the CUE path of the invalid field
//	}
//	return result, nil
package cueutil
