package ui

import "os"

// LicenseFileName is where the notice is mirrored in the working directory
// on every run.
const LicenseFileName = "LICENSE.txt"

const LicenseText = `Dubalign — Proprietary License
All Rights Reserved.

This software (the "Software"), including all source code, documentation,
and associated files, is confidential and proprietary.

PERMITTED USE:
  - Internal use by authorized employees or contractors, subject to any
    applicable internal policies and agreements.

PROHIBITED WITHOUT EXPRESS PRIOR WRITTEN PERMISSION:
  - Copying, reproducing, sublicensing, distributing, or making the
    Software or its outputs available to any third party.
  - Modifying, merging, reverse-engineering, or creating derivative works
    for external distribution.
  - Use for commercial, academic, or public services.

DISCLAIMER:
  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS
  OR IMPLIED. UNAUTHORIZED USE OR DISTRIBUTION MAY RESULT IN CIVIL OR
  CRIMINAL LIABILITY.

If you are not an authorized user, stop now and notify the software owner.
`

// WriteLicenseFile mirrors the license text to path, overwriting any
// existing file.
func WriteLicenseFile(path string) error {
	if path == "" {
		path = LicenseFileName
	}
	return os.WriteFile(path, []byte(LicenseText), 0o644)
}
