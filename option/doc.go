// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package option describes the per-call settings consumed by the
// hbasex Requester: target port, base path prefix, time budget, and
// transport knobs.
//
// An Options value must pass Validate before use. The Requester calls
// Validate itself and refuses to issue any network I/O for an invalid
// configuration. Struct-level constraints are declared as validator
// tags; additional header entries are checked against the HTTP header
// grammar separately because their names may legitimately repeat.
package option
