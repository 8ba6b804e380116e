// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package scan fans a search out across a worker pool.
//
// Pipeline enumerates eligible files, searches each one on a fixed-size
// pool, and funnels non-empty per-file results into a mutex-guarded buffer.
// Per-file errors (unreadable file) are logged and skipped; only an invalid
// query or an unreadable root fails the whole run. Result order across
// files reflects worker completion, not filesystem order.
//
// A Monitor can observe the run; the ProgressMonitor writes periodic
// progress to a writer, everything else is silent by default.
package scan
