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


// Package search implements per-line matching and the per-file search
// engine.
//
// A query plus a core.SearchConfig selects one of four matching strategies:
//   - literal substring
//   - literal whole-word (word-boundary aware, not whitespace splitting)
//   - regular expression
//   - regular expression wrapped in word-boundary assertions
//
// The strategy is compiled once per search and reused for every line and
// every file, so an invalid pattern surfaces before any file is scanned.
// Match inversion is applied by the engine, never by the matcher.
package search
