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


// Package core defines the value types shared by the search, walk, scan,
// and report packages: the search configuration, per-line and per-file
// match results, and walk entries.
//
// Everything in this package is a plain immutable value. A SearchConfig is
// constructed once per invocation and shared read-only across workers.
package core
