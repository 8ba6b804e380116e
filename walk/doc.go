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


// Package walk discovers the files a search will run over.
//
// Walker enumerates regular files under a root and materializes the ones
// that pass the Filter: not a directory, under the size ceiling, not binary
// (NUL byte in a bounded prefix), not excluded by the ignore policy, and
// not inside a hidden directory below the root.
//
// Filtering fails closed: any error probing metadata or content excludes
// the entry and the walk continues. Only an unreadable root is fatal.
package walk
