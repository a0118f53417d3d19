// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dolthub provides a client for DoltHub's hosted GraphQL API,
// offering convenience methods over pull-request state: lookup, create,
// update, merge, comments, change-log and diff retrieval, and paginated
// listing.
//
// All calls are synchronous and blocking. The client performs no retries:
// every transport or API failure is classified and surfaced immediately to
// the caller. Paginated operations return lazy, forward-only sequences
// that re-execute the underlying query per page.
package dolthub
