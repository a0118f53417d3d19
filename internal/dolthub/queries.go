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

package dolthub

// The query and mutation documents below are the exact texts the DoltHub
// web frontend sends. They are kept as data, one constant per named
// operation, so the normalizer's field maps can change independently of
// the upstream schema coupling embedded here.

const (
	opLookupPull    = "PullForPullDetailsQuery"
	queryLookupPull = "query PullForPullDetailsQuery($repoName: String!, $ownerName: String!, $pullId: String!) {  pull(repoName: $repoName, ownerName: $ownerName, pullId: $pullId) {    ...PullForPullDetails    __typename  }}fragment PullForPullDetails on Pull {  _id  pullId  state  title  description  fromBranchName  fromBranchOwnerName  fromBranchRepoName  toBranchName  toBranchOwnerName  toBranchRepoName  creatorName  isFork  __typename}"

	opUpdatePull    = "UpdatePullInfo"
	queryUpdatePull = "mutation UpdatePullInfo($_id: String!, $title: String!, $description: String!, $state: PullState!) {  updatePull(_id: $_id, title: $title, description: $description, state: $state) {    _id    __typename  }}"

	opMergePull    = "MergePull"
	queryMergePull = "mutation MergePull($repoName: String!, $ownerName: String!, $pullId: String!) {  mergePull(repoName: $repoName, ownerName: $ownerName, pullId: $pullId) {    ...PullForPullDetails    __typename  }}fragment PullForPullDetails on Pull {  _id  pullId  state  title  description  fromBranchName  fromBranchOwnerName  fromBranchRepoName  toBranchName  toBranchOwnerName  toBranchRepoName  creatorName  isFork  __typename}"

	opCreatePull    = "CreatePullRequestWithForks"
	queryCreatePull = "mutation CreatePullRequestWithForks($title: String!, $description: String!, $fromBranchName: String!, $toBranchName: String!, $fromBranchRepoName: String!, $fromBranchOwnerName: String!, $toBranchRepoName: String!, $toBranchOwnerName: String!, $parentRepoName: String!, $parentOwnerName: String!) {  createPullWithForks(    title: $title    description: $description    fromBranchName: $fromBranchName    toBranchName: $toBranchName    fromBranchOwnerName: $fromBranchOwnerName    fromBranchRepoName: $fromBranchRepoName    toBranchOwnerName: $toBranchOwnerName    toBranchRepoName: $toBranchRepoName    parentRepoName: $parentRepoName    parentOwnerName: $parentOwnerName  ) {    _id    pullId    __typename  }}"

	opCreateComment    = "CreatePullComment"
	queryCreateComment = "mutation CreatePullComment($repoName: String!, $ownerName: String!, $parentId: String!, $comment: String!) {  createPullComment(    repoName: $repoName    ownerName: $ownerName    pullId: $parentId    comment: $comment  ) {    ...PullSummaryForPullDetails    __typename  }}fragment PullSummaryForPullDetails on PullSummary {  _id  __typename}"

	opDeleteComment    = "DeletePullComment"
	queryDeleteComment = "mutation DeletePullComment($_id: String!) {  deletePullComment(_id: $_id) {    ...PullSummaryForPullDetails    __typename  }}fragment PullSummaryForPullDetails on PullSummary {  _id  __typename}"

	opUpdateComment    = "UpdatePullComment"
	queryUpdateComment = "mutation UpdatePullComment($_id: String!, $authorName: String!, $comment: String!) {  updatePullComment(_id: $_id, authorName: $authorName, comment: $comment) {    ...PullSummaryForPullDetails    __typename  }}fragment PullSummaryForPullDetails on PullSummary {  _id  __typename}"

	opListPulls    = "PullsForRepo"
	queryListPulls = "query PullsForRepo($ownerName: String!, $repoName: String!, $pageToken: String) {  pulls(ownerName: $ownerName, repoName: $repoName, pageToken: $pageToken) {    ...PullListForPullList    __typename  }}fragment PullListForPullList on PullList {  list {    ...PullForPullList    __typename  }  nextPageToken  __typename}fragment PullForPullList on Pull {  _id  createdAt  ownerName  repoName  pullId  creatorName  description  state  title  __typename}"

	opChangeLog    = "PullDetailsForPullDetails"
	queryChangeLog = "query PullDetailsForPullDetails($repoName: String!, $ownerName: String!, $pullId: String!) {  pull(repoName: $repoName, ownerName: $ownerName, pullId: $pullId) {    ...PullDetails    __typename  }}fragment PullDetails on Pull {  _id  fromBranchName  toBranchName  details {    ...PullDetailsForPullDetails    __typename  }  __typename}fragment PullDetailsForPullDetails on PullDetails {  ... on PullDetailComment {    ...PullDetailComment    __typename  }  ... on PullDetailCommit {    ...PullDetailCommit    __typename  }  ... on PullDetailSummary {    ...PullDetailSummary    __typename  }  ... on PullDetailLog {    ...PullDetailLog    __typename  }  __typename}fragment PullDetailComment on PullDetailComment {  _id  authorName  comment  createdAt  updatedAt  __typename}fragment PullDetailCommit on PullDetailCommit {  _id  username  message  createdAt  commitId  parentCommitId  __typename}fragment PullDetailSummary on PullDetailSummary {  _id  username  createdAt  numCommits  __typename}fragment PullDetailLog on PullDetailLog {  _id  username  createdAt  activity  __typename}"

	opDiffSummary    = "DiffSummaryAsync"
	queryDiffSummary = "query DiffSummaryAsync($initialReq: DiffSummaryReq, $resolvedReq: ResolvedDiffSummaryReq) {  diffSummaryAsync(initialReq: $initialReq, resolvedReq: $resolvedReq) {    resolvedReq {      fromCommitName      toCommitName      tableName      __typename    }    diffSummary {      ...DiffSummaryForDiffs      __typename    }    __typename  }}fragment DiffSummaryForDiffs on DiffSummary {  rowsUnmodified  rowsAdded  rowsDeleted  rowsModified  cellsModified  rowCount  cellCount  __typename}"

	opDiffRows    = "PullDiffForTableList"
	queryDiffRows = "query PullDiffForTableList($ownerName: String!, $repoName: String!, $pullId: String!) {  pullCommitDiff(repoName: $repoName, ownerName: $ownerName, pullId: $pullId) {    ...CommitDiffForTableList    __typename  }}fragment CommitDiffForTableList on CommitDiff {  _id  toOwnerName  toRepoName  toCommitId  fromOwnerName  fromRepoName  fromCommitId  tableDiffs {    ...TableDiffForTableList    __typename  }  __typename}fragment TableDiffForTableList on TableDiff {  oldTable {    ...TableForDiffTableList    __typename  }  newTable {    ...TableForDiffTableList    __typename  }  numChangedSchemas  rowDiffColumns {    ...ColumnForDiffTableList    __typename  }  rowDiffs {    ...RowDiffListForTableList    __typename  }  schemaDiff {    ...SchemaDiffForTableList    __typename  }  schemaPatch  __typename}fragment TableForDiffTableList on Table {  tableName  columns {    ...ColumnForDiffTableList    __typename  }  __typename}fragment ColumnForDiffTableList on Column {  name  isPrimaryKey  type  maxLength  constraints {    notNull    __typename  }  __typename}fragment RowDiffListForTableList on RowDiffList {  list {    ...RowDiffForTableList    __typename  }  nextPageToken  filterByRowTypeRequest {    pageToken    filterByRowType    __typename  }  __typename}fragment RowDiffForTableList on RowDiff {  added {    ...RowForTableList    __typename  }  deleted {    ...RowForTableList    __typename  }  __typename}fragment RowForTableList on Row {  columnValues {    ...ColumnValueForTableList    __typename  }  __typename}fragment ColumnValueForTableList on ColumnValue {  displayValue  __typename}fragment SchemaDiffForTableList on TextDiff {  leftLines {    ...SchemaDiffLineForTableList    __typename  }  rightLines {    ...SchemaDiffLineForTableList    __typename  }  __typename}fragment SchemaDiffLineForTableList on Line {  content  lineNumber  type  __typename}"
)
