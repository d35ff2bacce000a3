// Package git models the version-control tag namespace as an injected
// collaborator. The release workflow only needs three operations: list
// all tags, create a tag at the current commit, and push a single named
// tag to a named remote.
//
// CLI shells out to the git binary and is the production implementation;
// MemStore is an in-memory fake for tests. No working-tree cleanliness
// check is performed before tagging: the tool tags whatever HEAD is.
package git
