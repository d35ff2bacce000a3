// Package releaser orchestrates the release workflow:
// resolve the latest release tag, bump it, confirm with the operator,
// create the tag, and push it to the remote to trigger CI.
//
// The state flow is strictly sequential and one-shot:
//
//	Start → Resolved → Bumped → {Confirmed → Published | Aborted} → End
//
// There is no retry, no rollback, and no locking: the tool assumes a
// single operator. If the push fails after the local tag was created,
// the partial state is left for the operator to resolve.
package releaser
