// Package field defines the descriptor model shared by every renderer: field
// kinds, option normalization, draft-state synchronization, and the commit
// coercions that turn raw edits into kind-appropriate committed values.
package field
