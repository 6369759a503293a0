// Package publish wires the publish command: commit changed artifact
// files with a fixed author identity and push them to the remote.
package publish
