// Package gitrepo wraps the git subcommands used to publish scraped
// artifacts: staging, change detection, committing with a fixed author
// identity, and pushing.
package gitrepo
