package vibe

// Release is the semantic version of the escrow node.
const Release = "v0.1.0-dev"

// Commit is the git revision, injected at link time with
//   -ldflags "-X github.com/vibe-network/vibe.Commit=<rev>"
var Commit = ""

// Version reports the release, tagged with the build commit when known.
func Version() string {
	if Commit == "" {
		return Release
	}
	return Release + "+" + Commit
}
