package diaglog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// pullAction is an enum-like action local to this package.
type pullAction int

const (
	pullFetch pullAction = iota
	pullMerge
)

func (a pullAction) String() string {
	if a == pullFetch {
		return "fetch remote refs"
	}
	return "merge remote refs"
}

func (a pullAction) GoString() string {
	if a == pullFetch {
		return "Fetch"
	}
	return "Merge"
}

// downloadAction carries a payload in its debug form.
type downloadAction string

func (a downloadAction) String() string {
	return "download " + string(a)
}

func (a downloadAction) GoString() string {
	return fmt.Sprintf("Download(%q)", string(a))
}

// syncJob is a struct-like action whose debug form starts with the type
// name, optionally package qualified the way %#v renders it.
type syncJob struct {
	secret string
}

func (syncJob) String() string {
	return "sync"
}

func (j syncJob) GoString() string {
	return fmt.Sprintf("diaglog.syncJob{secret: %q}", j.secret)
}

// pathAction pins its identity with an explicit path.
type pathAction struct{}

func (pathAction) String() string   { return "act" }
func (pathAction) GoString() string { return "PathAction" }
func (pathAction) TypePath() string { return "myapp::nested::PathAction" }

func TestShortCodeEnumVariant(t *testing.T) {
	assert.Equal(t, "diaglog::pullAction::Fetch", shortCode(pullFetch))
	assert.Equal(t, "diaglog::pullAction::Merge", shortCode(pullMerge))
}

func TestShortCodeDropsPayload(t *testing.T) {
	code := shortCode(downloadAction("https://example.com/secret"))

	assert.Equal(t, "diaglog::downloadAction::Download", code)
	assert.NotContains(t, code, "example.com")
	assert.NotContains(t, code, "secret")
}

func TestShortCodeStableAcrossPayloads(t *testing.T) {
	a := shortCode(downloadAction("one"))
	b := shortCode(downloadAction("two"))

	assert.Equal(t, a, b)
}

func TestShortCodeStructLike(t *testing.T) {
	code := shortCode(syncJob{secret: "hunter2"})

	assert.Equal(t, "diaglog::syncJob", code)
	assert.NotContains(t, code, "hunter2")
}

func TestShortCodeExplicitPath(t *testing.T) {
	// struct-like with a three segment identity keeps the parent segment
	assert.Equal(t, "myapp::nested::PathAction", shortCode(pathAction{}))
}

func TestShortCodePointerAction(t *testing.T) {
	assert.Equal(t, "diaglog::syncJob", shortCode(&syncJob{}))
}

func TestIdentityFirstWord(t *testing.T) {
	assert.Equal(t, "Fetch", identityFirstWord("Fetch"))
	assert.Equal(t, "Download", identityFirstWord(`Download("x")`))
	assert.Equal(t, "Connect", identityFirstWord(`Connect { host: "x" }`))
	assert.Equal(t, "Job", identityFirstWord(`Job{id: 1}`))
}

func TestIsStructWord(t *testing.T) {
	assert.True(t, isStructWord("syncJob", "syncJob"))
	assert.True(t, isStructWord("diaglog.syncJob", "syncJob"))
	assert.False(t, isStructWord("Fetch", "pullAction"))
	assert.False(t, isStructWord("notsyncJob", "syncJob"))
}

func TestIdentitySegments(t *testing.T) {
	assert.Equal(t, []string{"diaglog", "pullAction"}, identitySegments(pullFetch))
	assert.Equal(t, []string{"myapp", "nested", "PathAction"}, identitySegments(pathAction{}))
}

func TestTypeIdentityName(t *testing.T) {
	assert.Equal(t, "github.com/deixis/diaglog.pullAction", typeIdentityName(pullFetch))
	assert.Equal(t, "myapp::nested::PathAction", typeIdentityName(pathAction{}))
}
