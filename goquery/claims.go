package goquery

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/html"
)

// ClaimSet records which containers have already been claimed by an
// extraction strategy, so later strategies do not re-report the same region
// under a different dataset type. It is an explicit accumulator passed
// through the orchestrator; tests can inspect exactly which regions were
// claimed.
type ClaimSet struct {
	ids map[uint64]struct{}
}

// NewClaimSet returns an empty ClaimSet.
func NewClaimSet() *ClaimSet {
	return &ClaimSet{ids: make(map[uint64]struct{})}
}

// Claim marks the container as processed.
func (c *ClaimSet) Claim(n *html.Node) {
	c.ids[ContainerIdentity(n)] = struct{}{}
}

// Claimed reports whether the container was already processed.
func (c *ClaimSet) Claimed(n *html.Node) bool {
	_, ok := c.ids[ContainerIdentity(n)]
	return ok
}

// ClaimedWithin reports whether the node or any of its ancestors was
// claimed. A region claimed at its outer container covers everything
// inside it.
func (c *ClaimSet) ClaimedWithin(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if c.Claimed(p) {
			return true
		}
	}
	return false
}

// Len returns the number of claimed containers.
func (c *ClaimSet) Len() int {
	return len(c.ids)
}

// ContainerIdentity derives a stable identity for a node within one parsed
// snapshot: an xxhash digest of the tag-and-child-index path from the
// document root down to the node.
func ContainerIdentity(n *html.Node) uint64 {
	d := xxhash.New()
	writePath(d, n)
	return d.Sum64()
}

func writePath(d *xxhash.Digest, n *html.Node) {
	if n.Parent != nil {
		writePath(d, n.Parent)
	}
	idx := 0
	for sib := n.PrevSibling; sib != nil; sib = sib.PrevSibling {
		idx++
	}
	_, _ = d.WriteString(n.Data)
	_, _ = d.WriteString("#")
	_, _ = d.WriteString(strconv.Itoa(idx))
	_, _ = d.WriteString("/")
}
