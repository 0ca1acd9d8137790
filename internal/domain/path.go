package domain

import "strings"

// PathSeparator joins the segments of a node's ancestry path.
const PathSeparator = " / "

// NodePath builds the human-readable ancestry of n: the page name, then
// every container between the page and n in root-first order, then n
// itself. Unnamed nodes fall back to their IDs. page may be nil when n sits
// outside any page; ancestry then starts at the tree root.
func (idx ParentIndex) NodePath(n *Node, page *Node) string {
	if n == nil {
		return ""
	}
	var segments []string
	for _, anc := range idx.Ancestors(n) {
		if anc == page {
			break
		}
		segments = append(segments, anc.DisplayName())
	}
	// Ancestors are nearest-first; the path reads root-first.
	reverse(segments)
	if page != nil {
		segments = append([]string{page.DisplayName()}, segments...)
	}
	segments = append(segments, n.DisplayName())
	return strings.Join(segments, PathSeparator)
}

// Page returns the page node enclosing n: the ancestor directly under the
// document root. Returns n itself when n has no parent.
func (idx ParentIndex) Page(n *Node) *Node {
	cur := n
	for {
		p := idx[cur]
		if p == nil {
			return cur
		}
		if idx[p] == nil {
			return cur
		}
		cur = p
	}
}

// View returns the top-level container under the page that encloses n,
// or nil when n is the page itself or sits directly under it.
func (idx ParentIndex) View(n *Node) *Node {
	var prev, cur *Node = nil, n
	for {
		p := idx[cur]
		if p == nil {
			return nil
		}
		if idx[p] == nil {
			// p is the root, cur is the page, prev is the view.
			return prev
		}
		prev, cur = cur, p
	}
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// roleRule maps name vocabulary to a coarse screen role.
type roleRule struct {
	role   string
	tokens []string
}

// Checked in order; the first hit wins. Best-effort labels, not a taxonomy.
var roleRules = []roleRule{
	{"home screen", []string{"home", "main", "landing", "dashboard"}},
	{"auth screen", []string{"login", "log in", "sign in", "signin", "signup", "sign up", "register", "auth", "onboarding"}},
	{"settings screen", []string{"setting", "preference", "config"}},
	{"profile screen", []string{"profile", "account", "my page", "mypage"}},
	{"search screen", []string{"search", "filter", "explore"}},
	{"list screen", []string{"list", "feed", "history", "catalog"}},
	{"detail screen", []string{"detail", "view", "item"}},
	{"form screen", []string{"form", "edit", "create", "write", "compose"}},
	{"checkout screen", []string{"cart", "checkout", "payment", "order"}},
	{"error screen", []string{"error", "empty", "404", "not found"}},
}

// RoleDefault is reported when no rule matches.
const RoleDefault = "screen"

// InferRole derives a coarse contextual role from the nearest enclosing
// view's name, falling back to the node's own name.
func InferRole(viewName, nodeName string) string {
	for _, r := range roleRules {
		if containsAny(viewName, r.tokens) {
			return r.role
		}
	}
	for _, r := range roleRules {
		if containsAny(nodeName, r.tokens) {
			return r.role
		}
	}
	return RoleDefault
}
