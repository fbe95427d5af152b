package catalog

import (
	"strings"
	"time"
)

// Node is one entry in the action catalog tree, up to three levels
// deep. A node with no children is actionable.
type Node struct {
	ID         string
	Label      string
	Children   []Node
	NeedsInput bool
	Request    *RequestTemplate
}

// IsLeaf reports whether the node has no children
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Child returns the child with the given id, or nil
func (n *Node) Child(id string) *Node {
	for i := range n.Children {
		if n.Children[i].ID == id {
			return &n.Children[i]
		}
	}
	return nil
}

// RequestTemplate describes how to build the request for an
// actionable node.
type RequestTemplate struct {
	Path    string
	Method  string
	Params  ParamRule
	Headers map[string]string
	Timeout time.Duration // 0 means the client default
}

// ParamRule describes query parameter construction: fixed pairs plus
// an optional field name the trimmed user input binds to.
type ParamRule struct {
	Fixed      map[string]string
	InputField string
}

// Build produces the parameter map for one invocation.
func (r ParamRule) Build(input string) map[string]string {
	params := make(map[string]string, len(r.Fixed)+1)
	for key, value := range r.Fixed {
		params[key] = value
	}
	if r.InputField != "" {
		params[r.InputField] = strings.TrimSpace(input)
	}
	return params
}

// Automation is a quick automation option shown outside the tree.
type Automation struct {
	ID      string
	Label   string
	RunPath string // empty means the generic run endpoint
}
