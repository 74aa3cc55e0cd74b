package search

import (
	"fmt"

	"github.com/awalterschulze/gographviz"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

const graphName = "minimax"

// treeNode records one explored position for TreeDOT.
type treeNode struct {
	move     chess.Move
	score    int
	best     int // Index into children of the chosen reply, -1 at leaves
	children []*treeNode
}

// TreeDOT runs the same search as Search and renders the explored tree as a
// Graphviz digraph. Each node is labelled with its minimax score and each
// edge with its move; the edge to each node's chosen reply is drawn red.
// The tree has one node per position visited, so keep depth small.
func (s *Searcher) TreeDOT(g *engine.GameState, legal []chess.Move) (string, error) {
	status := g.Status()
	root := &treeNode{best: -1}
	nodes := 0
	s.minimax(g, legal, s.depth, &nodes, root)
	if status != engine.StatusUnknown {
		g.ValidMoves()
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName(graphName); err != nil {
		return "", errors.Wrap(err, "naming graph")
	}
	if err := graph.SetDir(true); err != nil {
		return "", errors.Wrap(err, "setting graph direction")
	}

	w := &dotWriter{graph: graph}
	if _, err := w.addNode(root, g.FEN()); err != nil {
		return "", err
	}
	return graph.String(), nil
}

type dotWriter struct {
	graph *gographviz.Graph
	next  int
}

// addNode adds n and its subtree, returning the node name.
func (w *dotWriter) addNode(n *treeNode, label string) (string, error) {
	name := fmt.Sprintf("n%d", w.next)
	w.next++

	attrs := map[string]string{
		"label": fmt.Sprintf("%q", fmt.Sprintf("%s\n%d", label, n.score)),
	}
	if err := w.graph.AddNode(graphName, name, attrs); err != nil {
		return "", errors.Wrapf(err, "adding node %s", name)
	}

	for i, child := range n.children {
		childName, err := w.addNode(child, child.move.String())
		if err != nil {
			return "", err
		}
		edge := map[string]string{"label": fmt.Sprintf("%q", child.move.String())}
		if i == n.best {
			edge["color"] = "red"
		}
		if err := w.graph.AddEdge(name, childName, true, edge); err != nil {
			return "", errors.Wrapf(err, "adding edge %s -> %s", name, childName)
		}
	}
	return name, nil
}
