package walk

import "github.com/anyburl-go/anyburl/kg"

// Chained returns the bottom rule's canonical left-to-right view.
//
// The head is returned as-is when the walk started from the object
// (putting the tail/start side in the second position already); otherwise
// it is flipped so the starting side is always second. Each body edge is
// flipped when its recorded step was Backward, so consecutive atoms share
// adjacent positions along the walk.
func (b *BottomRule) Chained() (kg.Triple, []kg.Triple) {
	var head kg.Triple
	if b.StartFrom == Object {
		head = b.Head
	} else {
		head = b.Head.Flipped()
	}

	body := make([]kg.Triple, len(b.Body))
	for i, edge := range b.Body {
		if b.Steps[i] == Forward {
			body[i] = edge
		} else {
			body[i] = edge.Flipped()
		}
	}
	return head, body
}

// FlattenedNodes returns, in order and with duplicates preserved, every
// node touched by the chained view: head-start, head-end, then each body
// atom's two endpoints. This is the sequence the generalizer walks to
// assign variables by first-occurrence order.
func (b *BottomRule) FlattenedNodes() []string {
	head, body := b.Chained()
	nodes := make([]string, 0, 2+2*len(body))
	nodes = append(nodes, head.Subject, head.Object)
	for _, t := range body {
		nodes = append(nodes, t.Subject, t.Object)
	}
	return nodes
}
