package grammar

import "fmt"

// Production is a single rule (head: NonTerminal, body: Sentence), §3.
// Rules are value-equal by (head, body), grounded on a conventional
// Rule/Production pairing but collapsed to one head+one body per Production
// (a Rule-groups-bodies-by-head shape groups every alternative under one
// Rule per head; here each alternative is its own Production, which is what
// the LR(1) builder actually indexes by rule number).
type Production struct {
	Head Symbol
	Body Sentence
}

// Equal reports whether p and o have the same head and body.
func (p Production) Equal(o Production) bool {
	return p.Head.Equal(o.Head) && p.Body.Equal(o.Body)
}

func (p Production) String() string {
	return fmt.Sprintf("%s -> %s", p.Head, p.Body)
}
