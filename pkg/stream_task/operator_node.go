package stream_task

import (
	"streamrun/pkg/operator"
	"streamrun/pkg/store"
)

// OperatorNode is the polymorphic runtime unit a task runs: either a source
// or an operator, never both. Constructors enforce the variant; the builder
// picks the run loop from it.
type OperatorNode struct {
	op  operator.StreamOperator
	src operator.SourceOperator
}

func FromOperator(op operator.StreamOperator) OperatorNode {
	return OperatorNode{op: op}
}

func FromSource(src operator.SourceOperator) OperatorNode {
	return OperatorNode{src: src}
}

func (n OperatorNode) IsSource() bool {
	return n.src != nil
}

func (n OperatorNode) Name() string {
	if n.IsSource() {
		return n.src.Name()
	}
	if n.op == nil {
		return ""
	}
	return n.op.Name()
}

func (n OperatorNode) Tables() map[string]store.TableConfig {
	if n.IsSource() {
		return n.src.Tables()
	}
	if n.op == nil {
		return nil
	}
	return n.op.Tables()
}
