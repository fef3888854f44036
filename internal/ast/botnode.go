package ast

import "github.com/cwbudde/go-botlang/internal/coderef"

// BotNode is a conversation-flow function literal: like Fun, but evaluating
// it produces a BotNodeValue rather than a Closure, and its body is expected
// to terminate in a BotResult.
type BotNode struct {
	base
	Params []string
	Body   *BodySequence
}

func NewBotNode(params []string, body *BodySequence) *BotNode {
	return &BotNode{Params: params, Body: body}
}

func (n *BotNode) Kind() string { return "BotNode" }

func (n *BotNode) DeepCopy() Node {
	params := append([]string(nil), n.Params...)
	return (&BotNode{Params: params, Body: n.Body.DeepCopy().(*BodySequence)}).withRef(n.ref)
}

func (n *BotNode) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *BotNode) withRef(ref *coderef.Reference) *BotNode       { n.ref = ref; return n }
func (n *BotNode) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitBotNode(n, menv) }

// BotResult is the terminal expression of a bot-node body: a message to
// emit, the data to pass along, and the node to resume into next. Evaluating
// it either walks straight through to NextNode (replaying a previously
// recorded step) or suspends execution and returns a BotResultValue
// carrying an ExecutionState the caller can persist.
type BotResult struct {
	base
	Data     Node
	Message  Node
	NextNode Node
}

func NewBotResult(data, message, nextNode Node) *BotResult {
	return &BotResult{Data: data, Message: message, NextNode: nextNode}
}

func (n *BotResult) Kind() string { return "BotResult" }

func (n *BotResult) DeepCopy() Node {
	return (&BotResult{
		Data:     n.Data.DeepCopy(),
		Message:  n.Message.DeepCopy(),
		NextNode: n.NextNode.DeepCopy(),
	}).withRef(n.ref)
}

func (n *BotResult) WithCodeReference(ref *coderef.Reference) Node { n.ref = ref; return n }
func (n *BotResult) withRef(ref *coderef.Reference) *BotResult     { n.ref = ref; return n }
func (n *BotResult) Accept(v Visitor, menv *MacroEnv) Node         { return v.VisitBotResult(n, menv) }
