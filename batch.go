package msglite

// MessageBatch is an ordered collection of Messages, each framed back to
// back with no padding between them. It exists for callers that want to
// ship several small records in one write without hand-rolling a loop over
// Pack/Unpack: it is the allocating convenience layer the fixed-array
// Message type deliberately avoids being.
type MessageBatch struct {
	List0[*Message]
}

// NewMessageBatch wraps msgs as a MessageBatch ready to MarshalBinary or
// WriteTo. Passing nil starts an empty batch that ReadFrom can fill.
func NewMessageBatch(msgs []*Message) *MessageBatch {
	return &MessageBatch{*NewList0(msgs)}
}

// Messages returns the batch's underlying messages.
func (b *MessageBatch) Messages() []*Message {
	return b.Items
}
