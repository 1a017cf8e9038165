package models

// Channel is one node of the voice-server channel tree.
//
// A Channel owns its sub-channels and its clients; both sequences keep the
// order the upstream API returned them in. The child sequence is expected to
// form a tree, which holds as long as channels are only built by parsing.
type Channel struct {
	// ID is the channel identifier (Cid).
	ID int64 `json:"Cid"`

	// ParentID is the parent channel identifier (Pid). It is kept for
	// completeness and is not used to rebuild the tree: nesting already
	// comes from SubChannels.
	ParentID int64 `json:"Pid"`

	// Name is the raw display name, including spacer artifacts such as
	// "[cspacer]" and escaped whitespace.
	Name string `json:"Channel_name"`

	// SubChannels are the direct children of the channel.
	SubChannels []Channel `json:"Subchannel_list"`

	// Clients are the sessions connected directly to this channel.
	Clients []Client `json:"Client_list"`
}

// HasClients reports whether at least one client sits directly in the
// channel.
func (c Channel) HasClients() bool {
	return len(c.Clients) > 0
}
