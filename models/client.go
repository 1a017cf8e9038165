package models

// ClientKind defines what is behind a connected client session.
// The upstream API encodes it as an integer in Client_type.
type ClientKind int

const (
	// ClientKindHuman is a regular user connected with a voice client.
	ClientKindHuman ClientKind = 0

	// ClientKindBot is an automated agent (ServerQuery connection,
	// music bot and so on).
	ClientKindBot ClientKind = 1
)

// ClientKindFromRaw maps the raw Client_type value onto the two known
// kinds. Only the bot sentinel maps to ClientKindBot; every other value,
// including ones the upstream may add later, maps to ClientKindHuman.
func ClientKindFromRaw(raw int) ClientKind {
	if raw == int(ClientKindBot) {
		return ClientKindBot
	}
	return ClientKindHuman
}

// String returns a short lowercase name of the kind.
func (k ClientKind) String() string {
	if k == ClientKindBot {
		return "bot"
	}
	return "human"
}

// Client represents one connected session inside a channel.
// Clients are owned by the Channel that lists them and are never modified
// after parsing.
type Client struct {
	// ID is the session identifier (Clid). Unique while the session lives.
	ID int64 `json:"Clid"`

	// DatabaseID is the persistent client identity (Cldbid).
	DatabaseID int64 `json:"Cldbid"`

	// ChannelID is the channel the session currently sits in (Cid).
	ChannelID int64 `json:"Cid"`

	// Nickname is the display name. Not guaranteed to be unique.
	Nickname string `json:"Client_nickname"`

	// Kind tells humans and automated agents apart.
	Kind ClientKind `json:"Client_type"`
}
