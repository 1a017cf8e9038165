package tree

import (
	"strings"

	"github.com/MKhiriev/ts3-users-bot/models"
)

const (
	// IndentUnit is prepended once per nesting level.
	IndentUnit = "    "

	ChannelMarker = "\U0001F4AC" // speech balloon
	HumanMarker   = "\U0001F535" // blue circle
	BotMarker     = "\U0001F916" // robot face

	lineBreak = "\n"
	space     = " "
)

// channelNameReplacer strips upstream spacer artifacts from channel names.
var channelNameReplacer = strings.NewReplacer(`\s`, space, "[cspacer]", "")

// Render prunes channels without users and formats what is left.
func Render(channels []models.Channel) string {
	return FormatChannelTree(ChannelsWithUsers(channels))
}

// FormatChannelTree renders every channel block in order and concatenates
// them without a separator.
//
// A block is the name line, the client list and the indented sub-channel
// block joined by line breaks. An empty forest renders as "".
func FormatChannelTree(channels []models.Channel) string {
	var b strings.Builder
	for _, channel := range channels {
		b.WriteString(formatChannel(channel))
	}
	return b.String()
}

func formatChannel(channel models.Channel) string {
	return strings.Join([]string{
		formatChannelName(channel),
		formatClientList(channel),
		formatSubChannelList(channel),
	}, lineBreak)
}

func formatChannelName(channel models.Channel) string {
	return ChannelMarker + space + CleanChannelName(channel.Name)
}

// CleanChannelName replaces every literal `\s` with a space and removes
// every literal "[cspacer]". Nothing else in the name is touched.
func CleanChannelName(name string) string {
	return channelNameReplacer.Replace(name)
}

func formatClientList(channel models.Channel) string {
	lines := make([]string, 0, len(channel.Clients))
	for _, client := range channel.Clients {
		lines = append(lines, IndentUnit+ClientMarker(client.Kind)+space+client.Nickname)
	}
	return strings.Join(lines, lineBreak)
}

func formatSubChannelList(channel models.Channel) string {
	return indent(FormatChannelTree(channel.SubChannels))
}

// ClientMarker returns the emoji shown in front of a client of the given kind.
func ClientMarker(kind models.ClientKind) string {
	if kind == models.ClientKindBot {
		return BotMarker
	}
	return HumanMarker
}

// indent prefixes every line of text with one indent unit. The empty
// remainder after a trailing line break is not a line and stays unindented.
func indent(text string) string {
	if text == "" {
		return ""
	}

	body, terminated := strings.CutSuffix(text, lineBreak)
	lines := strings.Split(body, lineBreak)
	for i, line := range lines {
		lines[i] = IndentUnit + line
	}

	indented := strings.Join(lines, lineBreak)
	if terminated {
		indented += lineBreak
	}
	return indented
}
