package tree

import (
	"strings"
	"testing"

	"github.com/MKhiriev/ts3-users-bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	balloon = "\U0001F4AC "
	circle  = "\U0001F535 "
	robot   = "\U0001F916 "
	ind     = "    "
)

func TestFormatChannelTree_Empty(t *testing.T) {
	assert.Equal(t, "", FormatChannelTree(nil))
	assert.Equal(t, "", Render(nil))
}

func TestFormatChannelTree_SingleChannelWithClients(t *testing.T) {
	forest := []models.Channel{
		channel(1, "Lobby", clients(human("Ann"), bot("Bot"))),
	}

	want := balloon + "Lobby\n" +
		ind + circle + "Ann\n" +
		ind + robot + "Bot\n"
	assert.Equal(t, want, FormatChannelTree(forest))
}

func TestFormatChannelTree_SiblingsConcatenated(t *testing.T) {
	forest := []models.Channel{
		channel(1, "A", clients(human("x"))),
		channel(2, "B", clients(bot("y"))),
	}

	want := balloon + "A\n" + ind + circle + "x\n" +
		balloon + "B\n" + ind + robot + "y\n"
	assert.Equal(t, want, FormatChannelTree(forest))
}

func TestFormatChannelTree_ChannelWithoutClientsOrChildren(t *testing.T) {
	// Formatting alone does not prune: the empty client list and the empty
	// sub-channel block still take part in the join.
	assert.Equal(t, balloon+"Idle\n\n", FormatChannelTree([]models.Channel{channel(1, "Idle", nil)}))
}

func TestFormatChannelTree_NameSanitization(t *testing.T) {
	forest := []models.Channel{channel(1, `Lobby\s[cspacer]Area`, clients(human("a")))}

	got := FormatChannelTree(forest)
	firstLine, _, _ := strings.Cut(got, "\n")
	assert.Equal(t, balloon+"Lobby Area", firstLine)
}

func TestCleanChannelName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Plain", want: "Plain"},
		{in: `[cspacer]Main\sHall`, want: "Main Hall"},
		{in: `\s\s`, want: "  "},
		{in: "[cspacer][cspacer]", want: ""},
		{in: "[CSPACER]Case", want: "[CSPACER]Case"},
		{in: "[*spacer]---", want: "[*spacer]---"},
		{in: "tab\there", want: "tab\there"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanChannelName(tt.in))
		})
	}
}

func TestFormatChannelTree_KindMarkers(t *testing.T) {
	channels, err := Parse([]byte(`[{"Cid":1,"Pid":0,"Channel_name":"A","Subchannel_list":[],"Client_list":[
		{"Clid":1,"Cldbid":1,"Cid":1,"Client_nickname":"Human","Client_type":0},
		{"Clid":2,"Cldbid":2,"Cid":1,"Client_nickname":"Agent","Client_type":1}]}]`))
	require.NoError(t, err)

	got := FormatChannelTree(channels)
	assert.Contains(t, got, ind+circle+"Human")
	assert.Contains(t, got, ind+robot+"Agent")
}

// TestRender_EndToEnd follows the Root/Sub/Ann example: Root is kept through
// its descendant, Ann ends up two indent units deep.
func TestRender_EndToEnd(t *testing.T) {
	raw := `[{"Cid":1,"Pid":0,"Channel_name":"Root","Client_list":[],"Subchannel_list":[
		{"Cid":2,"Pid":1,"Channel_name":"Sub","Subchannel_list":[],
		 "Client_list":[{"Clid":1,"Cldbid":1,"Cid":2,"Client_nickname":"Ann","Client_type":0}]}]}]`

	channels, err := Parse([]byte(raw))
	require.NoError(t, err)

	pruned := ChannelsWithUsers(channels)
	assert.Equal(t, []int64{1, 2}, ids(pruned))

	want := balloon + "Root\n" +
		"\n" +
		ind + balloon + "Sub\n" +
		ind + ind + circle + "Ann\n"
	assert.Equal(t, want, FormatChannelTree(pruned))
	assert.Equal(t, want, Render(channels))
}

func TestFormatChannelTree_IndentationCompounds(t *testing.T) {
	forest := []models.Channel{
		channel(1, "A", nil,
			channel(2, "B", nil,
				channel(3, "C", clients(human("X"))),
			),
		),
	}

	want := balloon + "A\n" +
		"\n" +
		ind + balloon + "B\n" +
		ind + "\n" +
		ind + ind + balloon + "C\n" +
		ind + ind + ind + circle + "X\n"
	assert.Equal(t, want, FormatChannelTree(forest))
}

func TestRender_DropsEmptyBranchesBeforeFormatting(t *testing.T) {
	forest := []models.Channel{
		channel(1, "Dead", nil, channel(2, "AlsoDead", nil)),
		channel(3, "Live", clients(human("Ann")), channel(4, "DeadChild", nil)),
		channel(5, "Next", clients(bot("Bot"))),
	}

	want := balloon + "Live\n" + ind + circle + "Ann\n" +
		balloon + "Next\n" + ind + robot + "Bot\n"
	assert.Equal(t, want, Render(forest))
}

func TestRender_SiblingAfterNestedBlockIsNotIndented(t *testing.T) {
	forest := []models.Channel{
		channel(1, "Parent", nil, channel(2, "Child", clients(human("a")))),
		channel(3, "Sibling", clients(human("b"))),
	}

	got := Render(forest)
	assert.Contains(t, got, "\n"+balloon+"Sibling\n")
}

func TestClientMarker(t *testing.T) {
	assert.Equal(t, HumanMarker, ClientMarker(models.ClientKindHuman))
	assert.Equal(t, BotMarker, ClientMarker(models.ClientKindBot))
	assert.Equal(t, HumanMarker, ClientMarker(models.ClientKindFromRaw(42)))
}
