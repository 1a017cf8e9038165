package tree

import (
	"errors"
	"testing"

	"github.com/MKhiriev/ts3-users-bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTree = `[
  {
    "Cid": 1, "Pid": 0, "Channel_name": "[cspacer]Lobby",
    "Subchannel_list": [
      {
        "Cid": 2, "Pid": 1, "Channel_name": "Sub",
        "Subchannel_list": [],
        "Client_list": [
          {"Clid": 10, "Cldbid": 100, "Cid": 2, "Client_nickname": "Ann", "Client_type": 0},
          {"Clid": 11, "Cldbid": 101, "Cid": 2, "Client_nickname": "MusicBot", "Client_type": 1}
        ]
      }
    ],
    "Client_list": []
  },
  {"Cid": 3, "Pid": 0, "Channel_name": "AFK", "Subchannel_list": [], "Client_list": []}
]`

// ── Parse ─────────────────────────────────────────────────────────────────────

func TestParse_Success(t *testing.T) {
	channels, err := Parse([]byte(sampleTree))
	require.NoError(t, err)
	require.Len(t, channels, 2)

	lobby := channels[0]
	assert.Equal(t, int64(1), lobby.ID)
	assert.Equal(t, int64(0), lobby.ParentID)
	assert.Equal(t, "[cspacer]Lobby", lobby.Name, "names are kept raw until formatting")
	assert.Empty(t, lobby.Clients)
	require.Len(t, lobby.SubChannels, 1)

	sub := lobby.SubChannels[0]
	assert.Equal(t, int64(2), sub.ID)
	assert.Equal(t, int64(1), sub.ParentID)
	require.Len(t, sub.Clients, 2)
	assert.Equal(t, models.Client{ID: 10, DatabaseID: 100, ChannelID: 2, Nickname: "Ann", Kind: models.ClientKindHuman}, sub.Clients[0])
	assert.Equal(t, models.Client{ID: 11, DatabaseID: 101, ChannelID: 2, Nickname: "MusicBot", Kind: models.ClientKindBot}, sub.Clients[1])

	assert.Equal(t, "AFK", channels[1].Name)
}

func TestParse_EmptyArray(t *testing.T) {
	channels, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, channels)
}

func TestParse_UnknownClientTypeIsHuman(t *testing.T) {
	raw := `[{"Cid":1,"Pid":0,"Channel_name":"A","Subchannel_list":[],
		"Client_list":[{"Clid":1,"Cldbid":1,"Cid":1,"Client_nickname":"X","Client_type":7}]}]`

	channels, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, models.ClientKindHuman, channels[0].Clients[0].Kind)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantPath string
		wantErr  error
	}{
		{
			name:     "invalid json",
			raw:      `[{"Cid":`,
			wantPath: "$",
			wantErr:  ErrInvalidField,
		},
		{
			name:     "null document",
			raw:      `null`,
			wantPath: "$",
			wantErr:  ErrMissingField,
		},
		{
			name:     "object instead of array",
			raw:      `{"Cid":1}`,
			wantPath: "$",
			wantErr:  ErrInvalidField,
		},
		{
			name:     "missing channel name",
			raw:      `[{"Cid":1,"Pid":0,"Subchannel_list":[],"Client_list":[]}]`,
			wantPath: "$[0].Channel_name",
			wantErr:  ErrMissingField,
		},
		{
			name:     "null sub-channel list",
			raw:      `[{"Cid":1,"Pid":0,"Channel_name":"A","Subchannel_list":null,"Client_list":[]}]`,
			wantPath: "$[0].Subchannel_list",
			wantErr:  ErrMissingField,
		},
		{
			name:     "string channel id",
			raw:      `[{"Cid":"1","Pid":0,"Channel_name":"A","Subchannel_list":[],"Client_list":[]}]`,
			wantPath: "$[0].Cid",
			wantErr:  ErrInvalidField,
		},
		{
			name: "nested client without nickname",
			raw: `[{"Cid":1,"Pid":0,"Channel_name":"A","Client_list":[],"Subchannel_list":[
				{"Cid":2,"Pid":1,"Channel_name":"B","Subchannel_list":[],
				 "Client_list":[{"Clid":1,"Cldbid":1,"Cid":2,"Client_type":0}]}]}]`,
			wantPath: "$[0].Subchannel_list[0].Client_list[0].Client_nickname",
			wantErr:  ErrMissingField,
		},
		{
			name: "client type of wrong shape",
			raw: `[{"Cid":1,"Pid":0,"Channel_name":"A","Subchannel_list":[],
				"Client_list":[{"Clid":1,"Cldbid":1,"Cid":1,"Client_nickname":"X","Client_type":"bot"}]}]`,
			wantPath: "$[0].Client_list[0].Client_type",
			wantErr:  ErrInvalidField,
		},
		{
			name:     "null client entry",
			raw:      `[{"Cid":1,"Pid":0,"Channel_name":"A","Subchannel_list":[],"Client_list":[null]}]`,
			wantPath: "$[0].Client_list[0].Clid",
			wantErr:  ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channels, err := Parse([]byte(tt.raw))
			require.Error(t, err)
			assert.Nil(t, channels, "no partial forest on failure")
			assert.ErrorIs(t, err, tt.wantErr)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.wantPath, parseErr.Path)
		})
	}
}

// ── ParseChannel ──────────────────────────────────────────────────────────────

func TestParseChannel_Single(t *testing.T) {
	channel, err := ParseChannel([]byte(`{"Cid":5,"Pid":2,"Channel_name":"Solo","Subchannel_list":[],"Client_list":[]}`))
	require.NoError(t, err)
	assert.Equal(t, int64(5), channel.ID)
	assert.Equal(t, int64(2), channel.ParentID)
	assert.Equal(t, "Solo", channel.Name)
}

func TestParseChannel_MissingPid(t *testing.T) {
	_, err := ParseChannel([]byte(`{"Cid":5,"Channel_name":"Solo","Subchannel_list":[],"Client_list":[]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "$.Pid")
}
