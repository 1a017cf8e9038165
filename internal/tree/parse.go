package tree

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/MKhiriev/ts3-users-bot/models"
)

const rootPath = "$"

// rawChannel mirrors one upstream channel record. Pointers tell an absent
// or null field apart from a zero value.
type rawChannel struct {
	Cid            *int64             `json:"Cid"`
	Pid            *int64             `json:"Pid"`
	ChannelName    *string            `json:"Channel_name"`
	SubchannelList *[]json.RawMessage `json:"Subchannel_list"`
	ClientList     *[]json.RawMessage `json:"Client_list"`
}

type rawClient struct {
	Clid           *int64  `json:"Clid"`
	Cldbid         *int64  `json:"Cldbid"`
	Cid            *int64  `json:"Cid"`
	ClientNickname *string `json:"Client_nickname"`
	ClientType     *int    `json:"Client_type"`
}

type requiredField struct {
	name    string
	present bool
}

// Parse decodes a JSON array of channel records into a forest of channels.
//
// Every record and every nested record is checked for all required fields.
// The first missing or mistyped field aborts parsing with a [*ParseError];
// no partially parsed forest is returned.
func Parse(raw []byte) ([]models.Channel, error) {
	var records *[]json.RawMessage
	if err := decode(raw, &records, rootPath); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, newParseError(rootPath, ErrMissingField, nil)
	}

	return parseChannels(*records, rootPath)
}

// ParseChannel decodes a single channel record together with its whole
// sub-tree.
func ParseChannel(raw []byte) (models.Channel, error) {
	return parseChannel(raw, rootPath)
}

func parseChannels(records []json.RawMessage, path string) ([]models.Channel, error) {
	channels := make([]models.Channel, 0, len(records))
	for i, record := range records {
		channel, err := parseChannel(record, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		channels = append(channels, channel)
	}

	return channels, nil
}

func parseChannel(raw json.RawMessage, path string) (models.Channel, error) {
	var rc rawChannel
	if err := decode(raw, &rc, path); err != nil {
		return models.Channel{}, err
	}

	err := requireFields(path,
		requiredField{"Cid", rc.Cid != nil},
		requiredField{"Pid", rc.Pid != nil},
		requiredField{"Channel_name", rc.ChannelName != nil},
		requiredField{"Subchannel_list", rc.SubchannelList != nil},
		requiredField{"Client_list", rc.ClientList != nil},
	)
	if err != nil {
		return models.Channel{}, err
	}

	subChannels, err := parseChannels(*rc.SubchannelList, fieldPath(path, "Subchannel_list"))
	if err != nil {
		return models.Channel{}, err
	}

	clients, err := parseClients(*rc.ClientList, fieldPath(path, "Client_list"))
	if err != nil {
		return models.Channel{}, err
	}

	return models.Channel{
		ID:          *rc.Cid,
		ParentID:    *rc.Pid,
		Name:        *rc.ChannelName,
		SubChannels: subChannels,
		Clients:     clients,
	}, nil
}

func parseClients(records []json.RawMessage, path string) ([]models.Client, error) {
	clients := make([]models.Client, 0, len(records))
	for i, record := range records {
		client, err := parseClient(record, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, nil
}

func parseClient(raw json.RawMessage, path string) (models.Client, error) {
	var rc rawClient
	if err := decode(raw, &rc, path); err != nil {
		return models.Client{}, err
	}

	err := requireFields(path,
		requiredField{"Clid", rc.Clid != nil},
		requiredField{"Cldbid", rc.Cldbid != nil},
		requiredField{"Cid", rc.Cid != nil},
		requiredField{"Client_nickname", rc.ClientNickname != nil},
		requiredField{"Client_type", rc.ClientType != nil},
	)
	if err != nil {
		return models.Client{}, err
	}

	return models.Client{
		ID:         *rc.Clid,
		DatabaseID: *rc.Cldbid,
		ChannelID:  *rc.Cid,
		Nickname:   *rc.ClientNickname,
		Kind:       models.ClientKindFromRaw(*rc.ClientType),
	}, nil
}

// decode unmarshals raw into dst and turns decoder failures into a
// [*ParseError] pointing at the offending field when the decoder knows it.
func decode(raw []byte, dst any, path string) error {
	err := json.Unmarshal(raw, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return newParseError(fieldPath(path, typeErr.Field), ErrInvalidField, err)
	}

	return newParseError(path, ErrInvalidField, err)
}

func requireFields(path string, fields ...requiredField) error {
	for _, f := range fields {
		if !f.present {
			return newParseError(fieldPath(path, f.name), ErrMissingField, nil)
		}
	}
	return nil
}

func fieldPath(path, field string) string {
	return path + "." + field
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
