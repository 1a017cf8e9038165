package tree

import "github.com/MKhiriev/ts3-users-bot/models"

// ChannelsWithUsers returns the channels that directly hold at least one
// client or have such a channel somewhere below them.
//
// Every kept channel carries its own pruned sub-channel sequence, so empty
// branches disappear at every depth. Sibling order is preserved. The input
// is left untouched: kept channels are copies whose client slices are shared
// with the input.
func ChannelsWithUsers(channels []models.Channel) []models.Channel {
	kept := make([]models.Channel, 0, len(channels))
	for _, channel := range channels {
		subChannels := ChannelsWithUsers(channel.SubChannels)
		if !channel.HasClients() && len(subChannels) == 0 {
			continue
		}

		channel.SubChannels = subChannels
		kept = append(kept, channel)
	}

	return kept
}

// CountClients returns the number of clients in the whole forest.
func CountClients(channels []models.Channel) int {
	total := 0
	for _, channel := range channels {
		total += len(channel.Clients) + CountClients(channel.SubChannels)
	}
	return total
}
