// Package tree turns the raw channel tree returned by the voice-server API
// into chat-ready text.
//
// The pipeline has three steps, each a pure function over value-owned
// [models.Channel] trees:
//
//  1. [Parse] maps raw JSON records onto typed channels and clients and
//     fails with a [*ParseError] on any missing or mistyped field.
//  2. [ChannelsWithUsers] drops every branch without connected clients.
//  3. [FormatChannelTree] renders the remaining forest as indented,
//     emoji-annotated lines.
//
// [Render] chains pruning and formatting. Nothing in this package keeps
// state, so every function is safe for concurrent use.
package tree
