package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrFetchChannelTree = errors.New("error fetching channel tree")
	ErrParseChannelTree = errors.New("error parsing channel tree")
	ErrSendReply        = errors.New("error sending reply")
)
