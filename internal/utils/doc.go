// Package utils provides general-purpose helpers shared by the adapters and
// the HTTP transport: a resty-based HTTP client, base URL normalisation,
// response writers and trace id generation.
package utils
