package deepl

import (
	"context"
	"net/url"
)

// Usage reports how much of the account's translation quota is consumed.
type Usage struct {
	CharacterCount uint64 `json:"character_count"`
	CharacterLimit uint64 `json:"character_limit"`
}

// UsageCall is a prepared request against the usage endpoint. It has no
// optional fields.
type UsageCall struct {
	call[*Usage]
}

// GetUsage prepares a query of the account's usage and limits.
func (api *API) GetUsage() *UsageCall {
	c := &UsageCall{}
	c.call = call[*Usage]{api: api, name: "usage", run: func(ctx context.Context) (*Usage, error) {
		return postForm[Usage](ctx, api, "usage", url.Values{})
	}}

	return c
}
