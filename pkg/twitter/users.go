package twitter

import (
	"context"
	"net/url"
)

// https://developer.twitter.com/en/docs/twitter-api/users/lookup/api-reference/get-users-by-username-username
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`

	ProfileImageURL string `json:"profile_image_url"`
}

// GetUserByUsername resolves a handle to its stable user id. A 2xx response
// without a data field yields a nil user, not an error.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	type userResponse struct {
		Data *User `json:"data"`
	}

	var res userResponse
	err := c.get(ctx, "/users/by/username/"+url.PathEscape(username), url.Values{
		"user.fields": []string{"profile_image_url"},
	}, &res)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}
