package api

import (
	"context"
	"strconv"
)

// GroupsDetails returns the id and name of every group.
func (c *Client) GroupsDetails(ctx context.Context) ([]NamedItem, error) {
	return doGet[[]NamedItem](ctx, c, "/api/groups", nil, nil)
}

// GroupChildren returns the immediate child meters and groups of a group.
func (c *Client) GroupChildren(ctx context.Context, groupID int) (GroupChildren, error) {
	return doGet[GroupChildren](ctx, c, "api/groups/children/"+strconv.Itoa(groupID), nil, nil)
}

// CreateGroup creates a new group.
func (c *Client) CreateGroup(ctx context.Context, group GroupData) error {
	_, err := doAuthPost[struct{}](ctx, c, "api/groups/create", group, nil, nil)
	return err
}

type groupEdit struct {
	ID int `json:"id"`
	GroupData
}

// EditGroup replaces the named group's data.
func (c *Client) EditGroup(ctx context.Context, groupID int, group GroupData) error {
	_, err := doAuthPut[struct{}](ctx, c, "api/groups/edit", groupEdit{ID: groupID, GroupData: group}, nil, nil)
	return err
}

// DeleteGroup removes a group. The backend exposes no DELETE verb; deletion
// is a POST to the /delete path with the id in the body.
func (c *Client) DeleteGroup(ctx context.Context, groupID int) error {
	_, err := doAuthPost[struct{}](ctx, c, "api/groups/delete", map[string]int{"id": groupID}, nil, nil)
	return err
}
