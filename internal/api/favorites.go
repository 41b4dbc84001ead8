package api

import (
	"context"
	"net/url"
	"time"
)

// Favorite bookmarks a prompt or audio sample.
type Favorite struct {
	ID         string     `json:"id"`
	TargetType TargetType `json:"target_type"`
	TargetID   string     `json:"target_id"`
	UserID     *string    `json:"user_id"`
	Note       *string    `json:"note"`
	CreatedAt  time.Time  `json:"created_at"`
}

// FavoriteDetail is a favorite enriched with a preview of its target.
type FavoriteDetail struct {
	Favorite
	TargetPreview   *string    `json:"target_preview"`
	TargetCreatedAt *time.Time `json:"target_created_at"`
}

// FavoriteList is a page of favorites with target previews.
type FavoriteList struct {
	Items []FavoriteDetail `json:"items"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

// FavoriteListOptions filter the favorites listing.
type FavoriteListOptions struct {
	TargetType TargetType
	Page       int
	Limit      int
}

// CreateFavorite bookmarks a target.
func (c *Client) CreateFavorite(ctx context.Context, targetType TargetType, targetID, note string) (*Favorite, error) {
	req := struct {
		TargetType TargetType `json:"target_type"`
		TargetID   string     `json:"target_id"`
		Note       string     `json:"note,omitempty"`
	}{TargetType: targetType, TargetID: targetID, Note: note}
	var fav Favorite
	if err := c.post(ctx, "/favorites", req, &fav); err != nil {
		return nil, err
	}
	return &fav, nil
}

// GetFavorite fetches a favorite by its own ID.
func (c *Client) GetFavorite(ctx context.Context, id string) (*Favorite, error) {
	var fav Favorite
	if err := c.get(ctx, "/favorites/"+id, nil, &fav); err != nil {
		return nil, err
	}
	return &fav, nil
}

// ListFavorites returns a page of favorites.
func (c *Client) ListFavorites(ctx context.Context, opts FavoriteListOptions) (*FavoriteList, error) {
	q := url.Values{}
	setString(q, "target_type", string(opts.TargetType))
	setInt(q, "page", opts.Page)
	setInt(q, "limit", opts.Limit)
	var list FavoriteList
	if err := c.get(ctx, "/favorites", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateFavorite replaces a favorite's note.
func (c *Client) UpdateFavorite(ctx context.Context, id, note string) (*Favorite, error) {
	req := struct {
		Note string `json:"note"`
	}{Note: note}
	var fav Favorite
	if err := c.put(ctx, "/favorites/"+id, req, &fav); err != nil {
		return nil, err
	}
	return &fav, nil
}

// DeleteFavorite removes a favorite by its own ID.
func (c *Client) DeleteFavorite(ctx context.Context, id string) error {
	return c.delete(ctx, "/favorites/"+id)
}

// DeleteFavoriteByTarget removes whichever favorite points at the target.
func (c *Client) DeleteFavoriteByTarget(ctx context.Context, targetType TargetType, targetID string) error {
	return c.delete(ctx, "/favorites/by-target/"+string(targetType)+"/"+targetID)
}

// CheckFavorite returns the favorite for a target, or nil when the target is
// not favorited.
func (c *Client) CheckFavorite(ctx context.Context, targetType TargetType, targetID string) (*Favorite, error) {
	var fav *Favorite
	if err := c.get(ctx, "/favorites/check/"+string(targetType)+"/"+targetID, nil, &fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// ToggleFavorite checks the current state and flips it: favorited targets
// are removed, unfavorited ones are added. The check and the write are two
// requests, so concurrent toggles can race; last write wins.
func (c *Client) ToggleFavorite(ctx context.Context, targetType TargetType, targetID, note string) (*Favorite, error) {
	existing, err := c.CheckFavorite(ctx, targetType, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := c.DeleteFavoriteByTarget(ctx, targetType, targetID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return c.CreateFavorite(ctx, targetType, targetID, note)
}
