package api

import (
	"context"
	"net/url"
	"time"
)

// Template is a reusable prompt blueprint.
type Template struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Text        string            `json:"text"`
	Attributes  *PromptAttributes `json:"attributes"`
	Category    *string           `json:"category"`
	IsSystem    bool              `json:"is_system"`
	UserID      *string           `json:"user_id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TemplateList is a page of templates.
type TemplateList struct {
	Items []Template `json:"items"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}

// TemplateCreate is the body for creating a template.
type TemplateCreate struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Text        string            `json:"text"`
	Attributes  *PromptAttributes `json:"attributes,omitempty"`
	Category    string            `json:"category,omitempty"`
}

// TemplateUpdate patches template fields. Nil fields are left unchanged.
type TemplateUpdate struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Text        *string           `json:"text,omitempty"`
	Attributes  *PromptAttributes `json:"attributes,omitempty"`
	Category    *string           `json:"category,omitempty"`
}

// CreateTemplate stores a new template.
func (c *Client) CreateTemplate(ctx context.Context, req TemplateCreate) (*Template, error) {
	var tpl Template
	if err := c.post(ctx, "/templates", req, &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// GetTemplate fetches a template by ID.
func (c *Client) GetTemplate(ctx context.Context, id string) (*Template, error) {
	var tpl Template
	if err := c.get(ctx, "/templates/"+id, nil, &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// ListTemplates returns a page of templates, optionally scoped to one
// category.
func (c *Client) ListTemplates(ctx context.Context, category string, page, limit int) (*TemplateList, error) {
	q := url.Values{}
	setString(q, "category", category)
	setInt(q, "page", page)
	setInt(q, "limit", limit)
	var list TemplateList
	if err := c.get(ctx, "/templates", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateTemplate patches a template.
func (c *Client) UpdateTemplate(ctx context.Context, id string, req TemplateUpdate) (*Template, error) {
	var tpl Template
	if err := c.put(ctx, "/templates/"+id, req, &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// DeleteTemplate removes a template.
func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.delete(ctx, "/templates/"+id)
}

// ListTemplateCategories fetches the distinct category names.
func (c *Client) ListTemplateCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/templates/categories/list", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
