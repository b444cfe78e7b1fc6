package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Client is the authenticated facade over [APIClient]. It holds the API token
// so that item operations do not need it on every call.
//
// A Client is not synchronised; run independent clients or serialise access
// when sharing one between goroutines.
type Client struct {
	settings Settings
	options  *Options
	api      *APIClient
	token    string
}

// New creates a client for the given settings. No request is made until
// [Client.Connect] is called.
func New(settings Settings, opts ...Option) *Client {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	return &Client{
		settings: settings,
		options:  options,
	}
}

// Connect validates the configuration and obtains the API token: either the
// key passed with [WithAPIKey], or a token granted by the user through the
// interactive authorization handshake. Connect is a no-op once it has
// succeeded.
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return errors.New("joplin client is nil")
	}

	if c.api != nil {
		return nil
	}

	api, err := newAPIClient(c.settings, c.options)
	if err != nil {
		return err
	}

	token := c.options.apiKey

	if token == "" {
		c.options.requestLogger.Debugf("requesting API token from %s", c.settings.BaseURL())

		token, err = api.Authenticate(ctx)
		if err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	c.api = api
	c.token = token

	return nil
}

// Token returns the API token obtained by [Client.Connect].
func (c *Client) Token() string {
	if c == nil {
		return ""
	}

	return c.token
}

// API returns the underlying low-level client, or nil before Connect.
func (c *Client) API() *APIClient {
	if c == nil {
		return nil
	}

	return c.api
}

// Item returns the operations for the item type with the given name or route.
func (c *Client) Item(name string) (*Item, error) {
	d, ok := DescriptorByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown item type %q", name)
	}

	return &Item{client: c, descriptor: d}, nil
}

// Notes returns the note operations, including the tags of a note.
func (c *Client) Notes() *NoteItem { return &NoteItem{Item{client: c, descriptor: Notes}} }

// Tags returns the tag operations, including attaching tags to notes.
func (c *Client) Tags() *TagItem { return &TagItem{Item{client: c, descriptor: Tags}} }

// Folders returns the notebook operations.
func (c *Client) Folders() *Item { return &Item{client: c, descriptor: Folders} }

// Resources returns the attachment operations.
func (c *Client) Resources() *Item { return &Item{client: c, descriptor: Resources} }

// Revisions returns the note history operations.
func (c *Client) Revisions() *Item { return &Item{client: c, descriptor: Revisions} }

// Events returns the change event operations.
func (c *Client) Events() *Item { return &Item{client: c, descriptor: Events} }

func (c *Client) connected() error {
	if c == nil {
		return errors.New("joplin client is nil")
	}

	if c.api == nil {
		return ErrNotConnected
	}

	return nil
}

// Item binds the generic operations of one item type to a connected [Client].
type Item struct {
	client     *Client
	descriptor Descriptor
}

// Descriptor returns the item type the operations act on.
func (i *Item) Descriptor() Descriptor {
	return i.descriptor
}

// Search runs a Joplin search query restricted to this item type.
func (i *Item) Search(ctx context.Context, query string, opts ListOptions) (*PagedResult, error) {
	if err := i.client.connected(); err != nil {
		return nil, err
	}

	return i.client.api.Search(ctx, i.client.token, i.descriptor, query, opts)
}

// List collects all items of this type.
func (i *Item) List(ctx context.Context, opts ListOptions) (*PagedResult, error) {
	if err := i.client.connected(); err != nil {
		return nil, err
	}

	return i.client.api.List(ctx, i.client.token, i.descriptor, opts)
}

// Get fetches one item by id, optionally limited to fields.
func (i *Item) Get(ctx context.Context, id string, fields ...string) (*resty.Response, error) {
	if err := i.client.connected(); err != nil {
		return nil, err
	}

	return i.client.api.Get(ctx, i.client.token, i.descriptor, id, fields...)
}

// Create posts a new item after checking its required fields.
func (i *Item) Create(ctx context.Context, data any) (*resty.Response, error) {
	if err := i.client.connected(); err != nil {
		return nil, err
	}

	return i.client.api.Create(ctx, i.client.token, i.descriptor, data)
}

// Update puts data to the item with the given id.
func (i *Item) Update(ctx context.Context, id string, data any) (*resty.Response, error) {
	if err := i.client.connected(); err != nil {
		return nil, err
	}

	return i.client.api.Update(ctx, i.client.token, i.descriptor, id, data)
}

// Delete moves the item to the trash, or deletes it permanently when trash
// is false.
func (i *Item) Delete(ctx context.Context, id string, trash bool) (*resty.Response, error) {
	if err := i.client.connected(); err != nil {
		return nil, err
	}

	return i.client.api.Delete(ctx, i.client.token, i.descriptor, id, trash)
}

// NoteItem adds note specific operations to [Item].
type NoteItem struct {
	Item
}

// Tags collects the tags attached to the note.
func (n *NoteItem) Tags(ctx context.Context, noteID string, debug bool) (*PagedResult, error) {
	if err := n.client.connected(); err != nil {
		return nil, err
	}

	return n.client.api.NoteTags(ctx, n.client.token, noteID, debug)
}

// TagItem adds the tag to note relationship operations to [Item].
type TagItem struct {
	Item
}

// AttachToNote adds the tag to the note.
func (t *TagItem) AttachToNote(ctx context.Context, tagID, noteID string) (*resty.Response, error) {
	if err := t.client.connected(); err != nil {
		return nil, err
	}

	return t.client.api.AttachTag(ctx, t.client.token, tagID, noteID)
}

// DetachFromNote removes the tag from the note.
func (t *TagItem) DetachFromNote(ctx context.Context, tagID, noteID string) (*resty.Response, error) {
	if err := t.client.connected(); err != nil {
		return nil, err
	}

	return t.client.api.DetachTag(ctx, t.client.token, tagID, noteID)
}
