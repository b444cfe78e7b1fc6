package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// APIClient is the low-level client for the Joplin Data API. Every call takes
// the API token explicitly; see [Client] for a facade that holds it.
//
// An APIClient is safe to share between goroutines as long as the options it
// was built with are not modified, but it performs no synchronisation of its
// own.
type APIClient struct {
	settings Settings
	options  *Options
	http     *resty.Client
}

// ListOptions controls the fields and ordering of list and search calls.
// The zero value requests the server defaults.
type ListOptions struct {
	// Fields restricts the returned record fields. Each must belong to the
	// item type.
	Fields []string
	// OrderBy must be a field of the item type.
	OrderBy string
	// OrderDir is "ASC" or "DESC", case sensitive.
	OrderDir string
	// Debug keeps every raw page response in [PagedResult.Responses].
	Debug bool
}

// NewAPIClient validates settings and options and builds the HTTP client.
func NewAPIClient(settings Settings, opts ...Option) (*APIClient, error) {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	return newAPIClient(settings, options)
}

func newAPIClient(settings Settings, options *Options) (*APIClient, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	httpClient := resty.New().
		SetBaseURL(settings.BaseURL()).
		SetRetryCount(options.retryCount).
		SetRetryWaitTime(options.retryWaitTime).
		SetRetryMaxWaitTime(options.retryMaxWaitTime).
		AddRetryCondition(options.retryPolicy).
		SetHeaders(options.requestHeaders).
		SetLogger(options.requestLogger).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	if options.timeout > 0 {
		httpClient.SetTimeout(options.timeout)
	}

	return &APIClient{
		settings: settings,
		options:  options,
		http:     httpClient,
	}, nil
}

// Settings returns the settings the client was built with.
func (c *APIClient) Settings() Settings {
	return c.settings
}

// Search runs a query against the search route and collects every page. The
// item type filter is omitted for notes, which the API searches by default.
func (c *APIClient) Search(ctx context.Context, token string, d Descriptor, query string, opts ListOptions) (*PagedResult, error) {
	params, err := listParams(token, c.settings.PageSize, d, opts)
	if err != nil {
		return nil, err
	}

	params["query"] = query
	if d.Name != Notes.Name {
		params["type"] = d.Name
	}

	return c.paginate(ctx, c.settings.SearchRoute, params, opts.Debug)
}

// List collects every item of type d.
func (c *APIClient) List(ctx context.Context, token string, d Descriptor, opts ListOptions) (*PagedResult, error) {
	params, err := listParams(token, c.settings.PageSize, d, opts)
	if err != nil {
		return nil, err
	}

	return c.paginate(ctx, d.Route, params, opts.Debug)
}

// Get fetches one item by id. The response is returned as is; its status is
// not interpreted.
func (c *APIClient) Get(ctx context.Context, token string, d Descriptor, id string, fields ...string) (*resty.Response, error) {
	req := c.request(ctx, token)

	if len(fields) > 0 {
		fieldNames, err := validateFields(d, fields)
		if err != nil {
			return nil, err
		}

		req.SetQueryParam("fields", fieldNames)
	}

	return send(req, http.MethodGet, itemRoute(d, id))
}

// Create posts a new item. A structured payload (a map or a struct) must
// contain every field in d.RequiredForCreate; a bare string, used for items
// created by title alone, is sent without validation.
func (c *APIClient) Create(ctx context.Context, token string, d Descriptor, data any) (*resty.Response, error) {
	if err := checkRequiredFields(d, data); err != nil {
		return nil, err
	}

	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", d.Name, err)
	}

	return send(c.request(ctx, token).SetBody(body), http.MethodPost, d.Route)
}

// Update puts data to the item with the given id. No field validation is done.
func (c *APIClient) Update(ctx context.Context, token string, d Descriptor, id string, data any) (*resty.Response, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", d.Name, err)
	}

	return send(c.request(ctx, token).SetBody(body), http.MethodPut, itemRoute(d, id))
}

// Delete moves the item to the trash, or removes it permanently when trash
// is false.
func (c *APIClient) Delete(ctx context.Context, token string, d Descriptor, id string, trash bool) (*resty.Response, error) {
	req := c.request(ctx, token)

	if !trash {
		req.SetQueryParam("permanent", "1")
	}

	return send(req, http.MethodDelete, itemRoute(d, id))
}

// AttachTag adds the tag to the note.
func (c *APIClient) AttachTag(ctx context.Context, token, tagID, noteID string) (*resty.Response, error) {
	body, err := json.Marshal(map[string]string{"id": noteID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tag attachment: %w", err)
	}

	return send(c.request(ctx, token).SetBody(body), http.MethodPost, itemRoute(Tags, tagID)+"/notes")
}

// DetachTag removes the tag from the note.
func (c *APIClient) DetachTag(ctx context.Context, token, tagID, noteID string) (*resty.Response, error) {
	route := itemRoute(Tags, tagID) + "/notes/" + url.PathEscape(noteID)

	return send(c.request(ctx, token), http.MethodDelete, route)
}

// NoteTags collects every tag attached to the note.
func (c *APIClient) NoteTags(ctx context.Context, token, noteID string, debug bool) (*PagedResult, error) {
	params := map[string]string{
		"token": token,
		"limit": strconv.Itoa(c.settings.PageSize),
	}

	return c.paginate(ctx, itemRoute(Notes, noteID)+"/tags", params, debug)
}

// paginate requests route page by page, starting at 1, until the server
// reports no more data or answers with a status other than 200. A transport
// error is returned together with the unsuccessful result, so that responses
// kept for earlier pages are not lost.
func (c *APIClient) paginate(ctx context.Context, route string, params map[string]string, debug bool) (*PagedResult, error) {
	result := &PagedResult{}
	data := []Record{}

	for pageNr := 1; ; pageNr++ {
		c.options.requestLogger.Debugf("GET /%s page %d", route, pageNr)

		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetQueryParam("page", strconv.Itoa(pageNr)).
			Get(route)
		if err != nil {
			err = requestError(http.MethodGet, route, err)
			result.FailedPage = pageNr
			result.Error = err.Error()

			return result, err
		}

		if debug {
			result.Responses = append(result.Responses, resp)
		}

		if resp.StatusCode() != http.StatusOK {
			result.FailedPage = pageNr
			result.StatusCode = resp.StatusCode()
			result.Error = fmt.Sprintf("request nr %d failed with status code: %d", pageNr, resp.StatusCode())
			c.options.requestLogger.Warnf("GET /%s: %s", route, result.Error)

			return result, nil
		}

		var p page
		if err := json.Unmarshal(resp.Body(), &p); err != nil {
			return nil, fmt.Errorf("failed to decode page %d of /%s: %w", pageNr, route, err)
		}

		data = append(data, p.Items...)

		if !p.HasMore {
			break
		}
	}

	result.Success = true
	result.Data = data

	return result, nil
}

func (c *APIClient) request(ctx context.Context, token string) *resty.Request {
	return c.http.R().SetContext(ctx).SetQueryParam("token", token)
}

func send(req *resty.Request, method, route string) (*resty.Response, error) {
	resp, err := req.Execute(method, route)
	if err != nil {
		return nil, requestError(method, route, err)
	}

	return resp, nil
}

// requestError drops the request URL from transport errors, since the query
// string carries the token.
func requestError(method, route string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	return fmt.Errorf("%s /%s failed: %w", method, route, err)
}

func listParams(token string, pageSize int, d Descriptor, opts ListOptions) (map[string]string, error) {
	params := map[string]string{
		"token": token,
		"limit": strconv.Itoa(pageSize),
	}

	if len(opts.Fields) > 0 {
		fieldNames, err := validateFields(d, opts.Fields)
		if err != nil {
			return nil, err
		}

		params["fields"] = fieldNames
	}

	if opts.OrderBy != "" {
		if err := validateOrderBy(d, opts.OrderBy); err != nil {
			return nil, err
		}

		params["order_by"] = opts.OrderBy
	}

	if opts.OrderDir != "" {
		if err := validateOrderDir(opts.OrderDir); err != nil {
			return nil, err
		}

		params["order_dir"] = opts.OrderDir
	}

	return params, nil
}

func checkRequiredFields(d Descriptor, data any) error {
	var record map[string]any

	switch v := data.(type) {
	case string:
		return nil
	case map[string]any:
		record = v
	default:
		// Structs and other maps are checked by their JSON keys. Payloads that
		// are not JSON objects carry no fields to check.
		raw, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", d.Name, err)
		}

		if err := json.Unmarshal(raw, &record); err != nil {
			return nil
		}
	}

	for _, field := range d.RequiredForCreate {
		if _, ok := record[field]; !ok {
			return fmt.Errorf("%w: %s was not found in %s data", ErrMissingRequiredField, field, d.Name)
		}
	}

	return nil
}

func itemRoute(d Descriptor, id string) string {
	return d.Route + "/" + url.PathEscape(id)
}
