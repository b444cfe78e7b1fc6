// Package client provides an HTTP client for the Joplin Data API, the REST
// service exposed by the Joplin desktop application's web clipper.
//
// The client wraps [github.com/go-resty/resty/v2] with optional retries,
// pluggable logging and layered settings loading.
//
// # Basic Usage
//
//	settings, err := client.LoadSettings("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c := client.New(settings, client.WithAPIKey(os.Getenv("JOPLIN_TOKEN")))
//
//	if err := c.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := c.Notes().Search(ctx, "title:groceries", client.ListOptions{
//	    Fields:  []string{"id", "title"},
//	    OrderBy: "updated_time",
//	})
//
// # Authentication
//
// Every request carries the API token as the token query parameter. Supply a
// token with [WithAPIKey], or leave it out and [Client.Connect] runs the
// authorization handshake: Joplin shows a prompt and the client polls until
// the user accepts ([ErrAuthorizationDenied] otherwise). The poll waits
// [WithAuthPollInterval] between checks and can be bounded with
// [WithAuthTimeout] or by cancelling the context.
//
// # Low-level and High-level Clients
//
// [APIClient] takes the token on every call and is parameterised by a
// [Descriptor] such as [Notes] or [Tags]. [Client] holds the token and hands
// out bound [Item], [NoteItem] and [TagItem] values.
//
// # Results
//
// List and search calls follow the has_more flag page by page and return a
// [PagedResult]. A page answered with a status other than 200 stops the
// listing: the result reports the failing page and status and carries no
// data. Single item calls (Get, Create, Update, Delete and the tag
// relationship calls) return the raw [resty.Response] without interpreting
// its status.
//
// Field lists, order fields and order directions are validated before any
// request is sent ([ErrInvalidField], [ErrInvalidOrderField],
// [ErrInvalidOrderDirection]); so are the required fields of structured
// create payloads ([ErrMissingRequiredField]).
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewZerologLogger]. The default
// [NoopLogger] discards all log output.
package client
