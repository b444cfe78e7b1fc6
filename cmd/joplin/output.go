package main

import (
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"

	joplin "github.com/peteraglen/joplin-go-client"
)

func printResult(result *joplin.PagedResult) error {
	for i, resp := range result.Responses {
		logger.Debug().Int("page", i+1).Int("status", resp.StatusCode()).Dur("duration", resp.Time()).Msg("page fetched")
	}

	if err := result.Err(); err != nil {
		return err
	}

	return printJSON(result.Data)
}

// printResponse writes the body of a single item response. Bodies of error
// responses go to stderr and make the command fail.
func printResponse(resp *resty.Response) error {
	if resp.IsError() {
		fmt.Fprintln(os.Stderr, resp.String())
		return fmt.Errorf("request failed with status code: %d", resp.StatusCode())
	}

	if len(resp.Body()) == 0 {
		return nil
	}

	_, err := fmt.Fprintln(os.Stdout, resp.String())

	return err
}
