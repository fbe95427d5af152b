package report

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// RunPath is the generic automation run endpoint.
const RunPath = "/v1/automations/run"

// RunAutomation triggers an automation by id with a JSON POST. An
// automation may carry its own run path; pass it as pathOverride,
// empty for the generic endpoint.
func (c *Client) RunAutomation(automationID, pathOverride string) (*Result, error) {
	path := RunPath
	if pathOverride != "" {
		path = pathOverride
	}

	body, err := json.Marshal(map[string]string{"automation_id": automationID})
	if err != nil {
		return nil, err
	}

	fullURL := c.BuildURL(path, nil)
	httpReq, err := http.NewRequest(http.MethodPost, fullURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq, fullURL, nil, c.cfg.Timeout)
}
