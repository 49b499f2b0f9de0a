package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// StatementTransaction is one entry of a bank statement. Amount is in minor
// currency units; negative means a debit.
type StatementTransaction struct {
	ID          string `json:"id"`
	Time        int64  `json:"time"` // unix seconds
	Description string `json:"description"`
	MCC         int    `json:"mcc"`
	Amount      int64  `json:"amount"`
	CounterName string `json:"counterName,omitempty"`
}

// StatementClient fetches bank statements for a time window.
type StatementClient interface {
	Statements(ctx context.Context, from, to time.Time) ([]StatementTransaction, error)
}

// HTTPStatementClient talks to a monobank-style personal API: token in the
// X-Token header, statement window as unix seconds in the path.
type HTTPStatementClient struct {
	baseURL string
	token   string
	account string
	client  *http.Client
}

func NewHTTPStatementClient(baseURL, token, account string, timeout time.Duration) *HTTPStatementClient {
	if account == "" {
		account = "0" // default account per the personal API convention
	}
	return &HTTPStatementClient{
		baseURL: baseURL,
		token:   token,
		account: account,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPStatementClient) Statements(ctx context.Context, from, to time.Time) ([]StatementTransaction, error) {
	url := fmt.Sprintf("%s/personal/statement/%s/%d/%d", c.baseURL, c.account, from.Unix(), to.Unix())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build statement request: %w", err)
	}
	req.Header.Set("X-Token", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch statements: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("statement API returned %s", resp.Status)
	}

	var out []StatementTransaction
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode statements: %w", err)
	}
	return out, nil
}
