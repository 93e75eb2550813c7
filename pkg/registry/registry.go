package registry

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/robertlopezdev/queryapi/pkg/types"
)

// listMethod is the registry contract view method returning every registered
// indexer.
const listMethod = "list_all"

// Client fetches the declared indexer set from the registry contract via its
// chain's JSON-RPC endpoint.
type Client struct {
	rpcURL     string
	contractID types.AccountID
	httpClient *http.Client
}

// Connect creates a registry client for the contract at contractID served by
// the JSON-RPC node at rpcURL
func Connect(contractID types.AccountID, rpcURL string) *Client {
	return &Client{
		rpcURL:     rpcURL,
		contractID: contractID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  queryParams `json:"params"`
}

type queryParams struct {
	RequestType string `json:"request_type"`
	Finality    string `json:"finality"`
	AccountID   string `json:"account_id"`
	MethodName  string `json:"method_name"`
	ArgsBase64  string `json:"args_base64"`
}

type rpcResponse struct {
	Result *callResult `json:"result"`
	Error  *rpcError   `json:"error"`
}

type callResult struct {
	// Result is the raw return value of the view call, serialised by the
	// node as an array of byte values.
	Result []int `json:"result"`
}

type rpcError struct {
	Name  string `json:"name"`
	Cause struct {
		Name string `json:"name"`
	} `json:"cause"`
	Message string `json:"message"`
}

// registration is the wire form of one indexer's registry entry.
type registration struct {
	Code                 string          `json:"code"`
	Schema               string          `json:"schema"`
	Rule                 wireRule        `json:"rule"`
	CreatedAtBlockHeight uint64          `json:"created_at_block_height"`
	UpdatedAtBlockHeight *uint64         `json:"updated_at_block_height"`
	StartBlock           *wireStartBlock `json:"start_block"`
}

type wireRule struct {
	AffectedAccountID string `json:"affected_account_id"`
	Status            string `json:"status"`
}

// wireStartBlock decodes the registry's externally tagged start block enum:
// the unit variants "latest" and "continue" serialise as plain strings, the
// height variant as {"height": n}.
type wireStartBlock struct {
	Mode   types.StartBlockMode
	Height uint64
}

// decodeRuleStatus maps the contract's uppercase status variants onto the
// domain enum.
func decodeRuleStatus(wire string) (types.RuleStatus, error) {
	switch wire {
	case "ANY":
		return types.RuleStatusAny, nil
	case "SUCCESS":
		return types.RuleStatusSuccess, nil
	case "FAILURE":
		return types.RuleStatusFailure, nil
	default:
		return "", fmt.Errorf("unknown rule status %q", wire)
	}
}

func (s *wireStartBlock) UnmarshalJSON(data []byte) error {
	var unit string
	if err := json.Unmarshal(data, &unit); err == nil {
		switch unit {
		case "latest":
			s.Mode = types.StartBlockLatest
			return nil
		case "continue":
			s.Mode = types.StartBlockContinue
			return nil
		default:
			return fmt.Errorf("unknown start block variant %q", unit)
		}
	}

	var tagged struct {
		Height *uint64 `json:"height"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("malformed start block: %w", err)
	}
	if tagged.Height == nil {
		return fmt.Errorf("malformed start block: %s", data)
	}
	s.Mode = types.StartBlockHeight
	s.Height = *tagged.Height
	return nil
}

// Fetch returns a fresh snapshot of every indexer the registry contract
// declares. Any connectivity or decoding failure is returned as-is; the
// control loop treats it as fatal.
func (c *Client) Fetch(ctx context.Context) (types.IndexerRegistry, error) {
	payload, err := c.callFunction(ctx, listMethod, []byte("{}"))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch indexer registry: %w", err)
	}

	var wire map[string]map[string]registration
	if err := json.Unmarshal(payload, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode indexer registry: %w", err)
	}

	registry := make(types.IndexerRegistry, len(wire))
	for account, functions := range wire {
		accountID := types.AccountID(account)
		indexers := make(map[string]types.IndexerConfig, len(functions))

		for functionName, reg := range functions {
			startBlock := types.Latest()
			if reg.StartBlock != nil {
				startBlock = types.StartBlock{Mode: reg.StartBlock.Mode, Height: reg.StartBlock.Height}
			}

			ruleStatus, err := decodeRuleStatus(reg.Rule.Status)
			if err != nil {
				return nil, fmt.Errorf("failed to decode indexer %s/%s: %w", account, functionName, err)
			}

			indexers[functionName] = types.IndexerConfig{
				AccountID:    accountID,
				FunctionName: functionName,
				Code:         reg.Code,
				Schema:       reg.Schema,
				Rule: types.MatchingRule{
					AffectedAccountID: reg.Rule.AffectedAccountID,
					Status:            ruleStatus,
				},
				CreatedAtBlockHeight: reg.CreatedAtBlockHeight,
				UpdatedAtBlockHeight: reg.UpdatedAtBlockHeight,
				StartBlock:           startBlock,
			}
		}

		registry[accountID] = indexers
	}

	return registry, nil
}

func (c *Client) callFunction(ctx context.Context, method string, args []byte) ([]byte, error) {
	reqBody, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      "coordinator",
		Method:  "query",
		Params: queryParams{
			RequestType: "call_function",
			Finality:    "final",
			AccountID:   string(c.contractID),
			MethodName:  method,
			ArgsBase64:  base64.StdEncoding.EncodeToString(args),
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rpc node returned status %d", resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, fmt.Errorf("failed to decode rpc response: %w", err)
	}

	if rpcResp.Error != nil {
		return nil, fmt.Errorf("rpc error %s: %s", rpcResp.Error.Name, rpcResp.Error.Message)
	}
	if rpcResp.Result == nil {
		return nil, fmt.Errorf("rpc response missing result")
	}

	payload := make([]byte, len(rpcResp.Result.Result))
	for i, b := range rpcResp.Result.Result {
		if b < 0 || b > 255 {
			return nil, fmt.Errorf("rpc result byte out of range: %d", b)
		}
		payload[i] = byte(b)
	}
	return payload, nil
}
