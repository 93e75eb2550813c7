package registry

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertlopezdev/queryapi/pkg/types"
)

// rpcServer fakes a JSON-RPC node serving view calls with the given contract
// return value.
func rpcServer(t *testing.T, contractResult string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "query", req.Method)
		assert.Equal(t, "call_function", req.Params.RequestType)
		assert.Equal(t, "final", req.Params.Finality)
		assert.Equal(t, "registry.test.near", req.Params.AccountID)
		assert.Equal(t, listMethod, req.Params.MethodName)

		args, err := base64.StdEncoding.DecodeString(req.Params.ArgsBase64)
		require.NoError(t, err)
		assert.JSONEq(t, "{}", string(args))

		resultBytes := []byte(contractResult)
		asInts := make([]int, len(resultBytes))
		for i, b := range resultBytes {
			asInts[i] = int(b)
		}

		payload, err := json.Marshal(map[string]any{
			"result": map[string]any{"result": asInts},
		})
		require.NoError(t, err)
		w.Write(payload)
	}))
}

func TestFetchDecodesRegistry(t *testing.T) {
	server := rpcServer(t, `{
		"morgs.near": {
			"test": {
				"code": "return block;",
				"schema": "CREATE TABLE blocks (height numeric)",
				"rule": {"affected_account_id": "social.near", "status": "SUCCESS"},
				"created_at_block_height": 100,
				"updated_at_block_height": 200,
				"start_block": "latest"
			},
			"fixed": {
				"code": "",
				"schema": "",
				"rule": {"affected_account_id": "*", "status": "ANY"},
				"created_at_block_height": 100,
				"start_block": {"height": 50}
			}
		},
		"darunrs.near": {
			"continue": {
				"code": "",
				"schema": "",
				"rule": {"affected_account_id": "*", "status": "ANY"},
				"created_at_block_height": 300,
				"start_block": "continue"
			}
		}
	}`)
	defer server.Close()

	client := Connect("registry.test.near", server.URL)
	registry, err := client.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, registry, 2)

	test := registry["morgs.near"]["test"]
	assert.Equal(t, types.AccountID("morgs.near"), test.AccountID)
	assert.Equal(t, "test", test.FunctionName)
	assert.Equal(t, "return block;", test.Code)
	assert.Equal(t, types.RuleStatusSuccess, test.Rule.Status)
	assert.Equal(t, uint64(200), test.RegistryVersion())
	assert.Equal(t, types.Latest(), test.StartBlock)

	fixed := registry["morgs.near"]["fixed"]
	assert.Equal(t, uint64(100), fixed.RegistryVersion())
	assert.Equal(t, types.Height(50), fixed.StartBlock)
	assert.Equal(t, types.RuleStatusAny, fixed.Rule.Status)

	cont := registry["darunrs.near"]["continue"]
	assert.Equal(t, types.Continue(), cont.StartBlock)
}

func TestFetchDefaultsMissingStartBlockToLatest(t *testing.T) {
	server := rpcServer(t, `{
		"morgs.near": {
			"test": {
				"code": "",
				"schema": "",
				"rule": {"affected_account_id": "*", "status": "ANY"},
				"created_at_block_height": 100
			}
		}
	}`)
	defer server.Close()

	client := Connect("registry.test.near", server.URL)
	registry, err := client.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, types.Latest(), registry["morgs.near"]["test"].StartBlock)
}

func TestFetchReturnsRPCErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": {"name": "HANDLER_ERROR", "message": "contract not found"}}`)
	}))
	defer server.Close()

	client := Connect("registry.test.near", server.URL)
	_, err := client.Fetch(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HANDLER_ERROR")
	assert.Contains(t, err.Error(), "contract not found")
}

func TestFetchFailsOnHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := Connect("registry.test.near", server.URL)
	_, err := client.Fetch(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetchRejectsUnknownRuleStatus(t *testing.T) {
	server := rpcServer(t, `{
		"morgs.near": {
			"test": {
				"code": "",
				"schema": "",
				"rule": {"affected_account_id": "*", "status": "SIDEWAYS"},
				"created_at_block_height": 100
			}
		}
	}`)
	defer server.Close()

	client := Connect("registry.test.near", server.URL)
	_, err := client.Fetch(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rule status")
}

func TestDecodeRuleStatus(t *testing.T) {
	tests := []struct {
		wire     string
		expected types.RuleStatus
	}{
		{wire: "ANY", expected: types.RuleStatusAny},
		{wire: "SUCCESS", expected: types.RuleStatusSuccess},
		{wire: "FAILURE", expected: types.RuleStatusFailure},
	}

	for _, tt := range tests {
		status, err := decodeRuleStatus(tt.wire)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, status)
	}

	_, err := decodeRuleStatus("success")
	require.Error(t, err, "lowercase domain values are not wire values")
}

func TestWireStartBlockRejectsUnknownVariant(t *testing.T) {
	var s wireStartBlock
	err := json.Unmarshal([]byte(`"sideways"`), &s)
	require.Error(t, err)
}
