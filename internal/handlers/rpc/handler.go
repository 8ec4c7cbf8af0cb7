package rpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gabapcia/txinsight/internal/insight"
	"github.com/gabapcia/txinsight/internal/pkg/logger"
	"github.com/gabapcia/txinsight/internal/snap"
)

// JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

const (
	methodOnRpcRequest  = "onRpcRequest"
	methodOnTransaction = "onTransaction"
)

var nullID = json.RawMessage("null")

type (
	request struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params"`
	}

	response struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Result  json.RawMessage `json:"result,omitempty"`
		Error   *Error          `json:"error,omitempty"`
	}

	onRpcRequestParams struct {
		Origin  string       `json:"origin"`
		Request snap.Request `json:"request"`
	}

	onTransactionParams struct {
		Transaction insight.Transaction `json:"transaction"`
		ChainID     string              `json:"chainId"`
	}
)

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeResult(w http.ResponseWriter, id json.RawMessage, result any) {
	data, err := json.Marshal(result)
	if err != nil {
		writeError(w, id, &Error{Code: CodeInternalError, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, response{JSONRPC: "2.0", ID: id, Result: data})
}

func writeError(w http.ResponseWriter, id json.RawMessage, e *Error) {
	writeJSON(w, http.StatusOK, response{JSONRPC: "2.0", ID: id, Error: e})
}

// decodeParams decodes an object params payload into out.
func decodeParams(raw json.RawMessage, out any) *Error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return &Error{Code: CodeInvalidParams, Message: "params must be an object"}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Code: CodeInvalidParams, Message: err.Error()}
	}

	return nil
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		writeError(w, nullID, &Error{Code: CodeParseError, Message: "Parse error"})
		return
	}

	id := req.ID
	if len(id) == 0 {
		id = nullID
	}

	if req.JSONRPC != "2.0" || req.Method == "" {
		writeError(w, id, &Error{Code: CodeInvalidRequest, Message: "Invalid Request"})
		return
	}

	logger.Debug(ctx, "snap rpc request", "rpc.method", req.Method)

	switch req.Method {
	case methodOnRpcRequest:
		var params onRpcRequestParams
		if e := decodeParams(req.Params, &params); e != nil {
			writeError(w, id, e)
			return
		}
		if params.Request.Method == "" {
			writeError(w, id, &Error{Code: CodeInvalidParams, Message: "request.method is required"})
			return
		}

		result, err := s.handler.OnRpcRequest(ctx, params.Origin, params.Request)
		switch {
		case errors.Is(err, snap.ErrMethodNotFound):
			writeError(w, id, &Error{Code: CodeMethodNotFound, Message: err.Error()})
		case err != nil:
			logger.Error(ctx, "snap request failed", "origin", params.Origin, "snap.method", params.Request.Method, "error", err)
			writeError(w, id, &Error{Code: CodeInternalError, Message: err.Error()})
		default:
			writeResult(w, id, result)
		}
	case methodOnTransaction:
		var params onTransactionParams
		if e := decodeParams(req.Params, &params); e != nil {
			writeError(w, id, e)
			return
		}
		writeResult(w, id, s.handler.OnTransaction(ctx, params.Transaction, params.ChainID))
	default:
		writeError(w, id, &Error{Code: CodeMethodNotFound, Message: "Method not found"})
	}
}
