package natsrpc

import (
	"encoding/json"
	"errors"

	mahjong "mahjong-go"
	"mahjong-go/internal/wire"
)

// Reply is the envelope sent back to requesters. Code 0 means success and
// Data holds the result; otherwise Code is one of the engine error codes and
// Detail carries the full error text.
type Reply struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Detail  string       `json:"detail,omitempty"`
	Data    *wire.Result `json:"data,omitempty"`
}

func successReply(res *wire.Result) Reply {
	return Reply{Code: mahjong.CodeOK, Message: "success", Data: res}
}

func errorReply(err error) Reply {
	return Reply{Code: mahjong.GetCode(err), Message: mahjong.GetMessage(err), Detail: err.Error()}
}

// Err converts a failed reply back into a coded error that matches the
// engine sentinels with errors.Is.
func (r Reply) Err() error {
	if r.Code == mahjong.CodeOK {
		return nil
	}
	e := mahjong.NewError(r.Code, r.Message)
	if r.Detail != "" {
		return e.Wrap(errors.New(r.Detail))
	}
	return e
}

func encodeReply(r Reply) []byte {
	data, err := json.Marshal(r)
	if err != nil {
		data, _ = json.Marshal(Reply{Code: mahjong.CodeInternal, Message: "internal error", Detail: err.Error()})
	}
	return data
}
