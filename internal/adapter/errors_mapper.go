package adapter

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	return &ResponseError{
		StatusCode: code,
		Detail:     errorDetail(resp.Body(), code),
		kind:       statusKind(code),
	}
}

// errorDetail extracts a human-readable message from an error body. FastAPI
// reports either {"detail": "..."} or, for request validation failures,
// {"detail": [{"loc": [...], "msg": "..."}]}.
func errorDetail(body []byte, code int) string {
	detail := gjson.GetBytes(body, "detail")
	switch {
	case detail.Type == gjson.String && strings.TrimSpace(detail.String()) != "":
		return strings.TrimSpace(detail.String())
	case detail.IsArray():
		if msg := detail.Get("0.msg"); msg.Exists() && msg.String() != "" {
			return msg.String()
		}
	case detail.IsObject():
		if msg := detail.Get("msg"); msg.Exists() && msg.String() != "" {
			return msg.String()
		}
	}

	if msg := gjson.GetBytes(body, "message"); msg.Type == gjson.String && msg.String() != "" {
		return msg.String()
	}

	if text := http.StatusText(code); text != "" {
		return text
	}
	return "HTTP " + strconv.Itoa(code)
}
