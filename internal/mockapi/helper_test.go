package mockapi

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

func decodeJSON(resp *http.Response, out interface{}) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(body, out)
}
