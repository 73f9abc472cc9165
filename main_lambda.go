//go:build lambda

package main

import (
	"context"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

//go:embed data.min.json
var embeddedData string

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// optimizeRequest carries the archive plus the order the caller last saw.
// Order entries and promote names are resolved like CLI input.
type optimizeRequest struct {
	Archive            json.RawMessage `json:"archive"`
	Order              []string        `json:"order"`
	Promote            []string        `json:"promote"`
	IncludeSpecialists bool            `json:"includeSpecialists"`
}

type optimizeResult struct {
	*Result
	Detail string `json:"detail"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	return handleOptimize(event, embeddedData)
}

func handleOptimize(event events.LambdaFunctionURLRequest, dataJSON string) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req optimizeRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}
	if len(req.Archive) == 0 {
		return errResp(400, "missing archive field")
	}

	cfg := DefaultConfig()
	cfg.IncludeSpecialists = req.IncludeSpecialists
	gd, err := loadFromStrings(dataJSON, string(req.Archive), cfg)
	if err != nil {
		return errResp(400, err.Error())
	}

	session := NewSession(gd, cfg)
	order, err := resolveOrder(session.Order(), strings.Join(req.Order, ","), req.Promote, cfg.siteNames())
	if err != nil {
		return siteErrResp(err)
	}
	session.SetOrder(order)

	res := session.Run(false)
	resp := optimizeResult{Result: res, Detail: FormatResult(res, false, -1)}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

// siteErrResp reports an unresolvable site name with its suggestions.
func siteErrResp(err error) (events.LambdaFunctionURLResponse, error) {
	var ue *UnknownSiteError
	if !errors.As(err, &ue) {
		return errResp(400, err.Error())
	}
	body, _ := json.Marshal(map[string]any{"error": ue.Error(), "suggestions": ue.Suggestions})
	return events.LambdaFunctionURLResponse{StatusCode: 404, Headers: jsonHeader, Body: string(body)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
