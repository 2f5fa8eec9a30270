package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"shiftdial/internal/domain"
)

// HTTP talks to a dialserver at Base.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base; a nil client uses http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// Apply runs a cipher request on the server.
func (c *HTTP) Apply(ctx context.Context, req domain.CipherRequest) (domain.CipherResult, error) {
	var out domain.CipherResult
	if err := c.post(ctx, "/v1/cipher", req, &out); err != nil {
		return domain.CipherResult{}, err
	}
	return out, nil
}

// Quantize asks the server where angle lands on the grid. JSON has no NaN
// or Inf, so non-finite angles are sent as 0 (where the grid puts them
// anyway) and echoed back unchanged in Angle.
func (c *HTTP) Quantize(ctx context.Context, angle float64) (domain.DialReading, error) {
	wire := angle
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		wire = 0
	}
	var out domain.DialReading
	if err := c.post(ctx, "/v1/quantize", struct {
		Angle float64 `json:"angle"`
	}{wire}, &out); err != nil {
		return domain.DialReading{}, err
	}
	out.Angle = angle
	return out, nil
}

// Override asks the server to wrap a numeric dial entry.
func (c *HTTP) Override(ctx context.Context, value int) (domain.DialReading, error) {
	var out domain.DialReading
	if err := c.post(ctx, "/v1/override", struct {
		Value int `json:"value"`
	}{value}, &out); err != nil {
		return domain.DialReading{}, err
	}
	return out, nil
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return statusError(path, resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// statusError builds an error from a non-2xx response.
func statusError(path string, resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	msg := body.Error
	switch {
	case strings.Contains(msg, domain.ErrUnknownDirection.Error()):
		return fmt.Errorf("remote post %s: %s: %w", path, resp.Status, domain.ErrUnknownDirection)
	case strings.Contains(msg, domain.ErrUnknownIndexing.Error()):
		return fmt.Errorf("remote post %s: %s: %w", path, resp.Status, domain.ErrUnknownIndexing)
	case msg != "":
		return fmt.Errorf("remote post %s: %s: %s", path, resp.Status, msg)
	}
	return fmt.Errorf("remote post %s: %s", path, resp.Status)
}

var (
	_ domain.CipherService = (*HTTP)(nil)
	_ domain.DialService   = (*HTTP)(nil)
)
