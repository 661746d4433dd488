package cloudinary

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentDestroys bounds the fan-out of a batch destroy.
const maxConcurrentDestroys = 8

// Client issues signed admin requests against the Cloudinary API for one
// cloud. Asset destruction is advisory cleanup: every failure is logged and
// reported as a boolean, never as an error the caller must handle.
type Client struct {
	baseURL    string
	cloudName  string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	logger     *zap.Logger
	now        func() time.Time
}

type destroyResponse struct {
	Result string `json:"result"`
}

func NewClient(baseURL, cloudName, apiKey, apiSecret string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
		now:    time.Now,
	}
}

// Destroy asks Cloudinary to delete the asset behind publicID. Returns true
// only when the API reports the asset as removed or already absent.
func (c *Client) Destroy(publicID string) bool {
	if publicID == "" {
		return false
	}

	timestamp := fmt.Sprintf("%d", c.now().Unix())

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.apiKey)
	form.Set("signature", c.sign(publicID, timestamp))

	endpoint := strings.TrimSuffix(c.baseURL, "/") + "/" + c.cloudName + "/image/destroy"
	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		c.logger.Warn("cloudinary: failed to build destroy request",
			zap.String("public_id", publicID), zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("cloudinary: destroy request failed",
			zap.String("public_id", publicID), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("cloudinary: failed to read destroy response",
			zap.String("public_id", publicID), zap.Error(err))
		return false
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("cloudinary: destroy rejected",
			zap.String("public_id", publicID),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return false
	}

	var result destroyResponse
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Warn("cloudinary: failed to decode destroy response",
			zap.String("public_id", publicID), zap.Error(err))
		return false
	}

	// "not found" counts as success: the asset is gone either way
	if result.Result != "ok" && result.Result != "not found" {
		c.logger.Warn("cloudinary: destroy not applied",
			zap.String("public_id", publicID),
			zap.String("result", result.Result))
		return false
	}

	return true
}

// DestroyAll destroys the given assets concurrently and independently; one
// failure never blocks or cancels the rest. Returns the number of successful
// destroys.
func (c *Client) DestroyAll(publicIDs []string) int {
	if len(publicIDs) == 0 {
		return 0
	}

	var succeeded int64
	var g errgroup.Group
	g.SetLimit(maxConcurrentDestroys)

	for _, id := range publicIDs {
		g.Go(func() error {
			if c.Destroy(id) {
				atomic.AddInt64(&succeeded, 1)
			}
			return nil
		})
	}
	// workers never return errors; Wait only joins
	_ = g.Wait()

	count := int(atomic.LoadInt64(&succeeded))
	if count < len(publicIDs) {
		c.logger.Warn("cloudinary: batch destroy partially failed",
			zap.Int("requested", len(publicIDs)),
			zap.Int("succeeded", count))
	}
	return count
}

// sign computes the request signature Cloudinary requires for authenticated
// admin calls: SHA-1 over the sorted parameter string plus the API secret.
func (c *Client) sign(publicID, timestamp string) string {
	payload := "public_id=" + publicID + "&timestamp=" + timestamp + c.apiSecret
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
