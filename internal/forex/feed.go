package forex

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Rate is one published currency pair from the feed.
type Rate struct {
	From  string
	To    string
	Value decimal.Decimal
}

// FeedClient pulls a cross-rate table from an XML rate feed.
type FeedClient struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewFeedClient initializes a feed client
func NewFeedClient(url string, log *logrus.Logger) *FeedClient {
	return &FeedClient{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// fetch downloads the raw feed document.
func (c *FeedClient) fetch() ([]byte, error) {
	resp, err := c.client.Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}
	c.log.Debugf("Rate feed XML response: %s", string(body))
	return body, nil
}

// ParseRates extracts currency pairs from a feed document of the form
//
//	<Rates date="...">
//	  <Rate from="USD" to="EUR">0.85</Rate>
//	</Rates>
func ParseRates(rawBody []byte) ([]Rate, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %v", err)
	}

	elements := doc.FindElements("//Rates/Rate")
	if len(elements) == 0 {
		return nil, fmt.Errorf("no rate data found in XML")
	}

	rates := make([]Rate, 0, len(elements))
	for _, el := range elements {
		from := el.SelectAttrValue("from", "")
		to := el.SelectAttrValue("to", "")
		if from == "" || to == "" {
			return nil, fmt.Errorf("rate element missing currency attributes")
		}
		value, err := decimal.NewFromString(strings.TrimSpace(el.Text()))
		if err != nil {
			return nil, fmt.Errorf("failed to parse rate for %s/%s: %v", from, to, err)
		}
		rates = append(rates, Rate{From: from, To: to, Value: value})
	}
	return rates, nil
}

// Refresh pulls the feed and applies every published pair to the service.
func (c *FeedClient) Refresh(svc *Service) error {
	body, err := c.fetch()
	if err != nil {
		return err
	}
	rates, err := ParseRates(body)
	if err != nil {
		return err
	}
	for _, r := range rates {
		svc.SetRate(r.From, r.To, r.Value)
	}
	c.log.Infof("Refreshed %d exchange rates from feed", len(rates))
	return nil
}
