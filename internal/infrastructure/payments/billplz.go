package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"agency_billing/internal/domain/entities"
	"agency_billing/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const (
	productionBaseURL = "https://www.billplz.com/api"
	sandboxBaseURL    = "https://www.billplz-sandbox.com/api"

	defaultClientTimeout = 30 * time.Second
)

var ErrMissingBillplzSecretKey = errors.New("missing BILLPLZ_SECRET_KEY")

// Config holds the Billplz credentials and mode flags.
type Config struct {
	// APISecretKey authenticates every call: Basic auth with the secret
	// key as username and an empty password.
	APISecretKey string
	// CollectionID is an existing collection to raise bills under.
	CollectionID string
	// Sandbox selects the billplz-sandbox host.
	Sandbox bool
	// XSignatureKey verifies inbound webhook callbacks. Required only
	// when webhook verification is used.
	XSignatureKey string
	// Timeout bounds each HTTP round-trip. Zero means the default.
	Timeout time.Duration
}

// ConfigFromEnv reads the Billplz configuration from the environment.
func ConfigFromEnv() Config {
	sandbox, _ := strconv.ParseBool(os.Getenv("BILLPLZ_SANDBOX"))
	return Config{
		APISecretKey:  strings.TrimSpace(os.Getenv("BILLPLZ_SECRET_KEY")),
		CollectionID:  strings.TrimSpace(os.Getenv("BILLPLZ_COLLECTION_ID")),
		Sandbox:       sandbox,
		XSignatureKey: strings.TrimSpace(os.Getenv("BILLPLZ_XSIGNATURE_KEY")),
	}
}

// BillplzClient is the wire client for the Billplz v3 API.
//
// All operations are independent network round-trips with no internal
// retry; callers impose their own deadline via ctx and decide retry
// policy from the GatewayError/NetworkError split.
type BillplzClient struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

var _ interfaces.IBillingGateway = (*BillplzClient)(nil)

func NewBillplzClient(cfg Config, logger *logrus.Logger) (*BillplzClient, error) {
	if cfg.APISecretKey == "" {
		return nil, ErrMissingBillplzSecretKey
	}
	if logger == nil {
		logger = logrus.New()
	}

	baseURL := productionBaseURL
	if cfg.Sandbox {
		baseURL = sandboxBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}

	return &BillplzClient{
		cfg:        cfg,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// WithBaseURL overrides the provider host. Test hook.
func (c *BillplzClient) WithBaseURL(baseURL string) *BillplzClient {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// CollectionID returns the configured default collection id.
func (c *BillplzClient) CollectionID() string { return c.cfg.CollectionID }

// HasXSignatureKey reports whether webhook verification is configured.
func (c *BillplzClient) HasXSignatureKey() bool { return c.cfg.XSignatureKey != "" }

// VerifyCallback checks an inbound webhook's x_signature field against
// the configured signing key.
func (c *BillplzClient) VerifyCallback(fields map[string]string) bool {
	return VerifyXSignature(c.cfg.XSignatureKey, fields, fields["x_signature"])
}

// CreateCollection creates a named grouping bucket for bills.
func (c *BillplzClient) CreateCollection(ctx context.Context, title string) (entities.Collection, error) {
	form := newFormBody()
	form.add("title", title)

	body, err := c.do(ctx, http.MethodPost, "/v3/collections", form)
	if err != nil {
		return entities.Collection{}, err
	}

	var collection entities.Collection
	if err := unwrapEnvelope(body, "collection", &collection); err != nil {
		return entities.Collection{}, err
	}
	c.logger.WithFields(logrus.Fields{"collection_id": collection.ID, "title": collection.Title}).
		Info("[billplz] collection created")
	return collection, nil
}

// CreateBill creates a bill and returns it with the provider-assigned id
// and hosted payment URL. params.Amount must already be in sen; no
// re-rounding happens here.
func (c *BillplzClient) CreateBill(ctx context.Context, params entities.CreateBillParams) (entities.Bill, error) {
	form := newFormBody()
	form.add("collection_id", params.CollectionID)
	form.add("email", params.Email)
	form.add("name", params.Name)
	form.add("amount", strconv.FormatInt(params.Amount, 10))
	form.add("description", params.Description)
	form.add("callback_url", params.CallbackURL)
	form.add("redirect_url", params.RedirectURL)
	form.add("mobile", params.Mobile)
	form.add("due_at", params.DueAt)
	form.add("reference_1", params.Reference1)
	form.add("reference_1_label", params.Reference1Label)
	form.add("reference_2", params.Reference2)
	form.add("reference_2_label", params.Reference2Label)

	body, err := c.do(ctx, http.MethodPost, "/v3/bills", form)
	if err != nil {
		return entities.Bill{}, err
	}

	var bill entities.Bill
	if err := unwrapEnvelope(body, "bill", &bill); err != nil {
		return entities.Bill{}, err
	}
	c.logger.WithFields(logrus.Fields{"bill_id": bill.ID, "collection_id": bill.CollectionID, "amount": bill.Amount}).
		Info("[billplz] bill created")
	return bill, nil
}

// GetBill fetches a bill by id for status polling.
func (c *BillplzClient) GetBill(ctx context.Context, billID string) (entities.Bill, error) {
	body, err := c.do(ctx, http.MethodGet, "/v3/bills/"+url.PathEscape(billID), nil)
	if err != nil {
		return entities.Bill{}, err
	}

	var bill entities.Bill
	if err := unwrapEnvelope(body, "bill", &bill); err != nil {
		return entities.Bill{}, err
	}
	return bill, nil
}

// formBody builds an application/x-www-form-urlencoded body preserving
// insertion order. Empty values are omitted entirely rather than sent
// as empty strings.
type formBody struct {
	pairs [][2]string
}

func newFormBody() *formBody { return &formBody{} }

func (f *formBody) add(key, value string) {
	if value == "" {
		return
	}
	f.pairs = append(f.pairs, [2]string{key, value})
}

func (f *formBody) encode() string {
	var b strings.Builder
	for i, p := range f.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}

func (c *BillplzClient) do(ctx context.Context, method, path string, form *formBody) ([]byte, error) {
	op := method + " " + path

	var reqBody io.Reader
	if form != nil {
		reqBody = strings.NewReader(form.encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.cfg.APISecretKey, "")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Warnf("[billplz] %s unreachable", op)
		return nil, &interfaces.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &interfaces.NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		gwErr := &interfaces.GatewayError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    providerErrorMessage(body),
		}
		c.logger.WithFields(logrus.Fields{"status": resp.StatusCode, "message": gwErr.Message}).
			Warnf("[billplz] %s rejected", op)
		return nil, gwErr
	}

	return body, nil
}

// providerErrorMessage extracts error.message from a JSON error body.
// Billplz reports either a string or a list of strings there.
func providerErrorMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message json.RawMessage `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(envelope.Error.Message, &single); err == nil {
		return single
	}
	var many []string
	if err := json.Unmarshal(envelope.Error.Message, &many); err == nil {
		return strings.Join(many, "; ")
	}
	return string(envelope.Error.Message)
}

// unwrapEnvelope decodes a provider response that arrives either as a
// keyed envelope ({"bill": {...}}) or, in sandbox mode, as the bare
// object itself. The keyed field wins when present; non-JSON bodies are
// an explicit decode error only when a strong shape was expected.
func unwrapEnvelope(body []byte, key string, out any) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		if raw, ok := envelope[key]; ok && string(raw) != "null" {
			return json.Unmarshal(raw, out)
		}
	}
	return json.Unmarshal(body, out)
}
