package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Notifier fires one-shot lead notifications at the form relay service.
// The call is best-effort by contract: the local submission record is
// the source of truth, so the outcome here is logged and dropped. No
// caller ever waits on it.
type Notifier struct {
	baseURL  string
	client   *http.Client
	disabled bool
}

// Message is the relay payload: the submitted fields plus the relay's
// control fields. Template is the optional rendering hint ("table" on
// the contact form).
type Message struct {
	Recipient string
	Subject   string
	Template  string
	Fields    map[string]string
}

func New(baseURL string, timeout time.Duration, disabled bool) *Notifier {
	return &Notifier{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: timeout},
		disabled: disabled,
	}
}

// Send launches the notification on its own goroutine and returns
// immediately. The goroutine carries its own context so a hung relay
// cannot block the submission path.
func (n *Notifier) Send(msg Message) {
	if n.disabled {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.client.Timeout)
		defer cancel()
		n.deliver(ctx, msg)
	}()
}

func (n *Notifier) deliver(ctx context.Context, msg Message) {
	body := make(map[string]string, len(msg.Fields)+3)
	for k, v := range msg.Fields {
		body[k] = v
	}
	body["_subject"] = msg.Subject
	body["_captcha"] = "false"
	if msg.Template != "" {
		body["_template"] = msg.Template
	}

	payload, err := json.Marshal(body)
	if err != nil {
		log.Printf("relay: marshal failed: %v", err)
		return
	}

	endpoint := n.baseURL + "/" + url.PathEscape(msg.Recipient)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		log.Printf("relay: request build failed: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("relay: sync skipped, lead kept locally: %v", err)
		return
	}
	defer resp.Body.Close()
	log.Printf("relay: sync status %d", resp.StatusCode)
}
