package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"golang.org/x/time/rate"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Client sends HTML mail over SMTP. The send function is injectable so tests
// can capture outgoing messages without a mail server.
type Client struct {
	host     string
	port     int
	username string
	password string
	from     string

	send        sendFunc
	rateLimiter *rate.Limiter
}

func NewClient(host string, port int, username, password, from string) *Client {
	return &Client{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		send:     smtp.SendMail,
	}
}

func (c *Client) SetSendFunc(fn sendFunc) {
	c.send = fn
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// Send delivers one HTML message. Blocks on the rate limiter when one is set.
func (c *Client) Send(to, subject, htmlBody string) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(context.Background()); err != nil {
			return err
		}
	}

	var auth smtp.Auth
	if c.username != "" {
		auth = smtp.PlainAuth("", c.username, c.password, c.host)
	}

	addr := fmt.Sprintf("%s:%d", c.host, c.port)
	msg := buildMessage(c.from, to, subject, htmlBody)

	if err := c.send(addr, auth, c.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}
