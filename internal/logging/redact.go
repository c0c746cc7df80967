package logging

import (
	"log/slog"

	"github.com/m-mizutani/masq"
)

// DefaultRedactOptions covers the secrets this server can end up logging:
// the OTLP headers, SMTP-style credentials in .env and raw client addresses.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("cookie"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("client_ip"),
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
	}
}

// NewReplaceAttr returns a slog ReplaceAttr func that redacts sensitive values.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	allOpts := append(DefaultRedactOptions(), opts...)
	return masq.New(allOpts...)
}
