package restclient

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/restbase/restbase/codec"
	"github.com/restbase/restbase/logger"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultBackoff     = 1 * time.Second
	defaultContentType = "application/json"
)

// ResponseMode selects how successful responses are returned.
type ResponseMode string

const (
	// ModeRaw returns the deserialized payload directly.
	ModeRaw ResponseMode = "raw"
	// ModeWrapped returns a ResponseWrapper and defers decoding until
	// the caller asks for it.
	ModeWrapped ResponseMode = "wrapped"
)

// Config configures a REST client. It is read-only after New; one
// client shares it across all concurrent calls.
type Config struct {
	// BaseURL is the prefix prepended to all relative request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required"`

	// Timeout is the per-request timeout enforced by the transport.
	// Defaults to 10s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// MaxRetries is the number of additional attempts after the first,
	// taken only for server-error (5xx) responses. Defaults to 0.
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries" validate:"gte=0"`

	// RetryBackoff is the fixed wait between attempts. Defaults to 1s.
	RetryBackoff time.Duration `yaml:"retry_backoff" mapstructure:"retry_backoff"`

	// ContentType is the default Content-Type header. Defaults to
	// application/json.
	ContentType string `yaml:"content_type" mapstructure:"content_type"`

	// Headers are default headers applied to all requests. Per-call
	// headers override them.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// ResponseMode selects raw or wrapped successful responses.
	// Defaults to raw.
	ResponseMode ResponseMode `yaml:"response_mode" mapstructure:"response_mode" validate:"omitempty,oneof=raw wrapped"`

	// Serializer encodes request bodies. Defaults to JSON. Use
	// codec.PassthroughSerialize to disable serialization.
	Serializer codec.Serializer `yaml:"-" mapstructure:"-"`

	// Deserializer decodes response bodies. Defaults to JSON. Use
	// codec.PassthroughDeserialize to get raw bytes.
	Deserializer codec.Deserializer `yaml:"-" mapstructure:"-"`

	// Logger receives request/response/retry logging. Nil disables
	// logging entirely.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = defaultBackoff
	}
	if c.ContentType == "" {
		c.ContentType = defaultContentType
	}
	if c.ResponseMode == "" {
		c.ResponseMode = ModeRaw
	}
	if c.Serializer == nil {
		c.Serializer = codec.JSONSerialize
	}
	if c.Deserializer == nil {
		c.Deserializer = codec.JSONDeserialize
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			e := verrs[0]
			return NewConfigError(fmt.Sprintf("field %s failed on %q", e.Field(), e.Tag()))
		}
		return NewConfigError(err.Error())
	}
	return nil
}

var (
	structValidator *validator.Validate
	validatorOnce   sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return structValidator
}
